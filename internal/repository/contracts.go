package repository

import (
	"context"

	"github.com/maxviazov/beauty-pagination/internal/model"
)

// ProductRepository reads catalog entries.
// I return every product and let the service filter: the catalog is small and
// the list view needs the filtered count before it can page.
type ProductRepository interface {
	ListProducts(ctx context.Context) ([]model.Product, error)
	GetProduct(ctx context.Context, documentID string) (model.Product, error)
}

// ArticleRepository reads blog posts.
type ArticleRepository interface {
	ListArticles(ctx context.Context) ([]model.Article, error)
	GetArticle(ctx context.Context, documentID string) (model.Article, error)
}
