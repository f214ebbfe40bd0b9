// Package contract holds behaviour suites every repository implementation must pass.
package contract

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/maxviazov/beauty-pagination/internal/model"
	"github.com/maxviazov/beauty-pagination/internal/repository"
)

// ProductFactory builds a repository pre-loaded with seed.
type ProductFactory func(t *testing.T, seed []model.Product) repository.ProductRepository

// ArticleFactory builds a repository pre-loaded with seed.
type ArticleFactory func(t *testing.T, seed []model.Article) repository.ArticleRepository

func RunProductRepositoryContract(t *testing.T, makeRepo ProductFactory) {
	t.Helper()
	day := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	seed := []model.Product{
		{ID: "1", DocumentID: "p1", Name: "Soin visage", Price: 45, IssueDate: day, Categories: []string{"Skincare"}},
		{ID: "2", DocumentID: "p2", Name: "Rouge à lèvres", Price: 19.9, IssueDate: day.AddDate(0, 1, 0), Categories: []string{"Makeup"}},
	}

	t.Run("list_returns_all", func(t *testing.T) {
		repo := makeRepo(t, seed)
		got, err := repo.ListProducts(context.Background())
		if err != nil {
			t.Fatalf("list failed: %v", err)
		}
		if len(got) != len(seed) {
			t.Fatalf("expected %d products, got %d", len(seed), len(got))
		}
	})

	t.Run("get_by_document_id", func(t *testing.T) {
		repo := makeRepo(t, seed)
		got, err := repo.GetProduct(context.Background(), "p2")
		if err != nil {
			t.Fatalf("get failed: %v", err)
		}
		if got.Name != "Rouge à lèvres" || got.Price != 19.9 {
			t.Fatalf("mismatch: %+v", got)
		}
	})

	t.Run("get_not_found", func(t *testing.T) {
		repo := makeRepo(t, seed)
		_, err := repo.GetProduct(context.Background(), "nope")
		if !errors.Is(err, repository.ErrNotFound) {
			t.Fatalf("expected ErrNotFound, got %v", err)
		}
	})

	t.Run("list_is_a_copy", func(t *testing.T) {
		repo := makeRepo(t, seed)
		first, _ := repo.ListProducts(context.Background())
		first[0].Name = "mutated"
		second, _ := repo.ListProducts(context.Background())
		if second[0].Name == "mutated" {
			t.Fatalf("callers must not be able to mutate repository state")
		}
	})

	t.Run("empty_repository", func(t *testing.T) {
		repo := makeRepo(t, nil)
		got, err := repo.ListProducts(context.Background())
		if err != nil {
			t.Fatalf("list failed: %v", err)
		}
		if len(got) != 0 {
			t.Fatalf("expected no products, got %d", len(got))
		}
	})
}

func RunArticleRepositoryContract(t *testing.T, makeRepo ArticleFactory) {
	t.Helper()
	day := time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC)
	seed := []model.Article{
		{ID: 1, DocumentID: "a1", Title: "Routine du soir", IssueDate: day, Categories: []string{"Skincare"}},
		{ID: 2, DocumentID: "a2", Title: "Maquillage naturel", IssueDate: day.AddDate(0, 0, 7), Categories: []string{"Makeup"}},
	}

	t.Run("list_returns_all", func(t *testing.T) {
		repo := makeRepo(t, seed)
		got, err := repo.ListArticles(context.Background())
		if err != nil {
			t.Fatalf("list failed: %v", err)
		}
		if len(got) != len(seed) {
			t.Fatalf("expected %d articles, got %d", len(seed), len(got))
		}
	})

	t.Run("get_by_document_id", func(t *testing.T) {
		repo := makeRepo(t, seed)
		got, err := repo.GetArticle(context.Background(), "a1")
		if err != nil {
			t.Fatalf("get failed: %v", err)
		}
		if got.ID != 1 || got.Title != "Routine du soir" {
			t.Fatalf("mismatch: %+v", got)
		}
	})

	t.Run("get_not_found", func(t *testing.T) {
		repo := makeRepo(t, seed)
		_, err := repo.GetArticle(context.Background(), "zzz")
		if !errors.Is(err, repository.ErrNotFound) {
			t.Fatalf("expected ErrNotFound, got %v", err)
		}
	})

	t.Run("canceled_context", func(t *testing.T) {
		repo := makeRepo(t, seed)
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		if _, err := repo.ListArticles(ctx); !errors.Is(err, context.Canceled) {
			t.Fatalf("expected context.Canceled, got %v", err)
		}
	})
}
