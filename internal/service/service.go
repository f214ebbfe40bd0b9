// Package service holds the list and lookup use cases behind the catalog and the blog.
// Kept intentionally lean: filtering, page clamping, validation and domain error shaping.
package service

import (
	"context"
	"errors"

	"github.com/maxviazov/beauty-pagination/internal/model"
	"github.com/maxviazov/beauty-pagination/internal/pageview"
	"github.com/maxviazov/beauty-pagination/internal/pagination"
)

// ErrInvalidInput is the marker error for aggregated validation failures.
// Field-level details are retrieved via FieldErrors(err).
var ErrInvalidInput = errors.New("invalid input")

// FieldError describes a single invalid field in a client request.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// invalidInputError aggregates multiple FieldError instances and unwraps to ErrInvalidInput.
type invalidInputError struct {
	fields []FieldError
}

func (e *invalidInputError) Error() string        { return ErrInvalidInput.Error() }
func (e *invalidInputError) Unwrap() error        { return ErrInvalidInput }
func (e *invalidInputError) Fields() []FieldError { return e.fields }

// newInvalidInput builds an aggregated validation error if any field errors are present.
func newInvalidInput(fe []FieldError) error {
	if len(fe) == 0 { // protective case
		return nil
	}
	return &invalidInputError{fields: fe}
}

// FieldErrors extracts field errors from an aggregated validation error.
func FieldErrors(err error) []FieldError {
	if err == nil {
		return nil
	}
	var v interface{ Fields() []FieldError }
	if errors.As(err, &v) {
		return v.Fields()
	}
	return nil
}

// PageSizeAll asks for every matching item on a single page (the "Tous" option of the list views).
const PageSizeAll = -1

// MaxPageSize caps explicit page sizes.
const MaxPageSize = 100

// RangeCalculator produces page strips; *pagination.Calculator satisfies it.
type RangeCalculator interface {
	Range(req pagination.Request) ([]pagination.Token, error)
}

// RangeFunc adapts a plain function such as pagination.Range.
type RangeFunc func(req pagination.Request) ([]pagination.Token, error)

func (f RangeFunc) Range(req pagination.Request) ([]pagination.Token, error) { return f(req) }

// Settings are the list defaults shared by every list use case.
type Settings struct {
	DefaultPageSize int
	SiblingCount    int
}

// ListResult is one rendered page of a filtered list.
type ListResult[T any] struct {
	Items      []T                `json:"items"`
	Total      int                `json:"total"` // matching items after filtering
	Page       int                `json:"page"`  // effective page after clamping
	PageSize   int                `json:"page_size"`
	TotalPages int                `json:"total_pages"`
	Tokens     []pagination.Token `json:"tokens"`
	Strip      pageview.Strip     `json:"strip"`
}

// CategoryCount is a category with the number of entries filed under it.
type CategoryCount struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// ProductQuery filters and pages the catalog. Zero values mean "no filter"
// and, for Page/PageSize, the defaults.
type ProductQuery struct {
	Category string
	MinPrice *float64
	MaxPrice *float64
	Search   string
	Page     int
	PageSize int
}

// ArticleQuery filters and pages the blog.
type ArticleQuery struct {
	Category string
	Search   string
	Page     int
	PageSize int
}

// CatalogService defines product-oriented use cases.
type CatalogService interface {
	ListProducts(ctx context.Context, q ProductQuery) (ListResult[model.Product], error)
	GetProduct(ctx context.Context, slug string) (model.Product, error)
	Categories(ctx context.Context) ([]CategoryCount, error)
	RecentProducts(ctx context.Context, n int) ([]model.Product, error)
}

// BlogService defines article-oriented use cases.
type BlogService interface {
	ListArticles(ctx context.Context, q ArticleQuery) (ListResult[model.Article], error)
	GetArticle(ctx context.Context, slug string) (model.Article, error)
	Categories(ctx context.Context) ([]CategoryCount, error)
}
