package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/maxviazov/beauty-pagination/internal/format"
	"github.com/maxviazov/beauty-pagination/internal/model"
	"github.com/maxviazov/beauty-pagination/internal/repository"
)

// catalogService holds product list logic: validation, filtering and paging, no storage details.
type catalogService struct {
	repo     repository.ProductRepository
	calc     RangeCalculator
	settings Settings
	log      zerolog.Logger
}

func NewCatalogService(repo repository.ProductRepository, calc RangeCalculator, settings Settings, logger zerolog.Logger) CatalogService {
	l := logger.With().Str("module", "service").Str("component", "catalog").Logger()
	return &catalogService{repo: repo, calc: calc, settings: settings, log: l}
}

func (s *catalogService) ListProducts(ctx context.Context, q ProductQuery) (ListResult[model.Product], error) {
	start := time.Now()

	ferrs := checkPaging(q.Page, q.PageSize)
	ferrs = append(ferrs, checkPriceRange(q.MinPrice, q.MaxPrice)...)
	if err := newInvalidInput(ferrs); err != nil {
		s.log.Debug().Interface("field_errors", ferrs).Msg("product query validation failed")
		return ListResult[model.Product]{}, err
	}
	page, size := normalizePaging(q.Page, q.PageSize, s.settings.DefaultPageSize)

	all, err := s.repo.ListProducts(ctx)
	if err != nil {
		s.log.Error().Err(err).Msg("list products failed")
		return ListResult[model.Product]{}, err
	}

	matched := make([]model.Product, 0, len(all))
	for _, p := range all {
		if q.Category != "" && !p.HasCategory(q.Category) {
			continue
		}
		if q.MinPrice != nil && p.Price < *q.MinPrice {
			continue
		}
		if q.MaxPrice != nil && p.Price > *q.MaxPrice {
			continue
		}
		if !matchesSearch(q.Search, p.Name, p.Intro, p.Description) {
			continue
		}
		matched = append(matched, p)
	}
	newestFirst(matched, func(p model.Product) time.Time { return p.IssueDate })

	res, err := paginate(s.calc, matched, page, size, s.settings.SiblingCount)
	if err != nil {
		s.log.Error().Err(err).Int("page", page).Int("page_size", size).Msg("paginate products failed")
		return ListResult[model.Product]{}, err
	}
	s.log.Debug().
		Dur("took", time.Since(start)).
		Int("matched", res.Total).
		Int("page", res.Page).
		Int("total_pages", res.TotalPages).
		Msg("products listed")
	return res, nil
}

func (s *catalogService) GetProduct(ctx context.Context, slug string) (model.Product, error) {
	if err := newInvalidInput(checkSlug(slug)); err != nil {
		return model.Product{}, err
	}
	return s.repo.GetProduct(ctx, format.DocumentID(slug))
}

// Categories feeds the catalog sidebar: every category with its product count.
func (s *catalogService) Categories(ctx context.Context) ([]CategoryCount, error) {
	all, err := s.repo.ListProducts(ctx)
	if err != nil {
		s.log.Error().Err(err).Msg("list products for categories failed")
		return nil, err
	}
	return countCategories(all, func(p model.Product) []string { return p.Categories }), nil
}

// RecentProducts returns the n most recently issued products.
func (s *catalogService) RecentProducts(ctx context.Context, n int) ([]model.Product, error) {
	if n <= 0 {
		return nil, newInvalidInput([]FieldError{{Field: "n", Message: "must be > 0"}})
	}
	all, err := s.repo.ListProducts(ctx)
	if err != nil {
		s.log.Error().Err(err).Msg("list recent products failed")
		return nil, err
	}
	newestFirst(all, func(p model.Product) time.Time { return p.IssueDate })
	return all[:min(n, len(all))], nil
}
