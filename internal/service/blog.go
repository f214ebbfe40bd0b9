package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/maxviazov/beauty-pagination/internal/format"
	"github.com/maxviazov/beauty-pagination/internal/model"
	"github.com/maxviazov/beauty-pagination/internal/repository"
)

type blogService struct {
	repo     repository.ArticleRepository
	calc     RangeCalculator
	settings Settings
	log      zerolog.Logger
}

func NewBlogService(repo repository.ArticleRepository, calc RangeCalculator, settings Settings, logger zerolog.Logger) BlogService {
	l := logger.With().Str("module", "service").Str("component", "blog").Logger()
	return &blogService{repo: repo, calc: calc, settings: settings, log: l}
}

func (s *blogService) ListArticles(ctx context.Context, q ArticleQuery) (ListResult[model.Article], error) {
	ferrs := checkPaging(q.Page, q.PageSize)
	if err := newInvalidInput(ferrs); err != nil {
		s.log.Debug().Interface("field_errors", ferrs).Msg("article query validation failed")
		return ListResult[model.Article]{}, err
	}
	page, size := normalizePaging(q.Page, q.PageSize, s.settings.DefaultPageSize)

	all, err := s.repo.ListArticles(ctx)
	if err != nil {
		s.log.Error().Err(err).Msg("list articles failed")
		return ListResult[model.Article]{}, err
	}

	matched := make([]model.Article, 0, len(all))
	for _, a := range all {
		if q.Category != "" && !a.HasCategory(q.Category) {
			continue
		}
		if !matchesSearch(q.Search, a.Title, a.Intro, a.Description) {
			continue
		}
		matched = append(matched, a)
	}
	newestFirst(matched, func(a model.Article) time.Time { return a.IssueDate })

	res, err := paginate(s.calc, matched, page, size, s.settings.SiblingCount)
	if err != nil {
		s.log.Error().Err(err).Int("page", page).Int("page_size", size).Msg("paginate articles failed")
		return ListResult[model.Article]{}, err
	}
	return res, nil
}

// GetArticle resolves a blog URL slug ("<title>-<documentId>") to its article.
func (s *blogService) GetArticle(ctx context.Context, slug string) (model.Article, error) {
	if err := newInvalidInput(checkSlug(slug)); err != nil {
		return model.Article{}, err
	}
	a, err := s.repo.GetArticle(ctx, format.DocumentID(slug))
	if err != nil {
		return model.Article{}, err
	}
	if canonical := format.Slug(a.Title, a.DocumentID); canonical != slug {
		// old links keep working; the id is what identifies the article
		s.log.Debug().Str("slug", slug).Str("canonical", canonical).Msg("non-canonical article slug")
	}
	return a, nil
}

func (s *blogService) Categories(ctx context.Context) ([]CategoryCount, error) {
	all, err := s.repo.ListArticles(ctx)
	if err != nil {
		s.log.Error().Err(err).Msg("list articles for categories failed")
		return nil, err
	}
	return countCategories(all, func(a model.Article) []string { return a.Categories }), nil
}
