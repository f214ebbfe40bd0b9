// Package snapshot serves catalog and blog content from a YAML export of the CMS.
package snapshot

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"slices"
	"strings"

	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"

	"github.com/maxviazov/beauty-pagination/internal/format"
	"github.com/maxviazov/beauty-pagination/internal/model"
	"github.com/maxviazov/beauty-pagination/internal/repository"
)

// Store is an immutable in-memory content set. Safe for concurrent reads.
type Store struct {
	products []model.Product
	articles []model.Article
}

var (
	_ repository.ProductRepository = (*Store)(nil)
	_ repository.ArticleRepository = (*Store)(nil)
)

// document mirrors the CMS export; keys keep the CMS spelling.
type document struct {
	Products []productRecord `yaml:"products"`
	Articles []articleRecord `yaml:"articles"`
}

type productRecord struct {
	ID          string   `yaml:"id"`
	DocumentID  string   `yaml:"documentId"`
	Name        string   `yaml:"name"`
	Intro       string   `yaml:"intro"`
	Description string   `yaml:"description"`
	Price       float64  `yaml:"price"`
	IssueDate   string   `yaml:"issueDate"`
	ImageURL    string   `yaml:"imageUrl"`
	Categories  []string `yaml:"categories"`
}

type articleRecord struct {
	ID          int64    `yaml:"id"`
	DocumentID  string   `yaml:"documentId"`
	Title       string   `yaml:"title"`
	Intro       string   `yaml:"intro"`
	Description string   `yaml:"description"`
	VideoURL    string   `yaml:"videoUrl"`
	IssueDate   string   `yaml:"issueDate"`
	ImageURL    string   `yaml:"imageUrl"`
	Categories  []string `yaml:"categories"`
}

// New wraps already-decoded content.
func New(products []model.Product, articles []model.Article) *Store {
	return &Store{products: slices.Clone(products), articles: slices.Clone(articles)}
}

// Load reads a snapshot file.
func Load(path string, logger zerolog.Logger) (*Store, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", repository.ErrSnapshot, err)
	}
	s, err := Decode(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	logger.Debug().
		Str("path", path).
		Int("products", len(s.products)).
		Int("articles", len(s.articles)).
		Msg("content snapshot loaded")
	return s, nil
}

// Decode parses and validates a snapshot. Unknown keys are rejected so a
// renamed CMS field fails loudly instead of silently emptying a column.
func Decode(r io.Reader) (*Store, error) {
	var doc document
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: %w", repository.ErrSnapshot, err)
	}

	var problems []string
	products := make([]model.Product, 0, len(doc.Products))
	seen := make(map[string]bool, len(doc.Products)+len(doc.Articles))
	for i, rec := range doc.Products {
		where := fmt.Sprintf("products[%d]", i)
		p := model.Product{
			ID:          rec.ID,
			DocumentID:  strings.TrimSpace(rec.DocumentID),
			Name:        rec.Name,
			Intro:       rec.Intro,
			Description: rec.Description,
			Price:       rec.Price,
			ImageURL:    rec.ImageURL,
			Categories:  rec.Categories,
		}
		problems = append(problems, checkDocumentID(where, p.DocumentID, seen)...)
		if rec.Price < 0 {
			problems = append(problems, where+": price must be >= 0")
		}
		if t, err := format.ParseDate(rec.IssueDate); err != nil {
			problems = append(problems, where+": "+err.Error())
		} else {
			p.IssueDate = t
		}
		products = append(products, p)
	}

	articles := make([]model.Article, 0, len(doc.Articles))
	for i, rec := range doc.Articles {
		where := fmt.Sprintf("articles[%d]", i)
		a := model.Article{
			ID:          rec.ID,
			DocumentID:  strings.TrimSpace(rec.DocumentID),
			Title:       rec.Title,
			Intro:       rec.Intro,
			Description: rec.Description,
			VideoURL:    rec.VideoURL,
			ImageURL:    rec.ImageURL,
			Categories:  rec.Categories,
		}
		problems = append(problems, checkDocumentID(where, a.DocumentID, seen)...)
		if t, err := format.ParseDate(rec.IssueDate); err != nil {
			problems = append(problems, where+": "+err.Error())
		} else {
			a.IssueDate = t
		}
		articles = append(articles, a)
	}

	if len(problems) > 0 {
		return nil, fmt.Errorf("%w: %s", repository.ErrSnapshot, strings.Join(problems, "; "))
	}
	return &Store{products: products, articles: articles}, nil
}

// checkDocumentID enforces non-empty, dash-free, unique ids; slugs end in "-<documentId>".
func checkDocumentID(where, id string, seen map[string]bool) []string {
	switch {
	case id == "":
		return []string{where + ": documentId is required"}
	case strings.Contains(id, "-"):
		return []string{where + ": documentId must not contain '-'"}
	case seen[id]:
		return []string{where + ": duplicate documentId " + id}
	}
	seen[id] = true
	return nil
}

func (s *Store) ListProducts(ctx context.Context) ([]model.Product, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return slices.Clone(s.products), nil
}

func (s *Store) GetProduct(ctx context.Context, documentID string) (model.Product, error) {
	if err := ctx.Err(); err != nil {
		return model.Product{}, err
	}
	for _, p := range s.products {
		if p.DocumentID == documentID {
			return p, nil
		}
	}
	return model.Product{}, repository.ErrNotFound
}

func (s *Store) ListArticles(ctx context.Context) ([]model.Article, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return slices.Clone(s.articles), nil
}

func (s *Store) GetArticle(ctx context.Context, documentID string) (model.Article, error) {
	if err := ctx.Err(); err != nil {
		return model.Article{}, err
	}
	for _, a := range s.articles {
		if a.DocumentID == documentID {
			return a, nil
		}
	}
	return model.Article{}, repository.ErrNotFound
}
