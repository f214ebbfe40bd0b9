package service

import (
	"cmp"
	"slices"
	"strings"
	"time"

	"github.com/maxviazov/beauty-pagination/internal/format"
	"github.com/maxviazov/beauty-pagination/internal/pageview"
	"github.com/maxviazov/beauty-pagination/internal/pagination"
	"github.com/maxviazov/beauty-pagination/internal/repository"
)

// paginate turns an already filtered and sorted list into one page plus its strip.
//
// The range calculator does not clamp the current page, so this is where a
// page that fell off the end (filters narrowed the list) is pulled back to
// the last page.
func paginate[T any](calc RangeCalculator, items []T, page, pageSize, siblings int) (ListResult[T], error) {
	total := len(items)
	size := pageSize
	if size == PageSizeAll {
		size = max(total, 1)
	}

	req := pagination.Request{TotalCount: total, PageSize: size, SiblingCount: siblings}
	totalPages := req.TotalPages()
	req.CurrentPage = clampPage(page, totalPages)

	tokens, err := calc.Range(req)
	if err != nil {
		return ListResult[T]{}, err
	}

	return ListResult[T]{
		Items:      repository.Window(items, repository.PageOf(req.CurrentPage, size)),
		Total:      total,
		Page:       req.CurrentPage,
		PageSize:   size,
		TotalPages: totalPages,
		Tokens:     tokens,
		Strip:      pageview.Build(tokens, req.CurrentPage, totalPages),
	}, nil
}

func clampPage(page, totalPages int) int {
	switch {
	case page < 1, totalPages == 0:
		return 1
	case page > totalPages:
		return totalPages
	default:
		return page
	}
}

// newestFirst orders by issue date descending; ties keep their CMS order.
func newestFirst[T any](items []T, issued func(T) time.Time) {
	slices.SortStableFunc(items, func(a, b T) int {
		return issued(b).Compare(issued(a))
	})
}

// matchesSearch reports whether every word of query appears in one of fields,
// ignoring case and accents ("creme" finds "Crème").
func matchesSearch(query string, fields ...string) bool {
	words := strings.Fields(format.Fold(query))
	if len(words) == 0 {
		return true
	}
	haystack := format.Fold(strings.Join(fields, " "))
	for _, w := range words {
		if !strings.Contains(haystack, w) {
			return false
		}
	}
	return true
}

// countCategories tallies categories case-insensitively, keeping the first spelling seen.
func countCategories[T any](items []T, categories func(T) []string) []CategoryCount {
	index := map[string]int{}
	var out []CategoryCount
	for _, it := range items {
		for _, c := range categories(it) {
			name := strings.TrimSpace(c)
			if name == "" {
				continue
			}
			key := strings.ToLower(name)
			if i, ok := index[key]; ok {
				out[i].Count++
				continue
			}
			index[key] = len(out)
			out = append(out, CategoryCount{Name: name, Count: 1})
		}
	}
	slices.SortFunc(out, func(a, b CategoryCount) int {
		return cmp.Compare(strings.ToLower(a.Name), strings.ToLower(b.Name))
	})
	return out
}
