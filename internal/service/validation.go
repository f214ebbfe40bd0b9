package service

import (
	"fmt"
	"strings"
)

// checkPaging validates the page fields of a query; zero values are allowed and mean "default".
func checkPaging(page, pageSize int) []FieldError {
	var ferrs []FieldError
	if page < 0 {
		ferrs = append(ferrs, FieldError{Field: "page", Message: "must be >= 1"})
	}
	if pageSize < PageSizeAll || pageSize > MaxPageSize {
		ferrs = append(ferrs, FieldError{Field: "page_size", Message: fmt.Sprintf("must be between 1 and %d, or %d for all", MaxPageSize, PageSizeAll)})
	}
	return ferrs
}

func checkPriceRange(minPrice, maxPrice *float64) []FieldError {
	var ferrs []FieldError
	if minPrice != nil && *minPrice < 0 {
		ferrs = append(ferrs, FieldError{Field: "min_price", Message: "must be >= 0"})
	}
	if maxPrice != nil && *maxPrice < 0 {
		ferrs = append(ferrs, FieldError{Field: "max_price", Message: "must be >= 0"})
	}
	if minPrice != nil && maxPrice != nil && *minPrice > *maxPrice {
		ferrs = append(ferrs, FieldError{Field: "max_price", Message: "must be >= min_price"})
	}
	return ferrs
}

func checkSlug(slug string) []FieldError {
	if strings.TrimSpace(slug) == "" {
		return []FieldError{{Field: "slug", Message: "must not be empty"}}
	}
	return nil
}

// normalizePaging fills in defaults: page 0 becomes 1, page size 0 becomes the configured default.
func normalizePaging(page, pageSize, defaultSize int) (int, int) {
	if page <= 0 {
		page = 1
	}
	if pageSize == 0 {
		pageSize = defaultSize
	}
	return page, pageSize
}
