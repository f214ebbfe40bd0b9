package pagination

import (
	"fmt"

	lru "github.com/hashicorp/golang-lru/v2"
)

// Calculator memoizes Range results keyed on the full request.
// A list view recomputes its strip on every render, mostly with the same
// four inputs, so a small bounded cache covers it. Safe for concurrent use.
type Calculator struct {
	cache *lru.Cache[Request, []Token]
}

// NewCalculator builds a calculator holding at most size strips.
func NewCalculator(size int) (*Calculator, error) {
	c, err := lru.New[Request, []Token](size)
	if err != nil {
		return nil, fmt.Errorf("pagination cache: %w", err)
	}
	return &Calculator{cache: c}, nil
}

// Range returns the same tokens as the package-level Range.
// The returned slice is the caller's own copy.
func (c *Calculator) Range(req Request) ([]Token, error) {
	if cached, ok := c.cache.Get(req); ok {
		return clone(cached), nil
	}
	tokens, err := Range(req)
	if err != nil {
		return nil, err
	}
	c.cache.Add(req, clone(tokens))
	return tokens, nil
}

// Len reports how many strips are cached.
func (c *Calculator) Len() int { return c.cache.Len() }

// Purge drops every cached strip.
func (c *Calculator) Purge() { c.cache.Purge() }

func clone(tokens []Token) []Token {
	out := make([]Token, len(tokens))
	copy(out, tokens)
	return out
}
