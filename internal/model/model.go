// Package model contains the content entities shown on the site.
// I keep it lean and focused on data shapes; the CMS stays the store of record.
package model

import (
	"strings"
	"time"
)

// Product is a catalog entry (treatment, care product, gift card).
type Product struct {
	ID          string    `json:"id"`
	DocumentID  string    `json:"document_id"`
	Name        string    `json:"name"`
	Intro       string    `json:"intro"`
	Description string    `json:"description"`
	Price       float64   `json:"price"` // euros
	IssueDate   time.Time `json:"issue_date"`
	ImageURL    string    `json:"image_url"`
	Categories  []string  `json:"categories"`
}

// Article is a blog post.
type Article struct {
	ID          int64     `json:"id"`
	DocumentID  string    `json:"document_id"`
	Title       string    `json:"title"`
	Intro       string    `json:"intro"`
	Description string    `json:"description"`
	VideoURL    string    `json:"video_url,omitempty"`
	IssueDate   time.Time `json:"issue_date"`
	ImageURL    string    `json:"image_url"`
	Categories  []string  `json:"categories"`
}

// HasCategory reports whether the product is filed under category (case-insensitive).
func (p Product) HasCategory(category string) bool { return hasCategory(p.Categories, category) }

// HasCategory reports whether the article is filed under category (case-insensitive).
func (a Article) HasCategory(category string) bool { return hasCategory(a.Categories, category) }

func hasCategory(categories []string, want string) bool {
	for _, c := range categories {
		if strings.EqualFold(strings.TrimSpace(c), strings.TrimSpace(want)) {
			return true
		}
	}
	return false
}
