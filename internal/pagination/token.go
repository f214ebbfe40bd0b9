package pagination

import (
	"encoding/json"
	"strconv"
)

// EllipsisText is how a collapsed run of pages is displayed.
const EllipsisText = "…"

// Kind tells a page token apart from an ellipsis marker.
type Kind uint8

const (
	// KindInvalid is the zero value; Range never produces it.
	KindInvalid Kind = iota
	KindPage
	KindEllipsis
)

// Token is one slot of a page strip: either a concrete page number or an
// ellipsis standing for a collapsed run of pages.
// I keep the fields private so a page number can never be mistaken for the marker.
type Token struct {
	kind Kind
	page int
}

// Ellipsis is the collapsed-run marker.
var Ellipsis = Token{kind: KindEllipsis}

// Page builds a page token for page n (1-based).
func Page(n int) Token { return Token{kind: KindPage, page: n} }

// Kind reports whether t is a page or an ellipsis.
func (t Token) Kind() Kind { return t.kind }

// IsEllipsis reports whether t stands for a collapsed run of pages.
func (t Token) IsEllipsis() bool { return t.kind == KindEllipsis }

// Number returns the page number and true for page tokens, 0 and false otherwise.
func (t Token) Number() (int, bool) {
	if t.kind != KindPage {
		return 0, false
	}
	return t.page, true
}

// String returns the page number, EllipsisText, or "?" for the zero Token.
func (t Token) String() string {
	switch t.kind {
	case KindPage:
		return strconv.Itoa(t.page)
	case KindEllipsis:
		return EllipsisText
	default:
		return "?"
	}
}

// MarshalJSON encodes pages as numbers and the ellipsis as the string "…",
// which is the shape list views already consume.
func (t Token) MarshalJSON() ([]byte, error) {
	if t.kind == KindPage {
		return json.Marshal(t.page)
	}
	return json.Marshal(t.String())
}

// Pages returns the page numbers of tokens in order, skipping ellipses.
func Pages(tokens []Token) []int {
	out := make([]int, 0, len(tokens))
	for _, t := range tokens {
		if n, ok := t.Number(); ok {
			out = append(out, n)
		}
	}
	return out
}
