// Package pageview turns a page-token sequence into the controls of a
// pagination strip: previous/next arrows plus one item per token.
package pageview

import (
	"strconv"

	"github.com/maxviazov/beauty-pagination/internal/pagination"
)

// ControlKind distinguishes the three shapes a strip control can take.
type ControlKind uint8

const (
	KindPrevious ControlKind = iota + 1
	KindNext
	KindPage
	KindEllipsis
)

// Control is one clickable (or inert) element of the strip.
type Control struct {
	Kind     ControlKind `json:"kind"`
	Label    string      `json:"label"`
	Page     int         `json:"page,omitempty"` // requested page when activated
	Disabled bool        `json:"disabled,omitempty"`
	Selected bool        `json:"selected,omitempty"`
}

// Target returns the page this control requests and whether activating it does anything.
// Ellipses and disabled arrows are inert.
func (c Control) Target() (int, bool) {
	if c.Kind == KindEllipsis || c.Disabled {
		return 0, false
	}
	return c.Page, true
}

// Strip is the full control model. Hidden strips render nothing at all.
type Strip struct {
	Hidden      bool      `json:"hidden"`
	CurrentPage int       `json:"current_page"`
	TotalPages  int       `json:"total_pages"`
	Previous    Control   `json:"previous"`
	Next        Control   `json:"next"`
	Items       []Control `json:"items"`
}

// Labels used for the arrows; the renderer may replace them with glyphs.
const (
	PreviousLabel = "‹"
	NextLabel     = "›"
)

// Build lays out the controls for tokens produced by pagination.Range.
// A strip with fewer than two tokens is hidden: there is nothing to page through.
func Build(tokens []pagination.Token, currentPage, totalPages int) Strip {
	if len(tokens) < 2 {
		return Strip{Hidden: true, CurrentPage: currentPage, TotalPages: totalPages}
	}

	s := Strip{
		CurrentPage: currentPage,
		TotalPages:  totalPages,
		Previous: Control{
			Kind:     KindPrevious,
			Label:    PreviousLabel,
			Page:     currentPage - 1,
			Disabled: currentPage <= 1,
		},
		Next: Control{
			Kind:     KindNext,
			Label:    NextLabel,
			Page:     currentPage + 1,
			Disabled: currentPage >= totalPages,
		},
		Items: make([]Control, 0, len(tokens)),
	}
	if s.Previous.Disabled {
		s.Previous.Page = 0
	}
	if s.Next.Disabled {
		s.Next.Page = 0
	}

	for _, tok := range tokens {
		n, ok := tok.Number()
		if !ok {
			s.Items = append(s.Items, Control{Kind: KindEllipsis, Label: pagination.EllipsisText})
			continue
		}
		s.Items = append(s.Items, Control{
			Kind:     KindPage,
			Label:    strconv.Itoa(n),
			Page:     n,
			Selected: n == currentPage,
		})
	}
	return s
}

// Controls returns previous, items and next in display order.
func (s Strip) Controls() []Control {
	if s.Hidden {
		return nil
	}
	out := make([]Control, 0, len(s.Items)+2)
	out = append(out, s.Previous)
	out = append(out, s.Items...)
	return append(out, s.Next)
}

// Activate resolves a click on the i-th control in display order (see Controls).
func (s Strip) Activate(i int) (int, bool) {
	controls := s.Controls()
	if i < 0 || i >= len(controls) {
		return 0, false
	}
	return controls[i].Target()
}
