package pageview

import (
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
)

// Strip colors, shared with the rest of the terminal output.
var (
	ColorSelected = lipgloss.Color("205") // pink
	ColorPage     = lipgloss.Color("252")
	ColorInert    = lipgloss.Color("240")
)

// Renderer draws a Strip on one terminal line.
// The current page is bracketed in both modes so it stays visible without color.
type Renderer struct {
	styled   bool
	selected lipgloss.Style
	page     lipgloss.Style
	inert    lipgloss.Style
}

// NewRenderer returns a renderer; styled=false produces plain text.
func NewRenderer(styled bool) *Renderer {
	return &Renderer{
		styled:   styled,
		selected: lipgloss.NewStyle().Foreground(ColorSelected).Bold(true),
		page:     lipgloss.NewStyle().Foreground(ColorPage),
		inert:    lipgloss.NewStyle().Foreground(ColorInert).Faint(true),
	}
}

// NewTerminalRenderer styles output only when f is a terminal.
func NewTerminalRenderer(f *os.File) *Renderer {
	return NewRenderer(term.IsTerminal(int(f.Fd())))
}

// Render returns the strip as a single line, or "" for a hidden strip.
func (r *Renderer) Render(s Strip) string {
	if s.Hidden {
		return ""
	}
	controls := s.Controls()
	parts := make([]string, 0, len(controls))
	for _, c := range controls {
		parts = append(parts, r.control(c))
	}
	return strings.Join(parts, " ")
}

func (r *Renderer) control(c Control) string {
	label := c.Label
	if c.Selected {
		label = "[" + label + "]"
	}
	if !r.styled {
		return label
	}
	switch {
	case c.Selected:
		return r.selected.Render(label)
	case c.Kind == KindEllipsis, c.Disabled:
		return r.inert.Render(label)
	default:
		return r.page.Render(label)
	}
}
