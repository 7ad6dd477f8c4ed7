// Package display renders hands for a terminal.
package display

import (
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/lox/tablestakes/poker"
)

// Styles contains all styling for terminal output.
type Styles struct {
	Header    lipgloss.Style
	Street    lipgloss.Style
	HandInfo  lipgloss.Style
	Actions   lipgloss.Style
	RedCard   lipgloss.Style
	BlackCard lipgloss.Style
	Success   lipgloss.Style
	Error     lipgloss.Style
	Warning   lipgloss.Style
	Info      lipgloss.Style
	Panel     lipgloss.Style
}

// NewStyles builds styles for w. Colour is only used when w is a terminal.
func NewStyles(w io.Writer) *Styles {
	r := lipgloss.NewRenderer(w)
	return &Styles{
		Header: r.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1).
			Bold(true),
		Street: r.NewStyle().
			Foreground(lipgloss.Color("#7D56F4")).
			Bold(true),
		HandInfo: r.NewStyle().
			Foreground(lipgloss.Color("#96CEB4")).
			Bold(true),
		Actions: r.NewStyle().
			Foreground(lipgloss.Color("#FFD700")).
			Bold(true),
		RedCard: r.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B")).
			Bold(true),
		BlackCard: r.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Bold(true),
		Success: r.NewStyle().
			Foreground(lipgloss.Color("#96CEB4")).
			Bold(true),
		Error: r.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B")).
			Bold(true),
		Warning: r.NewStyle().
			Foreground(lipgloss.Color("#FFEAA7")).
			Bold(true),
		Info: r.NewStyle().
			Foreground(lipgloss.Color("#626262")),
		Panel: r.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#04B575")).
			Padding(0, 1),
	}
}

// Card renders one card with its suit glyph in red or black.
func (s *Styles) Card(c poker.Card) string {
	if c.IsRed() {
		return s.RedCard.Render(c.Glyph())
	}
	return s.BlackCard.Render(c.Glyph())
}

// Cards renders cards separated by spaces, or "--" for none.
func (s *Styles) Cards(cards []poker.Card) string {
	if len(cards) == 0 {
		return s.Info.Render("--")
	}
	parts := make([]string, len(cards))
	for i, c := range cards {
		parts[i] = s.Card(c)
	}
	return strings.Join(parts, " ")
}
