package output

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/leapstack-labs/vfront/pkg/token"
)

// Styles holds the lipgloss styles used in text mode.
type Styles struct {
	Header1    lipgloss.Style
	Header2    lipgloss.Style
	Bold       lipgloss.Style
	Muted      lipgloss.Style
	Success    lipgloss.Style
	Error      lipgloss.Style
	Keyword    lipgloss.Style
	Identifier lipgloss.Style
	Number     lipgloss.Style
	Symbol     lipgloss.Style
}

// NewStyles returns colored styles, or plain ones when color is false.
func NewStyles(color bool) *Styles {
	if !color {
		plain := lipgloss.NewStyle()
		return &Styles{
			Header1: plain, Header2: plain, Bold: plain, Muted: plain,
			Success: plain, Error: plain,
			Keyword: plain, Identifier: plain, Number: plain, Symbol: plain,
		}
	}
	return &Styles{
		Header1:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12")).Underline(true),
		Header2:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("14")),
		Bold:       lipgloss.NewStyle().Bold(true),
		Muted:      lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
		Success:    lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
		Error:      lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
		Keyword:    lipgloss.NewStyle().Foreground(lipgloss.Color("13")).Bold(true),
		Identifier: lipgloss.NewStyle().Foreground(lipgloss.Color("15")),
		Number:     lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
		Symbol:     lipgloss.NewStyle().Foreground(lipgloss.Color("6")),
	}
}

// ForKind returns the style used for tokens of kind k.
func (s *Styles) ForKind(k token.Kind) lipgloss.Style {
	switch k {
	case token.Keyword:
		return s.Keyword
	case token.Identifier:
		return s.Identifier
	case token.Number:
		return s.Number
	case token.Symbol:
		return s.Symbol
	default:
		return s.Muted
	}
}
