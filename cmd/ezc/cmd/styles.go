package cmd

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/you-not-fish/ez/internal/syntax"
)

// Colors
var (
	colorKeyword = lipgloss.Color("#7C3AED")
	colorLiteral = lipgloss.Color("#10B981")
	colorSymbol  = lipgloss.Color("#F59E0B")
	colorError   = lipgloss.Color("#EF4444")
	colorMuted   = lipgloss.Color("#6B7280")
)

// styles holds the terminal styles used by the commands.
type styles struct {
	header  lipgloss.Style
	muted   lipgloss.Style
	keyword lipgloss.Style
	literal lipgloss.Style
	symbol  lipgloss.Style
	plain   lipgloss.Style
	failure lipgloss.Style
}

// newStyles returns the command styles, or unstyled ones if noColor is set.
func newStyles(noColor bool) *styles {
	if noColor {
		plain := lipgloss.NewStyle()
		return &styles{
			header:  plain,
			muted:   plain,
			keyword: plain,
			literal: plain,
			symbol:  plain,
			plain:   plain,
			failure: plain,
		}
	}

	return &styles{
		header: lipgloss.NewStyle().
			Bold(true).
			Underline(true),
		muted: lipgloss.NewStyle().
			Foreground(colorMuted),
		keyword: lipgloss.NewStyle().
			Foreground(colorKeyword).
			Bold(true),
		literal: lipgloss.NewStyle().
			Foreground(colorLiteral),
		symbol: lipgloss.NewStyle().
			Foreground(colorSymbol),
		plain: lipgloss.NewStyle(),
		failure: lipgloss.NewStyle().
			Foreground(colorError).
			Bold(true),
	}
}

// kind returns the style for tokens of kind k.
func (s *styles) kind(k syntax.Kind) lipgloss.Style {
	switch {
	case k == syntax.Unknown:
		return s.failure
	case k.IsKeyword():
		return s.keyword
	case k.IsLiteral():
		return s.literal
	case k.IsSymbol():
		return s.symbol
	default:
		return s.plain
	}
}

// pad renders text with style and pads it with spaces to width visible
// columns.
func pad(style lipgloss.Style, text string, width int) string {
	rendered := style.Render(text)
	if n := width - lipgloss.Width(rendered); n > 0 {
		rendered += strings.Repeat(" ", n)
	}
	return rendered
}
