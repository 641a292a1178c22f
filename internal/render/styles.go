// Package render prints reports, diagnostics and mapping results for the
// terminal.
package render

import "github.com/charmbracelet/lipgloss"

var (
	Accent  = lipgloss.Color("#8BC34A")
	Muted   = lipgloss.Color("#7a8596")
	Warning = lipgloss.Color("#FFC107")
	Danger  = lipgloss.Color("#e53935")
	Info    = lipgloss.Color("#2196F3")
)

// Styles holds the styles used for each kind of text.
type Styles struct {
	Title   lipgloss.Style
	Name    lipgloss.Style
	Value   lipgloss.Style
	Muted   lipgloss.Style
	Warning lipgloss.Style
	Error   lipgloss.Style
	Info    lipgloss.Style
}

// DefaultStyles is the colored theme.
func DefaultStyles() Styles {
	return Styles{
		Title: lipgloss.NewStyle().
			Foreground(Accent).
			Bold(true),

		Name: lipgloss.NewStyle().
			PaddingLeft(2),

		Value: lipgloss.NewStyle().
			Bold(true),

		Muted: lipgloss.NewStyle().
			Foreground(Muted).
			Italic(true),

		Warning: lipgloss.NewStyle().
			Foreground(Warning),

		Error: lipgloss.NewStyle().
			Foreground(Danger).
			Bold(true),

		Info: lipgloss.NewStyle().
			Foreground(Info),
	}
}

// PlainStyles renders text unchanged apart from indentation.
func PlainStyles() Styles {
	plain := lipgloss.NewStyle()

	return Styles{
		Title:   plain,
		Name:    plain.PaddingLeft(2),
		Value:   plain,
		Muted:   plain,
		Warning: plain,
		Error:   plain,
		Info:    plain,
	}
}
