// Package styles provides colour themes and styling for the TUI.
package styles

import (
	"github.com/charmbracelet/lipgloss"
)

// Theme defines the colour palette for the TUI.
type Theme struct {
	// Primary is the main accent colour.
	Primary lipgloss.Color

	// Foreground is the default text colour.
	Foreground lipgloss.Color

	// Muted is for less important text.
	Muted lipgloss.Color

	// Success indicates positive outcomes.
	Success lipgloss.Color

	// Warning indicates caution.
	Warning lipgloss.Color

	// Error indicates problems.
	Error lipgloss.Color

	// Border is the border colour.
	Border lipgloss.Color
}

// DefaultTheme returns the default colour theme.
func DefaultTheme() *Theme {
	return &Theme{
		Primary:    lipgloss.Color("#58A6FF"), // GitHub blue
		Foreground: lipgloss.Color("#C9D1D9"), // Light gray
		Muted:      lipgloss.Color("#8B949E"), // Medium gray
		Success:    lipgloss.Color("#3FB950"), // Green
		Warning:    lipgloss.Color("#D29922"), // Yellow
		Error:      lipgloss.Color("#F85149"), // Red
		Border:     lipgloss.Color("#30363D"), // Border gray
	}
}

// Styles contains pre-configured lipgloss styles.
type Styles struct {
	theme *Theme

	// Title style for headers.
	Title lipgloss.Style

	// Normal style for regular text.
	Normal lipgloss.Style

	// Muted style for less important text.
	Muted lipgloss.Style

	// Selected style for highlighted items.
	Selected lipgloss.Style

	// Error style for error messages.
	Error lipgloss.Style

	// Banner style for the transient error banner over loaded lists.
	Banner lipgloss.Style

	// StatusBar style for the status bar.
	StatusBar lipgloss.Style

	// Help style for help text.
	Help lipgloss.Style
}

// NewStyles creates styles from a theme.
func NewStyles(theme *Theme) *Styles {
	if theme == nil {
		theme = DefaultTheme()
	}

	return &Styles{
		theme: theme,
		Title: lipgloss.NewStyle().
			Foreground(theme.Primary).
			Bold(true),
		Normal: lipgloss.NewStyle().
			Foreground(theme.Foreground),
		Muted: lipgloss.NewStyle().
			Foreground(theme.Muted),
		Selected: lipgloss.NewStyle().
			Foreground(theme.Primary).
			Bold(true),
		Error: lipgloss.NewStyle().
			Foreground(theme.Error),
		Banner: lipgloss.NewStyle().
			Foreground(theme.Error).
			Border(lipgloss.NormalBorder()).
			BorderForeground(theme.Error).
			Padding(0, 1),
		StatusBar: lipgloss.NewStyle().
			Foreground(theme.Muted).
			BorderTop(true).
			BorderStyle(lipgloss.NormalBorder()).
			BorderForeground(theme.Border),
		Help: lipgloss.NewStyle().
			Foreground(theme.Muted),
	}
}

// Theme returns the theme backing these styles.
func (s *Styles) Theme() *Theme {
	return s.theme
}
