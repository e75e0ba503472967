// Package render draws goal cards and summaries for the terminal. It
// is display glue only: all numbers come from the core's derived-value
// functions, and the currency is a label with no conversion attached.
package render

import (
	"github.com/charmbracelet/lipgloss"

	"risparmi/internal/core"
)

// Theme holds the color scheme for one display mode.
type Theme struct {
	Foreground lipgloss.Color
	Muted      lipgloss.Color
	Accent     lipgloss.Color
	Border     lipgloss.Color
	Success    lipgloss.Color
	BarFill    lipgloss.Color
	BarEmpty   lipgloss.Color
}

var (
	darkTheme = Theme{
		Foreground: lipgloss.Color("#f2f2f2"),
		Muted:      lipgloss.Color("#7d8590"),
		Accent:     lipgloss.Color("#8BC34A"),
		Border:     lipgloss.Color("#2a3850"),
		Success:    lipgloss.Color("#8BC34A"),
		BarFill:    lipgloss.Color("#8BC34A"),
		BarEmpty:   lipgloss.Color("#2a3850"),
	}

	lightTheme = Theme{
		Foreground: lipgloss.Color("#101F38"),
		Muted:      lipgloss.Color("#6a737d"),
		Accent:     lipgloss.Color("#101F38"),
		Border:     lipgloss.Color("#dce0e5"),
		Success:    lipgloss.Color("#4caf50"),
		BarFill:    lipgloss.Color("#4caf50"),
		BarEmpty:   lipgloss.Color("#d6dae0"),
	}
)

// ThemeFor maps the theme preference to its palette.
func ThemeFor(t core.Theme) Theme {
	if t == core.ThemeLight {
		return lightTheme
	}
	return darkTheme
}

// Symbol returns the display symbol for a currency label.
func Symbol(c core.Currency) string {
	if c == core.CurrencyUSD {
		return "$"
	}
	return "₹"
}
