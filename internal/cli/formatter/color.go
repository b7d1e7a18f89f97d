// Package formatter renders plans and coach output for the terminal.
package formatter

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/nlebedev/corner/internal/domain"
)

// Gruvbox-inspired color palette.
var (
	ColorGreen  = lipgloss.Color("#8ec07c")
	ColorYellow = lipgloss.Color("#fabd2f")
	ColorRed    = lipgloss.Color("#fb4934")
	ColorBlue   = lipgloss.Color("#83a598")
	ColorDim    = lipgloss.Color("#928374")
	ColorFg     = lipgloss.Color("#ebdbb2")
	ColorHeader = lipgloss.Color("#fe8019")
)

// Predefined lipgloss styles.
var (
	StyleGreen  = lipgloss.NewStyle().Foreground(ColorGreen)
	StyleYellow = lipgloss.NewStyle().Foreground(ColorYellow)
	StyleRed    = lipgloss.NewStyle().Foreground(ColorRed)
	StyleBlue   = lipgloss.NewStyle().Foreground(ColorBlue)
	StyleDim    = lipgloss.NewStyle().Foreground(ColorDim)
	StyleFg     = lipgloss.NewStyle().Foreground(ColorFg)
	StyleHeader = lipgloss.NewStyle().Foreground(ColorHeader).Bold(true)
)

// IntensityStyle maps session intensity to a color: green for easy,
// yellow for moderate, red for hard.
func IntensityStyle(intensity string) lipgloss.Style {
	switch intensity {
	case domain.IntensityEasy:
		return StyleGreen
	case domain.IntensityHard:
		return StyleRed
	case domain.IntensityModerate:
		return StyleYellow
	default:
		return StyleFg
	}
}
