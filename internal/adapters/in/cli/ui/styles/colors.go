// Package styles provides the lipgloss palette and styles used by rocker's output.
package styles

import "github.com/charmbracelet/lipgloss"

// Palette. Adaptive colors pick the light or dark variant from the terminal background.
var (
	Blue   = lipgloss.AdaptiveColor{Light: "#0b63c4", Dark: "#3fa9f5"}
	Cyan   = lipgloss.AdaptiveColor{Light: "#00758f", Dark: "#00ccff"}
	Green  = lipgloss.AdaptiveColor{Light: "#00875a", Dark: "#00ff88"}
	Red    = lipgloss.AdaptiveColor{Light: "#c62828", Dark: "#ff4444"}
	Yellow = lipgloss.AdaptiveColor{Light: "#b26a00", Dark: "#fbbf24"}

	Neutral200 = lipgloss.AdaptiveColor{Light: "#262626", Dark: "#e5e5e5"}
	Neutral500 = lipgloss.AdaptiveColor{Light: "#737373", Dark: "#737373"}
	Neutral700 = lipgloss.AdaptiveColor{Light: "#d4d4d4", Dark: "#404040"}

	// Semantic colors
	ColorPrimary = Blue
	ColorSuccess = Green
	ColorWarning = Yellow
	ColorError   = Red
	ColorInfo    = Cyan

	ColorText      = Neutral200
	ColorTextMuted = Neutral500
	ColorBorder    = Neutral700
)
