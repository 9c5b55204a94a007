package style

import (
	"github.com/charmbracelet/lipgloss"
)

// Semantic colors, adaptive to light and dark terminal backgrounds.
var (
	HeadingColor = lipgloss.AdaptiveColor{Light: "#1a1a1a", Dark: "#fafafa"}
	TextColor    = lipgloss.AdaptiveColor{Light: "#2d2d2d", Dark: "#d0d0d0"}
	MutedColor   = lipgloss.AdaptiveColor{Light: "#8a8a8a", Dark: "#6c6c6c"}
	SuccessColor = lipgloss.AdaptiveColor{Light: "#087f23", Dark: "#5af78e"}
	ErrorColor   = lipgloss.AdaptiveColor{Light: "#b71c1c", Dark: "#ff5c57"}
	WarningColor = lipgloss.AdaptiveColor{Light: "#a15c07", Dark: "#f3f99d"}
	InfoColor    = lipgloss.AdaptiveColor{Light: "#0b60b0", Dark: "#57c7ff"}
	PathColor    = lipgloss.AdaptiveColor{Light: "#5f00af", Dark: "#c792ea"}
)
