package style

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
)

// Base styles
var (
	TitleStyle = lipgloss.NewStyle().
			Foreground(HeadingColor).
			Bold(true)

	NormalStyle = lipgloss.NewStyle().
			Foreground(TextColor)

	MutedStyle = lipgloss.NewStyle().
			Foreground(MutedColor)

	SuccessStyle = lipgloss.NewStyle().
			Foreground(SuccessColor).
			Bold(true)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(ErrorColor).
			Bold(true)

	WarningStyle = lipgloss.NewStyle().
			Foreground(WarningColor).
			Bold(true)

	InfoStyle = lipgloss.NewStyle().
			Foreground(InfoColor)

	PathStyle = lipgloss.NewStyle().
			Foreground(PathColor).
			Italic(true)
)

// ColorEnabled reports whether styled output should be produced on stdout.
// NO_COLOR, dumb terminals and non-TTY destinations all disable color.
func ColorEnabled() bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	if !isatty.IsTerminal(os.Stdout.Fd()) && !isatty.IsCygwinTerminal(os.Stdout.Fd()) {
		return false
	}
	return termenv.EnvColorProfile() != termenv.Ascii
}
