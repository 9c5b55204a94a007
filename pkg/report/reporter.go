// Package report renders readiness results, either as the indented
// colored console report or as a machine-readable document.
package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/arthur-debert/preflight/pkg/style"
)

// Reporter writes the console report. All user-facing output of a run
// goes through it, so tests can capture the full transcript from a
// bytes.Buffer.
type Reporter struct {
	out   io.Writer
	color bool
}

// NewReporter creates a Reporter. When color is false all styling is
// suppressed, for pipes and NO_COLOR environments.
func NewReporter(out io.Writer, color bool) *Reporter {
	return &Reporter{out: out, color: color}
}

func indent(level int) string {
	return strings.Repeat("  ", level)
}

func (r *Reporter) render(s lipgloss.Style, text string) string {
	if !r.color {
		return text
	}
	return s.Render(text)
}

// Title prints the report heading
func (r *Reporter) Title(text string) {
	fmt.Fprintf(r.out, "%s%s\n\n", indent(1), r.render(style.TitleStyle, text))
}

// Success prints a green line at the given indent level
func (r *Reporter) Success(level int, text string) {
	fmt.Fprintf(r.out, "%s%s\n", indent(level), r.render(style.SuccessStyle, text))
}

// Fail prints a red line at the given indent level
func (r *Reporter) Fail(level int, text string) {
	fmt.Fprintf(r.out, "%s%s\n", indent(level), r.render(style.ErrorStyle, text))
}

// Neutral prints a yellow informational line at the given indent level
func (r *Reporter) Neutral(level int, text string) {
	fmt.Fprintf(r.out, "%s%s\n", indent(level), r.render(style.WarningStyle, text))
}

// Warn prints an advisory line that does not affect the overall result
func (r *Reporter) Warn(level int, text string) {
	fmt.Fprintf(r.out, "%s%s\n", indent(level), r.render(style.WarningStyle, "warning: "+text))
}

// Blank prints an empty line
func (r *Reporter) Blank() {
	fmt.Fprintln(r.out)
}

// Check prints the pass/fail line for a named check
func (r *Reporter) Check(name string, passed bool) {
	status := style.StatusPassed
	if !passed {
		status = style.StatusFailed
	}

	badge := style.Badge(status)
	if r.color {
		badge = style.StatusStyle(status).Sprint(badge)
	}

	line := fmt.Sprintf("> %s: %s", name, badge)
	if passed {
		fmt.Fprintf(r.out, "%s%s\n", indent(1), r.render(style.SuccessStyle, line))
	} else {
		fmt.Fprintf(r.out, "%s%s\n", indent(1), r.render(style.ErrorStyle, line))
	}
}

// Banner prints the final success or failure message
func (r *Reporter) Banner(passed bool) {
	r.Blank()
	if passed {
		r.Success(1, "All checks passed. Open a new terminal window and enter your project directory to proceed with the installation.")
	} else {
		r.Fail(1, "Readiness test failed: correct the issue(s) above and re-run the test before proceeding with installation.")
	}
}
