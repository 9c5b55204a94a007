package style

import (
	"github.com/pterm/pterm"
)

// Status classifies a single readiness check outcome.
type Status string

const (
	StatusPassed  Status = "passed"
	StatusFailed  Status = "failed"
	StatusWarning Status = "warning"
	StatusSkipped Status = "skipped"
)

// StatusStyle returns the appropriate pterm style for a status badge
func StatusStyle(status Status) *pterm.Style {
	switch status {
	case StatusPassed:
		return pterm.NewStyle(pterm.FgGreen, pterm.Bold)
	case StatusFailed:
		return pterm.NewStyle(pterm.FgRed, pterm.Bold)
	case StatusWarning:
		return pterm.NewStyle(pterm.FgYellow)
	default:
		return pterm.NewStyle(pterm.FgGray)
	}
}

// Badge renders the uppercase badge text for a status
func Badge(status Status) string {
	switch status {
	case StatusPassed:
		return "PASSED"
	case StatusFailed:
		return "FAILED"
	case StatusWarning:
		return "WARNING"
	default:
		return "SKIPPED"
	}
}
