package report

import (
	"encoding/json"

	"gopkg.in/yaml.v3"

	"github.com/arthur-debert/preflight/pkg/verify"
)

// Format selects how the final report is emitted.
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// ParseFormat validates a --format flag value
func ParseFormat(s string) (Format, bool) {
	switch Format(s) {
	case FormatText, FormatJSON, FormatYAML:
		return Format(s), true
	}
	return "", false
}

// DotfileResult records the outcome of patching one startup file.
type DotfileResult struct {
	Path       string `json:"path" yaml:"path"`
	Configured bool   `json:"configured" yaml:"configured"`
	Error      string `json:"error,omitempty" yaml:"error,omitempty"`
}

// DirenvReport summarizes the direnv manager phase.
type DirenvReport struct {
	State     string          `json:"state" yaml:"state"`
	Version   string          `json:"version,omitempty" yaml:"version,omitempty"`
	Installed bool            `json:"installed" yaml:"installed"`
	Ready     bool            `json:"ready" yaml:"ready"`
	Dotfiles  []DotfileResult `json:"dotfiles,omitempty" yaml:"dotfiles,omitempty"`
}

// Report is the machine-readable result of a full readiness run.
type Report struct {
	NixVersion string               `json:"nixVersion" yaml:"nixVersion"`
	Direnv     DirenvReport         `json:"direnv" yaml:"direnv"`
	Checks     []verify.CheckResult `json:"checks" yaml:"checks"`
	Passed     bool                 `json:"passed" yaml:"passed"`
}

// JSON renders the report as indented JSON
func (r *Report) JSON() ([]byte, error) {
	return json.MarshalIndent(r, "", "  ")
}

// YAML renders the report as YAML
func (r *Report) YAML() ([]byte, error) {
	return yaml.Marshal(r)
}
