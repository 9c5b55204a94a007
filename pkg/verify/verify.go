// Package verify diagnoses the observed Nix configuration against the
// required one. It only inspects, it never mutates configuration.
package verify

import (
	"fmt"
	"sort"

	"github.com/arthur-debert/preflight/pkg/nix"
	"github.com/arthur-debert/preflight/pkg/requirements"
)

// CheckResult is the outcome of one configuration attribute check.
type CheckResult struct {
	Attribute string   `json:"attribute" yaml:"attribute"`
	Passed    bool     `json:"passed" yaml:"passed"`
	Missing   []string `json:"missing,omitempty" yaml:"missing,omitempty"`
	Detail    string   `json:"detail,omitempty" yaml:"detail,omitempty"`
}

// SetAttr checks that the observed value of attribute is a superset of
// the required set, reporting the missing elements in sorted order.
func SetAttr(config nix.ObservedConfig, attribute string, required []string) CheckResult {
	observed, err := config.Strings(attribute)
	if err != nil {
		return CheckResult{Attribute: attribute, Detail: err.Error()}
	}

	have := make(map[string]bool, len(observed))
	for _, v := range observed {
		have[v] = true
	}

	var missing []string
	for _, want := range required {
		if !have[want] {
			missing = append(missing, want)
		}
	}
	sort.Strings(missing)

	result := CheckResult{Attribute: attribute, Passed: len(missing) == 0, Missing: missing}
	if !result.Passed {
		result.Detail = fmt.Sprintf("The following %s are missing in nix.conf:", attribute)
	}
	return result
}

// Flag checks that a boolean setting is enabled
func Flag(config nix.ObservedConfig, attribute string) CheckResult {
	value, err := config.Bool(attribute)
	if err != nil {
		return CheckResult{Attribute: attribute, Detail: err.Error()}
	}

	result := CheckResult{Attribute: attribute, Passed: value}
	if !value {
		result.Detail = fmt.Sprintf("'%s = true' missing in nix.conf.", attribute)
	}
	return result
}

// TrustedUsers checks that both root and the invoking user are trusted
func TrustedUsers(config nix.ObservedConfig, user string) CheckResult {
	const attribute = "trusted-users"

	observed, err := config.Strings(attribute)
	if err != nil {
		return CheckResult{Attribute: attribute, Detail: err.Error()}
	}

	have := make(map[string]bool, len(observed))
	for _, v := range observed {
		have[v] = true
	}

	result := CheckResult{Attribute: attribute, Passed: have["root"] && have[user]}
	if !result.Passed {
		result.Detail = fmt.Sprintf("'trusted-users = root %s' is missing in nix.conf.", user)
	}
	return result
}

// All runs every configuration check in a stable order
func All(config nix.ObservedConfig, required requirements.Required, user string) []CheckResult {
	results := []CheckResult{
		SetAttr(config, "experimental-features", required.ExperimentalFeatures),
		SetAttr(config, "substituters", required.Substituters),
		SetAttr(config, "trusted-public-keys", required.TrustedPublicKeys),
		TrustedUsers(config, user),
	}
	for _, flag := range required.Flags {
		results = append(results, Flag(config, flag))
	}
	return results
}

// Passed reports whether every check passed
func Passed(results []CheckResult) bool {
	for _, r := range results {
		if !r.Passed {
			return false
		}
	}
	return true
}
