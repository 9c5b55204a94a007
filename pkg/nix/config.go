package nix

import (
	"encoding/json"

	"github.com/arthur-debert/preflight/pkg/errors"
)

// ObservedConfig maps a setting name to its current value as reported by
// `nix show-config --json`. Values keep their raw JSON encoding; accessors
// decode on demand because settings are heterogeneous (bools, strings,
// string lists).
type ObservedConfig map[string]json.RawMessage

// settingEntry mirrors one entry of the show-config JSON document.
// Nix emits more fields (description, defaultValue, ...) which are ignored.
type settingEntry struct {
	Value json.RawMessage `json:"value"`
}

// ParseShowConfig parses the JSON document produced by `nix show-config --json`
func ParseShowConfig(data []byte) (ObservedConfig, error) {
	var raw map[string]settingEntry
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to parse nix configuration dump")
	}

	config := make(ObservedConfig, len(raw))
	for name, entry := range raw {
		config[name] = entry.Value
	}
	return config, nil
}

// Strings returns the value of a setting as a list of strings.
// A plain string value is returned as a single-element list, matching how
// Nix renders whitespace-separated settings in older releases.
func (c ObservedConfig) Strings(attribute string) ([]string, error) {
	raw, ok := c[attribute]
	if !ok {
		return nil, errors.Newf(errors.ErrConfigParse, "setting %q not present in nix configuration", attribute)
	}

	var list []string
	if err := json.Unmarshal(raw, &list); err == nil {
		return list, nil
	}

	var single string
	if err := json.Unmarshal(raw, &single); err == nil {
		return []string{single}, nil
	}

	return nil, errors.Newf(errors.ErrConfigParse, "setting %q is not a string list", attribute)
}

// Bool returns the value of a boolean setting
func (c ObservedConfig) Bool(attribute string) (bool, error) {
	raw, ok := c[attribute]
	if !ok {
		return false, errors.Newf(errors.ErrConfigParse, "setting %q not present in nix configuration", attribute)
	}

	var value bool
	if err := json.Unmarshal(raw, &value); err != nil {
		return false, errors.Newf(errors.ErrConfigParse, "setting %q is not a boolean", attribute)
	}
	return value, nil
}
