// Package requirements defines the Nix configuration the bootstrap
// expects, with compiled-in defaults and an optional TOML override.
package requirements

import (
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	toml "github.com/pelletier/go-toml/v2"

	"github.com/arthur-debert/preflight/pkg/errors"
	"github.com/arthur-debert/preflight/pkg/logging"
)

// Required is the immutable record of expected Nix settings. Flags must
// all be true; the remaining fields are sets the observed configuration
// must be a superset of.
type Required struct {
	Flags                []string `toml:"flags"`
	ExperimentalFeatures []string `toml:"experimental-features"`
	Substituters         []string `toml:"substituters"`
	TrustedPublicKeys    []string `toml:"trusted-public-keys"`
}

// Defaults returns the requirements of the standard bootstrap
func Defaults() Required {
	return Required{
		Flags: []string{"keep-derivations", "keep-outputs"},
		ExperimentalFeatures: []string{
			"nix-command",
			"flakes",
		},
		Substituters: []string{
			"https://cache.nixos.org/",
			"https://cache.zw3rk.com",
		},
		TrustedPublicKeys: []string{
			"cache.nixos.org-1:6NCHdD59X431o0gWypbMrAURkbJ16ZPMQFGspcDShjY=",
			"loony-tools:pr9m4BkM/5/eSTZlkQyRt57Jz7OMBxNSUiMC4FkcNfk=",
		},
	}
}

// DefaultPath is where an override file is looked up when no explicit
// path is given.
func DefaultPath() string {
	return filepath.Join(xdg.ConfigHome, "preflight", "requirements.toml")
}

// Load reads a TOML override file. Fields present in the file replace
// the corresponding default wholesale; absent fields keep their default.
func Load(path string) (Required, error) {
	logger := logging.GetLogger("requirements").With().Str("path", path).Logger()

	data, err := os.ReadFile(path)
	if err != nil {
		return Required{}, errors.Wrapf(err, errors.ErrRequirementsLoad,
			"failed to read requirements file %s", path)
	}

	required := Defaults()
	if err := toml.Unmarshal(data, &required); err != nil {
		return Required{}, errors.Wrapf(err, errors.ErrRequirementsParse,
			"failed to parse requirements file %s", path)
	}

	logger.Debug().
		Int("flags", len(required.Flags)).
		Int("features", len(required.ExperimentalFeatures)).
		Int("substituters", len(required.Substituters)).
		Int("keys", len(required.TrustedPublicKeys)).
		Msg("Requirements loaded")

	return required, nil
}

// Resolve returns the requirements to check against. An explicit path
// must load; otherwise the default override location is used when it
// exists, and the compiled-in defaults when it does not.
func Resolve(explicit string) (Required, error) {
	if explicit != "" {
		return Load(explicit)
	}

	defaultPath := DefaultPath()
	if _, err := os.Stat(defaultPath); err == nil {
		return Load(defaultPath)
	}

	return Defaults(), nil
}
