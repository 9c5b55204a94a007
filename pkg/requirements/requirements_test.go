package requirements_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/adrg/xdg"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/preflight/pkg/errors"
	"github.com/arthur-debert/preflight/pkg/requirements"
)

func TestDefaults(t *testing.T) {
	required := requirements.Defaults()

	assert.Equal(t, []string{"keep-derivations", "keep-outputs"}, required.Flags)
	assert.Equal(t, []string{"nix-command", "flakes"}, required.ExperimentalFeatures)
	assert.Len(t, required.Substituters, 2)
	assert.Len(t, required.TrustedPublicKeys, 2)
	assert.Contains(t, required.Substituters, "https://cache.nixos.org/")
}

func TestLoad_OverridesSetFields(t *testing.T) {
	path := filepath.Join(t.TempDir(), "requirements.toml")
	content := `
substituters = ["https://cache.example.org/"]
trusted-public-keys = ["example:abc123="]
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	required, err := requirements.Load(path)
	require.NoError(t, err)

	// Overridden wholesale.
	assert.Equal(t, []string{"https://cache.example.org/"}, required.Substituters)
	assert.Equal(t, []string{"example:abc123="}, required.TrustedPublicKeys)

	// Absent fields keep their defaults.
	assert.Equal(t, requirements.Defaults().Flags, required.Flags)
	assert.Equal(t, requirements.Defaults().ExperimentalFeatures, required.ExperimentalFeatures)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := requirements.Load(filepath.Join(t.TempDir(), "absent.toml"))
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrRequirementsLoad))
}

func TestLoad_InvalidTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "requirements.toml")
	require.NoError(t, os.WriteFile(path, []byte("substituters = ["), 0644))

	_, err := requirements.Load(path)
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrRequirementsParse))
}

func TestResolve(t *testing.T) {
	// Explicit path must load.
	_, err := requirements.Resolve(filepath.Join(t.TempDir(), "absent.toml"))
	assert.Error(t, err)

	// No explicit path and no default file falls back to defaults.
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	xdg.Reload()
	required, err := requirements.Resolve("")
	require.NoError(t, err)
	assert.Equal(t, requirements.Defaults().Flags, required.Flags)
}
