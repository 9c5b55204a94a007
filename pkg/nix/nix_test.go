package nix_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/preflight/pkg/errors"
	"github.com/arthur-debert/preflight/pkg/execx"
	"github.com/arthur-debert/preflight/pkg/nix"
)

func TestCheckAvailable(t *testing.T) {
	runner := execx.NewScriptedRunner(map[string]execx.ScriptedResponse{
		"nix --version": {Stdout: "nix (Nix) 2.18.1\n"},
	})

	version, err := nix.NewClient(runner).CheckAvailable(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "nix (Nix) 2.18.1", version)
}

func TestCheckAvailable_NixMissing(t *testing.T) {
	runner := execx.NewScriptedRunner(map[string]execx.ScriptedResponse{
		"nix --version": {Err: assert.AnError},
	})

	_, err := nix.NewClient(runner).CheckAvailable(context.Background())
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrNixUnavailable))
}

func TestShowConfig(t *testing.T) {
	runner := execx.NewScriptedRunner(map[string]execx.ScriptedResponse{
		"nix show-config --json": {Stdout: `{"keep-outputs":{"value":true}}`},
	})

	config, err := nix.NewClient(runner).ShowConfig(context.Background())
	require.NoError(t, err)

	keepOutputs, err := config.Bool("keep-outputs")
	require.NoError(t, err)
	assert.True(t, keepOutputs)
}

func TestInstallPackage_FailureCarriesStderr(t *testing.T) {
	runner := execx.NewScriptedRunner(map[string]execx.ScriptedResponse{
		"nix profile install nixpkgs#direnv": {Stderr: "error: hash mismatch\n", Err: assert.AnError},
	})

	err := nix.NewClient(runner).InstallPackage(context.Background(), nix.DirenvPackageRef)
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrInstallFailed))
	assert.Contains(t, err.Error(), "hash mismatch")
}
