// Package nix wraps the Nix CLI invocations the readiness test depends on.
package nix

import (
	"context"
	"strings"

	"github.com/arthur-debert/preflight/pkg/errors"
	"github.com/arthur-debert/preflight/pkg/execx"
	"github.com/arthur-debert/preflight/pkg/logging"
	"github.com/rs/zerolog"
)

// DirenvPackageRef is the flake reference used to install direnv.
const DirenvPackageRef = "nixpkgs#direnv"

// Client invokes the nix binary through an execx.Runner.
type Client struct {
	runner execx.Runner
	logger zerolog.Logger
}

// NewClient creates a new Client
func NewClient(runner execx.Runner) *Client {
	return &Client{
		runner: runner,
		logger: logging.GetLogger("nix.client"),
	}
}

// CheckAvailable verifies that the nix binary is callable at all.
// Any failure (binary absent, spawn error, non-zero exit) is fatal to the
// readiness test, so callers abort on error.
func (c *Client) CheckAvailable(ctx context.Context) (string, error) {
	res, err := c.runner.Run(ctx, "nix", "--version")
	if err != nil {
		return "", errors.Wrap(err, errors.ErrNixUnavailable, "Nix is not installed on this system")
	}

	version := strings.TrimSpace(res.Stdout)
	c.logger.Debug().Str("version", version).Msg("Nix is available")
	return version, nil
}

// ShowConfig fetches the effective Nix configuration as a structured mapping
func (c *Client) ShowConfig(ctx context.Context) (ObservedConfig, error) {
	res, err := c.runner.Run(ctx, "nix", "show-config", "--json")
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigDump, "failed to dump nix configuration")
	}
	return ParseShowConfig([]byte(res.Stdout))
}

// InstallPackage installs a package into the default profile.
// The captured stderr is surfaced in the error so the report can show
// why an installation failed.
func (c *Client) InstallPackage(ctx context.Context, ref string) error {
	res, err := c.runner.Run(ctx, "nix", "profile", "install", ref)
	if err != nil {
		return errors.Wrapf(err, errors.ErrInstallFailed, "installation of %s failed: %s",
			ref, strings.TrimSpace(res.Stderr))
	}

	c.logger.Info().Str("package", ref).Msg("Package installed")
	return nil
}
