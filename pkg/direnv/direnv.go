// Package direnv detects the direnv tool and decides whether it needs
// to be installed or upgraded.
package direnv

import (
	"context"
	"strings"

	goversion "github.com/hashicorp/go-version"
	"github.com/rs/zerolog"

	"github.com/arthur-debert/preflight/pkg/errors"
	"github.com/arthur-debert/preflight/pkg/execx"
	"github.com/arthur-debert/preflight/pkg/logging"
)

// MinVersion is the oldest direnv release the bootstrap supports.
const MinVersion = "2.30"

// State describes the detection outcome for one run.
type State string

const (
	StateNotInstalled State = "not-installed"
	StateOutdated     State = "outdated"
	StateReady        State = "ready"
)

// Status is the detection result: the state plus the raw version string
// when direnv responded at all.
type Status struct {
	State   State
	Version string
}

// Installed reports whether a usable direnv binary was found
func (s Status) Installed() bool {
	return s.State == StateReady
}

// Client probes the direnv binary through an execx.Runner.
type Client struct {
	runner execx.Runner
	logger zerolog.Logger
}

// NewClient creates a new Client
func NewClient(runner execx.Runner) *Client {
	return &Client{
		runner: runner,
		logger: logging.GetLogger("direnv.client"),
	}
}

// Detect runs `direnv --version` and classifies the result.
// A failed invocation means direnv is absent; a version below MinVersion
// means it is outdated. An unparseable version string is an error because
// it leaves the state machine without a defensible answer.
func (c *Client) Detect(ctx context.Context) (Status, error) {
	res, err := c.runner.Run(ctx, "direnv", "--version")
	if err != nil {
		c.logger.Debug().Err(err).Msg("direnv not found")
		return Status{State: StateNotInstalled}, nil
	}

	raw := strings.TrimSpace(res.Stdout)
	current, err := goversion.NewVersion(raw)
	if err != nil {
		return Status{}, errors.Wrapf(err, errors.ErrVersionParse,
			"cannot parse direnv version %q", raw)
	}

	minimum := goversion.Must(goversion.NewVersion(MinVersion))
	if current.LessThan(minimum) {
		c.logger.Debug().Str("version", raw).Msg("direnv below required version")
		return Status{State: StateOutdated, Version: raw}, nil
	}

	return Status{State: StateReady, Version: raw}, nil
}
