// Package execx runs external commands and captures their output.
//
// The readiness checks only ever care about stdout, stderr and the exit
// status of the tools they probe, so the Runner interface is the entire
// contract with the outside world. Tests substitute a ScriptedRunner to
// exercise every flow without spawning processes.
package execx

import (
	"bytes"
	"context"
	"os/exec"

	"github.com/arthur-debert/preflight/pkg/errors"
	"github.com/arthur-debert/preflight/pkg/logging"
	"github.com/rs/zerolog"
)

// Result holds the outcome of a single command invocation.
type Result struct {
	Stdout string
	Stderr string
}

// Runner executes external commands.
type Runner interface {
	// Run executes name with args and returns captured output.
	// A non-zero exit status or a spawn failure is returned as an error;
	// captured output is returned alongside it.
	Run(ctx context.Context, name string, args ...string) (Result, error)
}

// ExecRunner is the production Runner backed by os/exec.
// Commands inherit the current environment and block until completion.
type ExecRunner struct {
	logger zerolog.Logger
}

// NewExecRunner creates a new ExecRunner
func NewExecRunner() *ExecRunner {
	return &ExecRunner{
		logger: logging.GetLogger("execx.runner"),
	}
}

// Run implements Runner
func (r *ExecRunner) Run(ctx context.Context, name string, args ...string) (Result, error) {
	logging.LogCommand(name, args)

	cmd := exec.CommandContext(ctx, name, args...)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	res := Result{Stdout: stdout.String(), Stderr: stderr.String()}

	if err != nil {
		r.logger.Debug().
			Err(err).
			Str("command", name).
			Strs("args", args).
			Str("stderr", res.Stderr).
			Msg("Command failed")
		return res, errors.Wrapf(err, errors.ErrInternal, "command failed: %s", name)
	}

	r.logger.Debug().
		Str("command", name).
		Msg("Command executed successfully")

	return res, nil
}
