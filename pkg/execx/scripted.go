package execx

import (
	"context"
	"strings"

	"github.com/arthur-debert/preflight/pkg/errors"
)

// ScriptedResponse describes what a ScriptedRunner returns for one command.
type ScriptedResponse struct {
	Stdout string
	Stderr string
	Err    error
}

// ScriptedRunner is a Runner for tests: responses are keyed by the full
// command line ("name arg1 arg2"). Unscripted commands fail, so a test
// also asserts that no unexpected command was spawned.
type ScriptedRunner struct {
	Responses map[string]ScriptedResponse
	Calls     []string
}

// NewScriptedRunner creates a ScriptedRunner with the given responses
func NewScriptedRunner(responses map[string]ScriptedResponse) *ScriptedRunner {
	return &ScriptedRunner{Responses: responses}
}

// Run implements Runner
func (r *ScriptedRunner) Run(ctx context.Context, name string, args ...string) (Result, error) {
	key := strings.Join(append([]string{name}, args...), " ")
	r.Calls = append(r.Calls, key)

	resp, ok := r.Responses[key]
	if !ok {
		return Result{}, errors.Newf(errors.ErrInternal, "unscripted command: %s", key)
	}
	return Result{Stdout: resp.Stdout, Stderr: resp.Stderr}, resp.Err
}

// Called reports whether the given command line was executed
func (r *ScriptedRunner) Called(key string) bool {
	for _, call := range r.Calls {
		if call == key {
			return true
		}
	}
	return false
}
