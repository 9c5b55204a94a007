package direnv_test

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/preflight/pkg/direnv"
	"github.com/arthur-debert/preflight/pkg/errors"
	"github.com/arthur-debert/preflight/pkg/execx"
)

func detect(t *testing.T, response execx.ScriptedResponse) (direnv.Status, error) {
	t.Helper()
	runner := execx.NewScriptedRunner(map[string]execx.ScriptedResponse{
		"direnv --version": response,
	})
	return direnv.NewClient(runner).Detect(context.Background())
}

func TestDetect(t *testing.T) {
	tests := []struct {
		name      string
		response  execx.ScriptedResponse
		wantState direnv.State
	}{
		{
			name:      "not_installed",
			response:  execx.ScriptedResponse{Err: assert.AnError},
			wantState: direnv.StateNotInstalled,
		},
		{
			name:      "ready_at_minimum",
			response:  execx.ScriptedResponse{Stdout: "2.30.0\n"},
			wantState: direnv.StateReady,
		},
		{
			name:      "ready_above_minimum",
			response:  execx.ScriptedResponse{Stdout: "2.31.0\n"},
			wantState: direnv.StateReady,
		},
		{
			name:      "outdated",
			response:  execx.ScriptedResponse{Stdout: "2.28.0\n"},
			wantState: direnv.StateOutdated,
		},
		{
			name:      "two_segment_version",
			response:  execx.ScriptedResponse{Stdout: "2.32\n"},
			wantState: direnv.StateReady,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, err := detect(t, tt.response)
			require.NoError(t, err)
			assert.Equal(t, tt.wantState, status.State)
		})
	}
}

func TestDetect_UnparseableVersion(t *testing.T) {
	_, err := detect(t, execx.ScriptedResponse{Stdout: "not a version\n"})
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrVersionParse))
}

func TestTerminalDecider(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		assume bool
		want   bool
	}{
		{name: "empty_defaults_yes", input: "\n", want: true},
		{name: "explicit_yes", input: "y\n", want: true},
		{name: "uppercase_yes", input: "Y\n", want: true},
		{name: "no", input: "n\n", want: false},
		{name: "anything_else_is_no", input: "yes\n", want: false},
		{name: "closed_stdin_defaults_yes", input: "", want: true},
		{name: "assume_yes_skips_prompt", input: "n\n", assume: true, want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			decider := &direnv.TerminalDecider{
				In:        strings.NewReader(tt.input),
				Out:       &out,
				AssumeYes: tt.assume,
			}

			got := decider.ConfirmInstall("Install direnv with Nix? (Y/n): ")
			assert.Equal(t, tt.want, got)

			if tt.assume {
				assert.Empty(t, out.String(), "assume-yes must not prompt")
			} else {
				assert.Contains(t, out.String(), "Install direnv")
			}
		})
	}
}
