package direnv

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Decider answers the single install question of a run. It exists so the
// readiness orchestration can be tested without a terminal.
type Decider interface {
	// ConfirmInstall asks whether direnv should be installed via Nix.
	ConfirmInstall(prompt string) bool
}

// TerminalDecider prompts on Out and reads one line from In.
// An empty answer means yes; anything else must be a literal "y"
// (case-insensitive) to count as consent.
type TerminalDecider struct {
	In        io.Reader
	Out       io.Writer
	AssumeYes bool
}

// ConfirmInstall implements Decider
func (d *TerminalDecider) ConfirmInstall(prompt string) bool {
	if d.AssumeYes {
		return true
	}

	fmt.Fprint(d.Out, prompt)

	reader := bufio.NewReader(d.In)
	line, err := reader.ReadString('\n')
	if err != nil && line == "" {
		// Closed stdin behaves like pressing enter: default yes.
		return true
	}

	answer := strings.TrimSpace(line)
	if answer == "" {
		return true
	}
	return strings.ToLower(answer) == "y"
}

// StaticDecider always returns a fixed answer; used in tests and by --yes.
type StaticDecider struct {
	Answer bool
}

// ConfirmInstall implements Decider
func (d *StaticDecider) ConfirmInstall(string) bool {
	return d.Answer
}
