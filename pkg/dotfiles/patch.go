package dotfiles

import (
	"fmt"
	"strings"
)

// Hook invocation lines per shell family.
const (
	BashHook = `eval "$(direnv hook bash)"`
	ZshHook  = `eval "$(direnv hook zsh)"`
)

// hookPrefix matches any direnv hook line regardless of shell, so stale
// hooks from earlier runs never accumulate.
const hookPrefix = `eval "$(direnv hook`

const daemonProfile = "/nix/var/nix/profiles/default/etc/profile.d/nix-daemon.sh"

// DaemonSnippet conditionally re-sources the nix-daemon profile. macOS
// system updates are known to wipe the shell bootstrap Nix installs into
// /etc, so the snippet goes into the user's own dotfiles as a failsafe.
var DaemonSnippet = []string{
	"# Nix",
	fmt.Sprintf("[ -e '%s' ] && . '%s'", daemonProfile, daemonProfile),
	"# End Nix",
}

// hookByDotfile maps each managed startup file to its shell's hook line.
var hookByDotfile = map[string]string{
	".bashrc":       BashHook,
	".bash_profile": BashHook,
	".zshrc":        ZshHook,
	".zprofile":     ZshHook,
}

// For returns the startup files to patch for an OS family. Darwin ships
// zsh as the login shell but bash files are still honored, so all four
// are managed there; elsewhere only .bashrc is.
func For(goos string) []string {
	if goos == "darwin" {
		return []string{".bash_profile", ".bashrc", ".zprofile", ".zshrc"}
	}
	return []string{".bashrc"}
}

// HookFor returns the hook invocation line for a startup file basename
func HookFor(dotfile string) (string, bool) {
	hook, ok := hookByDotfile[dotfile]
	return hook, ok
}

// IsHookLine reports whether a line is a direnv hook invocation
func IsHookLine(line string) bool {
	return strings.HasPrefix(line, hookPrefix)
}

// isDaemonSnippetLine matches lines already belonging to the failsafe
// snippet. Matching is exact after trimming surrounding whitespace;
// merely similar lines are left alone.
func isDaemonSnippetLine(line string) bool {
	trimmed := strings.TrimSpace(line)
	for _, snippetLine := range DaemonSnippet {
		if trimmed == snippetLine {
			return true
		}
	}
	return false
}

// Patch computes the new contents for one startup file: prior hook lines
// are stripped, the hook is appended after a blank separator, and on
// Darwin the daemon failsafe snippet is stripped and re-prepended so it
// appears exactly once at the top. The result is collapsed and has no
// blank edges, so patching an already patched file returns it unchanged.
func Patch(existing []string, hook string, darwin bool) []string {
	kept := make([]string, 0, len(existing))
	for _, line := range existing {
		if IsHookLine(line) {
			continue
		}
		if darwin && isDaemonSnippetLine(line) {
			continue
		}
		kept = append(kept, line)
	}
	kept = trimBlankEdges(kept)

	var out []string
	if darwin {
		out = append(out, DaemonSnippet...)
		out = append(out, "")
	}
	out = append(out, kept...)
	out = append(out, "", hook)

	return trimBlankEdges(CollapseBlankRuns(out))
}

// trimBlankEdges drops blank lines from both ends of a line sequence
func trimBlankEdges(lines []string) []string {
	start := 0
	for start < len(lines) && isBlank(lines[start]) {
		start++
	}
	end := len(lines)
	for end > start && isBlank(lines[end-1]) {
		end--
	}
	return lines[start:end]
}
