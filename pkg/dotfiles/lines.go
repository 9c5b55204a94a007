package dotfiles

import (
	"strings"
)

// CollapseBlankRuns normalizes a line sequence so repeated patch runs
// cannot grow a file: runs of one or two blank lines become a single
// blank line, longer runs are dropped entirely, and non-blank lines lose
// trailing whitespace. The function is idempotent.
func CollapseBlankRuns(lines []string) []string {
	out := make([]string, 0, len(lines))

	for i := 0; i < len(lines); {
		blank := isBlank(lines[i])

		j := i
		for j < len(lines) && isBlank(lines[j]) == blank {
			j++
		}

		if blank {
			if j-i <= 2 {
				out = append(out, "")
			}
		} else {
			for _, line := range lines[i:j] {
				out = append(out, strings.TrimRight(line, " \t"))
			}
		}
		i = j
	}

	return out
}

func isBlank(line string) bool {
	return strings.TrimSpace(line) == ""
}

// SplitLines splits file contents into lines without trailing newlines.
// A trailing newline does not produce a final empty line.
func SplitLines(content string) []string {
	if content == "" {
		return nil
	}
	lines := strings.Split(content, "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}

// Render joins lines back into file contents with a trailing newline
func Render(lines []string) string {
	if len(lines) == 0 {
		return ""
	}
	return strings.Join(lines, "\n") + "\n"
}
