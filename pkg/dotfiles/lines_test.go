package dotfiles

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCollapseBlankRuns(t *testing.T) {
	tests := []struct {
		name     string
		input    []string
		expected []string
	}{
		{
			name:     "empty",
			input:    nil,
			expected: []string{},
		},
		{
			name:     "no_blanks",
			input:    []string{"a", "b"},
			expected: []string{"a", "b"},
		},
		{
			name:     "single_blank_kept",
			input:    []string{"a", "", "b"},
			expected: []string{"a", "", "b"},
		},
		{
			name:     "double_blank_collapsed",
			input:    []string{"a", "", "", "b"},
			expected: []string{"a", "", "b"},
		},
		{
			name:     "triple_blank_removed",
			input:    []string{"a", "", "", "", "b"},
			expected: []string{"a", "b"},
		},
		{
			name:     "whitespace_only_lines_are_blank",
			input:    []string{"a", "  ", "\t", "b"},
			expected: []string{"a", "", "b"},
		},
		{
			name:     "trailing_whitespace_trimmed",
			input:    []string{"a  ", "\tb\t"},
			expected: []string{"a", "\tb"},
		},
		{
			name:     "indentation_preserved",
			input:    []string{"if x; then", "  echo y", "fi"},
			expected: []string{"if x; then", "  echo y", "fi"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := CollapseBlankRuns(tt.input)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestCollapseBlankRuns_NoLongBlankRuns(t *testing.T) {
	inputs := [][]string{
		{"", "", "", "", ""},
		{"a", "", "", "b", "", "", "", "c"},
		{"", "a", "", "", "", "", "b", ""},
		{"x", " ", "", "\t", "y"},
	}

	for _, input := range inputs {
		result := CollapseBlankRuns(input)
		run := 0
		for _, line := range result {
			if isBlank(line) {
				run++
			} else {
				run = 0
			}
			assert.LessOrEqual(t, run, 1, "input %q produced run of blanks", input)
		}
	}
}

func TestCollapseBlankRuns_Idempotent(t *testing.T) {
	inputs := [][]string{
		{"a", "", "", "", "b"},
		{"a", "", "", "b"},
		{"", "", ""},
		{"a  ", "", "b"},
		{"# Nix", "", "", "eval \"$(direnv hook bash)\""},
	}

	for _, input := range inputs {
		once := CollapseBlankRuns(input)
		twice := CollapseBlankRuns(once)
		assert.Equal(t, once, twice, "input %q", input)
	}
}

func TestSplitLinesAndRender(t *testing.T) {
	tests := []struct {
		name    string
		content string
		lines   []string
	}{
		{name: "empty", content: "", lines: nil},
		{name: "trailing_newline", content: "a\nb\n", lines: []string{"a", "b"}},
		{name: "no_trailing_newline", content: "a\nb", lines: []string{"a", "b"}},
		{name: "blank_line", content: "a\n\nb\n", lines: []string{"a", "", "b"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.lines, SplitLines(tt.content))
		})
	}

	// Render always terminates non-empty content with a newline.
	assert.Equal(t, "", Render(nil))
	assert.Equal(t, "a\nb\n", Render([]string{"a", "b"}))
}
