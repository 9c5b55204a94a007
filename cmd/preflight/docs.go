package main

import (
	"embed"
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"

	"github.com/arthur-debert/preflight/pkg/errors"
)

//go:embed topics/*.md
var topicsFS embed.FS

func newDocsCmd() *cobra.Command {
	return &cobra.Command{
		Use:       "docs [topic]",
		Short:     MsgDocsShort,
		Long:      MsgDocsLong,
		ValidArgs: topicNames(),
		Args:      cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "Available topics:")
				for _, name := range topicNames() {
					fmt.Fprintf(cmd.OutOrStdout(), "  %s\n", name)
				}
				return nil
			}

			content, err := topicsFS.ReadFile("topics/" + args[0] + ".md")
			if err != nil {
				return errors.Newf(errors.ErrInvalidInput, "unknown topic %q", args[0])
			}

			fmt.Fprint(cmd.OutOrStdout(), renderMarkdown(string(content)))
			return nil
		},
	}
}

func topicNames() []string {
	entries, err := topicsFS.ReadDir("topics")
	if err != nil {
		return nil
	}

	var names []string
	for _, entry := range entries {
		names = append(names, strings.TrimSuffix(entry.Name(), ".md"))
	}
	sort.Strings(names)
	return names
}

// renderMarkdown converts markdown to terminal output, falling back to
// the raw text when rendering is unavailable.
func renderMarkdown(content string) string {
	renderer, err := glamour.NewTermRenderer(glamour.WithAutoStyle())
	if err != nil {
		return content
	}

	rendered, err := renderer.Render(content)
	if err != nil {
		return content
	}
	return rendered
}
