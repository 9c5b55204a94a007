package main

import (
	goerrors "errors"
	"fmt"
	"io"
	"os"
	"os/user"
	"runtime"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/arthur-debert/preflight/internal/version"
	"github.com/arthur-debert/preflight/pkg/direnv"
	"github.com/arthur-debert/preflight/pkg/errors"
	"github.com/arthur-debert/preflight/pkg/execx"
	"github.com/arthur-debert/preflight/pkg/logging"
	"github.com/arthur-debert/preflight/pkg/readiness"
	"github.com/arthur-debert/preflight/pkg/report"
	"github.com/arthur-debert/preflight/pkg/requirements"
	"github.com/arthur-debert/preflight/pkg/style"
)

// errNotReady signals a failed readiness test that was already reported.
var errNotReady = goerrors.New("readiness test failed")

var (
	verbosity        int
	noColor          bool
	assumeYes        bool
	outputFormat     string
	requirementsFile string
)

// NewRootCmd builds the command tree
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "preflight",
		Short: MsgRootShort,
		Long:  MsgRootLong,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.SetupLogger(verbosity)
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
		},
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runReadiness,
	}

	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v", "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)")
	rootCmd.Flags().BoolVar(&noColor, "no-color", false, "Disable colored output")
	rootCmd.Flags().BoolVarP(&assumeYes, "yes", "y", false, "Assume yes for the direnv install prompt")
	rootCmd.Flags().StringVar(&outputFormat, "format", "text", "Report format (text, json, yaml)")
	rootCmd.Flags().StringVar(&requirementsFile, "requirements", "", "Path to a TOML requirements override file")

	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newDocsCmd())
	rootCmd.AddCommand(newCompletionCmd())

	return rootCmd
}

func runReadiness(cmd *cobra.Command, args []string) error {
	format, ok := report.ParseFormat(outputFormat)
	if !ok {
		return errors.Newf(errors.ErrInvalidInput, "invalid format %q (want text, json or yaml)", outputFormat)
	}

	required, err := requirements.Resolve(requirementsFile)
	if err != nil {
		return err
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return errors.Wrap(err, errors.ErrFileAccess, "cannot determine home directory")
	}

	current, err := user.Current()
	if err != nil {
		return errors.Wrap(err, errors.ErrInternal, "cannot determine current user")
	}

	// Structured formats own stdout, so the console report is muted and
	// the install prompt moves to stderr.
	consoleOut := cmd.OutOrStdout()
	promptOut := cmd.OutOrStdout()
	if format != report.FormatText {
		consoleOut = io.Discard
		promptOut = cmd.ErrOrStderr()
	}

	color := !noColor && style.ColorEnabled()
	reporter := report.NewReporter(consoleOut, color)

	result, err := readiness.Run(cmd.Context(), readiness.Options{
		Home:     home,
		GOOS:     runtime.GOOS,
		User:     current.Username,
		Runner:   execx.NewExecRunner(),
		Decider:  &direnv.TerminalDecider{In: cmd.InOrStdin(), Out: promptOut, AssumeYes: assumeYes},
		Reporter: reporter,
		Required: required,
	})
	if err != nil {
		// The prerequisite failure is already on the report surface.
		return errNotReady
	}

	if format != report.FormatText {
		if err := emitStructured(cmd.OutOrStdout(), format, &result.Report); err != nil {
			return err
		}
	}

	if !result.Passed {
		return errNotReady
	}
	return nil
}

func emitStructured(out io.Writer, format report.Format, rep *report.Report) error {
	var data []byte
	var err error

	switch format {
	case report.FormatJSON:
		data, err = rep.JSON()
	case report.FormatYAML:
		data, err = rep.YAML()
	}
	if err != nil {
		return errors.Wrap(err, errors.ErrInternal, "failed to encode report")
	}

	_, err = fmt.Fprintf(out, "%s\n", data)
	return err
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: MsgVersionShort,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "preflight version %s\n", version.Version)
			fmt.Fprintf(cmd.OutOrStdout(), "  commit: %s\n", version.Commit)
			fmt.Fprintf(cmd.OutOrStdout(), "  built:  %s\n", version.Date)
		},
	}
}

func newCompletionCmd() *cobra.Command {
	return &cobra.Command{
		Use:                   "completion [bash|zsh|fish|powershell]",
		Short:                 "Generate shell completion script",
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		Run: func(cmd *cobra.Command, args []string) {
			switch args[0] {
			case "bash":
				if err := cmd.Root().GenBashCompletion(cmd.OutOrStdout()); err != nil {
					log.Error().Err(err).Msg("Failed to generate bash completion")
				}
			case "zsh":
				if err := cmd.Root().GenZshCompletion(cmd.OutOrStdout()); err != nil {
					log.Error().Err(err).Msg("Failed to generate zsh completion")
				}
			case "fish":
				if err := cmd.Root().GenFishCompletion(cmd.OutOrStdout(), true); err != nil {
					log.Error().Err(err).Msg("Failed to generate fish completion")
				}
			case "powershell":
				if err := cmd.Root().GenPowerShellCompletionWithDesc(cmd.OutOrStdout()); err != nil {
					log.Error().Err(err).Msg("Failed to generate powershell completion")
				}
			}
		},
	}
}
