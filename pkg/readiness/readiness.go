// Package readiness orchestrates the full preflight run: the Nix
// prerequisite gate, the direnv manager and the nix.conf verifier.
package readiness

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/rs/zerolog"

	"github.com/arthur-debert/preflight/pkg/direnv"
	"github.com/arthur-debert/preflight/pkg/dotfiles"
	"github.com/arthur-debert/preflight/pkg/errors"
	"github.com/arthur-debert/preflight/pkg/execx"
	"github.com/arthur-debert/preflight/pkg/logging"
	"github.com/arthur-debert/preflight/pkg/nix"
	"github.com/arthur-debert/preflight/pkg/report"
	"github.com/arthur-debert/preflight/pkg/requirements"
	"github.com/arthur-debert/preflight/pkg/verify"
)

// Options carries the ambient state of a run as explicit inputs so the
// orchestration is deterministic under test: no check reads the OS,
// user or home directory on its own.
type Options struct {
	Home     string
	GOOS     string
	User     string
	Runner   execx.Runner
	Decider  direnv.Decider
	Reporter *report.Reporter
	Required requirements.Required

	// DaemonPlist overrides the launchd plist location for the Darwin
	// advisory check. Empty means the standard system path.
	DaemonPlist string
}

// Result is the aggregated outcome of a run.
type Result struct {
	Report report.Report
	Passed bool
}

type run struct {
	opts     Options
	reporter *report.Reporter
	nix      *nix.Client
	direnv   *direnv.Client
	logger   zerolog.Logger
}

// Run executes the readiness test. The Nix prerequisite gate is fatal:
// its error return means nothing else was checked. All other failures
// are folded into Result.Passed.
func Run(ctx context.Context, opts Options) (*Result, error) {
	r := &run{
		opts:     opts,
		reporter: opts.Reporter,
		nix:      nix.NewClient(opts.Runner),
		direnv:   direnv.NewClient(opts.Runner),
		logger:   logging.GetLogger("readiness"),
	}

	r.reporter.Title("PREFLIGHT READINESS TEST:")

	nixVersion, err := r.nix.CheckAvailable(ctx)
	if err != nil {
		r.reporter.Fail(0, "Error: Nix is not installed on this system.")
		return nil, err
	}

	direnvReport := r.checkDirenv(ctx)
	checks, configPassed := r.checkNixConf(ctx)

	passed := direnvReport.Ready && configPassed
	r.reporter.Banner(passed)

	return &Result{
		Report: report.Report{
			NixVersion: nixVersion,
			Direnv:     direnvReport,
			Checks:     checks,
			Passed:     passed,
		},
		Passed: passed,
	}, nil
}

// checkDirenv runs the direnv state machine: detect, optionally install,
// then patch the shell startup files.
func (r *run) checkDirenv(ctx context.Context) report.DirenvReport {
	r.reporter.Neutral(1, "> Checking direnv...")

	ready := true
	installing := false

	status, err := r.direnv.Detect(ctx)
	if err != nil {
		r.reporter.Fail(2, err.Error())
		r.reporter.Check("direnv", false)
		return report.DirenvReport{State: string(direnv.StateNotInstalled)}
	}

	switch status.State {
	case direnv.StateReady:
		r.reporter.Success(2, fmt.Sprintf("direnv version: %s", status.Version))
	case direnv.StateOutdated:
		r.reporter.Fail(2, fmt.Sprintf("direnv %s is below the required version (%s+).", status.Version, direnv.MinVersion))
		installing = r.opts.Decider.ConfirmInstall(promptInstall)
	default:
		r.reporter.Fail(2, "direnv is not installed.")
		installing = r.opts.Decider.ConfirmInstall(promptInstall)
	}

	installed := status.State == direnv.StateReady
	if !installed && !installing {
		ready = false
	}

	installedNow := false
	if installing {
		if err := r.nix.InstallPackage(ctx, nix.DirenvPackageRef); err != nil {
			r.reporter.Fail(2, err.Error())
			ready = false
		} else {
			r.reporter.Neutral(2, "direnv installed successfully.")
			installedNow = true
		}
	}

	result := report.DirenvReport{
		State:     string(status.State),
		Version:   status.Version,
		Installed: installed || installedNow,
	}

	if installed || installedNow {
		if r.opts.GOOS == "darwin" {
			r.checkDaemonPlist()
		}
		for _, res := range r.patchDotfiles() {
			result.Dotfiles = append(result.Dotfiles, res)
			if !res.Configured {
				ready = false
			}
		}
	}

	r.reporter.Check("direnv", ready)
	result.Ready = ready
	return result
}

const promptInstall = "    Install direnv with Nix? (Y/n): "

// patchDotfiles rewrites each startup file for the current OS family.
// A failure on one file is reported and does not stop the others.
func (r *run) patchDotfiles() []report.DotfileResult {
	darwin := r.opts.GOOS == "darwin"

	var results []report.DotfileResult
	for _, name := range dotfiles.For(r.opts.GOOS) {
		path := filepath.Join(r.opts.Home, name)
		if err := r.patchOne(path, name, darwin); err != nil {
			r.logger.Error().Err(err).Str("dotfile", name).Msg("Dotfile patch failed")
			r.reporter.Fail(2, fmt.Sprintf("Unable to configure %s file", name))
			results = append(results, report.DotfileResult{Path: path, Error: err.Error()})
			continue
		}
		results = append(results, report.DotfileResult{Path: path, Configured: true})
	}
	return results
}

func (r *run) patchOne(path, name string, darwin bool) error {
	hook, ok := dotfiles.HookFor(name)
	if !ok {
		return errors.Newf(errors.ErrInvalidInput, "no hook known for %s", name)
	}

	created, err := dotfiles.EnsureExists(path)
	if err != nil {
		return err
	}
	if created {
		r.reporter.Neutral(2, fmt.Sprintf("> Creating '%s' file...", path))
	}

	if darwin {
		r.reporter.Neutral(1, fmt.Sprintf("> Adding Nix daemon failsafe and direnv hook to '%s'", path))
	} else {
		r.reporter.Neutral(1, fmt.Sprintf("> Adding direnv hook to '%s'", path))
	}

	lines, err := dotfiles.ReadLines(path)
	if err != nil {
		return err
	}

	return dotfiles.Overwrite(path, dotfiles.Patch(lines, hook, darwin))
}

// checkDaemonPlist is advisory only: single-user installs have no
// daemon, so problems are surfaced as warnings and never fail the run.
func (r *run) checkDaemonPlist() {
	path := r.opts.DaemonPlist
	if path == "" {
		path = nix.DaemonPlistPath
	}
	if err := nix.CheckDaemonPlist(path); err != nil {
		r.logger.Debug().Err(err).Msg("nix-daemon plist check failed")
		r.reporter.Warn(2, fmt.Sprintf("nix-daemon launchd job could not be verified (%s)", path))
	}
}

// checkNixConf dumps the effective configuration and runs every
// attribute check, printing a pass/fail line per attribute.
func (r *run) checkNixConf(ctx context.Context) ([]verify.CheckResult, bool) {
	r.reporter.Blank()
	r.reporter.Neutral(1, "> Checking nix.conf...")

	config, err := r.nix.ShowConfig(ctx)
	if err != nil {
		r.reporter.Fail(2, err.Error())
		return nil, false
	}

	results := verify.All(config, r.opts.Required, r.opts.User)
	for _, res := range results {
		r.reporter.Check(res.Attribute, res.Passed)
		if res.Passed {
			continue
		}
		if res.Detail != "" {
			r.reporter.Fail(2, res.Detail)
		}
		for _, missing := range res.Missing {
			r.reporter.Fail(3, missing)
		}
		if len(res.Missing) > 0 {
			r.reporter.Blank()
		}
	}

	return results, verify.Passed(results)
}
