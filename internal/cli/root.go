// Package cli provides the command-line interface for fixed-skips.
package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/runoshun/fixed-skips/internal/app"
	"github.com/runoshun/fixed-skips/internal/domain"
	"github.com/runoshun/fixed-skips/internal/usecase"
	"github.com/spf13/cobra"
)

// Exit codes.
const (
	ExitOK         = 0
	ExitStaleSkips = 1
	ExitFatal      = 2
)

// newContainerFunc builds the container, allowing it to be replaced in tests.
var newContainerFunc = app.New

// NewRootCommand creates the root command for fixed-skips.
func NewRootCommand(version string) *cobra.Command {
	var (
		debug      bool
		noDebug    bool
		dir        string
		configPath string
		reportPath string
	)

	root := &cobra.Command{
		Use:   "fixed-skips",
		Short: "Fail CI when skips still reference issues a PR claims to fix",
		Long: `fixed-skips reads the pull request description (CIRRUS_CHANGE_MESSAGE)
and the commit messages since the merge-base with DEST_BRANCH, collects every
issue claimed with "Fixes #N", "Closes: #N" or "Resolves #N", and then searches
the test, cmd, libpod and pkg directories for skip or FIXME lines that still
reference one of those issues.

Exit status is 0 when nothing is found, 1 when stale skips are found,
and 2 on any other error.

Environment:
  CIRRUS_CHANGE_MESSAGE  pull request description (required if CIRRUS_PR is set)
  CIRRUS_PR              set when running on a pull request
  CIRRUS_CHANGE_IN_REPO  commit to compare (default: HEAD)
  DEST_BRANCH            branch the PR merges into; commit log is skipped if unset`,
		Version: version,
		Args:    noPositionalArgs,
		// SilenceUsage prevents usage from being printed on errors
		SilenceUsage: true,
		// SilenceErrors prevents Cobra from printing errors (we handle it in main)
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if noDebug {
				debug = false
			}
			if dir == "" {
				cwd, err := os.Getwd()
				if err != nil {
					return fmt.Errorf("get current directory: %w", err)
				}
				dir = cwd
			}

			c, err := newContainerFunc(app.Options{
				Dir:        dir,
				ConfigPath: configPath,
				ReportPath: reportPath,
				Debug:      debug,
				Stderr:     cmd.ErrOrStderr(),
			})
			if err != nil {
				return err
			}
			return runCheck(cmd, c)
		},
	}

	root.SetVersionTemplate("{{.Name}} version {{.Version}}\n")
	root.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return domain.NewError(domain.KindUsage, err)
	})

	root.Flags().BoolVar(&debug, "debug", false, "Log matches discarded because they are not in test or script files")
	root.Flags().BoolVar(&noDebug, "no-debug", false, "Disable --debug")
	root.Flags().StringVarP(&dir, "dir", "C", "", "Run in this directory instead of the current one")
	root.Flags().StringVar(&configPath, "config", "", "Config file (default: <dir>/"+domain.ConfigFileName+")")
	root.Flags().StringVar(&reportPath, "report-file", "", "Also write the findings as YAML to this file")

	return root
}

func noPositionalArgs(_ *cobra.Command, args []string) error {
	if len(args) > 0 {
		return domain.NewError(domain.KindUsage, fmt.Errorf("%w: %q", domain.ErrUnexpectedArgs, args))
	}
	return nil
}

func runCheck(cmd *cobra.Command, c *app.Container) error {
	uc, err := c.CheckFixedSkipsUseCase()
	if err != nil {
		return err
	}

	out, err := uc.Execute(cmd.Context(), usecase.CheckFixedSkipsInput{
		Roots: c.Config.Scan.Roots,
		Debug: c.Config.Debug,
	})
	if err != nil {
		return err
	}

	if !out.Report.Outcome.Failed() {
		return nil
	}
	renderReport(cmd.ErrOrStderr(), out.Report)
	return domain.NewError(domain.KindPolicyViolation, domain.ErrStaleSkips)
}

// ExitCode maps an error returned by the root command to a process exit status.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return ExitOK
	case errors.Is(err, domain.ErrStaleSkips):
		return ExitStaleSkips
	default:
		return ExitFatal
	}
}
