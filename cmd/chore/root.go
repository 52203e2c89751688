// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"

	"chore-cli/internal/config"
	"chore-cli/internal/issue"
	"chore-cli/internal/journal"
	"chore-cli/internal/options"

	"github.com/charmbracelet/fang"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	// Version is the semantic version (set via -ldflags).
	Version = "dev"
	// Commit is the git commit hash (set via -ldflags).
	Commit = "unknown"
	// BuildDate is the build timestamp (set via -ldflags).
	BuildDate = "unknown"

	// rootCmd represents the base command when called without any subcommands
	rootCmd = &cobra.Command{
		Use:   "chore",
		Short: "A scriptable helper for repetitive command-line work",
		Long: TitleStyle.Render("chore") + SubtitleStyle.Render(" - A scriptable helper for repetitive command-line work") + `

chore wraps the boring parts of shell automation: it runs scripts in a
virtual shell (mvdan/sh), detects archive types by content, and keeps a
journal of everything it did so --simulate can show you what it would
have done instead.

` + SubtitleStyle.Render("Quick Start:") + `
  1. Write a shell script (or pass one inline with -e)
  2. Preview it with: chore run --simulate <script>
  3. Run it for real: chore run <script>

` + SubtitleStyle.Render("Examples:") + `
  chore run deploy.sh       Run a script in the virtual shell
  chore run -e 'echo hi'    Run an inline script
  chore sniff backup.tar.gz Detect an archive's real type
  chore config show         Show current configuration
  chore options             List the global options`,
	}
)

func init() {
	cobra.OnInitialize(initRootConfig)

	// Global options come from the shared schema table so --help, the
	// option store, and `chore options` can never drift apart.
	options.Register(rootCmd.PersistentFlags())
	if err := options.Bind(viper.GetViper(), rootCmd.PersistentFlags()); err != nil {
		// Register above guarantees every option exists on the flag set.
		panic(err)
	}

	// Add subcommands
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(sniffCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(optionsCmd)
}

// getVersionString returns a formatted version string for display.
func getVersionString() string {
	if Version == "dev" {
		return "dev (built from source)"
	}
	return fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, BuildDate)
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	// Use fang.Execute for enhanced Cobra styling
	// Pass version via fang.WithVersion() since fang overrides rootCmd.Version
	if err := fang.Execute(
		context.Background(),
		rootCmd,
		fang.WithVersion(getVersionString()),
		fang.WithNotifySignal(os.Interrupt),
	); err != nil {
		var exitErr *ExitError
		if errors.As(err, &exitErr) {
			os.Exit(exitErr.Code)
		}
		os.Exit(1)
	}
}

// initRootConfig loads the config file and settles the option store and
// journal before any RunE handler executes.
func initRootConfig() {
	opts := options.Default()
	opts.LoadFlags(rootCmd.PersistentFlags())

	// Load configuration; --config forces a specific file.
	cfg, err := config.NewProvider().Load(context.Background(), config.LoadOptions{
		ConfigFilePath: opts.String(options.Config),
	})
	if err != nil {
		// Config problems must never make the CLI unusable; warn and run
		// on defaults.
		fmt.Fprintln(os.Stderr, WarningStyle.Render("Warning: ")+formatErrorForDisplay(err, opts.Bool(options.Verbose)))
	}

	if cfg != nil {
		opts.LoadConfigValue(options.Verbose, cfg.UI.Verbose)
		opts.LoadConfigValue(options.Quiet, cfg.UI.Quiet)
		opts.LoadConfigValue(options.Simulate, cfg.Simulate)
		applyJournalLevel(cfg, opts)
	}

	if opts.Bool(options.NoColor) {
		// lipgloss and charmbracelet/log both honor NO_COLOR.
		_ = os.Setenv("NO_COLOR", "1")
	}
}

// applyJournalLevel resolves the effective journal threshold from the config
// file and the quiet/debug switches. Precedence: --quiet > --debug > config.
func applyJournalLevel(cfg *config.Config, opts *options.Store) {
	j := journal.Default()

	if lvl, err := journal.ParseLevel(string(cfg.LogLevel)); err == nil {
		j.SetMinLevel(lvl)
	}

	switch {
	case opts.Bool(options.Quiet):
		j.SetMinLevel(journal.LevelError)
	case opts.Bool(options.Debug):
		j.SetMinLevel(journal.LevelDebug)
		// Debug mode also reports the call site of each journal entry.
		logger := log.NewWithOptions(os.Stderr, log.Options{
			ReportTimestamp: false,
			ReportCaller:    true,
		})
		j.SetSink(journal.NewCharmSink(logger))
	}
}

// formatErrorForDisplay formats an error for user display.
// If the error is an ActionableError, it uses the Format method.
// In verbose mode, shows the full error chain.
func formatErrorForDisplay(err error, verboseMode bool) string {
	var ae *issue.ActionableError
	if errors.As(err, &ae) {
		return ae.Format(verboseMode)
	}
	return err.Error()
}
