// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"
	"io"
	"os"

	"chore-cli/internal/format"
	"chore-cli/internal/issue"
	"chore-cli/internal/journal"
	"chore-cli/internal/ops"
	"chore-cli/internal/options"
	"chore-cli/internal/status"

	"github.com/spf13/cobra"
)

var (
	// runEval holds an inline script passed via --eval.
	runEval string
	// runDir overrides the script's working directory.
	runDir string

	runCmd = &cobra.Command{
		Use:   "run [script] [-- args...]",
		Short: "Run a shell script in the virtual shell",
		Long: `Run a shell script in the embedded POSIX shell (mvdan/sh).

The script runs in-process: no /bin/sh is spawned, so behavior is identical
across platforms. Arguments after -- become the script's positional
parameters ($1, $2, ...).

With --simulate the script is parsed and journaled line by line instead of
executed, so you can preview exactly what would run.`,
		Example: `  chore run deploy.sh
  chore run deploy.sh -- staging eu-west-1
  chore run -e 'for f in *.log; do gzip "$f"; done'
  chore run --simulate cleanup.sh`,
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runScript(cmd, args)
		},
	}
)

func init() {
	runCmd.Flags().StringVarP(&runEval, "eval", "e", "", "run an inline script instead of a file")
	runCmd.Flags().StringVar(&runDir, "dir", "", "working directory for the script")
}

func runScript(cmd *cobra.Command, args []string) error {
	opts := options.Default()
	tracker := status.Default()

	if opts.Bool(options.Debug) {
		defer printBacklog(cmd.ErrOrStderr())
	}

	script, name, scriptArgs, err := resolveScript(runEval, args)
	if err != nil {
		_ = tracker.Set(issue.CodeFileNotFound, err.Error())
		return err
	}

	if err := ops.ValidateScript(script); err != nil {
		_ = tracker.Set(issue.CodeScriptSyntaxError, err.Error())
		return issue.NewErrorContext().
			WithOperation("validate script").
			WithResource(name).
			WithSuggestion("Check the script for unclosed quotes or control structures").
			WithSuggestion("Run 'chore run --simulate' to preview without executing").
			Wrap(err).
			BuildError()
	}

	runner := ops.NewRunner(journal.Default(),
		ops.WithSimulate(opts.Bool(options.Simulate)),
		ops.WithVerbose(opts.Bool(options.Verbose)),
	)

	code, err := runner.Shell(cmd.Context(), ops.ShellRequest{
		Script: script,
		Name:   name,
		Dir:    runDir,
		Args:   scriptArgs,
		Stdin:  cmd.InOrStdin(),
		Stdout: cmd.OutOrStdout(),
		Stderr: cmd.ErrOrStderr(),
	})
	if err != nil {
		_ = tracker.Setf(issue.CodeScriptExecutionFailed, "%s: %v", name, err)
		return &ExitError{Code: 1, Err: err}
	}
	if code != 0 {
		scriptErr := tracker.Setf(issue.CodeScriptExecutionFailed, "%s exited with status %d", name, code)
		return &ExitError{Code: code, Err: scriptErr}
	}

	if runner.Simulating() {
		journal.Default().Logf(journal.LevelSuccess, "simulation of %s complete", name)
	} else {
		journal.Default().Logf(journal.LevelSuccess, "%s finished", name)
	}
	return nil
}

// printBacklog dumps the full journal history, including entries below the
// sink threshold, with the heap usage captured at each entry.
func printBacklog(w io.Writer) {
	entries := journal.Default().Backlog()
	if len(entries) == 0 {
		return
	}

	fmt.Fprintln(w, VerboseStyle.Render("journal backlog:"))
	for _, e := range entries {
		line := fmt.Sprintf("  %-7s %s  heap=%s", e.Level, e.Message, format.Size(int64(e.MemoryBytes)))
		if e.Err != nil {
			line += fmt.Sprintf("  err=%v", e.Err)
		}
		fmt.Fprintln(w, VerboseStyle.Render(line))
	}
}

// resolveScript determines the script source: --eval wins, otherwise the
// first positional argument names a file. Remaining arguments become the
// script's positional parameters.
func resolveScript(eval string, args []string) (script, name string, scriptArgs []string, err error) {
	if eval != "" {
		return eval, "inline", args, nil
	}

	if len(args) == 0 {
		return "", "", nil, fmt.Errorf("no script given: pass a file or use --eval")
	}

	data, err := os.ReadFile(args[0])
	if err != nil {
		return "", "", nil, issue.NewErrorContext().
			WithOperation("read script").
			WithResource(args[0]).
			WithSuggestion("Verify the file path is correct").
			WithSuggestion("Use --eval to pass the script inline").
			Wrap(err).
			BuildError()
	}
	return string(data), args[0], args[1:], nil
}
