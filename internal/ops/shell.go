// SPDX-License-Identifier: MPL-2.0

package ops

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"mvdan.cc/sh/v3/expand"
	"mvdan.cc/sh/v3/interp"
	"mvdan.cc/sh/v3/syntax"
)

// ShellRequest describes a script execution.
type ShellRequest struct {
	// Script is the shell source to run.
	Script string

	// Name labels the script in journal entries (defaults to "script").
	Name string

	// Dir is the working directory ("" keeps the current one).
	Dir string

	// Env is the KEY=VALUE environment (nil inherits the process env).
	Env []string

	// Args become the positional parameters ($1, $2, ...).
	Args []string

	// Stdin, Stdout, Stderr wire the script's standard streams. Nil output
	// writers default to the process streams.
	Stdin          io.Reader
	Stdout, Stderr io.Writer
}

// ValidateScript parses script without running it and returns any syntax
// error.
func ValidateScript(script string) error {
	if strings.TrimSpace(script) == "" {
		return fmt.Errorf("script has no content")
	}
	if _, err := syntax.NewParser().Parse(strings.NewReader(script), "script"); err != nil {
		return fmt.Errorf("script syntax error: %w", err)
	}
	return nil
}

// Shell runs a script with the embedded interpreter and returns its exit
// status. In simulate mode the script is journaled line by line and (0, nil)
// is returned without executing anything. A non-zero script exit is reported
// in the status, not as an error; err is reserved for parse and runtime
// failures.
func (r *Runner) Shell(ctx context.Context, req ShellRequest) (int, error) {
	name := req.Name
	if name == "" {
		name = "script"
	}

	prog, err := syntax.NewParser().Parse(strings.NewReader(req.Script), name)
	if err != nil {
		return 1, fmt.Errorf("failed to parse %s: %w", name, err)
	}

	if r.simulate {
		r.journal.Noticef("simulating: %s", name)
		for _, line := range strings.Split(strings.TrimRight(req.Script, "\n"), "\n") {
			r.journal.Notice("  " + line)
		}
		return 0, nil
	}
	if r.verbose {
		r.journal.Noticef("executing: %s", name)
	}

	opts := []interp.RunnerOption{
		interp.StdIO(req.Stdin, req.Stdout, req.Stderr),
	}
	if req.Dir != "" {
		opts = append(opts, interp.Dir(req.Dir))
	}
	env := req.Env
	if env == nil {
		env = os.Environ()
	}
	opts = append(opts, interp.Env(expand.ListEnviron(env...)))

	// "--" marks the end of options; without it an argument like "-v" is
	// taken as a shell option by interp.Params.
	if len(req.Args) > 0 {
		params := append([]string{"--"}, req.Args...)
		opts = append(opts, interp.Params(params...))
	}

	runner, err := interp.New(opts...)
	if err != nil {
		return 1, fmt.Errorf("failed to create interpreter: %w", err)
	}

	if err := runner.Run(ctx, prog); err != nil {
		var exitStatus interp.ExitStatus
		if errors.As(err, &exitStatus) {
			return int(exitStatus), nil
		}
		return 1, fmt.Errorf("%s execution failed: %w", name, err)
	}

	return 0, nil
}
