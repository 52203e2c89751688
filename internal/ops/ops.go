// SPDX-License-Identifier: MPL-2.0

package ops

import (
	"context"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"

	"chore-cli/internal/journal"
)

type (
	// Runner executes operations through the simulate/verbose guard.
	Runner struct {
		journal  *journal.Journal
		simulate bool
		verbose  bool
	}

	// RunnerOption configures a Runner at construction time.
	RunnerOption func(*Runner)
)

// WithSimulate makes the runner journal operations instead of executing them.
func WithSimulate(on bool) RunnerOption {
	return func(r *Runner) { r.simulate = on }
}

// WithVerbose makes the runner journal each call before executing it.
func WithVerbose(on bool) RunnerOption {
	return func(r *Runner) { r.verbose = on }
}

// NewRunner creates a Runner that journals to j. A nil journal falls back to
// the process-wide default.
func NewRunner(j *journal.Journal, opts ...RunnerOption) *Runner {
	if j == nil {
		j = journal.Default()
	}
	r := &Runner{journal: j}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Simulating reports whether the runner is in simulate mode.
func (r *Runner) Simulating() bool {
	return r.simulate
}

// Do invokes fn under the guard. name and args only feed the journal entry;
// fn carries the real operation. In simulate mode fn is never invoked and
// Do returns nil.
func (r *Runner) Do(ctx context.Context, name string, fn func(context.Context) error, args ...any) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%s canceled: %w", name, err)
	}

	call := formatCall(name, args)
	if r.simulate {
		r.journal.Noticef("simulating: %s", call)
		return nil
	}
	if r.verbose {
		r.journal.Noticef("calling: %s", call)
	}

	return fn(ctx)
}

// Rename is a guarded os.Rename.
func (r *Runner) Rename(ctx context.Context, oldpath, newpath string) error {
	return r.Do(ctx, "rename", func(context.Context) error {
		return os.Rename(oldpath, newpath)
	}, oldpath, newpath)
}

// RemoveAll is a guarded os.RemoveAll.
func (r *Runner) RemoveAll(ctx context.Context, path string) error {
	return r.Do(ctx, "remove_all", func(context.Context) error {
		return os.RemoveAll(path)
	}, path)
}

// MkdirAll is a guarded os.MkdirAll.
func (r *Runner) MkdirAll(ctx context.Context, path string, perm fs.FileMode) error {
	return r.Do(ctx, "mkdir_all", func(context.Context) error {
		return os.MkdirAll(path, perm)
	}, path, perm)
}

// WriteFile is a guarded os.WriteFile.
func (r *Runner) WriteFile(ctx context.Context, path string, data []byte, perm fs.FileMode) error {
	return r.Do(ctx, "write_file", func(context.Context) error {
		return os.WriteFile(path, data, perm)
	}, path, fmt.Sprintf("%d bytes", len(data)), perm)
}

// CopyFile is a guarded file copy. The destination is created (or truncated)
// with the source file's permissions.
func (r *Runner) CopyFile(ctx context.Context, src, dst string) error {
	return r.Do(ctx, "copy_file", func(context.Context) error {
		in, err := os.Open(src)
		if err != nil {
			return err
		}
		defer in.Close() //nolint:errcheck // read-only handle

		info, err := in.Stat()
		if err != nil {
			return err
		}

		out, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, info.Mode().Perm())
		if err != nil {
			return err
		}

		if _, err := io.Copy(out, in); err != nil {
			out.Close() //nolint:errcheck,gosec // copy error takes precedence
			return err
		}
		return out.Close()
	}, src, dst)
}

// formatCall renders an operation like a function call for journal entries.
func formatCall(name string, args []any) string {
	if len(args) == 0 {
		return name + "()"
	}

	parts := make([]string, len(args))
	for i, a := range args {
		parts[i] = fmt.Sprintf("%v", a)
	}
	return fmt.Sprintf("%s(%s)", name, strings.Join(parts, ", "))
}
