// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"
	"fmt"
	"os"

	"chore-cli/internal/config"
	"chore-cli/internal/format"
	"chore-cli/internal/issue"
	"chore-cli/internal/options"
	"chore-cli/internal/sniff"
	"chore-cli/internal/status"

	"github.com/spf13/cobra"
)

var (
	// sniffMIMEOnly makes `chore sniff` print bare MIME types for scripting.
	sniffMIMEOnly bool

	sniffCmd = &cobra.Command{
		Use:   "sniff <file>...",
		Short: "Detect archive types by content",
		Long: `Detect archive types by inspecting file content.

chore reads the leading bytes of each file and matches them against known
archive signatures (tar, gzip, bzip2, zip, xz, zstd). When the content is
inconclusive the filename extension is consulted as a fallback, unless
disabled via the sniff.extension_fallback config setting.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSniff(cmd.Context(), cmd, args)
		},
	}
)

func init() {
	sniffCmd.Flags().BoolVar(&sniffMIMEOnly, "mime", false, "print only the MIME type, one per line")
}

func runSniff(ctx context.Context, cmd *cobra.Command, args []string) error {
	opts := options.Default()
	tracker := status.Default()

	extFallback := extensionFallbackEnabled(ctx, opts)

	failed := false
	for _, path := range args {
		info, err := os.Stat(path)
		if err != nil {
			_ = tracker.Set(issue.CodeFileNotFound, fmt.Sprintf("cannot stat %s: %v", path, err))
			fmt.Fprintln(cmd.ErrOrStderr(), ErrorStyle.Render("Error: ")+err.Error())
			failed = true
			continue
		}

		kind, err := sniffPath(path, extFallback)
		if err != nil {
			_ = tracker.Set(issue.CodeFileNotFound, fmt.Sprintf("cannot read %s: %v", path, err))
			fmt.Fprintln(cmd.ErrOrStderr(), ErrorStyle.Render("Error: ")+err.Error())
			failed = true
			continue
		}

		if sniffMIMEOnly {
			fmt.Fprintln(cmd.OutOrStdout(), kind.MIME())
		} else {
			fmt.Fprintf(cmd.OutOrStdout(), "%s: %s (%s, %s)\n",
				CmdStyle.Render(path), kind, kind.MIME(), format.Size(info.Size()))
		}

		if kind == sniff.KindUnknown {
			_ = tracker.Set(issue.CodeUnknownArchiveType, fmt.Sprintf("unrecognized content in %s", path))
			failed = true
		}
	}

	if failed {
		return &ExitError{Code: 1, Err: tracker.Err()}
	}
	return nil
}

// sniffPath detects a file's kind from its content, optionally falling back
// to the filename extension when the magic bytes are inconclusive.
func sniffPath(path string, extFallback bool) (sniff.Kind, error) {
	f, err := os.Open(path)
	if err != nil {
		return sniff.KindUnknown, err
	}
	defer f.Close() //nolint:errcheck // read-only handle

	kind, err := sniff.DetectReader(f)
	if err != nil {
		return sniff.KindUnknown, err
	}
	if kind == sniff.KindUnknown && extFallback {
		kind = sniff.DetectExtension(path)
	}
	return kind, nil
}

// extensionFallbackEnabled reads the sniff.extension_fallback setting,
// defaulting to enabled when the config cannot be loaded.
func extensionFallbackEnabled(ctx context.Context, opts *options.Store) bool {
	cfg, err := config.NewProvider().Load(ctx, config.LoadOptions{
		ConfigFilePath: opts.String(options.Config),
	})
	if err != nil || cfg == nil {
		return true
	}
	return cfg.Sniff.ExtensionFallback
}
