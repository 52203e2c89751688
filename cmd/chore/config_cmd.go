// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"
	"fmt"
	"io"
	"os"

	"chore-cli/internal/config"
	"chore-cli/internal/issue"
	"chore-cli/internal/options"

	"github.com/spf13/cobra"
)

var (
	// configDumpFormat selects the `config dump` output encoding.
	configDumpFormat string
	// configShowFormat switches `config show` to raw output when set.
	configShowFormat string

	configCmd = &cobra.Command{
		Use:   "config",
		Short: "Manage chore configuration",
		Long: `Manage chore configuration.

Configuration is stored in:
  - Linux: ~/.config/chore/config.cue
  - macOS: ~/Library/Application Support/chore/config.cue
  - Windows: %APPDATA%\chore\config.cue`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}
)

func init() {
	showCmd := &cobra.Command{
		Use:   "show",
		Short: "Show current configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			if configShowFormat != "" {
				cfg, err := loadConfig(cmd.Context())
				if err != nil {
					return err
				}
				return dumpConfig(cmd.OutOrStdout(), cfg, configShowFormat)
			}
			return showConfig(cmd.Context(), cmd.OutOrStdout())
		},
	}
	showCmd.Flags().StringVar(&configShowFormat, "format", "", "raw output format: cue or toml")
	configCmd.AddCommand(showCmd)

	configCmd.AddCommand(&cobra.Command{
		Use:   "init",
		Short: "Create default configuration file",
		RunE: func(cmd *cobra.Command, args []string) error {
			return initConfig(cmd.InOrStdin(), cmd.OutOrStdout())
		},
	})

	configCmd.AddCommand(&cobra.Command{
		Use:   "path",
		Short: "Show configuration file path",
		RunE: func(cmd *cobra.Command, args []string) error {
			return showConfigPath(cmd.OutOrStdout())
		},
	})

	dumpCmd := &cobra.Command{
		Use:   "dump",
		Short: "Output raw configuration as CUE or TOML",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd.Context())
			if err != nil {
				return err
			}
			return dumpConfig(cmd.OutOrStdout(), cfg, configDumpFormat)
		},
	}
	dumpCmd.Flags().StringVar(&configDumpFormat, "format", "cue", "output format: cue or toml")
	configCmd.AddCommand(dumpCmd)
}

// loadConfig loads configuration honoring the global --config flag.
func loadConfig(ctx context.Context) (*config.Config, error) {
	return config.NewProvider().Load(ctx, config.LoadOptions{
		ConfigFilePath: options.Default().String(options.Config),
	})
}

func showConfig(ctx context.Context, w io.Writer) error {
	cfg, err := loadConfig(ctx)
	if err != nil {
		rendered, _ := issue.Get(issue.ConfigLoadFailedId).Render("dark")
		fmt.Fprint(os.Stderr, rendered)
		return err
	}

	keyStyle := CmdStyle
	valueStyle := SuccessStyle

	fmt.Fprintln(w, TitleStyle.Render("Current Configuration"))
	fmt.Fprintln(w)

	cfgPath, pathErr := config.ConfigFilePath()
	if pathErr == nil && fileExistsCheck(cfgPath) {
		fmt.Fprintf(w, "%s: %s\n", keyStyle.Render("Config file"), cfgPath)
	} else {
		fmt.Fprintf(w, "%s: %s\n", keyStyle.Render("Config file"), SubtitleStyle.Render("(using defaults)"))
	}
	fmt.Fprintln(w)

	fmt.Fprintf(w, "%s: %s\n", keyStyle.Render("log_level"), valueStyle.Render(string(cfg.LogLevel)))
	fmt.Fprintf(w, "%s: %s\n", keyStyle.Render("simulate"), valueStyle.Render(fmt.Sprintf("%v", cfg.Simulate)))

	fmt.Fprintln(w)
	fmt.Fprintf(w, "%s:\n", keyStyle.Render("ui"))
	fmt.Fprintf(w, "  color_scheme: %s\n", valueStyle.Render(string(cfg.UI.ColorScheme)))
	fmt.Fprintf(w, "  verbose: %s\n", valueStyle.Render(fmt.Sprintf("%v", cfg.UI.Verbose)))
	fmt.Fprintf(w, "  quiet: %s\n", valueStyle.Render(fmt.Sprintf("%v", cfg.UI.Quiet)))

	fmt.Fprintln(w)
	fmt.Fprintf(w, "%s:\n", keyStyle.Render("sniff"))
	fmt.Fprintf(w, "  extension_fallback: %s\n", valueStyle.Render(fmt.Sprintf("%v", cfg.Sniff.ExtensionFallback)))

	return nil
}

func initConfig(in io.Reader, w io.Writer) error {
	cfgDir, err := config.ConfigDir()
	if err != nil {
		return err
	}

	cfgPath, err := config.ConfigFilePath()
	if err != nil {
		return err
	}

	if fileExistsCheck(cfgPath) {
		if !confirm(in, w, fmt.Sprintf("Configuration already exists at %s. Overwrite with defaults?", cfgPath)) {
			fmt.Fprintf(w, "%s\n", SubtitleStyle.Render("Keeping existing configuration."))
			return nil
		}
		if err := config.Save(config.DefaultConfig()); err != nil {
			return fmt.Errorf("failed to reset config: %w", err)
		}
		fmt.Fprintf(w, "%s Reset configuration to defaults at %s\n", SuccessStyle.Render("✓"), cfgPath)
		return nil
	}

	if err = config.CreateDefaultConfig(); err != nil {
		return fmt.Errorf("failed to create config: %w", err)
	}

	fmt.Fprintf(w, "%s Created default configuration at %s/config.cue\n", SuccessStyle.Render("✓"), cfgDir)
	return nil
}

func showConfigPath(w io.Writer) error {
	cfgDir, err := config.ConfigDir()
	if err != nil {
		return err
	}

	fmt.Fprintf(w, "Config directory: %s\n", cfgDir)
	fmt.Fprintf(w, "Config file: %s/config.cue\n", cfgDir)
	return nil
}

// dumpConfig writes cfg to w in the requested encoding.
func dumpConfig(w io.Writer, cfg *config.Config, format string) error {
	switch format {
	case "cue":
		fmt.Fprint(w, config.GenerateCUE(cfg))
		return nil
	case "toml":
		out, err := config.GenerateTOML(cfg)
		if err != nil {
			return err
		}
		fmt.Fprint(w, out)
		return nil
	default:
		return fmt.Errorf("unknown format %q: must be 'cue' or 'toml'", format)
	}
}

// fileExistsCheck checks if a file exists and is not a directory.
func fileExistsCheck(path string) bool {
	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		return false
	}
	return err == nil && !info.IsDir()
}
