// SPDX-License-Identifier: MPL-2.0

package config

import (
	"errors"
	"fmt"
)

const (
	// ColorSchemeAuto detects the terminal color scheme automatically.
	ColorSchemeAuto ColorScheme = "auto"
	// ColorSchemeDark forces dark color scheme.
	ColorSchemeDark ColorScheme = "dark"
	// ColorSchemeLight forces light color scheme.
	ColorSchemeLight ColorScheme = "light"

	// LogLevelDebug through LogLevelError mirror the journal levels.
	// Defined locally to avoid coupling config to internal/journal;
	// the root command converts at the boundary.
	LogLevelDebug   LogLevel = "debug"
	LogLevelInfo    LogLevel = "info"
	LogLevelNotice  LogLevel = "notice"
	LogLevelSuccess LogLevel = "success"
	LogLevelWarning LogLevel = "warning"
	LogLevelError   LogLevel = "error"
)

var (
	// ErrInvalidColorScheme is returned when a ColorScheme value is not recognized.
	ErrInvalidColorScheme = errors.New("invalid color scheme")
	// ErrInvalidLogLevel is returned when a LogLevel value is not recognized.
	ErrInvalidLogLevel = errors.New("invalid log level")
)

type (
	// ColorScheme selects terminal styling behavior.
	ColorScheme string

	// LogLevel names the minimum journal level forwarded to the terminal.
	LogLevel string

	// UIConfig groups terminal presentation settings.
	UIConfig struct {
		ColorScheme ColorScheme `mapstructure:"color_scheme" toml:"color_scheme"`
		Verbose     bool        `mapstructure:"verbose" toml:"verbose"`
		Quiet       bool        `mapstructure:"quiet" toml:"quiet"`
	}

	// SniffConfig groups content-type detection settings.
	SniffConfig struct {
		// ExtensionFallback enables filename-extension detection when the
		// magic bytes are inconclusive.
		ExtensionFallback bool `mapstructure:"extension_fallback" toml:"extension_fallback"`
	}

	// Config is the root configuration object.
	Config struct {
		LogLevel LogLevel    `mapstructure:"log_level" toml:"log_level"`
		Simulate bool        `mapstructure:"simulate" toml:"simulate"`
		UI       UIConfig    `mapstructure:"ui" toml:"ui"`
		Sniff    SniffConfig `mapstructure:"sniff" toml:"sniff"`
	}
)

// IsValid reports whether the color scheme is one of the known values.
func (c ColorScheme) IsValid() (bool, []error) {
	switch c {
	case ColorSchemeAuto, ColorSchemeDark, ColorSchemeLight:
		return true, nil
	default:
		return false, []error{fmt.Errorf("%w: %q", ErrInvalidColorScheme, string(c))}
	}
}

// IsValid reports whether the log level is one of the known values.
func (l LogLevel) IsValid() (bool, []error) {
	switch l {
	case LogLevelDebug, LogLevelInfo, LogLevelNotice, LogLevelSuccess, LogLevelWarning, LogLevelError:
		return true, nil
	default:
		return false, []error{fmt.Errorf("%w: %q", ErrInvalidLogLevel, string(l))}
	}
}

// Validate checks constraints the CUE schema already enforces for file-based
// loads; it guards values set programmatically.
func (c *Config) Validate() error {
	if ok, errs := c.UI.ColorScheme.IsValid(); !ok {
		return errs[0]
	}
	if ok, errs := c.LogLevel.IsValid(); !ok {
		return errs[0]
	}
	return nil
}

// DefaultConfig returns the built-in defaults.
func DefaultConfig() *Config {
	return &Config{
		LogLevel: LogLevelInfo,
		Simulate: false,
		UI: UIConfig{
			ColorScheme: ColorSchemeAuto,
			Verbose:     false,
			Quiet:       false,
		},
		Sniff: SniffConfig{
			ExtensionFallback: true,
		},
	}
}
