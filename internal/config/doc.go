// SPDX-License-Identifier: MPL-2.0

// Package config handles application configuration using Viper with CUE as
// the file format.
//
// Configuration is loaded from ~/.config/chore/config.cue ($XDG_CONFIG_HOME
// on Linux, ~/Library/Application Support/chore/config.cue on macOS,
// %APPDATA%\chore\config.cue on Windows). User files are validated against
// an embedded CUE schema (config_schema.cue) so invalid values fail with a
// field-level error instead of silently unmarshaling to defaults.
package config
