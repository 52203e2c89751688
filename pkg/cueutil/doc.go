// SPDX-License-Identifier: MPL-2.0

// Package cueutil provides shared helpers for CUE-backed file parsing:
// error formatting with JSON-path prefixes and input size limits.
package cueutil
