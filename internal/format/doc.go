// SPDX-License-Identifier: MPL-2.0

// Package format holds small pure helpers for presenting values in command
// output: byte-size formatting and a couple of collection utilities.
package format
