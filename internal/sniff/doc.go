// SPDX-License-Identifier: MPL-2.0

// Package sniff detects archive content types from magic bytes, with a file
// extension fallback for streams whose header is missing or unreadable.
package sniff
