// SPDX-License-Identifier: MPL-2.0

// Package platform centralizes platform-specific concerns, starting with the
// runtime.GOOS string literals used for configuration path resolution.
package platform
