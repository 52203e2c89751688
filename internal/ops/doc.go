// SPDX-License-Identifier: MPL-2.0

// Package ops routes side-effecting operations through a guard that honors
// the global --simulate and --verbose options. In simulate mode an operation
// is journaled and skipped; in verbose mode the call is journaled before it
// runs. Shell scripts execute in-process via mvdan.cc/sh.
package ops
