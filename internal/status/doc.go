// SPDX-License-Identifier: MPL-2.0

// Package status tracks command error state for the lifetime of the process.
//
// A Tracker records the most recent error code (last write wins) and
// accumulates every reported message in an ordered list keyed by code. The
// log never clears itself; callers decide when a fresh slate is appropriate
// via Clear. State lives in a session.Store so other helpers can inspect it
// through the same process context.
package status
