// SPDX-License-Identifier: MPL-2.0

// Package session provides a process-scoped key-value store shared by the
// option layer and the error-status tracker.
//
// Values are created lazily on first write, live for the process, and can be
// cleared per key. Writes follow last-write-wins semantics; Append maintains
// an ordered list under a key for accumulating values such as log messages.
// A Store is safe for concurrent use.
package session
