// SPDX-License-Identifier: MPL-2.0

// Package options defines the global option schema shared by every chore
// command and a layered value store with fixed precedence:
// runtime Set > command line > config file > schema default.
//
// The schema is a static table; the store is schemaless, so runtime code can
// stash ad-hoc values under names the table does not know. Values live in a
// session.Store, keeping them visible through the same process context as
// the error-status tracker.
package options
