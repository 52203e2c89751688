// SPDX-License-Identifier: MPL-2.0

// Package issue provides actionable error handling with user-friendly messages.
//
// Each known failure class has a catalog entry with Markdown-formatted
// remediation guidance rendered through glamour. Catalog entries carry the
// status code recorded by the error tracker, so a tracked failure can be
// resolved back to its guidance at report time.
package issue
