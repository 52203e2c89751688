// SPDX-License-Identifier: MPL-2.0

// Package journal provides the leveled logging facade used by chore commands.
//
// Every entry is appended to an in-memory backlog regardless of level; the
// minimum level only gates what is forwarded to the sink. The backlog is the
// source of truth for post-run reporting, the sink is presentation. The
// default sink adapts github.com/charmbracelet/log.
package journal
