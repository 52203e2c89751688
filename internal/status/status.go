// SPDX-License-Identifier: MPL-2.0

package status

import (
	"fmt"

	"chore-cli/internal/session"

	"golang.org/x/exp/maps"
)

// Session keys used by the tracker. Exported state is only reachable through
// Tracker methods; the keys are an implementation detail of the store layout.
const (
	codeKey = "status.code"
	logKey  = "status.log"
)

type (
	// CommandError is the error returned by Tracker.Set so callers can
	// propagate a recorded failure directly:
	//
	//	return tracker.Set("script_execution_failed", "exit status 2")
	CommandError struct {
		// Code identifies the failure class (e.g. "config_load_failed").
		Code string

		// Message is the human-readable description recorded in the log.
		Message string
	}

	// Tracker records error codes and messages in a session store.
	Tracker struct {
		store *session.Store
	}
)

// Error implements the error interface.
func (e *CommandError) Error() string {
	if e.Message == "" {
		return e.Code
	}
	return e.Code + ": " + e.Message
}

// NewTracker creates a Tracker backed by the given store.
func NewTracker(store *session.Store) *Tracker {
	return &Tracker{store: store}
}

// Set records code as the current error status and appends message to the
// ordered log for that code. It always returns a non-nil *CommandError so
// call sites can report and propagate in one statement.
func (t *Tracker) Set(code, message string) error {
	t.store.Set(codeKey, code)
	t.store.Update(logKey, func(cur any, ok bool) any {
		log, isMap := cur.(map[string][]string)
		if !ok || !isMap {
			log = make(map[string][]string)
		}
		log[code] = append(log[code], message)
		return log
	})

	return &CommandError{Code: code, Message: message}
}

// Setf is Set with fmt.Sprintf formatting of the message.
func (t *Tracker) Setf(code, format string, args ...any) error {
	return t.Set(code, fmt.Sprintf(format, args...))
}

// Code returns the most recently recorded error code, or "" when no error
// has been set since the last Clear.
func (t *Tracker) Code() string {
	v, ok := t.store.Get(codeKey)
	if !ok {
		return ""
	}
	code, _ := v.(string)
	return code
}

// Failed reports whether any error code is currently set.
func (t *Tracker) Failed() bool {
	return t.Code() != ""
}

// Err returns a CommandError for the current code, or nil when no error is
// set. The message is the last one recorded for that code.
func (t *Tracker) Err() error {
	code := t.Code()
	if code == "" {
		return nil
	}

	msgs := t.Messages(code)
	msg := ""
	if len(msgs) > 0 {
		msg = msgs[len(msgs)-1]
	}
	return &CommandError{Code: code, Message: msg}
}

// Log returns a copy of the accumulated error log keyed by code.
func (t *Tracker) Log() map[string][]string {
	v, ok := t.store.Get(logKey)
	if !ok {
		return nil
	}
	log, isMap := v.(map[string][]string)
	if !isMap {
		return nil
	}

	out := make(map[string][]string, len(log))
	for code, msgs := range log {
		out[code] = append([]string(nil), msgs...)
	}
	return out
}

// Messages returns the ordered messages recorded for code.
func (t *Tracker) Messages(code string) []string {
	return t.Log()[code]
}

// Codes returns every code present in the log.
func (t *Tracker) Codes() []string {
	return maps.Keys(t.Log())
}

// Clear resets the current code and discards the accumulated log.
func (t *Tracker) Clear() {
	t.store.Clear(codeKey)
	t.store.Clear(logKey)
}

// defaultTracker records errors in the process-wide session store.
var defaultTracker = NewTracker(session.Default())

// Default returns the process-wide tracker.
func Default() *Tracker {
	return defaultTracker
}
