// SPDX-License-Identifier: MPL-2.0

package journal

import (
	"fmt"
	"runtime"
	"sync"
	"time"

	"golang.org/x/exp/slices"
)

// Severity levels in ascending order. Filtering keeps entries at or above
// the configured minimum.
const (
	LevelDebug Level = iota
	LevelInfo
	LevelNotice
	LevelSuccess
	LevelWarning
	LevelError
)

// ErrInvalidLevel is the sentinel error returned by ParseLevel for
// unrecognized level names.
var ErrInvalidLevel = fmt.Errorf("invalid log level")

type (
	// Level classifies journal entries.
	Level int

	// Entry is a single journal record. Entries are immutable once appended.
	Entry struct {
		// Level is the entry severity.
		Level Level

		// Message is the formatted log message.
		Message string

		// Time is when the entry was recorded.
		Time time.Time

		// MemoryBytes is the heap allocation at record time.
		MemoryBytes uint64

		// Err carries the originating error for error-level entries (optional).
		Err error
	}

	// Sink receives entries that pass the level filter.
	Sink func(Entry)

	// Journal is a leveled log with an in-memory backlog and a pluggable sink.
	Journal struct {
		mu      sync.Mutex
		min     Level
		sink    Sink
		entries []Entry

		// now allows tests to control entry timestamps.
		now func() time.Time
	}

	// Option configures a Journal at construction time.
	Option func(*Journal)
)

// String returns the lowercase level name.
func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "debug"
	case LevelInfo:
		return "info"
	case LevelNotice:
		return "notice"
	case LevelSuccess:
		return "success"
	case LevelWarning:
		return "warning"
	case LevelError:
		return "error"
	default:
		return fmt.Sprintf("level(%d)", int(l))
	}
}

// ParseLevel converts a level name to a Level. It wraps ErrInvalidLevel for
// errors.Is() compatibility.
func ParseLevel(name string) (Level, error) {
	for l := LevelDebug; l <= LevelError; l++ {
		if l.String() == name {
			return l, nil
		}
	}
	return LevelInfo, fmt.Errorf("%w: %q", ErrInvalidLevel, name)
}

// WithMinLevel sets the minimum level forwarded to the sink.
func WithMinLevel(l Level) Option {
	return func(j *Journal) { j.min = l }
}

// WithSink sets the sink entries are forwarded to.
func WithSink(s Sink) Option {
	return func(j *Journal) { j.sink = s }
}

// WithClock overrides the timestamp source. Intended for tests.
func WithClock(now func() time.Time) Option {
	return func(j *Journal) { j.now = now }
}

// New creates a Journal. Without options it filters below LevelInfo and has
// no sink, so entries only accumulate in the backlog.
func New(opts ...Option) *Journal {
	j := &Journal{
		min: LevelInfo,
		now: time.Now,
	}
	for _, opt := range opts {
		opt(j)
	}
	return j
}

// Log records a message at the given level. The entry always lands in the
// backlog; the sink only sees it when level >= the configured minimum.
func (j *Journal) Log(level Level, msg string) {
	j.record(Entry{Level: level, Message: msg})
}

// Logf records a formatted message at the given level.
func (j *Journal) Logf(level Level, format string, args ...any) {
	j.record(Entry{Level: level, Message: fmt.Sprintf(format, args...)})
}

// LogErr records an error-level entry carrying err alongside the message.
func (j *Journal) LogErr(msg string, err error) {
	j.record(Entry{Level: LevelError, Message: msg, Err: err})
}

// Debug records a debug-level message.
func (j *Journal) Debug(msg string) { j.Log(LevelDebug, msg) }

// Debugf records a formatted debug-level message.
func (j *Journal) Debugf(format string, args ...any) { j.Logf(LevelDebug, format, args...) }

// Info records an info-level message.
func (j *Journal) Info(msg string) { j.Log(LevelInfo, msg) }

// Notice records a notice-level message.
func (j *Journal) Notice(msg string) { j.Log(LevelNotice, msg) }

// Noticef records a formatted notice-level message.
func (j *Journal) Noticef(format string, args ...any) { j.Logf(LevelNotice, format, args...) }

// Success records a success-level message.
func (j *Journal) Success(msg string) { j.Log(LevelSuccess, msg) }

// Warning records a warning-level message.
func (j *Journal) Warning(msg string) { j.Log(LevelWarning, msg) }

// Error records an error-level message.
func (j *Journal) Error(msg string) { j.Log(LevelError, msg) }

// SetMinLevel changes the sink filter threshold for subsequent entries.
func (j *Journal) SetMinLevel(l Level) {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.min = l
}

// SetSink replaces the sink for subsequent entries.
func (j *Journal) SetSink(s Sink) {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.sink = s
}

// Backlog returns a copy of every recorded entry in order.
func (j *Journal) Backlog() []Entry {
	j.mu.Lock()
	defer j.mu.Unlock()
	return slices.Clone(j.entries)
}

// ByLevel returns the recorded entries with exactly the given level.
func (j *Journal) ByLevel(l Level) []Entry {
	j.mu.Lock()
	defer j.mu.Unlock()

	var out []Entry
	for _, e := range j.entries {
		if e.Level == l {
			out = append(out, e)
		}
	}
	return out
}

// Clear discards the backlog. The sink and filter are untouched.
func (j *Journal) Clear() {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.entries = nil
}

func (j *Journal) record(e Entry) {
	var mem runtime.MemStats
	runtime.ReadMemStats(&mem)

	j.mu.Lock()
	e.Time = j.now()
	e.MemoryBytes = mem.HeapAlloc
	j.entries = append(j.entries, e)
	sink := j.sink
	forward := e.Level >= j.min
	j.mu.Unlock()

	// The sink runs outside the lock so a sink that queries the journal
	// cannot deadlock.
	if forward && sink != nil {
		sink(e)
	}
}

// defaultJournal is the process-wide journal used by command code.
var defaultJournal = New(WithSink(NewCharmSink(nil)))

// Default returns the process-wide journal.
func Default() *Journal {
	return defaultJournal
}
