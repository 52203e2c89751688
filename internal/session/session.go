// SPDX-License-Identifier: MPL-2.0

package session

import (
	"sync"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// Store is a string-keyed store of arbitrary values.
// The zero value is not usable; construct with New.
type Store struct {
	mu     sync.RWMutex
	values map[string]any
}

// New creates an empty Store. The backing map is allocated lazily on the
// first write so that an unused store costs nothing beyond the struct.
func New() *Store {
	return &Store{}
}

// Get returns the value stored under key and whether the key exists.
func (s *Store) Get(key string) (any, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	v, ok := s.values[key]
	return v, ok
}

// Set stores v under key, replacing any previous value.
func (s *Store) Set(key string, v any) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.ensure()
	s.values[key] = v
}

// Update atomically replaces the value under key with the result of fn.
// fn receives the current value (and whether one exists) and returns the
// replacement. Read-modify-write sequences that would race as separate
// Get/Set calls should go through Update.
func (s *Store) Update(key string, fn func(cur any, ok bool) any) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.ensure()
	cur, ok := s.values[key]
	s.values[key] = fn(cur, ok)
}

// Append adds v to the ordered list stored under key, creating the list on
// first use. If the key holds a non-list value it is replaced by a list
// containing only v.
func (s *Store) Append(key string, v any) {
	s.Update(key, func(cur any, ok bool) any {
		list, isList := cur.([]any)
		if !ok || !isList {
			return []any{v}
		}
		return append(list, v)
	})
}

// List returns a copy of the list accumulated under key via Append.
// A scalar value or a missing key yields nil.
func (s *Store) List(key string) []any {
	s.mu.RLock()
	defer s.mu.RUnlock()

	list, ok := s.values[key].([]any)
	if !ok {
		return nil
	}
	return slices.Clone(list)
}

// Clear removes the value stored under key.
func (s *Store) Clear(key string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.values, key)
}

// Keys returns all keys currently present, sorted for stable iteration.
func (s *Store) Keys() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	keys := maps.Keys(s.values)
	slices.Sort(keys)
	return keys
}

// Reset removes every key. Intended for test cleanup.
func (s *Store) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.values = nil
}

func (s *Store) ensure() {
	if s.values == nil {
		s.values = make(map[string]any)
	}
}

// defaultStore backs the package-level accessors used by command code.
var defaultStore = New()

// Default returns the process-wide store.
func Default() *Store {
	return defaultStore
}
