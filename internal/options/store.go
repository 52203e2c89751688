// SPDX-License-Identifier: MPL-2.0

package options

import (
	"github.com/spf13/pflag"

	"chore-cli/internal/session"
)

// Value layers in ascending precedence. Get walks them top-down.
const (
	LayerDefault Layer = iota
	LayerConfig
	LayerCLI
	LayerRuntime
)

type (
	// Layer identifies where an option value came from.
	Layer int

	// Store resolves option values across layers. Each layer is a map held
	// in a session.Store under its own key.
	Store struct {
		store *session.Store
	}
)

// layerKey returns the session key holding a layer's value map.
func layerKey(l Layer) string {
	switch l {
	case LayerConfig:
		return "options.config"
	case LayerCLI:
		return "options.cli"
	case LayerRuntime:
		return "options.runtime"
	default:
		return "options.default"
	}
}

// NewStore creates a Store backed by the given session store and seeds the
// default layer from the schema table.
func NewStore(s *session.Store) *Store {
	st := &Store{store: s}
	for _, opt := range globals {
		if opt.Default == "" {
			continue
		}
		if opt.TakesValue {
			st.SetAt(LayerDefault, opt.Name, opt.Default)
		} else {
			st.SetAt(LayerDefault, opt.Name, opt.Default == "true")
		}
	}
	return st
}

// SetAt stores a value for name in the given layer. Last write wins within
// a layer.
func (s *Store) SetAt(layer Layer, name string, v any) {
	s.store.Update(layerKey(layer), func(cur any, ok bool) any {
		m, isMap := cur.(map[string]any)
		if !ok || !isMap {
			m = make(map[string]any)
		}
		m[name] = v
		return m
	})
}

// Set stores a runtime-layer value, which outranks every other source.
// Names unknown to the schema table are accepted; the store is schemaless.
func (s *Store) Set(name string, v any) {
	s.SetAt(LayerRuntime, name, v)
}

// Get resolves name by precedence: runtime > cli > config > default.
func (s *Store) Get(name string) (any, bool) {
	for _, layer := range []Layer{LayerRuntime, LayerCLI, LayerConfig, LayerDefault} {
		if v, ok := s.layerValue(layer, name); ok {
			return v, true
		}
	}
	return nil, false
}

// Bool resolves name and coerces the value to bool. Missing names are false.
func (s *Store) Bool(name string) bool {
	v, ok := s.Get(name)
	if !ok {
		return false
	}
	return asBool(v)
}

// String resolves name and coerces the value to string. Missing names and
// non-string values yield "".
func (s *Store) String(name string) string {
	v, ok := s.Get(name)
	if !ok {
		return ""
	}
	str, _ := v.(string)
	return str
}

// Clear removes the runtime-layer entry for name, re-exposing lower layers.
func (s *Store) Clear(name string) {
	s.store.Update(layerKey(LayerRuntime), func(cur any, ok bool) any {
		m, isMap := cur.(map[string]any)
		if !ok || !isMap {
			return map[string]any{}
		}
		delete(m, name)
		return m
	})
}

// LoadFlags copies every global flag the user changed on the command line
// into the CLI layer.
func (s *Store) LoadFlags(fs *pflag.FlagSet) {
	for _, opt := range globals {
		flag := fs.Lookup(opt.Name)
		if flag == nil || !flag.Changed {
			continue
		}
		if opt.TakesValue {
			s.SetAt(LayerCLI, opt.Name, flag.Value.String())
		} else {
			s.SetAt(LayerCLI, opt.Name, asBool(flag.Value.String()))
		}
	}
}

// LoadConfigValue stores a config-file value in the config layer.
func (s *Store) LoadConfigValue(name string, v any) {
	s.SetAt(LayerConfig, name, v)
}

func (s *Store) layerValue(layer Layer, name string) (any, bool) {
	cur, ok := s.store.Get(layerKey(layer))
	if !ok {
		return nil, false
	}
	m, isMap := cur.(map[string]any)
	if !isMap {
		return nil, false
	}
	v, ok := m[name]
	return v, ok
}

// defaultStore resolves options against the process-wide session store.
var defaultStore = NewStore(session.Default())

// Default returns the process-wide option store.
func Default() *Store {
	return defaultStore
}
