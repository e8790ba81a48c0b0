// Package session persists per-trace view state across runs, so reopening a
// trace lands you back where you left off.
package session

import (
	"log"
	"strings"

	"github.com/quasilyte/gdata/v2"
	"gopkg.in/yaml.v3"

	"github.com/skimline/skimline/internal/scrollstate"
)

const scrollObject = "scroll"

// Store reads and writes view state in the platform data directory. A Store
// with no backing manager works in degraded mode: saves are dropped and loads
// find nothing, but nothing errors.
type Store struct {
	manager *gdata.Manager
}

// Open creates a Store backed by the platform data directory for appName.
// Storage being unavailable is not fatal, it just disables persistence.
func Open(appName string) *Store {
	m, err := gdata.Open(gdata.Config{AppName: appName})
	if err != nil {
		log.Printf("WARNING: session storage unavailable: %v", err)
		return &Store{}
	}
	return &Store{manager: m}
}

type scrollRecord struct {
	Offset float64 `yaml:"offset"`
	Length float64 `yaml:"length"`
}

// SaveScrollState records the scroll state for the named trace.
func (s *Store) SaveScrollState(traceName string, st scrollstate.State) error {
	if s.manager == nil {
		return nil
	}
	data, err := yaml.Marshal(scrollRecord{Offset: st.Offset, Length: st.Length})
	if err != nil {
		return err
	}
	return s.manager.SaveObjectProp(scrollObject, propName(traceName), data)
}

// LoadScrollState returns the saved scroll state for the named trace. The
// second result is false when nothing usable is stored.
func (s *Store) LoadScrollState(traceName string) (scrollstate.State, bool) {
	if s.manager == nil {
		return scrollstate.State{}, false
	}
	prop := propName(traceName)
	if !s.manager.ObjectPropExists(scrollObject, prop) {
		return scrollstate.State{}, false
	}
	data, err := s.manager.LoadObjectProp(scrollObject, prop)
	if err != nil {
		log.Printf("WARNING: cannot load saved session for %q: %v", traceName, err)
		return scrollstate.State{}, false
	}
	var rec scrollRecord
	if err := yaml.Unmarshal(data, &rec); err != nil {
		log.Printf("WARNING: corrupt saved session for %q: %v", traceName, err)
		return scrollstate.State{}, false
	}
	return scrollstate.State{Offset: rec.Offset, Length: rec.Length}, true
}

// propName maps a trace name (often a file path) to a storage-safe key.
func propName(traceName string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			return r
		case r == '.', r == '_', r == '-':
			return r
		default:
			return '-'
		}
	}, traceName)
}
