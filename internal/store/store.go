// Package store owns the live state tree. All mutation flows through one
// serialized dispatch path: an action is reduced against the current tree and
// the resulting snapshot is persisted whole. There is no partial write; every
// persisted document is a complete, self-consistent tree.
package store

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/ariseapp/arise/internal/gamify"
	"github.com/ariseapp/arise/internal/logger"
	"github.com/ariseapp/arise/internal/state"
	"github.com/ariseapp/arise/internal/storage"
)

type Store struct {
	provider storage.Provider
	current  state.AppState

	// Now supplies timestamps for reducer transitions; overridable in tests.
	Now func() time.Time
}

// Open reads the persisted snapshot from the provider and builds the store.
// A missing slot starts from the default tree; a malformed snapshot is logged
// and also falls back to defaults, never failing the caller.
func Open(provider storage.Provider) *Store {
	s := &Store{
		provider: provider,
		Now:      time.Now,
	}

	data, err := provider.Read()
	switch {
	case err == storage.ErrNotFound:
		s.current = state.DefaultState()
	case err != nil:
		logger.Warn("Failed to read snapshot, starting from defaults", "error", err)
		s.current = state.DefaultState()
	default:
		decoded, err := Decode(data)
		if err != nil {
			logger.Warn("Failed to parse snapshot, starting from defaults", "error", err)
			s.current = state.DefaultState()
		} else {
			s.current = decoded
		}
	}

	return s
}

// State returns the current state tree.
func (s *Store) State() state.AppState {
	return s.current
}

// Dispatch applies the action and persists the resulting snapshot. The
// reduction itself never fails; the returned error reports persistence
// problems only, with the in-memory tree already advanced.
func (s *Store) Dispatch(action state.Action) error {
	s.current = state.Reduce(s.current, action, s.Now())
	return s.persist()
}

func (s *Store) persist() error {
	data, err := json.Marshal(s.current)
	if err != nil {
		return fmt.Errorf("failed to serialize state: %w", err)
	}
	if err := s.provider.Write(data); err != nil {
		return fmt.Errorf("failed to persist state: %w", err)
	}
	return nil
}

// Decode parses a snapshot document, merging it over the default tree so
// top-level collections missing from older snapshots keep their defaults.
// The level counter is re-derived from XP to heal any drift in stored data.
func Decode(data []byte) (state.AppState, error) {
	merged := state.DefaultState()
	if err := json.Unmarshal(data, &merged); err != nil {
		return state.AppState{}, fmt.Errorf("failed to parse snapshot: %w", err)
	}
	if merged.UserStats.XP < 0 {
		merged.UserStats.XP = 0
	}
	merged.UserStats.Level = gamify.Level(merged.UserStats.XP)
	return merged, nil
}

// Export serializes the current tree as an indented document suitable for
// backup files.
func (s *Store) Export() ([]byte, error) {
	data, err := json.MarshalIndent(s.current, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to serialize state: %w", err)
	}
	return data, nil
}

// Import validates and loads a previously exported document, replacing the
// entire tree. A document that does not parse is rejected without touching
// the current state.
func (s *Store) Import(data []byte) error {
	decoded, err := Decode(data)
	if err != nil {
		return fmt.Errorf("invalid import document: %w", err)
	}
	return s.Dispatch(state.LoadState{State: decoded})
}
