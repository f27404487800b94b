package store

import (
	"log/slog"
	"sync"
)

// Store owns one State and serialises every transition through Dispatch.
// It is the only writer of its state; readers get immutable snapshots.
type Store struct {
	mu      sync.Mutex
	reducer *Reducer
	state   *State
	logger  *slog.Logger
}

func New(reducer *Reducer, logger *slog.Logger) *Store {
	if logger == nil {
		logger = slog.Default()
	}
	return &Store{
		reducer: reducer,
		state:   reducer.Initial(),
		logger:  logger,
	}
}

// Dispatch applies a and returns the resulting snapshot together with
// whether anything changed.
func (s *Store) Dispatch(a Action) (*State, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	prev := s.state
	s.state = s.reducer.Apply(prev, a)
	changed := s.state != prev
	if a != nil {
		s.logger.Debug("action dispatched", "action", a.Kind(), "noop", !changed, "stage", string(s.state.CurrentStage))
	}
	return s.state, changed
}

// Snapshot returns the current state. It must be treated as read-only.
func (s *Store) Snapshot() *State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}
