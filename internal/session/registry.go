// Package session keeps one store per logged-in applicant.
package session

import (
	"log/slog"
	"sync"
	"time"

	"github.com/ahmetcoskunkizilkaya/ai-counsellor/internal/store"
	"github.com/google/uuid"
)

type Session struct {
	ID        string
	Store     *store.Store
	CreatedAt time.Time
}

type entry struct {
	session  *Session
	lastSeen time.Time
}

// Registry maps session ids to live stores. Sessions idle longer than the
// configured TTL are dropped by Sweep.
type Registry struct {
	mu       sync.RWMutex
	sessions map[string]*entry
	reducer  *store.Reducer
	idleTTL  time.Duration
	now      func() time.Time
	logger   *slog.Logger
}

func NewRegistry(reducer *store.Reducer, idleTTL time.Duration, logger *slog.Logger) *Registry {
	if logger == nil {
		logger = slog.Default()
	}
	return &Registry{
		sessions: make(map[string]*entry),
		reducer:  reducer,
		idleTTL:  idleTTL,
		now:      time.Now,
		logger:   logger,
	}
}

// Create starts a session with a fresh store.
func (r *Registry) Create() *Session {
	now := r.now()
	id := uuid.NewString()
	s := &Session{
		ID:        id,
		Store:     store.New(r.reducer, r.logger.With("session_id", id)),
		CreatedAt: now,
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.sessions[id] = &entry{session: s, lastSeen: now}
	return s
}

// Get returns the session and marks it as active.
func (r *Registry) Get(id string) (*Session, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	e, ok := r.sessions[id]
	if !ok {
		return nil, false
	}
	e.lastSeen = r.now()
	return e.session, true
}

func (r *Registry) Delete(id string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.sessions, id)
}

func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.sessions)
}

// Sweep drops idle sessions and returns how many were removed.
func (r *Registry) Sweep() int {
	if r.idleTTL <= 0 {
		return 0
	}
	cutoff := r.now().Add(-r.idleTTL)

	r.mu.Lock()
	defer r.mu.Unlock()
	removed := 0
	for id, e := range r.sessions {
		if e.lastSeen.Before(cutoff) {
			delete(r.sessions, id)
			removed++
		}
	}
	return removed
}

// StartSweeper runs Sweep every interval until done is closed. It does
// nothing when either the interval or the idle TTL is zero.
func (r *Registry) StartSweeper(interval time.Duration, done chan struct{}) {
	if interval <= 0 || r.idleTTL <= 0 {
		return
	}
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				if n := r.Sweep(); n > 0 {
					r.logger.Info("idle sessions evicted", "evicted", n, "remaining", r.Len())
				}
			case <-done:
				return
			}
		}
	}()
}
