package session

import (
	"testing"
	"time"

	"github.com/ahmetcoskunkizilkaya/ai-counsellor/internal/catalog"
	"github.com/ahmetcoskunkizilkaya/ai-counsellor/internal/store"
)

func newRegistry(ttl time.Duration) *Registry {
	return NewRegistry(store.NewReducer(catalog.Default(), nil), ttl, nil)
}

func TestCreateAndGet(t *testing.T) {
	r := newRegistry(time.Hour)
	s := r.Create()
	got, ok := r.Get(s.ID)
	if !ok || got != s {
		t.Fatalf("get = %v, %v", got, ok)
	}
	if got.Store.Snapshot().IsAuthenticated {
		t.Fatal("new session starts authenticated")
	}
	r.Delete(s.ID)
	if _, ok := r.Get(s.ID); ok {
		t.Fatal("deleted session still present")
	}
}

func TestSessionsAreIsolated(t *testing.T) {
	r := newRegistry(time.Hour)
	a, b := r.Create(), r.Create()
	if a.ID == b.ID || a.Store == b.Store {
		t.Fatal("sessions share identity or store")
	}
}

func TestSweepEvictsIdleSessions(t *testing.T) {
	r := newRegistry(time.Minute)
	clock := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	r.now = func() time.Time { return clock }

	idle := r.Create()
	active := r.Create()

	clock = clock.Add(45 * time.Second)
	r.Get(active.ID)
	clock = clock.Add(30 * time.Second)

	if n := r.Sweep(); n != 1 {
		t.Fatalf("swept = %d, want 1", n)
	}
	if _, ok := r.Get(idle.ID); ok {
		t.Fatal("idle session survived the sweep")
	}
	if _, ok := r.Get(active.ID); !ok {
		t.Fatal("active session was evicted")
	}
}
