package store

import (
	"fmt"
	"sync"
	"testing"

	"github.com/ahmetcoskunkizilkaya/ai-counsellor/internal/models"
)

func TestDispatchReportsChanges(t *testing.T) {
	st := New(newReducer(), nil)
	if _, changed := st.Dispatch(UnlockUniversity{}); changed {
		t.Fatal("unlock on a fresh store reported a change")
	}
	snap, changed := st.Dispatch(Login{User: demoUser()})
	if !changed || !snap.IsAuthenticated {
		t.Fatalf("login: changed=%v auth=%v", changed, snap.IsAuthenticated)
	}
	if st.Snapshot() != snap {
		t.Fatal("snapshot differs from the last dispatch result")
	}
}

func TestDispatchSerialisesWriters(t *testing.T) {
	st := New(newReducer(), nil)
	st.Dispatch(Login{User: demoUser()})

	const writers = 32
	var wg sync.WaitGroup
	for i := 0; i < writers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			st.Dispatch(AddChatMessage{Message: models.ChatMessage{ID: fmt.Sprintf("m-%d", i), Role: models.RoleUser}})
		}(i)
	}
	wg.Wait()

	if got := len(st.Snapshot().ChatHistory); got != writers+1 {
		t.Fatalf("history = %d, want %d", got, writers+1)
	}
}
