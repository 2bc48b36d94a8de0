package audit

import (
	"context"
	"sync"
)

// Store persists screening events for the process lifetime.
type Store interface {
	Append(ctx context.Context, event Event) error
	List(ctx context.Context) ([]Event, error)
}

// The engine has no disk persistence, so the in-memory store is the only
// implementation; the cap keeps a long-lived process bounded.
const defaultStoreCap = 1024

type MemoryStore struct {
	mu     sync.RWMutex
	events []Event
	cap    int
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{cap: defaultStoreCap}
}

// Append records an event, dropping the oldest past the cap.
func (s *MemoryStore) Append(_ context.Context, event Event) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = append(s.events, event)
	if len(s.events) > s.cap {
		s.events = s.events[len(s.events)-s.cap:]
	}
	return nil
}

// List returns a copy of the stored events in append order.
func (s *MemoryStore) List(_ context.Context) ([]Event, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]Event, len(s.events))
	copy(out, s.events)
	return out, nil
}
