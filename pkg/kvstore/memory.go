package kvstore

import (
	"context"
	"sync"
)

// memory implements Store using an in-memory map.
type memory struct {
	mu    sync.RWMutex
	slots map[string][]byte
}

// NewMemoryStore creates a new in-memory Store. Values live as long as
// the process; tests and single-run tools use this backend.
func NewMemoryStore() Store {
	return &memory{
		slots: make(map[string][]byte),
	}
}

func (s *memory) Read(_ context.Context, key string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	value, ok := s.slots[key]
	if !ok {
		return nil, ErrNotFound
	}
	out := make([]byte, len(value))
	copy(out, value)
	return out, nil
}

func (s *memory) Write(_ context.Context, key string, value []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored := make([]byte, len(value))
	copy(stored, value)
	s.slots[key] = stored
	return nil
}

func (s *memory) Delete(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.slots, key)
	return nil
}
