package storage

import (
	"context"
	"sync"
)

// MemoryStore keeps slots in process memory. Used by tests and by the
// "memory" backend for ephemeral runs; nothing survives the process.
type MemoryStore struct {
	mu    sync.Mutex
	slots map[string][]byte
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{slots: make(map[string][]byte)}
}

func (s *MemoryStore) Get(_ context.Context, slot string) ([]byte, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	blob, ok := s.slots[slot]
	if !ok {
		return nil, false, nil
	}
	out := make([]byte, len(blob))
	copy(out, blob)
	return out, true, nil
}

func (s *MemoryStore) Set(_ context.Context, slot string, blob []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored := make([]byte, len(blob))
	copy(stored, blob)
	s.slots[slot] = stored
	return nil
}

func (s *MemoryStore) Clear(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.slots = make(map[string][]byte)
	return nil
}
