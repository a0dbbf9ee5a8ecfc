package memory

import (
	"context"
	"sync"

	"petpal-lite/internal/ports/kv"
)

// Store guarda los blobs en un map. Para tests y modo dev sin data dir.
type Store struct {
	mu   sync.RWMutex
	data map[string][]byte
}

func NewStore() *Store {
	return &Store{
		data: make(map[string][]byte),
	}
}

func (s *Store) Read(ctx context.Context, key string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	b, ok := s.data[key]
	if !ok {
		return nil, kv.ErrNotFound
	}

	// copia defensiva: el caller no debe poder mutar el blob guardado
	out := make([]byte, len(b))
	copy(out, b)
	return out, nil
}

func (s *Store) Write(ctx context.Context, key string, value []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	b := make([]byte, len(value))
	copy(b, value)
	s.data[key] = b
	return nil
}

func (s *Store) Remove(ctx context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.data, key)
	return nil
}
