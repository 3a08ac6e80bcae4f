package blob

import (
	"context"
	"sync"
)

// MemStore is the in-process backend used in development and tests.
type MemStore struct {
	mu sync.RWMutex
	m  map[Collection]map[string][]byte
}

func NewMemStore() *MemStore {
	return &MemStore{m: make(map[Collection]map[string][]byte)}
}

func (s *MemStore) Exists(ctx context.Context, c Collection, key string) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	_, ok := s.m[c][key]
	return ok, nil
}

func (s *MemStore) Read(ctx context.Context, c Collection, key string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	data, ok := s.m[c][key]
	if !ok {
		return nil, ErrNotFound
	}

	out := make([]byte, len(data))
	copy(out, data)
	return out, nil
}

func (s *MemStore) Write(ctx context.Context, c Collection, key string, data []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.m[c] == nil {
		s.m[c] = make(map[string][]byte)
	}

	cp := make([]byte, len(data))
	copy(cp, data)
	s.m[c][key] = cp
	return nil
}

func (s *MemStore) Remove(ctx context.Context, c Collection, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.m[c][key]; !ok {
		return ErrNotFound
	}
	delete(s.m[c], key)
	return nil
}
