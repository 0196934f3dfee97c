package creds

import (
	"context"
	"sync"
)

// MemoryStore holds the credential for the lifetime of the process. Used as
// a fallback when the local database cannot be opened: persistence degrades,
// the session still works.
type MemoryStore struct {
	mu sync.Mutex
	c  *Credential
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (s *MemoryStore) Get(ctx context.Context) (*Credential, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.c == nil {
		return nil, nil
	}
	c := *s.c
	return &c, nil
}

func (s *MemoryStore) Set(ctx context.Context, c Credential) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.c = &c
	return nil
}

func (s *MemoryStore) Clear(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.c = nil
	return nil
}

var _ Store = (*MemoryStore)(nil)
