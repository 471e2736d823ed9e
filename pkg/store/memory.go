package store

import (
	"context"
	"sync"

	"github.com/menuforge/menuforge/pkg/menu"
	"github.com/menuforge/menuforge/pkg/observability"
)

// MemoryStore keeps projects in a map. Useful for tests and throwaway
// sessions; contents vanish on Close.
type MemoryStore struct {
	mu       sync.RWMutex
	projects map[string]*menu.MenuProject
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{projects: make(map[string]*menu.MenuProject)}
}

// Get retrieves a project by id.
func (s *MemoryStore) Get(ctx context.Context, id string) (*menu.MenuProject, error) {
	s.mu.RLock()
	p, ok := s.projects[id]
	s.mu.RUnlock()

	observability.Store().OnStoreGet(ctx, "memory", ok)
	if !ok {
		return nil, ErrNotFound
	}
	cp := *p
	return &cp, nil
}

// Put stores a copy of the project.
func (s *MemoryStore) Put(ctx context.Context, p *menu.MenuProject) error {
	cp := *p
	s.mu.Lock()
	s.projects[p.ID] = &cp
	s.mu.Unlock()

	observability.Store().OnStorePut(ctx, "memory", 0)
	return nil
}

// List returns all stored projects.
func (s *MemoryStore) List(ctx context.Context) ([]*menu.MenuProject, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*menu.MenuProject, 0, len(s.projects))
	for _, p := range s.projects {
		cp := *p
		out = append(out, &cp)
	}
	return out, nil
}

// Delete removes a project. Missing ids are ignored.
func (s *MemoryStore) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	delete(s.projects, id)
	s.mu.Unlock()

	observability.Store().OnStoreDelete(ctx, "memory")
	return nil
}

// Close clears the store.
func (s *MemoryStore) Close() error {
	s.mu.Lock()
	s.projects = make(map[string]*menu.MenuProject)
	s.mu.Unlock()
	return nil
}

// Ensure MemoryStore implements Store.
var _ Store = (*MemoryStore)(nil)
