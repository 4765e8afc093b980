// Package memory provides an in-memory ProjectStore, used by tests and
// single-process setups with no durability requirement.
package memory

import (
	"context"
	"sync"

	"github.com/easel-ai/easel/pkg/domain"
)

// Store implements ports.ProjectStore in memory.
// Safe for concurrent use.
type Store struct {
	data map[string]*domain.Project
	mu   sync.RWMutex
}

// NewStore creates a new in-memory store.
func NewStore() *Store {
	return &Store{
		data: make(map[string]*domain.Project),
	}
}

// Save persists a deep copy of the project so later caller mutations
// cannot reach into the store.
func (s *Store) Save(ctx context.Context, project *domain.Project) error {
	copied := project.Clone()

	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[project.ID] = copied
	return nil
}

// Load retrieves a copy of the project.
func (s *Store) Load(ctx context.Context, projectID string) (*domain.Project, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	project, ok := s.data[projectID]
	if !ok {
		return nil, domain.ErrProjectNotFound
	}
	return project.Clone(), nil
}

// Delete removes the project.
func (s *Store) Delete(ctx context.Context, projectID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.data, projectID)
	return nil
}

// List returns the stored project ids.
func (s *Store) List(ctx context.Context) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ids := make([]string, 0, len(s.data))
	for id := range s.data {
		ids = append(ids, id)
	}
	return ids, nil
}
