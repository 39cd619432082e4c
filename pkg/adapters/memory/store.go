package memory

import (
	"context"
	"sync"

	"github.com/aretw0/automaton/pkg/domain"
)

// Store implements ports.RunStore in memory.
// Safe for concurrent use.
type Store struct {
	data  map[string]*domain.Run
	order []string
	mu    sync.RWMutex
}

// NewStore creates a new in-memory store.
func NewStore() *Store {
	return &Store{
		data: make(map[string]*domain.Run),
	}
}

// Save persists a copy of the run.
func (s *Store) Save(ctx context.Context, run *domain.Run) error {
	copied := cloneRun(run)

	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.data[run.ID]; !exists {
		s.order = append(s.order, run.ID)
	}
	s.data[run.ID] = copied
	return nil
}

// Load retrieves a copy of the run so callers can't mutate the store.
func (s *Store) Load(ctx context.Context, runID string) (*domain.Run, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	run, ok := s.data[runID]
	if !ok {
		return nil, domain.ErrRunNotFound
	}
	return cloneRun(run), nil
}

// Delete removes the run.
func (s *Store) Delete(ctx context.Context, runID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.data[runID]; !ok {
		return nil
	}
	delete(s.data, runID)
	for i, id := range s.order {
		if id == runID {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	return nil
}

// List returns the stored run IDs in insertion order.
func (s *Store) List(ctx context.Context) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]string{}, s.order...), nil
}

func cloneRun(run *domain.Run) *domain.Run {
	c := *run
	c.Steps = append([]domain.Step(nil), run.Steps...)
	return &c
}
