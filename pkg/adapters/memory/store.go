package memory

import (
	"context"
	"slices"
	"sync"

	"github.com/aretw0/automata/pkg/domain"
)

// Store implements ports.ResultStore in memory.
// Safe for concurrent use.
type Store struct {
	data map[string]domain.Result
	mu   sync.RWMutex
}

// NewStore creates a new in-memory store.
func NewStore() *Store {
	return &Store{
		data: make(map[string]domain.Result),
	}
}

// copyResult detaches the slices so callers cannot mutate stored results.
func copyResult(r domain.Result) domain.Result {
	out := r
	out.Final = slices.Clone(r.Final)
	if r.Steps != nil {
		out.Steps = make([]domain.StateSet, len(r.Steps))
		for i, s := range r.Steps {
			out.Steps[i] = slices.Clone(s)
		}
	}
	return out
}

// Save persists the result in memory.
func (s *Store) Save(ctx context.Context, key string, result domain.Result) error {
	copied := copyResult(result)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[key] = copied
	return nil
}

// Load retrieves the result from memory.
func (s *Store) Load(ctx context.Context, key string) (domain.Result, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result, ok := s.data[key]
	if !ok {
		return domain.Result{}, domain.ErrResultNotFound
	}
	return copyResult(result), nil
}

// Delete removes the result.
func (s *Store) Delete(ctx context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.data, key)
	return nil
}

// List returns the stored keys.
func (s *Store) List(ctx context.Context) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	keys := make([]string, 0, len(s.data))
	for k := range s.data {
		keys = append(keys, k)
	}
	return keys, nil
}
