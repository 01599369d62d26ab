package ports

import (
	"context"

	"github.com/aretw0/automata/pkg/domain"
)

// ResultStore persists evaluation results so repeated inputs can be served
// without re-running the automaton.
type ResultStore interface {
	// Save persists the result under key.
	Save(ctx context.Context, key string, result domain.Result) error

	// Load retrieves the result stored under key.
	// Returns domain.ErrResultNotFound if nothing is stored.
	Load(ctx context.Context, key string) (domain.Result, error)

	// Delete removes the result stored under key.
	Delete(ctx context.Context, key string) error

	// List returns the keys currently stored.
	List(ctx context.Context) ([]string, error)
}

// ResultKey builds the store key for an automaton and input pair.
func ResultKey(automaton, input string) string {
	return automaton + ":" + input
}
