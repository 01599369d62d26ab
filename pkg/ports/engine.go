package ports

import "github.com/aretw0/automata/pkg/domain"

// Evaluator runs a fixed automaton over a whole input string.
// Implementations must be safe for concurrent use.
type Evaluator interface {
	Evaluate(input string) domain.Result
}
