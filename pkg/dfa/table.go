package dfa

import (
	"errors"
	"fmt"
	"slices"

	"github.com/aretw0/automata/pkg/domain"
)

var (
	// ErrEmptyTable is returned when a table has no states or no symbols.
	ErrEmptyTable = errors.New("transition table has no states or symbols")
	// ErrIncompleteTable is returned when a row does not define one successor per symbol.
	ErrIncompleteTable = errors.New("transition table is not total")
	// ErrStateOutOfRange is returned when a state index is outside the table.
	ErrStateOutOfRange = errors.New("state out of range")
	// ErrInvalidModulus is returned when a counter modulus is lower than 1.
	ErrInvalidModulus = errors.New("modulus must be positive")
)

// Table is a total transition function (State, Symbol) -> State with a
// designated start state and a fixed accepting set.
type Table struct {
	alphabet  domain.Alphabet
	start     domain.State
	accepting domain.StateSet
	next      [][]domain.State // next[state][symbol column]
}

// NewTable validates and copies the given configuration.
// next must hold one row per state and one successor per alphabet symbol.
func NewTable(alphabet domain.Alphabet, start domain.State, accepting []domain.State, next [][]domain.State) (*Table, error) {
	if len(next) == 0 || len(alphabet) == 0 {
		return nil, ErrEmptyTable
	}

	size := len(next)
	inRange := func(s domain.State) bool { return s >= 0 && int(s) < size }

	if !inRange(start) {
		return nil, fmt.Errorf("%w: start state %d", ErrStateOutOfRange, start)
	}
	for _, s := range accepting {
		if !inRange(s) {
			return nil, fmt.Errorf("%w: accepting state %d", ErrStateOutOfRange, s)
		}
	}

	rows := make([][]domain.State, size)
	for state, row := range next {
		if len(row) != len(alphabet) {
			return nil, fmt.Errorf("%w: state %d has %d successors for %d symbols",
				ErrIncompleteTable, state, len(row), len(alphabet))
		}
		for col, to := range row {
			if !inRange(to) {
				return nil, fmt.Errorf("%w: %d on %q -> %d", ErrStateOutOfRange, state, rune(alphabet[col]), to)
			}
		}
		rows[state] = slices.Clone(row)
	}

	return &Table{
		alphabet:  slices.Clone(alphabet),
		start:     start,
		accepting: domain.NewStateSet(accepting...),
		next:      rows,
	}, nil
}

// NewModCounter builds the product of a "zeros mod m" counter and a
// "ones mod n" counter over the alphabet {0,1}.
//
// State (i, j) is flattened to index i*n+j. Reading '0' moves to
// ((i+1) mod m, j) and reading '1' moves to (i, (j+1) mod n). Only (0,0) is
// accepting, so the table recognizes strings whose count of '0' is divisible
// by m and whose count of '1' is divisible by n.
func NewModCounter(m, n int) (*Table, error) {
	if m < 1 || n < 1 {
		return nil, fmt.Errorf("%w: m=%d n=%d", ErrInvalidModulus, m, n)
	}

	next := make([][]domain.State, m*n)
	for i := 0; i < m; i++ {
		for j := 0; j < n; j++ {
			next[i*n+j] = []domain.State{
				domain.State(((i+1)%m)*n + j),
				domain.State(i*n + (j+1)%n),
			}
		}
	}

	return NewTable(domain.NewAlphabet('0', '1'), 0, []domain.State{0}, next)
}

// Reference returns the mod-5 / mod-3 counter table.
func Reference() *Table {
	t, err := NewModCounter(5, 3)
	if err != nil {
		panic(err) // constant arguments
	}
	return t
}

// Alphabet returns a copy of the table's alphabet.
func (t *Table) Alphabet() domain.Alphabet {
	return slices.Clone(t.alphabet)
}

// Start returns the start state.
func (t *Table) Start() domain.State {
	return t.start
}

// NumStates returns the number of states.
func (t *Table) NumStates() int {
	return len(t.next)
}

// Accepting returns the accepting set.
func (t *Table) Accepting() domain.StateSet {
	return slices.Clone(t.accepting)
}

// IsAccepting reports whether s is an accepting state.
func (t *Table) IsAccepting(s domain.State) bool {
	return t.accepting.Contains(s)
}

// Next returns the successor of from on sym.
func (t *Table) Next(from domain.State, sym domain.Symbol) (domain.State, error) {
	if from < 0 || int(from) >= len(t.next) {
		return 0, fmt.Errorf("%w: %d", ErrStateOutOfRange, from)
	}
	col, ok := t.alphabet.Index(sym)
	if !ok {
		return 0, &domain.UnknownSymbolError{Symbol: sym, Position: -1}
	}
	return t.next[from][col], nil
}

// Evaluate runs the whole input from the start state.
//
// Evaluation stops at the first symbol outside the alphabet; the outcome is
// then OutcomeUnknownSymbol and the remaining symbols are not read. Empty input
// is accepted iff the start state is accepting.
func (t *Table) Evaluate(input string) domain.Result {
	e := NewEngine(t)
	res := domain.Result{
		Input: input,
		Steps: make([]domain.StateSet, 0, len(input)),
	}

	verdict := domain.Pending
	if t.IsAccepting(t.start) {
		verdict = domain.Accepted
	}

	for _, r := range input {
		v, err := e.Consume(domain.Symbol(r))
		if err != nil {
			res.Outcome = domain.OutcomeUnknownSymbol
			res.Final = domain.NewStateSet(e.State())
			res.Reason = err.Error()
			res.Err = err
			return res
		}
		verdict = v
		res.Steps = append(res.Steps, domain.NewStateSet(e.State()))
	}

	res.Final = domain.NewStateSet(e.State())
	res.Outcome = domain.OutcomeRejected
	if verdict == domain.Accepted {
		res.Outcome = domain.OutcomeAccepted
	}
	return res
}

// Accepts reports whether the input is accepted.
func (t *Table) Accepts(input string) bool {
	return t.Evaluate(input).Accepted()
}
