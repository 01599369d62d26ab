package enfa

import (
	"errors"
	"fmt"
	"slices"

	"github.com/aretw0/automata/pkg/domain"
)

var (
	// ErrNoStates is returned when a relation is declared with no states.
	ErrNoStates = errors.New("relation has no states")
	// ErrStateOutOfRange is returned when a transition or marker references an undeclared state.
	ErrStateOutOfRange = errors.New("state out of range")
	// ErrSymbolNotInAlphabet is returned when a transition is labeled with an undeclared symbol.
	ErrSymbolNotInAlphabet = errors.New("symbol not in alphabet")
)

type edge struct {
	from  domain.State
	label domain.Label
}

// Relation is a partial function (State, Label) -> set of States.
type Relation struct {
	size      int
	alphabet  domain.Alphabet
	start     domain.State
	accepting domain.StateSet
	edges     map[edge]domain.StateSet
}

// Builder accumulates transitions for a Relation.
// The first invalid call is remembered and reported by Build.
type Builder struct {
	size      int
	alphabet  domain.Alphabet
	start     domain.State
	accepting []domain.State
	edges     map[edge][]domain.State
	err       error
}

// NewBuilder starts a relation over states 0..size-1 and the given alphabet.
// The start state defaults to 0.
func NewBuilder(size int, alphabet domain.Alphabet) *Builder {
	b := &Builder{
		size:     size,
		alphabet: slices.Clone(alphabet),
		edges:    make(map[edge][]domain.State),
	}
	if size < 1 {
		b.err = ErrNoStates
	}
	return b
}

func (b *Builder) check(states ...domain.State) bool {
	if b.err != nil {
		return false
	}
	for _, s := range states {
		if s < 0 || int(s) >= b.size {
			b.err = fmt.Errorf("%w: %d (size %d)", ErrStateOutOfRange, s, b.size)
			return false
		}
	}
	return true
}

// Start sets the start state.
func (b *Builder) Start(s domain.State) *Builder {
	if b.check(s) {
		b.start = s
	}
	return b
}

// Accept marks states as accepting.
func (b *Builder) Accept(states ...domain.State) *Builder {
	if b.check(states...) {
		b.accepting = append(b.accepting, states...)
	}
	return b
}

// Add records transitions from -label-> to for every given target.
func (b *Builder) Add(from domain.State, label domain.Label, to ...domain.State) *Builder {
	if !b.check(append([]domain.State{from}, to...)...) {
		return b
	}
	if sym, ok := label.Symbol(); ok && !b.alphabet.Contains(sym) {
		b.err = fmt.Errorf("%w: %q", ErrSymbolNotInAlphabet, rune(sym))
		return b
	}
	k := edge{from: from, label: label}
	b.edges[k] = append(b.edges[k], to...)
	return b
}

// Build freezes the relation.
func (b *Builder) Build() (*Relation, error) {
	if b.err != nil {
		return nil, b.err
	}
	edges := make(map[edge]domain.StateSet, len(b.edges))
	for k, to := range b.edges {
		edges[k] = domain.NewStateSet(to...)
	}
	return &Relation{
		size:      b.size,
		alphabet:  slices.Clone(b.alphabet),
		start:     b.start,
		accepting: domain.NewStateSet(b.accepting...),
		edges:     edges,
	}, nil
}

// Reference returns the relation over {0,1,2,3} and alphabet {a,b}:
//
//	0 -ε-> 1, 0 -ε-> 2
//	1 -a-> 1
//	2 -b-> 2, 2 -a-> 3
//
// with accepting states {1, 3}.
func Reference() *Relation {
	r, err := NewBuilder(4, domain.NewAlphabet('a', 'b')).
		Start(0).
		Add(0, domain.Epsilon, 1, 2).
		Add(1, domain.On('a'), 1).
		Add(2, domain.On('b'), 2).
		Add(2, domain.On('a'), 3).
		Accept(1, 3).
		Build()
	if err != nil {
		panic(err) // constant configuration
	}
	return r
}

// NumStates returns the number of declared states.
func (r *Relation) NumStates() int {
	return r.size
}

// Alphabet returns a copy of the declared alphabet.
func (r *Relation) Alphabet() domain.Alphabet {
	return slices.Clone(r.alphabet)
}

// Start returns the start state.
func (r *Relation) Start() domain.State {
	return r.start
}

// Accepting returns the accepting set.
func (r *Relation) Accepting() domain.StateSet {
	return slices.Clone(r.accepting)
}

// Successors returns the direct successors of from on label.
func (r *Relation) Successors(from domain.State, label domain.Label) domain.StateSet {
	return slices.Clone(r.edges[edge{from: from, label: label}])
}
