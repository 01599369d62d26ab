package enfa_test

import (
	"errors"
	"testing"

	"github.com/aretw0/automata/pkg/domain"
	"github.com/aretw0/automata/pkg/enfa"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// subsets returns every subset of {0..n-1}.
func subsets(n int) []domain.StateSet {
	var out []domain.StateSet
	for mask := 0; mask < 1<<n; mask++ {
		var states []domain.State
		for i := 0; i < n; i++ {
			if mask&(1<<i) != 0 {
				states = append(states, domain.State(i))
			}
		}
		out = append(out, domain.NewStateSet(states...))
	}
	return out
}

func cyclic(t *testing.T) *enfa.Relation {
	r, err := enfa.NewBuilder(4, domain.NewAlphabet('a')).
		Add(0, domain.Epsilon, 1).
		Add(1, domain.Epsilon, 2).
		Add(2, domain.Epsilon, 0).
		Add(2, domain.On('a'), 3).
		Add(3, domain.Epsilon, 3).
		Accept(3).
		Build()
	require.NoError(t, err)
	return r
}

func TestReference_Verdicts(t *testing.T) {
	r := enfa.Reference()

	tests := []struct {
		input string
		want  bool
	}{
		{"", true}, // closure of the start state already holds accepting state 1
		{"a", true},
		{"b", false},
		{"ba", true},
		{"aa", true},
		{"bbba", true},
		{"ab", false},
		{"baa", false},
		{"bbb", false},
		{"c", false},
		{"ac", false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, r.Accepts(tt.input))
		})
	}
}

func TestClosure_Reference(t *testing.T) {
	r := enfa.Reference()
	assert.Equal(t, domain.StateSet{0, 1, 2}, r.Closure(domain.NewStateSet(0)))
	assert.Equal(t, domain.StateSet{3}, r.Closure(domain.NewStateSet(3)))
	assert.True(t, r.Closure(domain.NewStateSet()).Empty())
}

func TestClosure_IdempotentAndMonotone(t *testing.T) {
	for name, r := range map[string]*enfa.Relation{
		"reference": enfa.Reference(),
		"cyclic":    cyclic(t),
	} {
		t.Run(name, func(t *testing.T) {
			for _, s := range subsets(r.NumStates()) {
				c := r.Closure(s)
				assert.True(t, s.IsSubsetOf(c), "S ⊆ closure(S) for %v", s)
				assert.Equal(t, c, r.Closure(c), "closure is idempotent for %v", s)
			}
		})
	}
}

func TestClosure_TerminatesOnCycles(t *testing.T) {
	r := cyclic(t)
	assert.Equal(t, domain.StateSet{0, 1, 2}, r.Closure(domain.NewStateSet(1)))
	assert.True(t, r.Accepts("a"))
	assert.False(t, r.Accepts("aa"))
}

func TestMove(t *testing.T) {
	r := enfa.Reference()
	assert.Equal(t, domain.StateSet{1, 3}, r.Move(domain.NewStateSet(0, 1, 2), 'a'))
	assert.Equal(t, domain.StateSet{2}, r.Move(domain.NewStateSet(0, 1, 2), 'b'))
	assert.True(t, r.Move(domain.NewStateSet(3), 'a').Empty())
}

func TestSuccessors(t *testing.T) {
	r := enfa.Reference()
	assert.Equal(t, domain.StateSet{1, 2}, r.Successors(0, domain.Epsilon))
	assert.Equal(t, domain.StateSet{3}, r.Successors(2, domain.On('a')))
	assert.True(t, r.Successors(3, domain.On('b')).Empty())

	got := r.Successors(2, domain.On('b'))
	got[0] = 9
	assert.Equal(t, domain.StateSet{2}, r.Successors(2, domain.On('b')))
}

func TestEvaluate_Trace(t *testing.T) {
	res := enfa.Reference().Evaluate("ba")
	assert.Equal(t, domain.OutcomeAccepted, res.Outcome)
	assert.Equal(t, []domain.StateSet{{2}, {3}}, res.Steps)
	assert.Equal(t, domain.StateSet{3}, res.Final)
}

func TestEvaluate_ShortCircuitOnEmptySet(t *testing.T) {
	res := enfa.Reference().Evaluate("abbbb")
	assert.Equal(t, domain.OutcomeRejected, res.Outcome)
	assert.Len(t, res.Steps, 2)
	assert.True(t, res.Final.Empty())
	assert.NoError(t, res.Err)
}

func TestEvaluate_UnknownSymbolFoldsIntoRejection(t *testing.T) {
	res := enfa.Reference().Evaluate("bx")
	assert.Equal(t, domain.OutcomeRejected, res.Outcome)

	var symErr *domain.UnknownSymbolError
	require.True(t, errors.As(res.Err, &symErr))
	assert.Equal(t, 1, symErr.Position)
}

func TestBuilder_Validation(t *testing.T) {
	_, err := enfa.NewBuilder(0, domain.NewAlphabet('a')).Build()
	assert.ErrorIs(t, err, enfa.ErrNoStates)

	_, err = enfa.NewBuilder(2, domain.NewAlphabet('a')).Add(0, domain.On('a'), 5).Build()
	assert.ErrorIs(t, err, enfa.ErrStateOutOfRange)

	_, err = enfa.NewBuilder(2, domain.NewAlphabet('a')).Add(0, domain.On('b'), 1).Build()
	assert.ErrorIs(t, err, enfa.ErrSymbolNotInAlphabet)

	_, err = enfa.NewBuilder(2, domain.NewAlphabet('a')).Accept(9).Build()
	assert.ErrorIs(t, err, enfa.ErrStateOutOfRange)
}
