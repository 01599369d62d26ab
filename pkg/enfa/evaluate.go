package enfa

import "github.com/aretw0/automata/pkg/domain"

// Evaluate runs the whole input and reports whether it is accepted.
//
// The active set starts as the closure of the start state. For each symbol it
// becomes Closure(Move(active, symbol)). Evaluation rejects immediately on a
// symbol outside the alphabet or when the active set becomes empty, since an
// empty set stays empty. Otherwise the input is accepted iff the final set
// contains an accepting state.
//
// Unknown symbols are folded into a plain rejection; Result.Err still carries
// the *domain.UnknownSymbolError.
func (r *Relation) Evaluate(input string) domain.Result {
	active := r.Closure(domain.NewStateSet(r.start))
	res := domain.Result{
		Input: input,
		Steps: make([]domain.StateSet, 0, len(input)),
	}

	pos := 0
	for _, c := range input {
		sym := domain.Symbol(c)
		if !r.alphabet.Contains(sym) {
			err := &domain.UnknownSymbolError{Symbol: sym, Position: pos}
			return reject(res, active, err.Error(), err)
		}

		active = r.Closure(r.Move(active, sym))
		res.Steps = append(res.Steps, active)
		pos++

		if active.Empty() {
			return reject(res, active, "no live states", nil)
		}
	}

	res.Final = active
	res.Outcome = domain.OutcomeRejected
	if active.Intersects(r.accepting) {
		res.Outcome = domain.OutcomeAccepted
	}
	return res
}

func reject(res domain.Result, active domain.StateSet, reason string, err error) domain.Result {
	res.Outcome = domain.OutcomeRejected
	res.Final = active
	res.Reason = reason
	res.Err = err
	return res
}

// Accepts reports whether the input is accepted.
func (r *Relation) Accepts(input string) bool {
	return r.Evaluate(input).Accepted()
}
