package domain

// Verdict is the answer of a deterministic engine after consuming one symbol.
type Verdict int

const (
	// Pending means the cursor is not in an accepting state; more input may still lead to one.
	Pending Verdict = iota
	// Accepted means the cursor is in an accepting state.
	Accepted
)

func (v Verdict) String() string {
	if v == Accepted {
		return "accepted"
	}
	return "pending"
}

// Outcome is the final verdict for a whole input string.
type Outcome string

const (
	// OutcomeAccepted means the whole input was consumed and ended in an accepting state.
	OutcomeAccepted      Outcome = "accepted"
	// OutcomeRejected means the input was not accepted.
	OutcomeRejected      Outcome = "rejected"
	// OutcomeUnknownSymbol means evaluation aborted on a symbol outside the alphabet.
	OutcomeUnknownSymbol Outcome = "unknown_symbol"
)

// Message returns the line printed by the interactive tools for the outcome.
func (o Outcome) Message() string {
	switch o {
	case OutcomeAccepted:
		return "Accepted"
	case OutcomeUnknownSymbol:
		return "Unknown symbol found. Rejected"
	default:
		return "Rejected"
	}
}

// Accepted reports whether the string was accepted.
func (o Outcome) Accepted() bool {
	return o == OutcomeAccepted
}

// Result captures the evaluation of one input string.
type Result struct {
	// Automaton is the registry name of the evaluating automaton, if any.
	Automaton string  `json:"automaton,omitempty"`
	Input     string  `json:"input"`
	Outcome   Outcome `json:"outcome"`

	// Steps holds the active states after each consumed symbol.
	// A deterministic engine always records singleton sets.
	Steps []StateSet `json:"steps,omitempty"`

	// Final is the active state set when evaluation stopped.
	Final StateSet `json:"final"`

	// Reason describes why evaluation stopped early (empty when the input was exhausted).
	Reason string `json:"reason,omitempty"`

	// Err is the error that aborted evaluation, if any. It is not serialized.
	Err error `json:"-"`
}

// Accepted reports whether the input was accepted.
func (r Result) Accepted() bool {
	return r.Outcome.Accepted()
}
