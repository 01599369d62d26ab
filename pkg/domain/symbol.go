package domain

import (
	"slices"
	"strconv"
)

// Symbol is a single input character.
type Symbol rune

func (s Symbol) String() string {
	return string(rune(s))
}

// Label is a transition label: either an input Symbol or Epsilon.
// Epsilon is a distinct variant, so no Symbol value can collide with it.
type Label struct {
	symbol  Symbol
	epsilon bool
}

// Epsilon labels a transition that consumes no input.
var Epsilon = Label{epsilon: true}

// On labels a transition that consumes sym.
func On(sym Symbol) Label {
	return Label{symbol: sym}
}

// IsEpsilon reports whether the label is the epsilon variant.
func (l Label) IsEpsilon() bool {
	return l.epsilon
}

// Symbol returns the consumed symbol, or false for Epsilon.
func (l Label) Symbol() (Symbol, bool) {
	if l.epsilon {
		return 0, false
	}
	return l.symbol, true
}

func (l Label) String() string {
	if l.epsilon {
		return "ε"
	}
	return strconv.QuoteRune(rune(l.symbol))
}

// Alphabet is the ordered, finite set of valid input symbols.
// The position of a symbol is its column in a transition table.
type Alphabet []Symbol

// NewAlphabet builds an alphabet, dropping repeated symbols.
func NewAlphabet(symbols ...Symbol) Alphabet {
	out := make(Alphabet, 0, len(symbols))
	for _, s := range symbols {
		if !slices.Contains(out, s) {
			out = append(out, s)
		}
	}
	return out
}

// Index returns the column of sym, or false if sym is not in the alphabet.
func (a Alphabet) Index(sym Symbol) (int, bool) {
	i := slices.Index(a, sym)
	return i, i >= 0
}

// Contains reports whether sym belongs to the alphabet.
func (a Alphabet) Contains(sym Symbol) bool {
	return slices.Contains(a, sym)
}

func (a Alphabet) String() string {
	runes := make([]rune, len(a))
	for i, s := range a {
		runes[i] = rune(s)
	}
	return string(runes)
}
