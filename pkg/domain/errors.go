package domain

import (
	"errors"
	"fmt"
)

// ErrUnknownSymbol is returned when an input symbol is not in the automaton's alphabet.
var ErrUnknownSymbol = errors.New("unknown symbol")

// ErrResultNotFound is returned when a stored evaluation result cannot be found.
var ErrResultNotFound = errors.New("result not found")

// UnknownSymbolError reports which symbol was rejected and where.
type UnknownSymbolError struct {
	Symbol Symbol
	// Position is the zero-based index of the symbol in the input sequence.
	Position int
}

func (e *UnknownSymbolError) Error() string {
	return fmt.Sprintf("unknown symbol %q at position %d", rune(e.Symbol), e.Position)
}

// Unwrap allows errors.Is(err, ErrUnknownSymbol).
func (e *UnknownSymbolError) Unwrap() error {
	return ErrUnknownSymbol
}
