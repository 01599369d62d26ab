package dfa

import "github.com/aretw0/automata/pkg/domain"

// Engine walks a Table one symbol at a time.
// It holds a cursor and is not safe for concurrent use.
type Engine struct {
	table    *Table
	cursor   domain.State
	consumed int
}

// NewEngine creates an engine positioned at the table's start state.
func NewEngine(table *Table) *Engine {
	return &Engine{
		table:  table,
		cursor: table.start,
	}
}

// Reset moves the cursor back to the start state.
// Call it before feeding each new string; the cursor is otherwise carried over.
func (e *Engine) Reset() {
	e.cursor = e.table.start
	e.consumed = 0
}

// State returns the current cursor.
func (e *Engine) State() domain.State {
	return e.cursor
}

// Consume advances the cursor on sym.
//
// It returns Accepted if the new cursor is accepting and Pending otherwise.
// A symbol outside the alphabet yields an *domain.UnknownSymbolError and
// leaves the cursor where it was.
func (e *Engine) Consume(sym domain.Symbol) (domain.Verdict, error) {
	col, ok := e.table.alphabet.Index(sym)
	if !ok {
		return domain.Pending, &domain.UnknownSymbolError{Symbol: sym, Position: e.consumed}
	}

	e.cursor = e.table.next[e.cursor][col]
	e.consumed++

	if e.table.IsAccepting(e.cursor) {
		return domain.Accepted, nil
	}
	return domain.Pending, nil
}
