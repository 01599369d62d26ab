/*
Package dfa implements the deterministic engine: a total transition table
walked one symbol at a time by a cursor.

A Table is immutable once built and safe to share between goroutines. An
Engine binds a Table to a mutable cursor and must not be used concurrently;
Table.Evaluate creates its own Engine per call.

	table, _ := dfa.NewModCounter(5, 3)
	res := table.Evaluate("000001110")
	fmt.Println(res.Outcome.Message())
*/
package dfa
