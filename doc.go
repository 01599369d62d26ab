/*
Package automata simulates finite automata over fixed alphabets.

Two execution models are provided:

  - Deterministic (package dfa): a total transition table walked one symbol at
    a time by a cursor. The shipped table counts zeros modulo M and ones modulo
    N and accepts when both counters are zero.
  - Nondeterministic with epsilon moves (package enfa): a transition relation
    over labels that are either a symbol or Epsilon. Evaluation keeps an
    epsilon-closed set of active states and accepts when it meets the
    accepting set after the last symbol.

Both models are immutable once built, so one instance may serve many
goroutines. The engines are wrapped by a registry and an evaluation service
that caches verdicts (in memory or Redis) and records Prometheus metrics.
The service is exposed through line-oriented CLI sessions, a JSON HTTP API
and an MCP tool server.

# Usage

	cfg := config.NewDefault()
	eng, err := automata.New(ctx, cfg)
	if err != nil {
		return err
	}
	defer eng.Close()

	res, err := eng.Evaluate(ctx, registry.ModCounter, "000001110000011100000")
	fmt.Println(res.Outcome.Message()) // Accepted
*/
package automata
