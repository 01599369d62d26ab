/*
Package ports defines the interfaces that decouple the automaton engines from
the adapters serving them.

# Key Interfaces

  - Evaluator: anything that turns an input string into a domain.Result
    (dfa.Table and enfa.Relation both qualify).
  - ResultStore: persists evaluation results (in memory or Redis).
*/
package ports
