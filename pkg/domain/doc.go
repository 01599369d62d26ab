/*
Package domain contains the core value types shared by the automaton engines.

It defines states, symbols, labels and the per-string evaluation result. The
package is pure: it has no I/O and no dependency on the engines or adapters.

# Key Entities

  - State: an opaque integer index identifying an automaton configuration.
  - StateSet: a sorted, duplicate-free set of states.
  - Symbol and Alphabet: input characters and the finite set they belong to.
  - Label: a transition label, either a Symbol or Epsilon.
  - Result: the verdict of evaluating one input string, with its trace.
*/
package domain
