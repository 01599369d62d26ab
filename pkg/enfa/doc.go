/*
Package enfa implements the nondeterministic engine with epsilon-transitions.

A Relation maps (state, label) pairs to sets of successor states, where a
label is either an input symbol or domain.Epsilon. Evaluation tracks the set
of states the automaton could be in, closing it under epsilon edges after
every consumed symbol.

Relations are built with a Builder and are immutable afterwards. The active
state set lives only inside Evaluate, so one Relation can serve many
concurrent evaluations.
*/
package enfa
