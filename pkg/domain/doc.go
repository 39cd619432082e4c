/*
Package domain contains the core model of a deterministic finite automaton (DFA).

It defines the entities the loader produces and the simulation walks over. The
package is pure: no I/O, no logging, no persistence. Loaders and adapters live
elsewhere and only talk to it through the Builder and the Automaton API.

# Key Entities

  - State: a named node of the automaton, optionally final, owning its outgoing transitions.
  - Transition: an input symbol plus the index of the state it leads to.
  - Automaton: the immutable arena of states, its initial state and the load diagnostics.
  - Builder: incremental construction plus the global validation pass.
  - Cursor: the explicit simulation context (current state) used to walk an input.
  - Result / Run: the outcome of a simulation, with its trace.
*/
package domain
