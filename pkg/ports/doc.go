/*
Package ports defines the driven ports (interfaces) of the automaton engine.

These interfaces decouple the core from external implementations, allowing the
engine to read definitions from various sources and to persist simulation runs
in various backends.

# Key Interfaces

  - DefinitionSource: where a definition is read from (filesystem, memory).
  - RunStore: persistence of simulation runs (memory, filesystem, Redis).
  - Simulator: the engine surface consumed by the HTTP and MCP adapters.
*/
package ports
