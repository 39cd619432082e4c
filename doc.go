/*
Package automaton builds deterministic finite automata (DFA) from textual
definitions, validates them and simulates input strings against them.

# Concept

A definition is loaded once, line by line, into an immutable automaton. The
load enforces the structural invariants (exactly one initial state, at least
one state, determinism) and reports every skipped record as a diagnostic
instead of printing it. Simulations never mutate the automaton: each one walks
its own cursor, so a single Engine can answer concurrent requests.

# Key Features

  - Deterministic simulation with a full trace (from, symbol, to) per run.
  - Structured diagnostics with an error taxonomy (structural, reference, format, io).
  - Line, YAML and JSON definition formats.
  - Hexagonal architecture: definition sources and run stores are ports, with
    filesystem, memory and Redis adapters, plus HTTP and MCP front-ends.

# Usage

	package main

	import (
		"context"
		"fmt"
		"log"

		"github.com/aretw0/automaton"
	)

	func main() {
		// Load and validate the definition.
		eng, err := automaton.New("binary.dfa", automaton.WithAlphabet("01"))
		if err != nil {
			log.Fatal(err)
		}

		fmt.Print(eng.Render())

		run, err := eng.Validate(context.Background(), "0110")
		if err != nil {
			log.Fatal(err)
		}
		fmt.Println("accepted:", run.Accepted)
	}
*/
package automaton
