/*
Package dsl provides a Go DSL for programmatically constructing automata.

It offers a fluent builder instead of hand-written definition files, which is
useful for tests, generated automata and IDE type-checking. The builder emits
the regular line format, so the result goes through the same loader and the
same validation as a file would.

Example usage:

	b := dsl.New()
	b.State("even").Initial().Final().On('0', "odd").On('1', "even")
	b.State("odd").On('0', "even").On('1', "odd")

	a := b.Build() // *domain.Automaton, check a.Valid()
	src := b.Source("even-zeros.dfa") // ports.DefinitionSource for automaton.New
*/
package dsl
