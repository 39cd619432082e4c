/*
Package loader turns automaton definitions into validated domain.Automaton values.

Two formats are supported. The line format has one record per line:

	state <name> <isFinal 0|1> <isInitial 0|1>
	transition <from> <symbol> <to>

Blank lines are skipped; any other line is reported as a format diagnostic and
ignored. States must be declared before the transitions that reference them,
unless WithDeferredResolution is used.

The structured format is YAML or JSON, selected by file extension:

	states:
	  - {name: s0, initial: true}
	  - {name: s1, final: true}
	transitions:
	  - {from: s0, symbol: "1", to: s1}

Both formats feed the same domain.Builder, so they share the same invariants
and diagnostics. Loading never returns an error: the resulting automaton
carries Valid() and Diagnostics().
*/
package loader
