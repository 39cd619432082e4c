package domain

import (
	"strings"
)

// StateID addresses a state inside the automaton's arena.
type StateID int

// NoState is the zero value for "no state", e.g. an automaton without initial state.
const NoState StateID = -1

// State represents a named node of the automaton.
type State struct {
	// ID is the index of the state in the automaton's arena.
	ID StateID `json:"id" yaml:"id"`

	// Name is unique across the automaton.
	Name string `json:"name" yaml:"name"`

	// Final marks an accepting state.
	Final bool `json:"final" yaml:"final"`

	// Transitions are owned exclusively by this state, in declaration order.
	Transitions []Transition `json:"transitions" yaml:"transitions"`
}

// Next returns the transition matching symbol, if any.
func (s State) Next(symbol rune) (Transition, bool) {
	for _, t := range s.Transitions {
		if t.Symbol == symbol {
			return t, true
		}
	}
	return Transition{}, false
}

// Label returns the state name, parenthesized when the state is final.
func (s State) Label() string {
	if s.Final {
		return "(" + s.Name + ")"
	}
	return s.Name
}

// String renders the state label followed by one line per outgoing transition.
func (s State) String() string {
	var sb strings.Builder
	sb.WriteString(s.Label())
	sb.WriteString("\n")
	writeTransitions(&sb, s.Transitions)
	return sb.String()
}

func writeTransitions(sb *strings.Builder, transitions []Transition) {
	if len(transitions) == 0 {
		sb.WriteString("  ")
		sb.WriteString(NoTransitionsPlaceholder)
		sb.WriteString("\n")
		return
	}
	for _, t := range transitions {
		sb.WriteString("  ")
		sb.WriteString(t.String())
		sb.WriteString("\n")
	}
}
