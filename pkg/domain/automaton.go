package domain

import (
	"encoding/json"
	"sort"
	"strings"
)

// Automaton is the validated state arena produced by a Builder.
// Its structure never changes after Build, so a single Automaton can back
// any number of concurrent simulations through independent cursors.
type Automaton struct {
	states      []State
	index       map[string]StateID
	initial     StateID
	valid       bool
	diagnostics Diagnostics
}

// Valid reports whether every structural invariant held at load time.
func (a *Automaton) Valid() bool {
	return a.valid
}

// Diagnostics returns everything reported while loading, in order.
func (a *Automaton) Diagnostics() Diagnostics {
	return append(Diagnostics(nil), a.diagnostics...)
}

// Err returns nil for a valid automaton, otherwise an error matching
// ErrInvalidAutomaton and every fatal sentinel that caused it.
func (a *Automaton) Err() error {
	if a.valid {
		return nil
	}
	errs := []error{ErrInvalidAutomaton}
	for _, d := range a.diagnostics.Fatal() {
		errs = append(errs, d)
	}
	return &AggregateError{Errors: errs}
}

// Len returns the number of states.
func (a *Automaton) Len() int {
	return len(a.states)
}

// States returns a copy of the state arena, in declaration order.
func (a *Automaton) States() []State {
	out := make([]State, len(a.states))
	for i, s := range a.states {
		s.Transitions = append([]Transition(nil), s.Transitions...)
		out[i] = s
	}
	return out
}

// State returns the state stored at id.
func (a *Automaton) State(id StateID) (State, bool) {
	if id < 0 || int(id) >= len(a.states) {
		return State{}, false
	}
	return a.states[id], true
}

// Lookup returns the state named name.
func (a *Automaton) Lookup(name string) (State, bool) {
	id, ok := a.index[name]
	if !ok {
		return State{}, false
	}
	return a.states[id], true
}

// Initial returns the initial state, if one was declared.
func (a *Automaton) Initial() (State, bool) {
	return a.State(a.initial)
}

// IsInitial reports whether id is the initial state.
func (a *Automaton) IsInitial(id StateID) bool {
	return a.initial != NoState && id == a.initial
}

// Alphabet returns the distinct transition symbols, sorted.
func (a *Automaton) Alphabet() []rune {
	seen := make(map[rune]bool)
	var out []rune
	for _, s := range a.states {
		for _, t := range s.Transitions {
			if !seen[t.Symbol] {
				seen[t.Symbol] = true
				out = append(out, t.Symbol)
			}
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Label decorates a state name: [initial], (final), ([both]).
func (a *Automaton) Label(s State) string {
	label := s.Name
	if a.IsInitial(s.ID) {
		label = "[" + label + "]"
	}
	if s.Final {
		label = "(" + label + ")"
	}
	return label
}

// String renders the automaton: a header naming the initial state, then
// every state with its transitions.
func (a *Automaton) String() string {
	var sb strings.Builder

	initial := UndefinedInitial
	if s, ok := a.Initial(); ok {
		initial = s.Name
	}
	sb.WriteString("Initial state: [" + initial + "]\n")

	for _, s := range a.states {
		sb.WriteString(a.Label(s))
		sb.WriteString("\n")
		writeTransitions(&sb, s.Transitions)
	}
	return sb.String()
}

type automatonJSON struct {
	Initial     string   `json:"initial,omitempty"`
	Valid       bool     `json:"valid"`
	States      []State  `json:"states"`
	Alphabet    []string `json:"alphabet"`
	Diagnostics []string `json:"diagnostics,omitempty"`
}

// MarshalJSON exposes the structure for introspection tools.
func (a *Automaton) MarshalJSON() ([]byte, error) {
	out := automatonJSON{
		Valid:    a.valid,
		States:   a.States(),
		Alphabet: []string{},
	}
	if s, ok := a.Initial(); ok {
		out.Initial = s.Name
	}
	for _, r := range a.Alphabet() {
		out.Alphabet = append(out.Alphabet, string(r))
	}
	for _, d := range a.diagnostics {
		out.Diagnostics = append(out.Diagnostics, d.Error())
	}
	return json.Marshal(out)
}
