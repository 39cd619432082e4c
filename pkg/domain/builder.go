package domain

import (
	"fmt"
	"sort"
	"strings"
)

// Builder assembles an Automaton state by state and runs the global
// validation pass in Build. A fatal diagnostic aborts the construction:
// later calls are ignored and Build returns an invalid automaton.
type Builder struct {
	states      []State
	index       map[string]StateID
	initial     StateID
	diagnostics Diagnostics
	aborted     bool
}

// NewBuilder creates an empty builder.
func NewBuilder() *Builder {
	return &Builder{
		index:   make(map[string]StateID),
		initial: NoState,
	}
}

// AddState declares a state. A duplicate name or a second initial state is
// a structural error.
func (b *Builder) AddState(name string, final, initial bool) (StateID, error) {
	if b.aborted {
		return NoState, ErrInvalidAutomaton
	}
	if _, exists := b.index[name]; exists {
		return NoState, fmt.Errorf("%w: %s", ErrDuplicateState, name)
	}

	id := StateID(len(b.states))
	b.states = append(b.states, State{ID: id, Name: name, Final: final})
	b.index[name] = id

	if initial {
		if b.initial != NoState {
			return id, fmt.Errorf("%w: %s (already %s)", ErrMultipleInitialStates, name, b.states[b.initial].Name)
		}
		b.initial = id
	}
	return id, nil
}

// AddTransition appends a transition to an already declared state.
// Both endpoints must be known; otherwise ErrUnknownState is returned and
// nothing is added.
func (b *Builder) AddTransition(from string, symbol rune, to string) error {
	if b.aborted {
		return ErrInvalidAutomaton
	}
	fromID, okFrom := b.index[from]
	toID, okTo := b.index[to]
	if !okFrom || !okTo {
		var missing []string
		if !okFrom {
			missing = append(missing, from)
		}
		if !okTo && to != from {
			missing = append(missing, to)
		}
		return fmt.Errorf("%w: %s", ErrUnknownState, strings.Join(missing, ", "))
	}

	b.states[fromID].Transitions = append(b.states[fromID].Transitions, Transition{
		Symbol: symbol,
		Target: toID,
		To:     to,
	})
	return nil
}

// Note records a diagnostic. Fatal diagnostics abort the construction.
func (b *Builder) Note(d Diagnostic) {
	b.diagnostics = append(b.diagnostics, d)
	if d.Kind.Fatal() {
		b.aborted = true
	}
}

// Aborted reports whether a fatal diagnostic was recorded.
func (b *Builder) Aborted() bool {
	return b.aborted
}

// Build runs the global validation pass and returns the automaton.
// The result is always non-nil; check Valid before simulating.
func (b *Builder) Build() *Automaton {
	if !b.aborted {
		if err := b.check(); err != nil {
			b.Note(Diagnostic{Kind: KindStructural, Err: err})
		}
	}

	states := make([]State, len(b.states))
	for i, s := range b.states {
		s.Transitions = append([]Transition(nil), s.Transitions...)
		states[i] = s
	}
	index := make(map[string]StateID, len(b.index))
	for k, v := range b.index {
		index[k] = v
	}

	return &Automaton{
		states:      states,
		index:       index,
		initial:     b.initial,
		valid:       !b.aborted,
		diagnostics: append(Diagnostics(nil), b.diagnostics...),
	}
}

func (b *Builder) check() error {
	if len(b.states) == 0 {
		return ErrNoStates
	}
	if b.initial == NoState {
		return ErrNoInitialState
	}
	for _, s := range b.states {
		if dups := duplicateSymbols(s.Transitions); len(dups) > 0 {
			return fmt.Errorf("%w: state %s on %s", ErrNondeterministic, s.Name, strings.Join(dups, ", "))
		}
	}
	return nil
}

// duplicateSymbols returns, sorted, the symbols carried by more than one transition.
func duplicateSymbols(transitions []Transition) []string {
	counts := make(map[rune]int, len(transitions))
	for _, t := range transitions {
		counts[t.Symbol]++
	}
	var dups []string
	for symbol, n := range counts {
		if n > 1 {
			dups = append(dups, string(symbol))
		}
	}
	sort.Strings(dups)
	return dups
}
