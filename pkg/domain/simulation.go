package domain

import "unicode/utf8"

// Reason explains the outcome of a simulation.
type Reason string

const (
	ReasonAccepted         Reason = "accepted"          // input consumed, final state reached
	ReasonNoTransition     Reason = "no_transition"     // stopped on a symbol without transition
	ReasonNotFinal         Reason = "not_final"         // input consumed, state is not final
	ReasonInvalidAutomaton Reason = "invalid_automaton" // automaton failed validation
)

// Step is one move of the simulation.
type Step struct {
	From   string `json:"from"`
	Symbol string `json:"symbol"`
	To     string `json:"to"`
}

// Result is the outcome of walking an input through the automaton.
type Result struct {
	Input    string `json:"input"`
	Accepted bool   `json:"accepted"`
	Reason   Reason `json:"reason"`
	Steps    []Step `json:"steps"`

	// Consumed counts the symbols read before the walk stopped.
	Consumed int `json:"consumed"`

	// FinalState is where the walk stopped (empty for an invalid automaton).
	FinalState string `json:"final_state,omitempty"`

	// Offending is the symbol without transition when Reason is ReasonNoTransition.
	Offending string `json:"offending,omitempty"`
}

// Cursor is the simulation context over an immutable automaton.
// A Cursor is not safe for concurrent use; create one per simulation.
type Cursor struct {
	automaton *Automaton
	current   StateID
}

// NewCursor creates a cursor positioned on the initial state.
func (a *Automaton) NewCursor() *Cursor {
	return &Cursor{automaton: a, current: a.initial}
}

// Reset moves the cursor back to the initial state.
// It returns ErrNoInitialState, leaving the cursor untouched, if there is none.
func (c *Cursor) Reset() error {
	if c.automaton.initial == NoState {
		return ErrNoInitialState
	}
	c.current = c.automaton.initial
	return nil
}

// Current returns the state the cursor is on.
func (c *Cursor) Current() (State, bool) {
	return c.automaton.State(c.current)
}

// Step follows the transition for symbol. It returns false, without moving,
// when the current state has none.
func (c *Cursor) Step(symbol rune) (Step, bool) {
	from, ok := c.Current()
	if !ok {
		return Step{}, false
	}
	t, ok := from.Next(symbol)
	if !ok {
		return Step{}, false
	}
	c.current = t.Target
	return Step{From: from.Name, Symbol: string(symbol), To: t.To}, true
}

// Run resets the cursor and walks input symbol by symbol. The walk stops at
// the first symbol without transition; remaining symbols are not inspected.
func (c *Cursor) Run(input string) Result {
	res := Result{Input: input, Steps: []Step{}}

	if !c.automaton.valid || c.Reset() != nil {
		res.Reason = ReasonInvalidAutomaton
		return res
	}

	for len(input) > 0 {
		symbol, size := utf8.DecodeRuneInString(input)
		step, ok := c.Step(symbol)
		if !ok {
			current, _ := c.Current()
			res.Reason = ReasonNoTransition
			res.FinalState = current.Name
			res.Offending = string(symbol)
			return res
		}
		res.Steps = append(res.Steps, step)
		res.Consumed++
		input = input[size:]
	}

	current, _ := c.Current()
	res.FinalState = current.Name
	if current.Final {
		res.Accepted = true
		res.Reason = ReasonAccepted
	} else {
		res.Reason = ReasonNotFinal
	}
	return res
}

// Validate reports whether input is accepted.
func (c *Cursor) Validate(input string) bool {
	return c.Run(input).Accepted
}

// Run simulates input on a fresh cursor.
func (a *Automaton) Run(input string) Result {
	return a.NewCursor().Run(input)
}

// Validate reports whether input is accepted, using a fresh cursor.
// It never fails: an invalid automaton rejects everything.
func (a *Automaton) Validate(input string) bool {
	return a.Run(input).Accepted
}
