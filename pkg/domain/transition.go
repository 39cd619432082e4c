package domain

import (
	"encoding/json"
	"fmt"
	"unicode/utf8"
)

// Transition defines a move from the owning state to Target when Symbol is read.
type Transition struct {
	Symbol rune

	// Target is a non-owning reference into the automaton's arena.
	Target StateID

	// To is the name of the target state, kept for display.
	To string
}

// String renders the transition as "--<symbol>--> <target>".
func (t Transition) String() string {
	return fmt.Sprintf("--%c--> %s", t.Symbol, t.To)
}

type transitionJSON struct {
	Symbol string  `json:"symbol"`
	Target StateID `json:"target"`
	To     string  `json:"to"`
}

// MarshalJSON encodes the symbol as a one-character string instead of a code point.
func (t Transition) MarshalJSON() ([]byte, error) {
	return json.Marshal(transitionJSON{Symbol: string(t.Symbol), Target: t.Target, To: t.To})
}

// UnmarshalJSON is the inverse of MarshalJSON.
func (t *Transition) UnmarshalJSON(data []byte) error {
	var raw transitionJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if utf8.RuneCountInString(raw.Symbol) != 1 {
		return fmt.Errorf("%w: symbol %q must be a single character", ErrMalformedRecord, raw.Symbol)
	}
	r, _ := utf8.DecodeRuneInString(raw.Symbol)
	*t = Transition{Symbol: r, Target: raw.Target, To: raw.To}
	return nil
}
