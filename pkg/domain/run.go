package domain

import "time"

// Run is a persisted simulation.
type Run struct {
	ID        string    `json:"id"`
	Automaton string    `json:"automaton"`
	CreatedAt time.Time `json:"created_at"`
	Result
}

// NewRun wraps a result for persistence.
func NewRun(id, automaton string, res Result, at time.Time) *Run {
	return &Run{
		ID:        id,
		Automaton: automaton,
		CreatedAt: at,
		Result:    res,
	}
}
