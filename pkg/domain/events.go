package domain

import (
	"context"
	"time"
)

// EventType defines the category of the event.
type EventType string

const (
	EventLoad   EventType = "load"
	EventStep   EventType = "step"
	EventAccept EventType = "accept"
	EventReject EventType = "reject"
)

// EventBase contains common fields for all events.
type EventBase struct {
	Timestamp time.Time `json:"timestamp"`
	Type      EventType `json:"type"`
	Automaton string    `json:"automaton"`
}

// LoadEvent is emitted once a definition has been loaded.
type LoadEvent struct {
	EventBase
	Valid       bool        `json:"valid"`
	States      int         `json:"states"`
	Diagnostics Diagnostics `json:"diagnostics,omitempty"`
}

// StepEvent is emitted for every transition taken.
type StepEvent struct {
	EventBase
	RunID string `json:"run_id"`
	Step
}

// RunEvent is emitted when a simulation ends.
type RunEvent struct {
	EventBase
	RunID  string `json:"run_id"`
	Result Result `json:"result"`
}

// LifecycleHooks defines callbacks for engine observability.
type LifecycleHooks struct {
	OnLoad   func(context.Context, *LoadEvent)
	OnStep   func(context.Context, *StepEvent)
	OnAccept func(context.Context, *RunEvent)
	OnReject func(context.Context, *RunEvent)
}
