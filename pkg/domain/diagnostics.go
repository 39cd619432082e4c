package domain

import (
	"encoding/json"
	"errors"
	"fmt"
)

// Kind classifies a diagnostic.
type Kind string

const (
	// KindStructural is fatal to validity (multiple initial states, no states, non-determinism).
	KindStructural Kind = "structural"
	// KindReference is a transition to or from an unknown state; the record is skipped.
	KindReference Kind = "reference"
	// KindFormat is an unrecognized or malformed line; the record is skipped.
	KindFormat Kind = "format"
	// KindIO is a read failure of the definition source; fatal.
	KindIO Kind = "io"
)

// Fatal reports whether diagnostics of this kind invalidate the automaton.
func (k Kind) Fatal() bool {
	return k == KindStructural || k == KindIO
}

// Diagnostic describes an error or a skipped record found while loading.
type Diagnostic struct {
	Kind Kind
	Line int    // 1-based, 0 when not tied to a line
	Text string // raw record
	Err  error
}

// MarshalJSON flattens the wrapped error into a message.
func (d Diagnostic) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Kind    Kind   `json:"kind"`
		Line    int    `json:"line,omitempty"`
		Text    string `json:"text,omitempty"`
		Message string `json:"message"`
	}{d.Kind, d.Line, d.Text, d.Error()})
}

func (d Diagnostic) Error() string {
	if d.Err == nil {
		return string(d.Kind)
	}
	if d.Line > 0 {
		return fmt.Sprintf("line %d: %v", d.Line, d.Err)
	}
	return d.Err.Error()
}

// Unwrap returns the underlying sentinel error.
func (d Diagnostic) Unwrap() error {
	return d.Err
}

// Diagnostics is the ordered list of diagnostics produced by a load.
type Diagnostics []Diagnostic

// Fatal returns only the diagnostics that invalidate the automaton.
func (ds Diagnostics) Fatal() Diagnostics {
	var out Diagnostics
	for _, d := range ds {
		if d.Kind.Fatal() {
			out = append(out, d)
		}
	}
	return out
}

// ByKind returns the diagnostics of the given kind.
func (ds Diagnostics) ByKind(kind Kind) Diagnostics {
	var out Diagnostics
	for _, d := range ds {
		if d.Kind == kind {
			out = append(out, d)
		}
	}
	return out
}

// Err aggregates the fatal diagnostics, or returns nil if there are none.
func (ds Diagnostics) Err() error {
	fatal := ds.Fatal()
	if len(fatal) == 0 {
		return nil
	}
	errs := make([]error, len(fatal))
	for i, d := range fatal {
		errs[i] = d
	}
	return &AggregateError{Errors: errs}
}

// KindOf classifies an error produced by the Builder or a loader.
func KindOf(err error) Kind {
	switch {
	case errors.Is(err, ErrRead):
		return KindIO
	case errors.Is(err, ErrUnknownState):
		return KindReference
	case errors.Is(err, ErrUnrecognizedRecord), errors.Is(err, ErrMalformedRecord):
		return KindFormat
	default:
		return KindStructural
	}
}
