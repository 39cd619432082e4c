package domain

import "errors"

// Structural errors make the automaton invalid.
var (
	// ErrMultipleInitialStates is returned when a second state is flagged initial.
	ErrMultipleInitialStates = errors.New("more than one initial state")
	// ErrNoInitialState is returned when no state is flagged initial.
	ErrNoInitialState = errors.New("no initial state defined")
	// ErrNoStates is returned when the definition declares no state at all.
	ErrNoStates = errors.New("no states defined")
	// ErrNondeterministic is returned when a state has two transitions on the same symbol.
	ErrNondeterministic = errors.New("non-deterministic transitions")
	// ErrDuplicateState is returned when a state name is declared twice.
	ErrDuplicateState = errors.New("duplicate state")
)

// Recoverable errors skip the offending record.
var (
	// ErrUnknownState is returned when a transition references an undeclared state.
	ErrUnknownState = errors.New("state not found")
	// ErrUnrecognizedRecord is returned for a line that is neither a state nor a transition.
	ErrUnrecognizedRecord = errors.New("unrecognized record")
	// ErrMalformedRecord is returned for a known record with bad fields.
	ErrMalformedRecord = errors.New("malformed record")
)

// ErrRead is returned when the definition source cannot be read.
var ErrRead = errors.New("definition source unreadable")

// ErrInvalidAutomaton is returned when an operation needs a valid automaton.
var ErrInvalidAutomaton = errors.New("automaton is not valid")

// ErrRunNotFound is returned when a run ID cannot be found in the store.
var ErrRunNotFound = errors.New("run not found")

// AggregateError represents multiple fatal diagnostics.
type AggregateError struct {
	Errors []error
}

func (e *AggregateError) Error() string {
	if len(e.Errors) == 1 {
		return e.Errors[0].Error()
	}
	msg := ""
	for i, err := range e.Errors {
		if i > 0 {
			msg += "; "
		}
		msg += err.Error()
	}
	return msg
}

// Unwrap exposes the aggregated errors to errors.Is and errors.As.
func (e *AggregateError) Unwrap() []error {
	return e.Errors
}

// ErrSymbolNotInAlphabet is returned when an input uses a symbol outside the
// configured input alphabet.
var ErrSymbolNotInAlphabet = errors.New("symbol not in alphabet")

// Input policy errors. Each of them also matches ErrInvalidInput.
var (
	// ErrInvalidInput is the common cause of every rejected input.
	ErrInvalidInput = errors.New("invalid input")
	// ErrInputTooLarge is returned when an input exceeds the size limit.
	ErrInputTooLarge = errors.New("input exceeds maximum allowed size")
	// ErrInvalidUTF8 is returned for inputs that are not valid UTF-8.
	ErrInvalidUTF8 = errors.New("input contains invalid UTF-8 sequences")
	// ErrControlCharacter is returned for inputs holding terminal control characters.
	ErrControlCharacter = errors.New("input contains control characters")
)
