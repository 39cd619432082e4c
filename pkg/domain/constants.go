package domain

// Rendering tokens shared by the textual and graphical presentations.
const (
	// NoTransitionsPlaceholder is printed under a state without outgoing transitions.
	NoTransitionsPlaceholder = "(no transitions)"

	// UndefinedInitial is printed in the header when no initial state exists.
	UndefinedInitial = "undefined"
)
