package dsl

type edge struct {
	symbol rune
	to     string
}

// StateBuilder provides a fluent API for configuring a state.
type StateBuilder struct {
	name    string
	final   bool
	initial bool
	edges   []edge
	builder *Builder
}

// Initial marks the state as the initial state.
func (s *StateBuilder) Initial() *StateBuilder {
	s.initial = true
	return s
}

// Final marks the state as accepting.
func (s *StateBuilder) Final() *StateBuilder {
	s.final = true
	return s
}

// On adds a transition on symbol to the state named to. The target is
// declared implicitly if it does not exist yet.
func (s *StateBuilder) On(symbol rune, to string) *StateBuilder {
	s.builder.State(to)
	s.edges = append(s.edges, edge{symbol: symbol, to: to})
	return s
}

// Loop adds a transition on each symbol back to the state itself.
func (s *StateBuilder) Loop(symbols ...rune) *StateBuilder {
	for _, r := range symbols {
		s.edges = append(s.edges, edge{symbol: r, to: s.name})
	}
	return s
}
