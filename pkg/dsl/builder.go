package dsl

import (
	"fmt"
	"strings"

	"github.com/aretw0/automaton/pkg/adapters/memory"
	"github.com/aretw0/automaton/pkg/domain"
	"github.com/aretw0/automaton/pkg/loader"
)

// Builder manages the automaton construction.
type Builder struct {
	states []*StateBuilder
	byName map[string]*StateBuilder
}

// New creates a new automaton builder.
func New() *Builder {
	return &Builder{
		byName: make(map[string]*StateBuilder),
	}
}

// State declares a state in the automaton.
// If the state already exists, it returns the existing builder.
func (b *Builder) State(name string) *StateBuilder {
	if sb, ok := b.byName[name]; ok {
		return sb
	}
	sb := &StateBuilder{name: name, builder: b}
	b.states = append(b.states, sb)
	b.byName[name] = sb
	return sb
}

// Definition renders the line-format definition: every state first, in
// declaration order, then every transition.
func (b *Builder) Definition() string {
	var sb strings.Builder
	for _, s := range b.states {
		fmt.Fprintf(&sb, "state %s %s %s\n", s.name, flag(s.final), flag(s.initial))
	}
	for _, s := range b.states {
		for _, e := range s.edges {
			fmt.Fprintf(&sb, "transition %s %c %s\n", s.name, e.symbol, e.to)
		}
	}
	return sb.String()
}

// Source exposes the definition as a ports.DefinitionSource.
func (b *Builder) Source(name string) *memory.Source {
	return memory.NewSource(name, b.Definition())
}

// Build loads the definition. Check Valid on the result.
func (b *Builder) Build(opts ...loader.Option) *domain.Automaton {
	return loader.Load(strings.NewReader(b.Definition()), opts...)
}

func flag(v bool) string {
	if v {
		return "1"
	}
	return "0"
}
