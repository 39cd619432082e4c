package domain_test

import (
	"testing"

	"github.com/aretw0/automaton/pkg/domain"
	"github.com/stretchr/testify/require"
)

type stateSpec struct {
	name           string
	final, initial bool
}

type edgeSpec struct {
	from   string
	symbol rune
	to     string
}

func build(t *testing.T, states []stateSpec, edges []edgeSpec) *domain.Automaton {
	t.Helper()
	b := domain.NewBuilder()
	for _, s := range states {
		_, err := b.AddState(s.name, s.final, s.initial)
		require.NoError(t, err)
	}
	for _, e := range edges {
		require.NoError(t, b.AddTransition(e.from, e.symbol, e.to))
	}
	return b.Build()
}

// scenarioA: s0 (initial) --1--> s1 (final).
func scenarioA(t *testing.T) *domain.Automaton {
	return build(t,
		[]stateSpec{{name: "s0", initial: true}, {name: "s1", final: true}},
		[]edgeSpec{{"s0", '1', "s1"}},
	)
}

// evenZeros accepts binary strings with an even number of zeros.
func evenZeros(t *testing.T) *domain.Automaton {
	return build(t,
		[]stateSpec{{name: "even", final: true, initial: true}, {name: "odd"}},
		[]edgeSpec{
			{"even", '0', "odd"},
			{"even", '1', "even"},
			{"odd", '0', "even"},
			{"odd", '1', "odd"},
		},
	)
}
