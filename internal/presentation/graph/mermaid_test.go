package graph_test

import (
	"strings"
	"testing"

	"github.com/aretw0/automaton/internal/presentation/graph"
	"github.com/aretw0/automaton/pkg/dsl"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateMermaid(t *testing.T) {
	b := dsl.New()
	b.State("even").Initial().Final().On('0', "odd").Loop('1')
	b.State("odd").On('0', "even").Loop('1')
	a := b.Build()
	require.True(t, a.Valid())

	out := graph.GenerateMermaid(a, nil)

	tests := []struct {
		name     string
		contains string
	}{
		{"Header", "graph LR\n"},
		{"Final State Shape", `s0((("even")))`},
		{"Plain State Shape", `s1(("odd"))`},
		{"Initial Marker", `start((" ")) --> s0`},
		{"Edge Label", `s0 -- "0" --> s1`},
		{"Self Loop", `s1 -- "1" --> s1`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Contains(t, out, tt.contains)
		})
	}
	assert.NotContains(t, out, "Overlay")
}

func TestGenerateMermaid_MergesParallelEdges(t *testing.T) {
	b := dsl.New()
	b.State("a").Initial().On('x', "b").On('y', "b")
	b.State("b").Final()
	a := b.Build()
	require.True(t, a.Valid())

	out := graph.GenerateMermaid(a, nil)
	assert.Contains(t, out, `s0 -- "x, y" --> s1`)
	assert.Equal(t, 1, strings.Count(out, "--> s1"))
}

func TestGenerateMermaid_EscapesQuotes(t *testing.T) {
	b := dsl.New()
	b.State(`say"hi"`).Initial().Final()
	a := b.Build()
	require.True(t, a.Valid())

	out := graph.GenerateMermaid(a, nil)
	assert.Contains(t, out, `s0((("say#quot;hi#quot;")))`)
}

func TestGenerateMermaid_Overlay(t *testing.T) {
	b := dsl.New()
	b.State("s0").Initial().On('1', "s1")
	b.State("s1").Final().Loop('1')
	a := b.Build()
	require.True(t, a.Valid())

	accepted := graph.GenerateMermaid(a, graph.OverlayFromResult(a.Run("11")))
	assert.Contains(t, accepted, "class s0 visited;")
	assert.Contains(t, accepted, "class s1 accepted;")
	assert.NotContains(t, accepted, "class s1 visited;")

	rejected := graph.GenerateMermaid(a, graph.OverlayFromResult(a.Run("0")))
	assert.Contains(t, rejected, "class s0 rejected;")
	assert.NotContains(t, rejected, "visited;")
}
