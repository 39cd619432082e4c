package tui_test

import (
	"bytes"
	"testing"

	"github.com/aretw0/automaton/internal/presentation/tui"
	"github.com/aretw0/automaton/pkg/dsl"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMarkdown(t *testing.T) {
	b := dsl.New()
	b.State("s0").Initial().On('1', "s1")
	b.State("s1").Final()
	a := b.Build()
	require.True(t, a.Valid())

	md := tui.Markdown("ends-with-one", a)
	assert.Contains(t, md, "# ends-with-one")
	assert.Contains(t, md, "Initial state: `s0`")
	assert.Contains(t, md, "| s0 | ✓ |  | `1` → s1 |")
	assert.Contains(t, md, "| s1 |  | ✓ | (no transitions) |")
}

func TestPrintVerdict(t *testing.T) {
	b := dsl.New()
	b.State("s0").Initial().On('1', "s1")
	b.State("s1").Final()
	a := b.Build()

	tests := []struct {
		input string
		want  string
	}{
		{"1", "Accepted\n"},
		{"", "Rejected (stopped in non-final state s0)\n"},
		{"0", "Rejected (no transition from s0 on \"0\")\n"},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			var buf bytes.Buffer
			tui.PrintVerdict(&buf, a.Run(tt.input), termenv.WithProfile(termenv.Ascii))
			assert.Equal(t, tt.want, buf.String())
		})
	}
}

func TestPrintBanner(t *testing.T) {
	var buf bytes.Buffer
	tui.PrintBanner(&buf, "1.2.3\n")
	assert.Contains(t, buf.String(), "v1.2.3")
}

func TestNewRenderer(t *testing.T) {
	render := tui.NewRenderer()
	out, err := render("# Title")
	require.NoError(t, err)
	assert.Contains(t, out, "Title")
}
