package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/aretw0/automaton/internal/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const endsWithOne = `state s0 0 1
state s1 1 0
transition s0 0 s0
transition s0 1 s1
transition s1 0 s0
transition s1 1 s1
`

func writeDefinition(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func runREPL(t *testing.T, script ...string) (string, *REPL) {
	t.Helper()
	var out bytes.Buffer
	r := NewREPL(strings.NewReader(strings.Join(script, "\n")+"\n"), &out, Options{Alphabet: "01"}, logging.NewNop())
	require.NoError(t, r.Run(context.Background()))
	return out.String(), r
}

func TestREPL_NonInteractiveSuppressesPrompts(t *testing.T) {
	out, r := runREPL(t, "4")
	assert.False(t, r.Interactive)
	assert.NotContains(t, out, "Menu:")
	assert.NotContains(t, out, "Choose an option")
	assert.Contains(t, out, ">>> Goodbye.")
}

func TestREPL_RequiresLoadedAutomaton(t *testing.T) {
	out, _ := runREPL(t, "2", "3", "4")
	assert.Equal(t, 2, strings.Count(out, "No automaton loaded"))
}

func TestREPL_LoadShowValidate(t *testing.T) {
	path := writeDefinition(t, "ends.dfa", endsWithOne)

	out, r := runREPL(t, "1", path, "2", "3", "01", "10", "0a1", "EXIT", "4")
	require.NotNil(t, r.Engine())

	assert.Contains(t, out, "Automaton loaded (2 states).")
	assert.Contains(t, out, "Automaton structure:\nInitial state: [s0]\n[s0]\n  --0--> s0\n  --1--> s1\n(s1)\n")
	assert.Contains(t, out, "  s0 --0--> s0\n  s0 --1--> s1\nAccepted\n")
	assert.Contains(t, out, "Rejected (stopped in non-final state s0)")
	assert.Contains(t, out, ">>> invalid input: symbol not in alphabet: 'a' at position 1 (allowed: 01)")
	assert.Contains(t, out, "Goodbye.")
}

func TestREPL_InvalidAutomatonIsNotUsed(t *testing.T) {
	path := writeDefinition(t, "two.dfa", "state a 0 1\nstate b 0 1\n")

	out, r := runREPL(t, "1", path, "3", "4")
	assert.Nil(t, r.Engine())
	assert.Contains(t, out, "Invalid automaton")
	assert.Contains(t, out, "No automaton loaded")
}

func TestREPL_MissingFile(t *testing.T) {
	out, _ := runREPL(t, "1", filepath.Join(t.TempDir(), "missing.dfa"), "4")
	assert.Contains(t, out, "Failed to load")
}

func TestREPL_SkippedRecordsAreReported(t *testing.T) {
	path := writeDefinition(t, "noisy.dfa", endsWithOne+"bogus line\n")

	out, _ := runREPL(t, "1", path, "4")
	assert.Contains(t, out, "Automaton loaded (2 states).")
	assert.Contains(t, out, ">>> Skipped line 7")
}

func TestREPL_InvalidOptionAndEOF(t *testing.T) {
	var out bytes.Buffer
	r := NewREPL(strings.NewReader("9\n"), &out, Options{}, logging.NewNop())
	require.NoError(t, r.Run(context.Background()))
	assert.Contains(t, out.String(), `Invalid option "9"`)
}

func TestREPL_InteractivePrompts(t *testing.T) {
	var out bytes.Buffer
	r := NewREPL(strings.NewReader("4\n"), &out, Options{}, logging.NewNop())
	r.Interactive = true
	require.NoError(t, r.Run(context.Background()))
	assert.Contains(t, out.String(), "Menu:\n1. Load an automaton file")
	assert.Contains(t, out.String(), "Choose an option: ")
}
