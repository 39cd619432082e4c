package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/aretw0/automaton"
	"github.com/aretw0/automaton/pkg/domain"
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

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(append([]string{"--config", filepath.Join(t.TempDir(), "none.yaml")}, args...))
	err := rootCmd.Execute()
	return out.String(), err
}

func TestVersionCommand(t *testing.T) {
	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "automaton version "+strings.TrimSpace(automaton.Version)+"\n", out)
}

func TestCheckCommand(t *testing.T) {
	out, err := execute(t, "check", writeDefinition(t, "ok.dfa", endsWithOne+"noise\n"))
	require.NoError(t, err)
	assert.Contains(t, out, "format")
	assert.Contains(t, out, "Automaton is valid! ✅ (2 states, alphabet \"01\")")

	out, err = execute(t, "check", writeDefinition(t, "bad.dfa", "state a 0 1\ntransition a 0 a\ntransition a 0 a\n"))
	assert.ErrorIs(t, err, domain.ErrNondeterministic)
	assert.Contains(t, out, "Automaton is invalid ❌")
}

func TestShowCommand(t *testing.T) {
	out, err := execute(t, "show", writeDefinition(t, "ok.dfa", endsWithOne))
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "Initial state: [s0]\n[s0]\n"))
}

func TestRunCommand(t *testing.T) {
	path := writeDefinition(t, "ok.dfa", endsWithOne)

	out, err := execute(t, "run", path, "01", "10")
	require.NoError(t, err)
	assert.Contains(t, out, "\"01\"\tAccepted\n")
	assert.Contains(t, out, "\"10\"\tRejected (stopped in non-final state s0)\n")

	_, err = execute(t, "run", path, "012")
	assert.ErrorIs(t, err, domain.ErrSymbolNotInAlphabet)
}

func TestGraphCommand(t *testing.T) {
	out, err := execute(t, "graph", writeDefinition(t, "ok.dfa", endsWithOne))
	require.NoError(t, err)
	assert.Contains(t, out, "graph LR\n")
	assert.Contains(t, out, `s0 -- "1" --> s1`)
}

func TestRunCommand_PersistsRuns(t *testing.T) {
	path := writeDefinition(t, "ok.dfa", endsWithOne)
	dir := filepath.Join(t.TempDir(), "runs")

	_, err := execute(t, "run", "--runs-dir", dir, path, "1", "0")
	require.NoError(t, err)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 2)
}
