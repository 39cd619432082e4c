package mcp

import (
	"context"
	"testing"

	"github.com/aretw0/automaton"
	"github.com/aretw0/automaton/pkg/adapters/memory"
	"github.com/aretw0/automaton/pkg/domain"
	"github.com/aretw0/automaton/pkg/dsl"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newServer(t *testing.T) *Server {
	t.Helper()
	b := dsl.New()
	b.State("s0").Initial().Loop('0').On('1', "s1")
	b.State("s1").Final().Loop('1').On('0', "s0")

	eng, err := automaton.New("ends-with-one.dfa",
		automaton.WithSource(b.Source("ends-with-one.dfa")),
		automaton.WithAlphabet("01"),
		automaton.WithRunStore(memory.NewStore()),
	)
	require.NoError(t, err)
	return NewServer(eng, nil)
}

func callRequest(args map[string]any) mcp.CallToolRequest {
	var req mcp.CallToolRequest
	req.Params.Arguments = args
	return req
}

func resultText(t *testing.T, res *mcp.CallToolResult) string {
	t.Helper()
	require.NotEmpty(t, res.Content)
	text, ok := res.Content[0].(mcp.TextContent)
	require.True(t, ok)
	return text.Text
}

func TestValidateInput(t *testing.T) {
	s := newServer(t)
	ctx := context.Background()

	run, err := s.handleValidate(ctx, mcp.CallToolRequest{}, ValidateArgs{Input: "001"})
	require.NoError(t, err)
	assert.True(t, run.Accepted)
	assert.Len(t, run.Steps, 3)

	run, err = s.handleValidate(ctx, mcp.CallToolRequest{}, ValidateArgs{Input: "10"})
	require.NoError(t, err)
	assert.False(t, run.Accepted)
	assert.Equal(t, domain.ReasonNotFinal, run.Reason)

	_, err = s.handleValidate(ctx, mcp.CallToolRequest{}, ValidateArgs{Input: "2"})
	assert.ErrorIs(t, err, domain.ErrSymbolNotInAlphabet)
}

func TestValidateInput_ToolResult(t *testing.T) {
	s := newServer(t)
	handler := mcp.NewStructuredToolHandler(s.handleValidate)

	res, err := handler(context.Background(), callRequest(map[string]any{"input": "x"}))
	require.NoError(t, err)
	assert.True(t, res.IsError)
	assert.Contains(t, resultText(t, res), "alphabet")

	res, err = handler(context.Background(), callRequest(map[string]any{"input": "1"}))
	require.NoError(t, err)
	assert.False(t, res.IsError)
	assert.Contains(t, resultText(t, res), `"accepted":true`)
}

func TestDescribeAutomaton(t *testing.T) {
	s := newServer(t)

	resp, err := s.handleDescribe(context.Background(), mcp.CallToolRequest{}, struct{}{})
	require.NoError(t, err)
	assert.Equal(t, "s0", resp.Initial)
	assert.Equal(t, 2, resp.States)
	assert.Equal(t, []string{"s1"}, resp.Finals)
	assert.Equal(t, []string{"0", "1"}, resp.Alphabet)
	assert.Contains(t, resp.Text, "Initial state: [s0]")
}

func TestGetRun(t *testing.T) {
	s := newServer(t)
	ctx := context.Background()

	run, err := s.handleValidate(ctx, mcp.CallToolRequest{}, ValidateArgs{Input: "1"})
	require.NoError(t, err)

	res, err := s.handleGetRun(ctx, callRequest(map[string]any{"run_id": run.ID}))
	require.NoError(t, err)
	assert.False(t, res.IsError)
	assert.Contains(t, resultText(t, res), run.ID)

	res, err = s.handleGetRun(ctx, callRequest(map[string]any{"run_id": "missing"}))
	require.NoError(t, err)
	assert.True(t, res.IsError)

	res, err = s.handleGetRun(ctx, callRequest(map[string]any{}))
	require.NoError(t, err)
	assert.True(t, res.IsError)
}
