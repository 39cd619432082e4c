package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/aretw0/automaton"
	"github.com/aretw0/automaton/internal/logging"
	"github.com/aretw0/automaton/internal/presentation/graph"
	"github.com/aretw0/automaton/pkg/domain"
	"github.com/aretw0/automaton/pkg/ports"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

const (
	definitionURI = "automaton://definition"
	graphURI      = "automaton://graph"
)

// ValidateArgs are the arguments of the validate_input tool.
type ValidateArgs struct {
	Input string `json:"input"`
}

// RunArgs are the arguments of the get_run tool.
type RunArgs struct {
	RunID string `json:"run_id"`
}

// DescribeResponse is the output of the describe_automaton tool.
type DescribeResponse struct {
	Initial  string   `json:"initial" jsonschema_description:"Name of the initial state"`
	States   int      `json:"states" jsonschema_description:"Number of states"`
	Finals   []string `json:"finals" jsonschema_description:"Names of the accepting states"`
	Alphabet []string `json:"alphabet" jsonschema_description:"Symbols used by transitions"`
	Text     string   `json:"text" jsonschema_description:"Human-readable rendering"`
}

// Server wraps the engine and exposes it as an MCP Server.
type Server struct {
	engine    ports.Simulator
	logger    *slog.Logger
	mcpServer *server.MCPServer
}

// NewServer creates a new MCP Server instance.
func NewServer(engine ports.Simulator, logger *slog.Logger) *Server {
	if logger == nil {
		logger = logging.NewNop()
	}
	s := &Server{
		engine:    engine,
		logger:    logger,
		mcpServer: server.NewMCPServer("automaton-mcp", strings.TrimSpace(automaton.Version)),
	}
	s.registerTools()
	s.registerResources()
	return s
}

// MCPServer returns the underlying server, e.g. to mount another transport.
func (s *Server) MCPServer() *server.MCPServer {
	return s.mcpServer
}

// ServeStdio starts the server on Stdin/Stdout.
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.mcpServer)
}

func (s *Server) registerTools() {
	// TOOL: validate_input
	validateTool := mcp.NewTool("validate_input",
		mcp.WithDescription("Simulate the automaton on an input string and report whether it is accepted, with the trace of transitions taken."),
		mcp.WithString("input", mcp.Required(), mcp.Description("Input string; every character is one symbol")),
		mcp.WithOutputSchema[domain.Run](),
	)
	s.mcpServer.AddTool(validateTool, mcp.NewStructuredToolHandler(s.handleValidate))

	// TOOL: describe_automaton
	describeTool := mcp.NewTool("describe_automaton",
		mcp.WithDescription("Describe the loaded automaton: initial state, accepting states, alphabet and transitions."),
		mcp.WithOutputSchema[DescribeResponse](),
	)
	s.mcpServer.AddTool(describeTool, mcp.NewStructuredToolHandler(s.handleDescribe))

	// TOOL: get_run
	s.mcpServer.AddTool(mcp.NewTool("get_run",
		mcp.WithDescription("Fetch a previously recorded run by ID."),
		mcp.WithString("run_id", mcp.Required(), mcp.Description("Run ID returned by validate_input")),
	), s.handleGetRun)
}

func (s *Server) handleValidate(ctx context.Context, request mcp.CallToolRequest, args ValidateArgs) (*domain.Run, error) {
	run, err := s.engine.Validate(ctx, args.Input)
	if err != nil {
		s.logger.Warn("mcp validate rejected", "error", err)
		return nil, fmt.Errorf("validate failed: %w", err)
	}
	return run, nil
}

func (s *Server) handleDescribe(ctx context.Context, request mcp.CallToolRequest, args struct{}) (DescribeResponse, error) {
	a := s.engine.Automaton()

	resp := DescribeResponse{
		States:   a.Len(),
		Finals:   []string{},
		Alphabet: []string{},
		Text:     a.String(),
		Initial:  domain.UndefinedInitial,
	}
	if init, ok := a.Initial(); ok {
		resp.Initial = init.Name
	}
	for _, st := range a.States() {
		if st.Final {
			resp.Finals = append(resp.Finals, st.Name)
		}
	}
	for _, r := range a.Alphabet() {
		resp.Alphabet = append(resp.Alphabet, string(r))
	}
	return resp, nil
}

func (s *Server) handleGetRun(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id, err := request.RequireString("run_id")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	run, err := s.engine.Run(ctx, id)
	if errors.Is(err, domain.ErrRunNotFound) {
		return mcp.NewToolResultError(fmt.Sprintf("run %s not found", id)), nil
	}
	if err != nil {
		return nil, fmt.Errorf("load run: %w", err)
	}
	jsonBytes, _ := json.Marshal(run)
	return mcp.NewToolResultText(string(jsonBytes)), nil
}

func (s *Server) registerResources() {
	// EXPOSE: automaton://definition
	s.mcpServer.AddResource(mcp.NewResource(definitionURI, "Loaded automaton",
		mcp.WithMIMEType("application/json"),
	), func(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
		jsonBytes, err := json.Marshal(s.engine.Automaton())
		if err != nil {
			return nil, fmt.Errorf("failed to encode automaton: %w", err)
		}
		return []mcp.ResourceContents{
			mcp.TextResourceContents{URI: definitionURI, MIMEType: "application/json", Text: string(jsonBytes)},
		}, nil
	})

	// EXPOSE: automaton://graph
	s.mcpServer.AddResource(mcp.NewResource(graphURI, "Automaton as a Mermaid flowchart",
		mcp.WithMIMEType("text/plain"),
	), func(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
		return []mcp.ResourceContents{
			mcp.TextResourceContents{URI: graphURI, MIMEType: "text/plain", Text: graph.GenerateMermaid(s.engine.Automaton(), nil)},
		}, nil
	})
}
