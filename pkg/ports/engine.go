package ports

import (
	"context"

	"github.com/aretw0/automaton/pkg/domain"
)

// Simulator is the surface adapters (HTTP, MCP) drive.
type Simulator interface {
	// Automaton returns the loaded, valid automaton.
	Automaton() *domain.Automaton

	// Validate simulates input and returns the recorded run.
	Validate(ctx context.Context, input string) (*domain.Run, error)

	// Runs lists stored run IDs.
	Runs(ctx context.Context) ([]string, error)

	// Run retrieves a stored run.
	Run(ctx context.Context, runID string) (*domain.Run, error)
}
