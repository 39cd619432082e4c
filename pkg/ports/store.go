package ports

import (
	"context"

	"github.com/aretw0/automaton/pkg/domain"
)

// RunStore defines the interface for persisting simulation runs.
type RunStore interface {
	// Save persists a run under run.ID.
	Save(ctx context.Context, run *domain.Run) error

	// Load retrieves a run.
	// Returns domain.ErrRunNotFound if the run does not exist.
	Load(ctx context.Context, runID string) (*domain.Run, error)

	// List returns the IDs of the stored runs, oldest first.
	List(ctx context.Context) ([]string, error)

	// Delete removes a run. Deleting a missing run is not an error.
	Delete(ctx context.Context, runID string) error
}
