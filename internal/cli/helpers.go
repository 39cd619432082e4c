package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/aretw0/automaton/internal/logging"
	"github.com/aretw0/automaton/pkg/domain"
)

// NewLogger configures the application logger.
// In debug mode, it writes to Stderr (to separate from Stdout output).
func NewLogger(debug bool, level string) (*slog.Logger, error) {
	if debug {
		return logging.New(slog.LevelDebug), nil
	}
	lvl, err := logging.ParseLevel(level)
	if err != nil {
		return nil, err
	}
	return logging.New(lvl), nil
}

// printSystemMessage prints a standardized system message.
func printSystemMessage(w io.Writer, format string, args ...any) {
	fmt.Fprintf(w, ">>> %s\n", fmt.Sprintf(format, args...))
}

func createDebugHooks(logger *slog.Logger) domain.LifecycleHooks {
	return domain.LifecycleHooks{
		OnLoad: func(ctx context.Context, e *domain.LoadEvent) {
			logger.Debug("Loaded", "automaton", e.Automaton, "valid", e.Valid, "states", e.States, "diagnostics", len(e.Diagnostics))
		},
		OnStep: func(ctx context.Context, e *domain.StepEvent) {
			logger.Debug("Step", "run_id", e.RunID, "from", e.From, "symbol", e.Symbol, "to", e.To)
		},
		OnAccept: func(ctx context.Context, e *domain.RunEvent) {
			logger.Debug("Accept", "run_id", e.RunID, "state", e.Result.FinalState)
		},
		OnReject: func(ctx context.Context, e *domain.RunEvent) {
			logger.Debug("Reject", "run_id", e.RunID, "reason", e.Result.Reason, "state", e.Result.FinalState)
		},
	}
}

// combineHooks fans every event out to each set of hooks, in order.
func combineHooks(all ...domain.LifecycleHooks) domain.LifecycleHooks {
	return domain.LifecycleHooks{
		OnLoad: func(ctx context.Context, e *domain.LoadEvent) {
			for _, h := range all {
				if h.OnLoad != nil {
					h.OnLoad(ctx, e)
				}
			}
		},
		OnStep: func(ctx context.Context, e *domain.StepEvent) {
			for _, h := range all {
				if h.OnStep != nil {
					h.OnStep(ctx, e)
				}
			}
		},
		OnAccept: func(ctx context.Context, e *domain.RunEvent) {
			for _, h := range all {
				if h.OnAccept != nil {
					h.OnAccept(ctx, e)
				}
			}
		},
		OnReject: func(ctx context.Context, e *domain.RunEvent) {
			for _, h := range all {
				if h.OnReject != nil {
					h.OnReject(ctx, e)
				}
			}
		},
	}
}
