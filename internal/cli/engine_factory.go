package cli

import (
	"fmt"
	"log/slog"

	"github.com/aretw0/automaton"
	"github.com/aretw0/automaton/pkg/domain"
)

// NewEngine initializes an engine over the definition at path with standard
// CLI conventions.
func NewEngine(path string, opts Options, logger *slog.Logger, extra ...automaton.Option) (*automaton.Engine, error) {
	engineOpts := []automaton.Option{
		automaton.WithLogger(logger),
		automaton.WithAlphabet(opts.Alphabet),
	}

	hooks := append([]domain.LifecycleHooks(nil), opts.Hooks...)
	if opts.Debug {
		hooks = append(hooks, createDebugHooks(logger))
	}
	if len(hooks) > 0 {
		engineOpts = append(engineOpts, automaton.WithLifecycleHooks(combineHooks(hooks...)))
	}

	if opts.Deferred {
		engineOpts = append(engineOpts, automaton.WithDeferredResolution())
	}
	engineOpts = append(engineOpts, extra...)

	engine, err := automaton.New(path, engineOpts...)
	if err != nil {
		return nil, fmt.Errorf("error initializing engine: %w", err)
	}
	return engine, nil
}
