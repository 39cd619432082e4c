package automaton

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"
	"time"

	"github.com/aretw0/automaton/internal/logging"
	"github.com/aretw0/automaton/pkg/adapters/file"
	"github.com/aretw0/automaton/pkg/domain"
	"github.com/aretw0/automaton/pkg/loader"
	"github.com/aretw0/automaton/pkg/ports"
	"github.com/google/uuid"
)

// Ensure Engine implements ports.Simulator
var _ ports.Simulator = (*Engine)(nil)

// Engine is the high-level entry point of the library.
// It owns one validated automaton and simulates inputs against it, firing
// lifecycle hooks and persisting runs when a store is configured.
// Engine is safe for concurrent use: every simulation gets its own cursor.
type Engine struct {
	automaton *domain.Automaton
	source    ports.DefinitionSource
	store     ports.RunStore
	hooks     domain.LifecycleHooks
	logger    *slog.Logger
	alphabet  string
	maxInput  int
	deferred  bool
	now       func() time.Time
	Name      string
}

// Option defines a functional option for configuring the Engine.
type Option func(*Engine)

// WithSource injects a custom DefinitionSource, bypassing the default file source.
func WithSource(src ports.DefinitionSource) Option {
	return func(e *Engine) {
		e.source = src
	}
}

// WithLogger sets a custom structured logger for the engine.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) {
		e.logger = logger
	}
}

// WithLifecycleHooks registers observability hooks.
func WithLifecycleHooks(hooks domain.LifecycleHooks) Option {
	return func(e *Engine) {
		e.hooks = hooks
	}
}

// WithRunStore persists every simulation in store.
func WithRunStore(store ports.RunStore) Option {
	return func(e *Engine) {
		e.store = store
	}
}

// WithAlphabet restricts inputs to the given symbols. An empty alphabet
// accepts any symbol.
func WithAlphabet(symbols string) Option {
	return func(e *Engine) {
		e.alphabet = symbols
	}
}

// WithMaxInputSize caps the byte length of validated inputs. Zero keeps the
// default (see SanitizeInput).
func WithMaxInputSize(n int) Option {
	return func(e *Engine) {
		e.maxInput = n
	}
}

// WithDeferredResolution lets transitions reference states declared later
// in the definition.
func WithDeferredResolution() Option {
	return func(e *Engine) {
		e.deferred = true
	}
}

// WithClock overrides the time source used to stamp runs.
func WithClock(now func() time.Time) Option {
	return func(e *Engine) {
		e.now = now
	}
}

// New loads the definition at path and returns an engine over it.
// If WithSource is provided, path is only used as a descriptive name.
// An invalid definition is an error wrapping domain.ErrInvalidAutomaton.
func New(path string, opts ...Option) (*Engine, error) {
	eng := newEngine(opts)

	if eng.source == nil {
		if path == "" {
			return nil, fmt.Errorf("path is required when no custom source is provided")
		}
		absPath, err := filepath.Abs(path)
		if err != nil {
			return nil, fmt.Errorf("invalid path: %w", err)
		}
		eng.source = file.NewSource(absPath)
	}
	eng.Name = eng.source.Name()
	if path != "" {
		eng.Name = filepath.Base(path)
	}
	eng.logger = eng.logger.With("automaton", eng.Name)

	var loaderOpts []loader.Option
	loaderOpts = append(loaderOpts, loader.WithLogger(eng.logger))
	if eng.deferred {
		loaderOpts = append(loaderOpts, loader.WithDeferredResolution())
	}
	a := loader.New(loaderOpts...).LoadSource(context.Background(), eng.source)

	if err := eng.attach(a); err != nil {
		return nil, err
	}
	return eng, nil
}

// NewFromAutomaton wraps an already built automaton, e.g. one produced by
// the dsl package.
func NewFromAutomaton(name string, a *domain.Automaton, opts ...Option) (*Engine, error) {
	eng := newEngine(opts)
	eng.Name = name
	eng.logger = eng.logger.With("automaton", name)
	if err := eng.attach(a); err != nil {
		return nil, err
	}
	return eng, nil
}

func newEngine(opts []Option) *Engine {
	eng := &Engine{}
	for _, opt := range opts {
		opt(eng)
	}
	// Ensure logger is initialized so the loader never receives nil.
	if eng.logger == nil {
		eng.logger = logging.NewNop()
	}
	if eng.now == nil {
		eng.now = time.Now
	}
	return eng
}

func (e *Engine) attach(a *domain.Automaton) error {
	if e.hooks.OnLoad != nil {
		e.hooks.OnLoad(context.Background(), &domain.LoadEvent{
			EventBase:   e.event(domain.EventLoad),
			Valid:       a.Valid(),
			States:      a.Len(),
			Diagnostics: a.Diagnostics(),
		})
	}
	if !a.Valid() {
		return fmt.Errorf("failed to load %s: %w", e.Name, a.Err())
	}
	e.automaton = a
	return nil
}

func (e *Engine) event(t domain.EventType) domain.EventBase {
	return domain.EventBase{Timestamp: e.now(), Type: t, Automaton: e.Name}
}

// Automaton returns the loaded automaton.
func (e *Engine) Automaton() *domain.Automaton {
	return e.automaton
}

// Alphabet returns the configured input alphabet ("" when unrestricted).
func (e *Engine) Alphabet() string {
	return e.alphabet
}

// Render returns the textual rendering of the automaton.
func (e *Engine) Render() string {
	return e.automaton.String()
}

// CheckInput verifies that every symbol of input belongs to the alphabet.
func (e *Engine) CheckInput(input string) error {
	if e.alphabet == "" {
		return nil
	}
	for i, r := range []rune(input) {
		if !strings.ContainsRune(e.alphabet, r) {
			return fmt.Errorf("%w: %w: %q at position %d (allowed: %s)", domain.ErrInvalidInput, domain.ErrSymbolNotInAlphabet, r, i, e.alphabet)
		}
	}
	return nil
}

// Validate simulates input and returns the run. Rejection is not an error:
// it is reported by run.Accepted. Errors come from the input policy (wrapping
// domain.ErrInvalidInput), a cancelled context, or the run store.
func (e *Engine) Validate(ctx context.Context, input string) (*domain.Run, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := SanitizeInput(input, e.maxInput); err != nil {
		return nil, err
	}
	if err := e.CheckInput(input); err != nil {
		return nil, err
	}

	res := e.automaton.Run(input)
	run := domain.NewRun(uuid.NewString(), e.Name, res, e.now().UTC())
	e.report(ctx, run)

	if e.store != nil {
		if err := e.store.Save(ctx, run); err != nil {
			return run, fmt.Errorf("failed to save run %s: %w", run.ID, err)
		}
	}
	return run, nil
}

func (e *Engine) report(ctx context.Context, run *domain.Run) {
	for _, step := range run.Steps {
		e.logger.Debug("transition", "run_id", run.ID, "from", step.From, "symbol", step.Symbol, "to", step.To)
		if e.hooks.OnStep != nil {
			e.hooks.OnStep(ctx, &domain.StepEvent{
				EventBase: e.event(domain.EventStep),
				RunID:     run.ID,
				Step:      step,
			})
		}
	}

	attrs := []any{"run_id", run.ID, "input", run.Input, "reason", run.Reason, "state", run.FinalState}
	if run.Offending != "" {
		attrs = append(attrs, "symbol", run.Offending)
	}

	if run.Accepted {
		e.logger.Info("input accepted", attrs...)
		if e.hooks.OnAccept != nil {
			e.hooks.OnAccept(ctx, &domain.RunEvent{EventBase: e.event(domain.EventAccept), RunID: run.ID, Result: run.Result})
		}
		return
	}
	e.logger.Info("input rejected", attrs...)
	if e.hooks.OnReject != nil {
		e.hooks.OnReject(ctx, &domain.RunEvent{EventBase: e.event(domain.EventReject), RunID: run.ID, Result: run.Result})
	}
}

// Runs lists the stored run IDs. Without a store it returns an empty list.
func (e *Engine) Runs(ctx context.Context) ([]string, error) {
	if e.store == nil {
		return []string{}, nil
	}
	return e.store.List(ctx)
}

// Run retrieves a stored run.
func (e *Engine) Run(ctx context.Context, runID string) (*domain.Run, error) {
	if e.store == nil {
		return nil, domain.ErrRunNotFound
	}
	return e.store.Load(ctx, runID)
}

// Source returns the definition source the engine was loaded from (nil for
// engines built with NewFromAutomaton).
func (e *Engine) Source() ports.DefinitionSource {
	return e.source
}
