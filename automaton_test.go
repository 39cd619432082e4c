package automaton_test

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/aretw0/automaton"
	"github.com/aretw0/automaton/pkg/adapters/memory"
	"github.com/aretw0/automaton/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const scenarioA = `state s0 0 1
state s1 1 0
transition s0 1 s1
`

func newEngine(t *testing.T, def string, opts ...automaton.Option) *automaton.Engine {
	t.Helper()
	opts = append([]automaton.Option{automaton.WithSource(memory.NewSource("test.dfa", def))}, opts...)
	eng, err := automaton.New("", opts...)
	require.NoError(t, err)
	return eng
}

func TestNew_FromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "a.dfa")
	require.NoError(t, os.WriteFile(path, []byte(scenarioA), 0644))

	eng, err := automaton.New(path)
	require.NoError(t, err)
	assert.Equal(t, "a.dfa", eng.Name)
	assert.NotNil(t, eng.Source())
	assert.True(t, eng.Automaton().Validate("1"))
}

func TestNew_RequiresPathOrSource(t *testing.T) {
	_, err := automaton.New("")
	assert.Error(t, err)
}

func TestNew_InvalidDefinitions(t *testing.T) {
	tests := []struct {
		name string
		def  string
		want error
	}{
		{"Two Initial States", "state a 0 1\nstate b 0 1\n", domain.ErrMultipleInitialStates},
		{"No States", "", domain.ErrNoStates},
		{"Non Deterministic", "state a 1 1\ntransition a 0 a\ntransition a 0 a\n", domain.ErrNondeterministic},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := automaton.New("", automaton.WithSource(memory.NewSource("bad.dfa", tt.def)))
			assert.ErrorIs(t, err, domain.ErrInvalidAutomaton)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestNew_MissingFile(t *testing.T) {
	_, err := automaton.New(filepath.Join(t.TempDir(), "missing.dfa"))
	assert.ErrorIs(t, err, domain.ErrInvalidAutomaton)
	assert.ErrorIs(t, err, domain.ErrRead)
}

func TestNew_DeferredResolution(t *testing.T) {
	def := "state s0 0 1\ntransition s0 1 s1\nstate s1 1 0\n"

	eng := newEngine(t, def)
	assert.False(t, eng.Automaton().Validate("1"))

	eng = newEngine(t, def, automaton.WithDeferredResolution())
	assert.True(t, eng.Automaton().Validate("1"))
}

func TestEngine_Validate(t *testing.T) {
	eng := newEngine(t, scenarioA)
	ctx := context.Background()

	run, err := eng.Validate(ctx, "1")
	require.NoError(t, err)
	assert.True(t, run.Accepted)
	assert.NotEmpty(t, run.ID)
	assert.Equal(t, "test.dfa", run.Automaton)

	run, err = eng.Validate(ctx, "11")
	require.NoError(t, err)
	assert.False(t, run.Accepted)
	assert.Equal(t, domain.ReasonNoTransition, run.Reason)
}

func TestEngine_Alphabet(t *testing.T) {
	eng := newEngine(t, scenarioA, automaton.WithAlphabet("01"))
	assert.Equal(t, "01", eng.Alphabet())

	_, err := eng.Validate(context.Background(), "102")
	assert.ErrorIs(t, err, domain.ErrSymbolNotInAlphabet)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Contains(t, err.Error(), "position 2")

	assert.NoError(t, eng.CheckInput(""))
	assert.NoError(t, eng.CheckInput("0101"))
}

func TestEngine_InputPolicy(t *testing.T) {
	eng := newEngine(t, scenarioA, automaton.WithMaxInputSize(3))

	_, err := eng.Validate(context.Background(), "0101")
	assert.ErrorIs(t, err, domain.ErrInputTooLarge)

	_, err = eng.Validate(context.Background(), "01")
	assert.ErrorIs(t, err, domain.ErrControlCharacter)

	run, err := eng.Validate(context.Background(), "011")
	require.NoError(t, err)
	assert.Equal(t, "011", run.Input)
}

func TestEngine_CancelledContext(t *testing.T) {
	eng := newEngine(t, scenarioA)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := eng.Validate(ctx, "1")
	assert.ErrorIs(t, err, context.Canceled)
}

func TestEngine_Hooks(t *testing.T) {
	var mu sync.Mutex
	var events []domain.EventType
	record := func(e domain.EventType) {
		mu.Lock()
		defer mu.Unlock()
		events = append(events, e)
	}

	hooks := domain.LifecycleHooks{
		OnLoad: func(ctx context.Context, e *domain.LoadEvent) {
			assert.True(t, e.Valid)
			assert.Equal(t, 2, e.States)
			record(e.Type)
		},
		OnStep: func(ctx context.Context, e *domain.StepEvent) {
			assert.Equal(t, "s0", e.From)
			assert.Equal(t, "1", e.Symbol)
			record(e.Type)
		},
		OnAccept: func(ctx context.Context, e *domain.RunEvent) { record(e.Type) },
		OnReject: func(ctx context.Context, e *domain.RunEvent) {
			assert.Equal(t, domain.ReasonNotFinal, e.Result.Reason)
			record(e.Type)
		},
	}

	eng := newEngine(t, scenarioA, automaton.WithLifecycleHooks(hooks))
	_, _ = eng.Validate(context.Background(), "1")
	_, _ = eng.Validate(context.Background(), "")

	assert.Equal(t, []domain.EventType{
		domain.EventLoad,
		domain.EventStep,
		domain.EventAccept,
		domain.EventReject,
	}, events)
}

func TestEngine_LoadHookSeesInvalidDefinitions(t *testing.T) {
	var got *domain.LoadEvent
	hooks := domain.LifecycleHooks{OnLoad: func(ctx context.Context, e *domain.LoadEvent) { got = e }}

	_, err := automaton.New("", automaton.WithSource(memory.NewSource("bad.dfa", "nonsense\n")), automaton.WithLifecycleHooks(hooks))
	require.Error(t, err)
	require.NotNil(t, got)
	assert.False(t, got.Valid)
	assert.Len(t, got.Diagnostics.ByKind(domain.KindFormat), 1)
}

func TestEngine_RunStore(t *testing.T) {
	store := memory.NewStore()
	fixed := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	eng := newEngine(t, scenarioA, automaton.WithRunStore(store), automaton.WithClock(func() time.Time { return fixed }))
	ctx := context.Background()

	run, err := eng.Validate(ctx, "1")
	require.NoError(t, err)
	assert.Equal(t, fixed, run.CreatedAt)

	ids, err := eng.Runs(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{run.ID}, ids)

	loaded, err := eng.Run(ctx, run.ID)
	require.NoError(t, err)
	assert.Equal(t, run.Result, loaded.Result)
}

func TestEngine_WithoutRunStore(t *testing.T) {
	eng := newEngine(t, scenarioA)
	ids, err := eng.Runs(context.Background())
	require.NoError(t, err)
	assert.Empty(t, ids)

	_, err = eng.Run(context.Background(), "anything")
	assert.ErrorIs(t, err, domain.ErrRunNotFound)
}

func TestEngine_ConcurrentValidate(t *testing.T) {
	eng := newEngine(t, scenarioA, automaton.WithRunStore(memory.NewStore()))
	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			run, err := eng.Validate(context.Background(), "1")
			if err != nil || !run.Accepted {
				t.Errorf("unexpected result: %v %v", run, err)
			}
		}()
	}
	wg.Wait()

	ids, _ := eng.Runs(context.Background())
	assert.Len(t, ids, 20)
}

func TestNewFromAutomaton(t *testing.T) {
	b := domain.NewBuilder()
	_, _ = b.AddState("only", true, true)

	eng, err := automaton.NewFromAutomaton("built", b.Build())
	require.NoError(t, err)
	assert.Equal(t, "built", eng.Name)
	assert.Nil(t, eng.Source())

	_, err = automaton.NewFromAutomaton("empty", domain.NewBuilder().Build())
	assert.ErrorIs(t, err, domain.ErrNoStates)
}
