// Package tests holds reusable contract suites for port implementations.
package tests

import (
	"context"
	"testing"
	"time"

	"github.com/aretw0/automaton/pkg/domain"
	"github.com/aretw0/automaton/pkg/ports"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// RunStoreContract verifies that a RunStore implementation adheres to the
// interface contract.
func RunStoreContract(t *testing.T, store ports.RunStore) {
	t.Helper()
	ctx := context.Background()
	runID := "contract-run-" + time.Now().Format("20060102150405")

	newRun := func(id string) *domain.Run {
		return domain.NewRun(id, "contract", domain.Result{
			Input:      "01",
			Accepted:   true,
			Reason:     domain.ReasonAccepted,
			Consumed:   2,
			FinalState: "s1",
			Steps: []domain.Step{
				{From: "s0", Symbol: "0", To: "s0"},
				{From: "s0", Symbol: "1", To: "s1"},
			},
		}, time.Now().UTC().Truncate(time.Second))
	}

	t.Run("Save and Load", func(t *testing.T) {
		run := newRun(runID)
		require.NoError(t, store.Save(ctx, run), "Save should not return error")

		loaded, err := store.Load(ctx, runID)
		require.NoError(t, err, "Load should not return error")
		assert.Equal(t, run.ID, loaded.ID)
		assert.Equal(t, run.Input, loaded.Input)
		assert.True(t, loaded.Accepted)
		assert.Equal(t, run.Steps, loaded.Steps)
		assert.True(t, run.CreatedAt.Equal(loaded.CreatedAt))
	})

	t.Run("Load Is Isolated", func(t *testing.T) {
		loaded, err := store.Load(ctx, runID)
		require.NoError(t, err)
		loaded.Steps[0].To = "mutated"

		again, err := store.Load(ctx, runID)
		require.NoError(t, err)
		assert.Equal(t, "s0", again.Steps[0].To)
	})

	t.Run("Load Non-Existent", func(t *testing.T) {
		_, err := store.Load(ctx, "non-existent-"+runID)
		assert.ErrorIs(t, err, domain.ErrRunNotFound)
	})

	t.Run("Delete", func(t *testing.T) {
		require.NoError(t, store.Save(ctx, newRun(runID)))
		require.NoError(t, store.Delete(ctx, runID), "Delete should not return error")

		_, err := store.Load(ctx, runID)
		assert.ErrorIs(t, err, domain.ErrRunNotFound, "Load after Delete should return ErrRunNotFound")

		assert.NoError(t, store.Delete(ctx, runID), "Deleting twice is not an error")
	})

	t.Run("List", func(t *testing.T) {
		id1 := runID + "-1"
		id2 := runID + "-2"
		require.NoError(t, store.Save(ctx, newRun(id1)))
		require.NoError(t, store.Save(ctx, newRun(id2)))
		defer func() {
			_ = store.Delete(ctx, id1)
			_ = store.Delete(ctx, id2)
		}()

		runs, err := store.List(ctx)
		require.NoError(t, err)
		assert.Contains(t, runs, id1)
		assert.Contains(t, runs, id2)
	})
}

// DefinitionSourceContract verifies that a DefinitionSource returns want
// and honors a cancelled context.
func DefinitionSourceContract(t *testing.T, src ports.DefinitionSource, want []byte) {
	t.Helper()

	t.Run("Read", func(t *testing.T) {
		got, err := src.Read(context.Background())
		require.NoError(t, err)
		assert.Equal(t, string(want), string(got))
	})

	t.Run("Name", func(t *testing.T) {
		assert.NotEmpty(t, src.Name())
	})

	t.Run("Cancelled Context", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		_, err := src.Read(ctx)
		assert.ErrorIs(t, err, context.Canceled)
	})
}
