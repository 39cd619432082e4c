package file_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/aretw0/automaton/pkg/adapters/file"
	"github.com/aretw0/automaton/pkg/domain"
	"github.com/aretw0/automaton/pkg/ports"
	"github.com/aretw0/automaton/pkg/ports/tests"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Ensure Store implements RunStore
var _ ports.RunStore = (*file.Store)(nil)

func TestFileStore_Contract(t *testing.T) {
	tests.RunStoreContract(t, file.NewStore(t.TempDir()))
}

func TestFileStore_ListMissingDir(t *testing.T) {
	store := file.NewStore(filepath.Join(t.TempDir(), "nope"))
	runs, err := store.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, runs)
}

func TestFileStore_IgnoresForeignFiles(t *testing.T) {
	dir := t.TempDir()
	store := file.NewStore(dir)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, domain.NewRun("r1", "a", domain.Result{Steps: []domain.Step{}}, time.Now())))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "tmp-r2-123.json"), []byte("{}"), 0644))

	runs, err := store.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"r1"}, runs)
}

func TestFileStore_RejectsPathLikeIDs(t *testing.T) {
	store := file.NewStore(t.TempDir())
	ctx := context.Background()

	err := store.Save(ctx, domain.NewRun("../escape", "a", domain.Result{}, time.Now()))
	assert.Error(t, err)

	_, err = store.Load(ctx, "../escape")
	assert.ErrorIs(t, err, domain.ErrRunNotFound)
}
