package sqlite

import (
	"context"
	"path/filepath"
	"testing"

	"taskboard/pkg/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupTestStorage создаёт in-memory БД для теста.
func setupTestStorage(t *testing.T) *Storage {
	t.Helper()

	s, err := New(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func TestStorage_GetMissing(t *testing.T) {
	s := setupTestStorage(t)
	_, err := s.Get(context.Background(), "tasks")
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func TestStorage_SetUpserts(t *testing.T) {
	s := setupTestStorage(t)
	ctx := context.Background()

	require.NoError(t, s.Set(ctx, "tasks", `[1]`))
	require.NoError(t, s.Set(ctx, "tasks", `[1,2]`))

	got, err := s.Get(ctx, "tasks")
	require.NoError(t, err)
	assert.Equal(t, `[1,2]`, got)

	var count int64
	require.NoError(t, s.db.Model(&slot{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestStorage_Remove(t *testing.T) {
	s := setupTestStorage(t)
	ctx := context.Background()

	require.NoError(t, s.Set(ctx, "tasks", `[]`))
	require.NoError(t, s.Remove(ctx, "tasks"))
	require.NoError(t, s.Remove(ctx, "tasks"))

	_, err := s.Get(ctx, "tasks")
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func TestStorage_PersistsAcrossReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "taskboard.db")
	ctx := context.Background()

	s, err := New(path)
	require.NoError(t, err)
	require.NoError(t, s.Set(ctx, "tasks", `["kept"]`))
	require.NoError(t, s.Close())

	s, err = New(path)
	require.NoError(t, err)
	defer s.Close()

	got, err := s.Get(ctx, "tasks")
	require.NoError(t, err)
	assert.Equal(t, `["kept"]`, got)
}

func TestNew_UnopenablePathFails(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "dir", "tasks.db")

	s, err := New(path)
	assert.Error(t, err)
	assert.Nil(t, s)
}
