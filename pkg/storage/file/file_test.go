package file

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"taskboard/pkg/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStorage_RoundTrip(t *testing.T) {
	dir := t.TempDir()
	s, err := New(dir)
	require.NoError(t, err)
	ctx := context.Background()

	_, err = s.Get(ctx, "tasks")
	assert.ErrorIs(t, err, storage.ErrNotFound)

	require.NoError(t, s.Set(ctx, "tasks", `[]`))
	got, err := s.Get(ctx, "tasks")
	require.NoError(t, err)
	assert.Equal(t, `[]`, got)

	_, err = os.Stat(filepath.Join(dir, "tasks.json.tmp"))
	assert.True(t, os.IsNotExist(err), "tmp file must be renamed away")

	require.NoError(t, s.Remove(ctx, "tasks"))
	require.NoError(t, s.Remove(ctx, "tasks"))
	_, err = s.Get(ctx, "tasks")
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func TestStorage_InvalidKey(t *testing.T) {
	s, err := New(t.TempDir())
	require.NoError(t, err)

	for _, key := range []string{"", "..", "../escape", "a/b"} {
		assert.Error(t, s.Set(context.Background(), key, "x"), "key %q", key)
	}
}

func TestStorage_SetFailsOnReadOnlyDir(t *testing.T) {
	if os.Getuid() == 0 {
		t.Skip("root ignores directory permissions")
	}
	dir := t.TempDir()
	s, err := New(dir)
	require.NoError(t, err)
	require.NoError(t, os.Chmod(dir, 0o500))
	t.Cleanup(func() { os.Chmod(dir, 0o755) })

	assert.Error(t, s.Set(context.Background(), "tasks", "[]"))
}
