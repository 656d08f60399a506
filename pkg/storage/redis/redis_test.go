package redis

import (
	"context"
	"os"
	"testing"

	"taskboard/pkg/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStorage_SetGetRemove(t *testing.T) {
	addr := os.Getenv("TASKBOARD_TEST_REDIS_ADDR")
	if addr == "" {
		t.Skip("TASKBOARD_TEST_REDIS_ADDR not set")
	}
	ctx := context.Background()

	s, err := New(ctx, addr, 0, "taskboard-test:")
	require.NoError(t, err)
	defer s.Close()
	t.Cleanup(func() { s.Remove(ctx, "tasks") })

	_, err = s.Get(ctx, "tasks")
	assert.ErrorIs(t, err, storage.ErrNotFound)

	require.NoError(t, s.Set(ctx, "tasks", `[]`))
	got, err := s.Get(ctx, "tasks")
	require.NoError(t, err)
	assert.Equal(t, `[]`, got)

	// ключ лежит под префиксом
	raw, err := s.client.Get(ctx, "taskboard-test:tasks").Result()
	require.NoError(t, err)
	assert.Equal(t, `[]`, raw)

	require.NoError(t, s.Remove(ctx, "tasks"))
	_, err = s.Get(ctx, "tasks")
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func TestNew_Unreachable(t *testing.T) {
	_, err := New(context.Background(), "127.0.0.1:1", 0, "")
	assert.Error(t, err)
}
