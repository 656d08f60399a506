package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadJSONC(t *testing.T) {
	path := writeFile(t, "config.jsonc", `{
	// storage backend
	"storage": {
		"backend": "postgres",
		"dsn": "${{ .Env.TASKBOARD_PG_DSN }}",
		"timeout": "2s",
	},
	"board": {"page_size": 10},
	"errors": {"display_duration": "1500ms"}
}`)
	t.Setenv("TASKBOARD_PG_DSN", "postgres://u:p@localhost/tasks")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "postgres", cfg.Storage.Backend)
	assert.Equal(t, "postgres://u:p@localhost/tasks", cfg.Storage.DSN)
	assert.Equal(t, 2*time.Second, cfg.Storage.Timeout.Duration())
	assert.Equal(t, 10, cfg.Board.PageSize)
	assert.Equal(t, 1500*time.Millisecond, cfg.Errors.DisplayDuration.Duration())
	assert.Equal(t, "taskboard-tasks", cfg.Storage.Key)
}

func TestLoadYAML(t *testing.T) {
	path := writeFile(t, "config.yaml", `
storage:
  backend: redis
  redis_addr: cache:6379
  redis_db: 2
errors:
  display_duration: 3s
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "redis", cfg.Storage.Backend)
	assert.Equal(t, "cache:6379", cfg.Storage.RedisAddr)
	assert.Equal(t, 2, cfg.Storage.RedisDB)
	assert.Equal(t, 3*time.Second, cfg.Errors.DisplayDuration.Duration())
	assert.Equal(t, 6, cfg.Board.PageSize)
}

func TestLoadDefaults(t *testing.T) {
	t.Setenv("TASKBOARD_PATH", "/srv/taskboard")

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.jsonc"))
	require.NoError(t, err)

	assert.Equal(t, "file", cfg.Storage.Backend)
	assert.Equal(t, "taskboard-tasks", cfg.Storage.Key)
	assert.Equal(t, filepath.Join("/srv/taskboard", "data"), cfg.Storage.Dir)
	assert.Equal(t, 5*time.Second, cfg.Storage.Timeout.Duration())
	assert.Equal(t, 6, cfg.Board.PageSize)
	assert.Equal(t, 5*time.Second, cfg.Errors.DisplayDuration.Duration())
}

func TestLoadSQLiteDefaultDSN(t *testing.T) {
	t.Setenv("TASKBOARD_PATH", "/srv/taskboard")
	path := writeFile(t, "config.jsonc", `{"storage": {"backend": "sqlite"}}`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join("/srv/taskboard", "taskboard.db"), cfg.Storage.DSN)
}

func TestLoadInvalid(t *testing.T) {
	path := writeFile(t, "config.jsonc", `{"board": {"page_size": "six"}}`)
	_, err := Load(path)
	assert.Error(t, err)

	path = writeFile(t, "config.jsonc", `{"errors": {"display_duration": "soon"}}`)
	_, err = Load(path)
	assert.Error(t, err)
}

func TestLoadUndefinedEnvTemplate(t *testing.T) {
	path := writeFile(t, "config.jsonc", `{"storage": {"dsn": "${{ .Env.TASKBOARD_TEST_UNSET_DSN }}"}}`)
	t.Setenv("TASKBOARD_TEST_UNSET_DSN", "")
	os.Unsetenv("TASKBOARD_TEST_UNSET_DSN")

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "TASKBOARD_TEST_UNSET_DSN")
}

func TestExpandEnvTemplates(t *testing.T) {
	t.Setenv("TASKBOARD_TEST_HOST", "db")
	t.Setenv("TASKBOARD_TEST_EMPTY", "")

	out, err := expandEnvTemplates([]byte(`a ${{.Env.TASKBOARD_TEST_HOST}} b ${{ .Env.TASKBOARD_TEST_EMPTY }} c`))
	require.NoError(t, err)
	assert.Equal(t, "a db b  c", string(out))
}
