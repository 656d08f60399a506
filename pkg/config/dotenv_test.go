package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDotenv(t *testing.T) {
	path := writeFile(t, ".env", `
# comment
TASKBOARD_TEST_A=plain # trailing comment
export TASKBOARD_TEST_B="quoted value"
TASKBOARD_TEST_C='single $TASKBOARD_TEST_A'
TASKBOARD_TEST_D=${TASKBOARD_TEST_A}/sub
TASKBOARD_TEST_KEEP=from-file
`)
	t.Setenv("TASKBOARD_TEST_KEEP", "from-env")
	for _, k := range []string{"TASKBOARD_TEST_A", "TASKBOARD_TEST_B", "TASKBOARD_TEST_C", "TASKBOARD_TEST_D"} {
		t.Setenv(k, "")
		os.Unsetenv(k)
	}

	require.NoError(t, LoadDotenv(path))

	assert.Equal(t, "plain", os.Getenv("TASKBOARD_TEST_A"))
	assert.Equal(t, "quoted value", os.Getenv("TASKBOARD_TEST_B"))
	assert.Equal(t, "single $TASKBOARD_TEST_A", os.Getenv("TASKBOARD_TEST_C"))
	assert.Equal(t, "plain/sub", os.Getenv("TASKBOARD_TEST_D"))
	assert.Equal(t, "from-env", os.Getenv("TASKBOARD_TEST_KEEP"))
}

func TestLoadDotenvMissing(t *testing.T) {
	assert.NoError(t, LoadDotenv(filepath.Join(t.TempDir(), ".env")))
}

func TestParseDotenvRejectsMalformedLine(t *testing.T) {
	_, err := parseDotenv(strings.NewReader("A=1\n\nnot a pair\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "line 3")

	_, err = parseDotenv(strings.NewReader("=value\n"))
	assert.Error(t, err)
}

func TestParseDotenvKeepsOrder(t *testing.T) {
	pairs, err := parseDotenv(strings.NewReader("B=2\nA=1\nB=3\n"))
	require.NoError(t, err)
	assert.Equal(t, [][2]string{{"B", "2"}, {"A", "1"}, {"B", "3"}}, pairs)
}

func TestDataPath(t *testing.T) {
	home, err := os.UserHomeDir()
	require.NoError(t, err)

	t.Setenv("TASKBOARD_PATH", "/srv/taskboard")
	assert.Equal(t, "/srv/taskboard", DataPath())
	assert.Equal(t, filepath.Join("/srv/taskboard", "config.jsonc"), ConfigPath())
	assert.Equal(t, filepath.Join("/srv/taskboard", ".env"), DotenvPath())

	t.Setenv("TASKBOARD_PATH", filepath.Join("~", "boards"))
	assert.Equal(t, filepath.Join(home, "boards"), DataPath())

	t.Setenv("TASKBOARD_PATH", "")
	assert.Equal(t, filepath.Join(home, ".taskboard"), DataPath())
}
