package env

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDotEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("KOBE_TEST_STORE=pg\nKOBE_TEST_KEEP=file\n"), 0644))

	t.Setenv("ENV_PATH", "")
	t.Setenv("KOBE_TEST_KEEP", "process")
	t.Cleanup(func() { os.Unsetenv("KOBE_TEST_STORE") })

	require.NoError(t, LoadDotEnv("local", path))
	assert.Equal(t, "pg", os.Getenv("KOBE_TEST_STORE"))
	assert.Equal(t, "process", os.Getenv("KOBE_TEST_KEEP"))
}

func TestLoadDotEnv_Missing(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "nope.env")
	t.Setenv("ENV_PATH", "")

	assert.Error(t, LoadDotEnv("local", missing))
	assert.Error(t, LoadDotEnv("", missing))
	assert.NoError(t, LoadDotEnv("prod", missing))
}

func TestLoadDotEnv_EnvPathOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "override.env")
	require.NoError(t, os.WriteFile(path, []byte("KOBE_TEST_OVERRIDE=yes\n"), 0644))
	t.Setenv("ENV_PATH", path)
	t.Cleanup(func() { os.Unsetenv("KOBE_TEST_OVERRIDE") })

	require.NoError(t, LoadDotEnv("local", "does-not-exist.env"))
	assert.Equal(t, "yes", os.Getenv("KOBE_TEST_OVERRIDE"))
}
