package testing

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitScript(t *testing.T) {
	script, err := initScript(MigrationsDir())
	require.NoError(t, err)

	runs := strings.Index(script, "CREATE TABLE IF NOT EXISTS eval_runs")
	scores := strings.Index(script, "CREATE TABLE IF NOT EXISTS eval_scores")
	require.NotEqual(t, -1, runs)
	require.NotEqual(t, -1, scores)
	assert.Less(t, runs, scores)
	assert.NotContains(t, script, "DROP TABLE")
}

func TestInitScript_Order(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "002_b.up.sql"), []byte("SELECT 2"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "001_a.up.sql"), []byte("SELECT 1;\n"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "001_a.down.sql"), []byte("SELECT 0"), 0644))

	script, err := initScript(dir)
	require.NoError(t, err)
	assert.Equal(t, "SELECT 1;\n\nSELECT 2;\n", script)

	_, err = initScript(t.TempDir())
	assert.Error(t, err)
}
