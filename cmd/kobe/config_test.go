package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/DjordjeVuckovic/kobe/internal/eval/spec"
	"github.com/DjordjeVuckovic/kobe/internal/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFlags(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		wantErr bool
		check   func(t *testing.T, cfg cliConfig)
	}{
		{
			name: "defaults",
			check: func(t *testing.T, cfg cliConfig) {
				assert.Equal(t, modeEval, cfg.Mode)
				assert.Equal(t, "data", cfg.DataDir)
				assert.False(t, cfg.FromStore)
			},
		},
		{
			name: "serve from store",
			args: []string{"-mode", "serve", "-from-store", "-store", "pg"},
			check: func(t *testing.T, cfg cliConfig) {
				assert.True(t, cfg.FromStore)
				assert.Equal(t, storage.PG, cfg.storageType())
			},
		},
		{name: "unknown mode", args: []string{"-mode", "bench"}, wantErr: true},
		{name: "unknown store", args: []string{"-store", "mongo"}, wantErr: true},
		{name: "from-store outside serve", args: []string{"-from-store"}, wantErr: true},
		{name: "from-store with in_mem", args: []string{"-mode", "serve", "-from-store", "-store", "in_mem"}, wantErr: true},
		{name: "from-store with json", args: []string{"-mode", "serve", "-from-store", "-store", "json"}, wantErr: true},
		{name: "from-store with es", args: []string{"-mode", "serve", "-from-store", "-store", "es"}, wantErr: true},
		{name: "report without path", args: []string{"-mode", "report"}, wantErr: true},
		{name: "report", args: []string{"-mode", "report", "-report", "out.json"}},
		{name: "undefined flag", args: []string{"-k", "3"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := parseFlags(tt.args)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			if tt.check != nil {
				tt.check(t, cfg)
			}
		})
	}
}

func TestCliConfig_StorageType(t *testing.T) {
	t.Setenv("STORAGE_TYPE", "es")
	assert.Equal(t, storage.ES, cliConfig{}.storageType())
	assert.Equal(t, storage.JSON, cliConfig{Store: "json"}.storageType())

	t.Setenv("STORAGE_TYPE", "")
	assert.Empty(t, cliConfig{}.storageType())
}

func TestCliConfig_LoadSpec(t *testing.T) {
	data := t.TempDir()

	es, err := cliConfig{DataDir: data}.loadSpec()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(data, spec.DefaultAnnotationsDir), es.Annotations.Dir)
	assert.Equal(t, filepath.Join(data, spec.DefaultBaselinePath), es.Baseline.Path)

	specPath := filepath.Join(t.TempDir(), "eval.yaml")
	require.NoError(t, os.WriteFile(specPath, []byte("name: custom\nbaseline:\n  path: /abs/scores.csv\n"), 0644))

	es, err = cliConfig{DataDir: data, SpecPath: specPath}.loadSpec()
	require.NoError(t, err)
	assert.Equal(t, "custom", es.Name)
	assert.Equal(t, "/abs/scores.csv", es.Baseline.Path)

	_, err = cliConfig{DataDir: data, SpecPath: filepath.Join(data, "missing.yaml")}.loadSpec()
	assert.Error(t, err)
}
