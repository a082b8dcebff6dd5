package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
)

// JsonFileStorer writes every run to <dir>/<name>-<id>.json.
type JsonFileStorer struct {
	dir string
}

func NewJsonFileStorer(dir string) *JsonFileStorer {
	return &JsonFileStorer{
		dir: dir,
	}
}

func (s *JsonFileStorer) SaveRun(ctx context.Context, run *Run) error {
	if err := os.MkdirAll(s.dir, 0755); err != nil {
		return fmt.Errorf("create run dir: %w", err)
	}

	data, err := json.MarshalIndent(run, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal run: %w", err)
	}

	path := s.Path(run)
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write run: %w", err)
	}

	slog.Info("run saved to json file", "id", run.ID, "path", path)
	return nil
}

func (s *JsonFileStorer) Path(run *Run) string {
	return filepath.Join(s.dir, fmt.Sprintf("%s-%s.json", run.Name, run.ID))
}
