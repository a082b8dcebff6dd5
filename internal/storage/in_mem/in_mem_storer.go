package in_mem

import (
	"context"
	"log/slog"
	"sync"

	"github.com/DjordjeVuckovic/kobe/internal/storage"
)

type InMemStorer struct {
	storageLock sync.RWMutex
	runs        []*storage.Run
}

func NewInMemStorer() *InMemStorer {
	return &InMemStorer{}
}

func (s *InMemStorer) SaveRun(ctx context.Context, run *storage.Run) error {
	s.storageLock.Lock()
	defer s.storageLock.Unlock()

	s.runs = append(s.runs, run)
	slog.Info("run saved to in-memory storage", "id", run.ID, "name", run.Name)
	return nil
}

func (s *InMemStorer) LatestRun(ctx context.Context) (*storage.Run, error) {
	s.storageLock.RLock()
	defer s.storageLock.RUnlock()

	var latest *storage.Run
	for _, r := range s.runs {
		if latest == nil || !r.CreatedAt.Before(latest.CreatedAt) {
			latest = r
		}
	}
	if latest == nil {
		return nil, storage.ErrNoRuns
	}
	return latest, nil
}
