package factory

import (
	"context"
	"fmt"

	"github.com/DjordjeVuckovic/kobe/internal/storage"
	"github.com/DjordjeVuckovic/kobe/internal/storage/es"
	"github.com/DjordjeVuckovic/kobe/internal/storage/in_mem"
	"github.com/DjordjeVuckovic/kobe/internal/storage/pg"
	pkgserver "github.com/DjordjeVuckovic/kobe/pkg/server"
)

// Store bundles the storer and, when the backend supports them, the reader
// and health checker of a storage type. Close releases the backend connection.
type Store struct {
	Storer storage.Storer
	Reader storage.Reader
	Health pkgserver.HealthChecker
	close  func()
}

func (s *Store) Close() {
	if s.close != nil {
		s.close()
	}
}

// New creates the storage backend described by cfg.
func New(ctx context.Context, cfg *StorageConfig) (*Store, error) {
	switch cfg.Type {
	case storage.PG:
		if cfg.Pg == nil {
			return nil, fmt.Errorf("missing PostgreSQL configuration")
		}
		pool, err := pg.NewConnectionPool(ctx, *cfg.Pg)
		if err != nil {
			return nil, fmt.Errorf("failed to create PostgreSQL connection pool: %w", err)
		}
		storer, err := pg.NewStorer(pool)
		if err != nil {
			pool.Close()
			return nil, err
		}
		reader, err := pg.NewReader(pool)
		if err != nil {
			pool.Close()
			return nil, err
		}
		return &Store{Storer: storer, Reader: reader, Health: pg.NewHealthChecker(pool), close: pool.Close}, nil

	case storage.ES:
		if cfg.Es == nil {
			return nil, fmt.Errorf("missing Elasticsearch configuration")
		}
		storer, err := es.NewStorer(ctx, *cfg.Es)
		if err != nil {
			return nil, err
		}
		return &Store{Storer: storer}, nil

	case storage.InMem:
		s := in_mem.NewInMemStorer()
		return &Store{Storer: s, Reader: s}, nil

	case storage.JSON:
		return &Store{Storer: storage.NewJsonFileStorer(cfg.JSONDir)}, nil

	default:
		return nil, fmt.Errorf(string(storage.ErrUnsupportedStorer), cfg.Type)
	}
}

// NewReader creates the run reader of the storage type described by cfg.
func NewReader(ctx context.Context, cfg *StorageConfig) (*Store, error) {
	s, err := New(ctx, cfg)
	if err != nil {
		return nil, err
	}
	if s.Reader == nil {
		s.Close()
		return nil, fmt.Errorf(string(storage.ErrUnsupportedReader), cfg.Type)
	}
	return s, nil
}
