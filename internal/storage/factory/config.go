package factory

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"

	"github.com/DjordjeVuckovic/kobe/internal/storage"
	"github.com/DjordjeVuckovic/kobe/internal/storage/es"
	"github.com/DjordjeVuckovic/kobe/internal/storage/pg"
	"github.com/DjordjeVuckovic/kobe/pkg/utils"
)

const DefaultJSONDir = "runs"

type StorageConfig struct {
	storage.Type
	Pg      *pg.PoolConfig
	Es      *es.ClientConfig
	JSONDir string
}

// LoadEnv reads the storage settings for storageType. An empty storageType
// falls back to STORAGE_TYPE.
func LoadEnv(storageType storage.Type) (*StorageConfig, error) {
	if storageType == "" {
		storageType = storage.Type(os.Getenv("STORAGE_TYPE"))
	}
	if storageType == "" {
		return nil, fmt.Errorf("STORAGE_TYPE environment variable is not set")
	}
	if !storageType.Valid() {
		slog.Error("invalid storage type", "value", storageType)
		return nil, fmt.Errorf("invalid storage type: %s, expected one of %v", storageType, storage.Types)
	}

	cfg := &StorageConfig{Type: storageType}

	switch storageType {
	case storage.ES:
		cfg.Es = &es.ClientConfig{
			Addresses: utils.SplitAndTrim(os.Getenv("ES_ADDRESSES")),
			IndexName: os.Getenv("ES_INDEX_NAME"),
			Username:  os.Getenv("ES_USERNAME"),
			Password:  os.Getenv("ES_PASSWORD"),
		}
		if cfg.Es.IndexName == "" {
			cfg.Es.IndexName = es.DefaultIndexName
		}
		if err := cfg.Es.Validate(); err != nil {
			slog.Error("invalid Elasticsearch configuration", "addresses", cfg.Es.Addresses, "indexName", cfg.Es.IndexName)
			return nil, err
		}
	case storage.PG:
		cfg.Pg = &pg.PoolConfig{
			ConnStr: os.Getenv("PG_CONNECTION_STRING"),
		}
		if v := os.Getenv("PG_MAX_CONNS"); v != "" {
			n, err := strconv.ParseInt(v, 10, 32)
			if err != nil {
				return nil, fmt.Errorf("invalid PG_MAX_CONNS %q: %w", v, err)
			}
			cfg.Pg.MaxConns = int32(n)
		}
		if err := cfg.Pg.Validate(); err != nil {
			return nil, err
		}
	case storage.JSON:
		cfg.JSONDir = os.Getenv("JSON_STORE_DIR")
		if cfg.JSONDir == "" {
			cfg.JSONDir = DefaultJSONDir
		}
	}

	return cfg, nil
}
