package db

import (
	"context"
	"fmt"

	"library/config"
)

// New creates the LibraryManager selected by cfg.StoreBackend.
//
//	"memory"  - in process memory (default)
//	"elastic" - documents of cfg.ElasticIndex on cfg.ElasticUrl
func New(ctx context.Context, cfg config.Config) (LibraryManager, error) {
	switch cfg.StoreBackend {
	case config.STORE_BACKEND_MEMORY, "":
		return NewMemoryLibrary(), nil
	case config.STORE_BACKEND_ELASTIC:
		elasticClient, err := config.SetupElasticSearch(cfg.ElasticUrl)
		if err != nil {
			return nil, fmt.Errorf("connect elasticsearch %s: %w", cfg.ElasticUrl, err)
		}
		return NewElasticLibrary(ctx, cfg.ElasticIndex, elasticClient)
	default:
		return nil, fmt.Errorf("unknown store backend: %q", cfg.StoreBackend)
	}
}
