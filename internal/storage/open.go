// ABOUTME: Opens the configured Backend and wraps it in a CachedStore
package storage

import (
	"fmt"

	"github.com/harper/momprep/internal/charm"
	"github.com/harper/momprep/internal/config"
	"github.com/harper/momprep/internal/storage/sqlite"
)

// Backend names accepted in configuration
const (
	BackendSQLite = "sqlite"
	BackendCharm  = "charm"
	BackendMemory = "memory"
)

// OpenBackend opens the backend selected by cfg.Backend
func OpenBackend(cfg *config.Config) (Backend, error) {
	switch cfg.Backend {
	case BackendSQLite, "":
		store, err := sqlite.Open(cfg.DBPath)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrUnavailable, err)
		}
		return store, nil
	case BackendCharm:
		client, err := charm.NewClient(&charm.Config{
			Host:     cfg.CharmHost,
			DBName:   cfg.CharmDBName,
			AutoSync: cfg.AutoSync,
		})
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrUnavailable, err)
		}
		return client, nil
	case BackendMemory:
		return NewMemoryBackend(nil, nil), nil
	}
	return nil, fmt.Errorf("unknown backend %q", cfg.Backend)
}

// Open opens the configured backend with snapshot caching
func Open(cfg *config.Config) (*CachedStore, error) {
	backend, err := OpenBackend(cfg)
	if err != nil {
		return nil, err
	}
	return NewCachedStore(backend, WithTTL(cfg.CacheTTL)), nil
}
