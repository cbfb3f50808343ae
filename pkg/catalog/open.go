package catalog

import (
	"fmt"

	"github.com/xiaomi388/bookshelf/pkg/config"
	"github.com/xiaomi388/bookshelf/pkg/persistence"
)

// OpenConfigured loads the configuration at config.ConfigPath and opens the catalog it names.
func OpenConfigured(opts ...Option) (*Catalog, error) {
	cfg, err := config.Load(config.ConfigPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	return OpenWithConfig(cfg, opts...)
}

// OpenWithConfig creates the configured store and opens the catalog on it. The
// catalog is nil only when the store could not be created.
func OpenWithConfig(cfg *config.Config, opts ...Option) (*Catalog, error) {
	store, err := persistence.NewStore(cfg.Storage)
	if err != nil {
		return nil, fmt.Errorf("failed to create store: %w", err)
	}

	return Open(store, opts...)
}
