package persistence

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/xiaomi388/bookshelf/pkg/types"
)

// Store abstracts catalog persistence. DumpBooks always replaces the whole set.
type Store interface {
	LoadBooks() ([]types.Book, error)
	DumpBooks(books []types.Book) error
	Close() error
}

// NewStoreWithBackend creates a Store for the given backend and optional path.
func NewStoreWithBackend(backend, path string) (Store, error) {
	return NewStore(types.StorageConfig{Backend: backend, Path: path})
}

// NewStore creates a Store based on the storage configuration.
func NewStore(cfg types.StorageConfig) (Store, error) {
	backend := cfg.Backend
	if backend == "" {
		backend = BackendJSON
	}

	path := cfg.Path
	switch backend {
	case BackendJSON:
		if path == "" {
			path = DefaultBookPath
		}
		logrus.WithField("path", path).Debug("using json store")
		return NewJSONStore(path), nil
	case BackendSQLite:
		if path == "" {
			path = DefaultSQLitePath
		}
		logrus.WithField("path", path).Debug("using sqlite store")
		return NewSQLiteStore(path)
	case BackendMemory:
		logrus.Debug("using memory store")
		return NewMemoryStore(), nil
	default:
		return nil, fmt.Errorf("unknown storage backend: %s", backend)
	}
}
