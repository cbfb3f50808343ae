package persistence

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
	"github.com/xiaomi388/bookshelf/pkg/types"
)

// ErrMalformedData is returned when the catalog file exists but does not hold a JSON array of books.
var ErrMalformedData = errors.New("malformed catalog data")

// JSONStore implements Store using a single JSON file holding an array of books.
type JSONStore struct {
	path string
}

func NewJSONStore(path string) *JSONStore {
	return &JSONStore{path: path}
}

func (s *JSONStore) Path() string {
	return s.path
}

func (s *JSONStore) LoadBooks() ([]types.Book, error) {
	return LoadBooks(s.path)
}

func (s *JSONStore) DumpBooks(books []types.Book) error {
	return DumpBooks(s.path, books)
}

func (s *JSONStore) Close() error {
	return nil
}

// LoadBooks reads the catalog at path. A missing file is an empty catalog. When the
// file cannot be decoded an empty catalog is returned together with ErrMalformedData.
func LoadBooks(path string) ([]types.Book, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		logrus.WithField("path", path).Debug("catalog file does not exist yet")
		return []types.Book{}, nil
	}
	if err != nil {
		return []types.Book{}, fmt.Errorf("failed to read catalog file: %w", err)
	}

	books := []types.Book{}
	if err := json.Unmarshal(data, &books); err != nil {
		return []types.Book{}, fmt.Errorf("%w in %s: %w", ErrMalformedData, path, err)
	}
	if books == nil {
		books = []types.Book{}
	}

	logrus.WithFields(logrus.Fields{"path": path, "books": len(books)}).Debug("loaded catalog")
	return books, nil
}

// DumpBooks writes the full catalog next to path and renames it into place, so a
// failed write leaves the previous file intact.
func DumpBooks(path string, books []types.Book) error {
	if books == nil {
		books = []types.Book{}
	}

	data, err := json.MarshalIndent(books, "", "    ")
	if err != nil {
		return fmt.Errorf("failed to marshal books: %w", err)
	}
	data = append(data, '\n')

	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to write file: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to sync file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to close file: %w", err)
	}
	if err := os.Chmod(tmp.Name(), 0644); err != nil {
		return fmt.Errorf("failed to chmod file: %w", err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("failed to replace catalog file: %w", err)
	}

	logrus.WithFields(logrus.Fields{"path": path, "books": len(books)}).Debug("saved catalog")
	return nil
}
