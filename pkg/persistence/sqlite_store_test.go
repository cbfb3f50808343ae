package persistence

import (
	"path/filepath"
	"reflect"
	"testing"

	"github.com/xiaomi388/bookshelf/pkg/types"
)

func newTestBooks() []types.Book {
	return []types.Book{
		{
			ID:     "5b1d3c2e-0000-4000-8000-000000000001",
			Title:  "Dune",
			Author: "Frank Herbert",
			Year:   1965,
			Status: types.StatusAvailable,
		},
		{
			ID:     "5b1d3c2e-0000-4000-8000-000000000002",
			Title:  "Мастер и Маргарита",
			Author: "Михаил Булгаков",
			Year:   1967,
			Status: types.StatusCheckedOut,
		},
		{
			ID:     "5b1d3c2e-0000-4000-8000-000000000003",
			Title:  "Anathem",
			Author: "Neal Stephenson",
			Year:   2008,
			Status: types.StatusAvailable,
		},
	}
}

func TestSQLiteStoreRoundTrip(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")
	store, err := NewSQLiteStore(dbPath)
	if err != nil {
		t.Fatalf("NewSQLiteStore: %v", err)
	}
	defer store.Close()

	books := newTestBooks()

	if err := store.DumpBooks(books); err != nil {
		t.Fatalf("DumpBooks: %v", err)
	}

	loaded, err := store.LoadBooks()
	if err != nil {
		t.Fatalf("LoadBooks: %v", err)
	}

	if !reflect.DeepEqual(books, loaded) {
		t.Errorf("round-trip mismatch.\nExpected: %+v\nActual:   %+v", books, loaded)
	}
}

func TestSQLiteStoreEmpty(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")
	store, err := NewSQLiteStore(dbPath)
	if err != nil {
		t.Fatalf("NewSQLiteStore: %v", err)
	}
	defer store.Close()

	loaded, err := store.LoadBooks()
	if err != nil {
		t.Fatalf("LoadBooks: %v", err)
	}

	if loaded == nil || len(loaded) != 0 {
		t.Errorf("expected empty non-nil slice, got %#v", loaded)
	}
}

func TestSQLiteStoreOverwrite(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")
	store, err := NewSQLiteStore(dbPath)
	if err != nil {
		t.Fatalf("NewSQLiteStore: %v", err)
	}
	defer store.Close()

	// Write initial data
	if err := store.DumpBooks(newTestBooks()); err != nil {
		t.Fatalf("DumpBooks (first): %v", err)
	}

	// Overwrite with a shorter catalog
	books2 := []types.Book{types.NewBook("only", "Solaris", "Stanisław Lem", 1961)}
	if err := store.DumpBooks(books2); err != nil {
		t.Fatalf("DumpBooks (second): %v", err)
	}

	loaded, err := store.LoadBooks()
	if err != nil {
		t.Fatalf("LoadBooks: %v", err)
	}

	if len(loaded) != 1 || loaded[0].ID != "only" {
		t.Errorf("expected single book 'only', got %+v", loaded)
	}
}

func TestSQLiteStoreReopen(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")
	store, err := NewSQLiteStore(dbPath)
	if err != nil {
		t.Fatalf("NewSQLiteStore: %v", err)
	}
	if err := store.DumpBooks(newTestBooks()); err != nil {
		t.Fatalf("DumpBooks: %v", err)
	}
	if err := store.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	reopened, err := NewSQLiteStore(dbPath)
	if err != nil {
		t.Fatalf("NewSQLiteStore (reopen): %v", err)
	}
	defer reopened.Close()

	loaded, err := reopened.LoadBooks()
	if err != nil {
		t.Fatalf("LoadBooks: %v", err)
	}
	if !reflect.DeepEqual(newTestBooks(), loaded) {
		t.Errorf("reopen mismatch.\nExpected: %+v\nActual:   %+v", newTestBooks(), loaded)
	}
}
