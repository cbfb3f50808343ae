package persistence

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xiaomi388/bookshelf/pkg/types"
)

func TestJSONStoreMissingFileIsEmpty(t *testing.T) {
	store := NewJSONStore(filepath.Join(t.TempDir(), "books.json"))

	books, err := store.LoadBooks()
	require.NoError(t, err)
	assert.NotNil(t, books)
	assert.Empty(t, books)
}

func TestJSONStoreMalformedFile(t *testing.T) {
	for name, content := range map[string]string{
		"garbage":   "{not json",
		"object":    `{"id": "x"}`,
		"truncated": `[{"id": "x", "title": "Dune"`,
		"bad year":  `[{"id": "x", "year": "1965"}]`,
	} {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "books.json")
			require.NoError(t, os.WriteFile(path, []byte(content), 0644))

			books, err := NewJSONStore(path).LoadBooks()
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrMalformedData))
			assert.NotNil(t, books)
			assert.Empty(t, books)
		})
	}
}

func TestJSONStoreNullIsEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "books.json")
	require.NoError(t, os.WriteFile(path, []byte("null"), 0644))

	books, err := NewJSONStore(path).LoadBooks()
	require.NoError(t, err)
	assert.Equal(t, []types.Book{}, books)
}

func TestJSONStoreRoundTrip(t *testing.T) {
	store := NewJSONStore(filepath.Join(t.TempDir(), "books.json"))
	books := newTestBooks()

	require.NoError(t, store.DumpBooks(books))

	loaded, err := store.LoadBooks()
	require.NoError(t, err)
	assert.Equal(t, books, loaded)

	again, err := store.LoadBooks()
	require.NoError(t, err)
	assert.Equal(t, loaded, again)
}

func TestJSONStoreEmptyCatalogIsEmptyArray(t *testing.T) {
	path := filepath.Join(t.TempDir(), "books.json")
	require.NoError(t, DumpBooks(path, nil))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "[]\n", string(data))
}

func TestJSONStoreFileFormat(t *testing.T) {
	path := filepath.Join(t.TempDir(), "books.json")
	require.NoError(t, DumpBooks(path, []types.Book{types.NewBook("id-1", "Dune", "Frank Herbert", 1965)}))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	want := `[
    {
        "id": "id-1",
        "title": "Dune",
        "author": "Frank Herbert",
        "year": 1965,
        "status": "available"
    }
]
`
	assert.Equal(t, want, string(data))

	var raw []map[string]any
	require.NoError(t, json.Unmarshal(data, &raw))
	require.Len(t, raw, 1)
	assert.Len(t, raw[0], 5)
}

func TestJSONStorePreservesForeignFields(t *testing.T) {
	path := filepath.Join(t.TempDir(), "books.json")
	content := `[{"id": "keep-me", "title": "T", "author": "A", "year": -44, "status": "checked-out"}]`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	store := NewJSONStore(path)
	books, err := store.LoadBooks()
	require.NoError(t, err)
	require.Len(t, books, 1)
	assert.Equal(t, types.Book{ID: "keep-me", Title: "T", Author: "A", Year: -44, Status: types.StatusCheckedOut}, books[0])

	require.NoError(t, store.DumpBooks(books))
	reloaded, err := store.LoadBooks()
	require.NoError(t, err)
	assert.Equal(t, books, reloaded)
}

func TestJSONStoreDumpFailureKeepsPreviousFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "books.json")
	require.NoError(t, DumpBooks(path, newTestBooks()))

	err := DumpBooks(filepath.Join(dir, "missing", "books.json"), newTestBooks())
	require.Error(t, err)

	loaded, err := LoadBooks(path)
	require.NoError(t, err)
	assert.Equal(t, newTestBooks(), loaded)
}

func TestJSONStoreLeavesNoTempFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "books.json")
	require.NoError(t, DumpBooks(path, newTestBooks()))
	require.NoError(t, DumpBooks(path, newTestBooks()[:1]))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "books.json", entries[0].Name())
}
