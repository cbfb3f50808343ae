package persistence

import (
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"

	"github.com/sirupsen/logrus"
	"github.com/xiaomi388/bookshelf/pkg/types"
)

const schema = `
CREATE TABLE IF NOT EXISTS books (
    position INTEGER PRIMARY KEY,
    id       TEXT    NOT NULL UNIQUE,
    title    TEXT    NOT NULL DEFAULT '',
    author   TEXT    NOT NULL DEFAULT '',
    year     INTEGER NOT NULL DEFAULT 0,
    status   TEXT    NOT NULL DEFAULT 'available'
);
`

// SQLiteStore implements Store using a SQLite database.
type SQLiteStore struct {
	db   *sql.DB
	path string
}

func NewSQLiteStore(path string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite db: %w", err)
	}

	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to set WAL mode: %w", err)
	}

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create tables: %w", err)
	}

	return &SQLiteStore{db: db, path: path}, nil
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

func (s *SQLiteStore) LoadBooks() ([]types.Book, error) {
	rows, err := s.db.Query("SELECT id, title, author, year, status FROM books ORDER BY position")
	if err != nil {
		return nil, fmt.Errorf("failed to query books: %w", err)
	}
	defer rows.Close()

	books := []types.Book{}
	for rows.Next() {
		var book types.Book
		var status string
		if err := rows.Scan(&book.ID, &book.Title, &book.Author, &book.Year, &status); err != nil {
			return nil, fmt.Errorf("failed to scan book: %w", err)
		}
		book.Status = types.Status(status)
		books = append(books, book)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("book rows error: %w", err)
	}

	logrus.WithFields(logrus.Fields{"path": s.path, "books": len(books)}).Debug("loaded catalog")
	return books, nil
}

// DumpBooks replaces the table contents in a single transaction.
func (s *SQLiteStore) DumpBooks(books []types.Book) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM books"); err != nil {
		return fmt.Errorf("failed to clear table books: %w", err)
	}

	stmt, err := tx.Prepare("INSERT INTO books (position, id, title, author, year, status) VALUES (?, ?, ?, ?, ?, ?)")
	if err != nil {
		return fmt.Errorf("failed to prepare insert: %w", err)
	}
	defer stmt.Close()

	for i, book := range books {
		if _, err := stmt.Exec(i, book.ID, book.Title, book.Author, book.Year, string(book.Status)); err != nil {
			return fmt.Errorf("failed to insert book %s: %w", book.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit books: %w", err)
	}

	logrus.WithFields(logrus.Fields{"path": s.path, "books": len(books)}).Debug("saved catalog")
	return nil
}
