package types

import (
	"errors"
	"fmt"
)

type Status string

const (
	StatusAvailable  = Status("available")
	StatusCheckedOut = Status("checked-out")
)

// Statuses lists every status a book may hold.
var Statuses = []Status{StatusAvailable, StatusCheckedOut}

var ErrInvalidStatus = errors.New("invalid status")

// Valid reports whether s is one of Statuses. The comparison is exact.
func (s Status) Valid() bool {
	for _, v := range Statuses {
		if s == v {
			return true
		}
	}

	return false
}

type StorageConfig struct {
	Backend string `yaml:"backend"`
	Path    string `yaml:"path"`
}

type Book struct {
	ID     string `json:"id"`
	Title  string `json:"title"`
	Author string `json:"author"`
	Year   int    `json:"year"`
	Status Status `json:"status"`
}

func NewBook(id, title, author string, year int) Book {
	return Book{
		ID:     id,
		Title:  title,
		Author: author,
		Year:   year,
		Status: StatusAvailable,
	}
}

// UpdateStatus sets the status when it is valid and leaves the book untouched otherwise.
func (b *Book) UpdateStatus(status Status) error {
	if !status.Valid() {
		return fmt.Errorf("%w %q: allowed statuses are %q and %q", ErrInvalidStatus, status, StatusAvailable, StatusCheckedOut)
	}

	b.Status = status
	return nil
}

func (b Book) String() string {
	return fmt.Sprintf("ID: %s\nTitle: %s\nAuthor: %s\nYear: %d\nStatus: %s\n", b.ID, b.Title, b.Author, b.Year, b.Status)
}

func GetBook(books []Book, id string) (Book, bool) {
	for _, book := range books {
		if book.ID == id {
			return book, true
		}
	}

	return Book{}, false
}

// DuplicateIDs returns every id that appears more than once, in order of first repeat.
func DuplicateIDs(books []Book) []string {
	seen := map[string]int{}
	var dups []string
	for _, book := range books {
		seen[book.ID]++
		if seen[book.ID] == 2 {
			dups = append(dups, book.ID)
		}
	}

	return dups
}
