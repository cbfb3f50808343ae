// Package catalog holds the in-memory book catalog of one session and keeps the
// backing store in step with it: every successful mutation rewrites the whole store.
package catalog

import (
	"errors"
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"
	"golang.org/x/text/cases"

	"github.com/xiaomi388/bookshelf/pkg/persistence"
	"github.com/xiaomi388/bookshelf/pkg/types"
)

type Catalog struct {
	store persistence.Store
	ids   IDGenerator
	books []types.Book
}

type Option func(*Catalog)

func WithIDGenerator(ids IDGenerator) Option {
	return func(c *Catalog) {
		c.ids = ids
	}
}

// Open loads the catalog from store. The returned Catalog is never nil: when the
// stored data cannot be read it starts empty and the load error is returned
// alongside it for the caller to report.
func Open(store persistence.Store, opts ...Option) (*Catalog, error) {
	c := &Catalog{
		store: store,
		ids:   UUIDGenerator{},
		books: []types.Book{},
	}
	for _, opt := range opts {
		opt(c)
	}

	books, err := store.LoadBooks()
	if err != nil {
		if errors.Is(err, persistence.ErrMalformedData) {
			logrus.WithError(err).Warn("catalog data is malformed, starting with an empty catalog")
		} else {
			logrus.WithError(err).Error("failed to load catalog, starting with an empty catalog")
		}
		return c, fmt.Errorf("failed to load books: %w", err)
	}

	for _, id := range types.DuplicateIDs(books) {
		logrus.WithField("id", id).Warn("duplicate book id in catalog, lookups use the first one")
	}

	if books != nil {
		c.books = books
	}
	return c, nil
}

func (c *Catalog) Close() error {
	return c.store.Close()
}

func (c *Catalog) Len() int {
	return len(c.books)
}

func (c *Catalog) save() error {
	if err := c.store.DumpBooks(c.books); err != nil {
		logrus.WithError(err).Error("failed to save catalog")
		return fmt.Errorf("%w: %w", ErrIOFailure, err)
	}

	return nil
}

func (c *Catalog) index(id string) int {
	return slices.IndexFunc(c.books, func(b types.Book) bool { return b.ID == id })
}

// ParseYear accepts a base-10 integer surrounded by optional whitespace.
func ParseYear(s string) (int, error) {
	year, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("%w: year %q is not a number", ErrInvalidInput, s)
	}

	return year, nil
}

func (c *Catalog) Add(title, author, year string) (types.Book, error) {
	y, err := ParseYear(year)
	if err != nil {
		return types.Book{}, err
	}

	id := c.ids.Generate()
	if c.index(id) >= 0 {
		return types.Book{}, fmt.Errorf("generated id %q is already in the catalog", id)
	}

	book := types.NewBook(id, title, author, y)
	c.books = append(c.books, book)
	logrus.WithFields(logrus.Fields{"id": id, "title": title}).Debug("added book")

	return book, c.save()
}

func (c *Catalog) Delete(id string) error {
	i := c.index(id)
	if i < 0 {
		return fmt.Errorf("%w: %s", ErrNotFound, id)
	}

	c.books = slices.Delete(c.books, i, i+1)
	logrus.WithField("id", id).Debug("deleted book")

	return c.save()
}

// Search returns, in catalog order, the books whose title or author contains term
// ignoring case, or whose year is exactly term.
func (c *Catalog) Search(term string) []types.Book {
	fold := cases.Fold()
	needle := fold.String(term)

	results := []types.Book{}
	for _, book := range c.books {
		if strings.Contains(fold.String(book.Title), needle) ||
			strings.Contains(fold.String(book.Author), needle) ||
			strconv.Itoa(book.Year) == term {
			results = append(results, book)
		}
	}

	return results
}

func (c *Catalog) List() []types.Book {
	return slices.Clone(c.books)
}

func (c *Catalog) Get(id string) (types.Book, bool) {
	return types.GetBook(c.books, id)
}

func (c *Catalog) UpdateStatus(id string, status types.Status) error {
	i := c.index(id)
	if i < 0 {
		return fmt.Errorf("%w: %s", ErrNotFound, id)
	}

	if err := c.books[i].UpdateStatus(status); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}
	logrus.WithFields(logrus.Fields{"id": id, "status": status}).Debug("updated book status")

	return c.save()
}
