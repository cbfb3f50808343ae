package shell

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/xiaomi388/bookshelf/pkg/catalog"
	"github.com/xiaomi388/bookshelf/pkg/types"
)

const menu = `
Choose an action:
1. Add a book
2. Delete a book
3. Search books
4. List all books
5. Change book status
6. Exit
`

// Shell runs the numbered menu over a catalog until the user exits or input ends.
type Shell struct {
	catalog *catalog.Catalog
	in      *bufio.Reader
	out     io.Writer
}

func New(c *catalog.Catalog, in io.Reader, out io.Writer) *Shell {
	return &Shell{
		catalog: c,
		in:      bufio.NewReader(in),
		out:     out,
	}
}

// Run loops over the menu. Catalog errors are reported and never end the loop;
// only a failure to read input is returned.
func (s *Shell) Run() error {
	for {
		fmt.Fprint(s.out, menu)
		choice, err := s.prompt("Enter action number: ")
		if errors.Is(err, io.EOF) {
			fmt.Fprintln(s.out)
			return nil
		}
		if err != nil {
			return err
		}

		switch strings.TrimSpace(choice) {
		case "1":
			err = s.add()
		case "2":
			err = s.delete()
		case "3":
			err = s.search()
		case "4":
			s.list()
		case "5":
			err = s.updateStatus()
		case "6":
			return nil
		default:
			fmt.Fprintln(s.out, "Invalid choice. Please try again.")
		}

		if errors.Is(err, io.EOF) {
			fmt.Fprintln(s.out)
			return nil
		}
		if err != nil {
			return err
		}
	}
}

// prompt prints label and reads one line without its line ending. A final line
// without a newline is still returned; io.EOF is only reported when nothing was read.
func (s *Shell) prompt(label string) (string, error) {
	fmt.Fprint(s.out, label)
	line, err := s.in.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		return "", err
	}

	return strings.TrimRight(line, "\r\n"), nil
}

func (s *Shell) add() error {
	title, err := s.prompt("Enter the book title: ")
	if err != nil {
		return err
	}
	author, err := s.prompt("Enter the book author: ")
	if err != nil {
		return err
	}
	year, err := s.prompt("Enter the publication year: ")
	if err != nil {
		return err
	}

	book, err := s.catalog.Add(title, author, year)
	switch {
	case errors.Is(err, catalog.ErrInvalidInput):
		fmt.Fprintln(s.out, "Invalid year. Please enter a number.")
	case err != nil:
		s.reportError(err)
	default:
		fmt.Fprintf(s.out, "Book added with ID %s\n", book.ID)
	}

	return nil
}

func (s *Shell) delete() error {
	id, err := s.prompt("Enter the ID of the book to delete: ")
	if err != nil {
		return err
	}

	err = s.catalog.Delete(id)
	switch {
	case errors.Is(err, catalog.ErrNotFound):
		fmt.Fprintln(s.out, "No book with that ID was found.")
	case err != nil:
		s.reportError(err)
	default:
		fmt.Fprintln(s.out, "Book deleted.")
	}

	return nil
}

func (s *Shell) search() error {
	term, err := s.prompt("Enter part of a title or author, or a year: ")
	if err != nil {
		return err
	}

	results := s.catalog.Search(term)
	if len(results) == 0 {
		fmt.Fprintln(s.out, "Nothing found.")
		return nil
	}
	s.printBooks(results)

	return nil
}

func (s *Shell) list() {
	if s.catalog.Len() == 0 {
		fmt.Fprintln(s.out, "The catalog is empty.")
		return
	}
	s.printBooks(s.catalog.List())
}

func (s *Shell) updateStatus() error {
	id, err := s.prompt("Enter the book ID: ")
	if err != nil {
		return err
	}
	status, err := s.prompt(fmt.Sprintf("Enter the new status (%q or %q): ", types.StatusAvailable, types.StatusCheckedOut))
	if err != nil {
		return err
	}

	err = s.catalog.UpdateStatus(id, types.Status(status))
	switch {
	case errors.Is(err, catalog.ErrNotFound):
		fmt.Fprintln(s.out, "No book with that ID was found.")
	case errors.Is(err, types.ErrInvalidStatus):
		fmt.Fprintf(s.out, "Invalid status. Available statuses: %q, %q\n", types.StatusAvailable, types.StatusCheckedOut)
	case err != nil:
		s.reportError(err)
	default:
		fmt.Fprintln(s.out, "Book status updated.")
	}

	return nil
}

func (s *Shell) printBooks(books []types.Book) {
	for _, book := range books {
		fmt.Fprintln(s.out, book)
	}
}

// reportError covers save failures; the change stays in memory until the next save.
func (s *Shell) reportError(err error) {
	logrus.WithError(err).Debug("catalog operation failed")
	fmt.Fprintf(s.out, "Error: %v\n", err)
}
