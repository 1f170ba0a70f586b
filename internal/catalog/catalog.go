// Package catalog provides the in-memory store of authors, books and the
// shelves those books occupy.
package catalog

import (
	"errors"
	"fmt"
	"log/slog"
	"sort"
)

// ShelfCapacity is the number of distinct titles a single shelf holds.
const ShelfCapacity = 2

var (
	// ErrNotFound is returned when an author has no book in the catalog.
	ErrNotFound = errors.New("book not found")

	// ErrUnshelved is returned when an author's current title is not on any
	// shelf. It matches ErrNotFound with errors.Is.
	ErrUnshelved = fmt.Errorf("title is not on any shelf: %w", ErrNotFound)

	// ErrAlreadyPresent is returned when the title is already on the shelf
	// it would have been placed on.
	ErrAlreadyPresent = errors.New("book already on shelf")
)

// Library is the set of operations the console works against.
type Library interface {
	// FindShelf returns the 1-based number of the shelf holding the
	// author's current book.
	FindShelf(author string) (int, error)
	// AddBook records book as the author's current book and places it on
	// the first shelf with free space. It returns the shelf number.
	AddBook(author, book string) (int, error)
	// ListBooks returns a copy of all author/book pairs.
	ListBooks() []Entry
}

// Entry is a single author and the book currently assigned to them.
type Entry struct {
	Author string `json:"author"`
	Book   string `json:"book"`
}

type shelf map[string]struct{}

func (s shelf) full() bool { return len(s) >= ShelfCapacity }

func (s shelf) has(title string) bool {
	_, ok := s[title]
	return ok
}

// Catalog is the in-memory Library implementation. It is not safe for
// concurrent use.
type Catalog struct {
	books   map[string]string
	authors []string // first-insertion order
	shelves []shelf
	logger  *slog.Logger
}

var _ Library = (*Catalog)(nil)

// New creates an empty catalog with no shelves.
func New(logger *slog.Logger) *Catalog {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Catalog{
		books:  make(map[string]string),
		logger: logger,
	}
}

// NewWithSeed creates a catalog where every seed entry sits on its own shelf,
// in order.
func NewWithSeed(logger *slog.Logger, seed []Entry) *Catalog {
	c := New(logger)
	for _, e := range seed {
		c.assign(e.Author, e.Book)
		c.shelves = append(c.shelves, shelf{e.Book: {}})
	}
	c.logger.Debug("catalog seeded", "books", len(seed), "shelves", len(c.shelves))
	return c
}

// FindShelf implements Library.
func (c *Catalog) FindShelf(author string) (int, error) {
	book, ok := c.books[author]
	if !ok {
		return 0, ErrNotFound
	}
	for i, s := range c.shelves {
		if s.has(book) {
			return i + 1, nil
		}
	}
	c.logger.Warn("author's book is not shelved", "author", author, "book", book)
	return 0, ErrUnshelved
}

// AddBook implements Library. The author mapping is overwritten even when the
// shelf insertion turns out to be a no-op.
func (c *Catalog) AddBook(author, book string) (int, error) {
	if prev, ok := c.books[author]; ok && prev != book {
		// The previous title stays where it is.
		c.logger.Debug("author reassigned", "author", author, "previous", prev, "book", book)
	}
	c.assign(author, book)

	idx := c.firstFree()
	if c.shelves[idx].has(book) {
		return idx + 1, ErrAlreadyPresent
	}
	c.shelves[idx][book] = struct{}{}
	c.logger.Debug("book shelved", "author", author, "book", book, "shelf", idx+1)
	return idx + 1, nil
}

// ListBooks implements Library. Entries come back in the order their authors
// were first added.
func (c *Catalog) ListBooks() []Entry {
	out := make([]Entry, 0, len(c.authors))
	for _, a := range c.authors {
		out = append(out, Entry{Author: a, Book: c.books[a]})
	}
	return out
}

// Shelves returns a snapshot of every shelf's titles, sorted within a shelf.
func (c *Catalog) Shelves() [][]string {
	out := make([][]string, len(c.shelves))
	for i, s := range c.shelves {
		titles := make([]string, 0, len(s))
		for t := range s {
			titles = append(titles, t)
		}
		sort.Strings(titles)
		out[i] = titles
	}
	return out
}

func (c *Catalog) assign(author, book string) {
	if _, ok := c.books[author]; !ok {
		c.authors = append(c.authors, author)
	}
	c.books[author] = book
}

// firstFree returns the index of the first shelf with room, appending a new
// shelf when all of them are full.
func (c *Catalog) firstFree() int {
	for i, s := range c.shelves {
		if !s.full() {
			return i
		}
	}
	c.shelves = append(c.shelves, shelf{})
	c.logger.Debug("shelf added", "shelf", len(c.shelves))
	return len(c.shelves) - 1
}
