// Package console implements the interactive menu loop over a catalog.
package console

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/leapstack-labs/bookshelf/internal/catalog"
)

// command is a menu token.
type command string

const (
	cmdFind command = "1"
	cmdAdd  command = "2"
	cmdList command = "3"
	cmdExit command = "0"
)

var commands = []command{cmdFind, cmdAdd, cmdList, cmdExit}

type state int

const (
	stateMenu state = iota
	stateSearch
	stateAdd
	stateList
	stateExit
)

func (s state) String() string {
	switch s {
	case stateMenu:
		return "menu"
	case stateSearch:
		return "search"
	case stateAdd:
		return "add"
	case stateList:
		return "list"
	case stateExit:
		return "exit"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// Options configures a Controller.
type Options struct {
	Language  language.Tag
	ListStyle ListStyle
	// Color enables styled output. Styles still fall back to plain text
	// when the output is not a terminal.
	Color  bool
	Logger *slog.Logger
}

// Controller drives the menu loop.
type Controller struct {
	lib       catalog.Library
	in        LineReader
	out       io.Writer
	p         *message.Printer
	styles    Styles
	listStyle ListStyle
	logger    *slog.Logger
}

// New creates a Controller reading from in and writing to out.
func New(lib catalog.Library, in LineReader, out io.Writer, opts Options) *Controller {
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	listStyle := opts.ListStyle
	if listStyle == "" {
		listStyle = ListPlain
	}
	return &Controller{
		lib:       lib,
		in:        in,
		out:       out,
		p:         NewPrinter(opts.Language),
		styles:    NewStyles(out, opts.Color),
		listStyle: listStyle,
		logger:    logger,
	}
}

// Run loops until the exit command or end of input. End of input is
// treated like the exit command.
func (c *Controller) Run(ctx context.Context) error {
	st := stateMenu
	for st != stateExit {
		if err := ctx.Err(); err != nil {
			return err
		}

		next, err := c.step(st)
		switch {
		case errors.Is(err, io.EOF):
			c.logger.Debug("end of input", "state", st)
			_, _ = fmt.Fprintln(c.out)
			c.farewell()
			return nil
		case errors.Is(err, ErrInterrupted):
			c.logger.Debug("action interrupted", "state", st)
			_, _ = fmt.Fprintln(c.out)
			next = stateMenu
		case err != nil:
			return fmt.Errorf("%s: %w", st, err)
		}
		st = next
	}
	return nil
}

func (c *Controller) step(st state) (state, error) {
	switch st {
	case stateMenu:
		return c.menu()
	case stateSearch:
		return stateMenu, c.search()
	case stateAdd:
		return stateMenu, c.add()
	case stateList:
		c.list()
		return stateMenu, nil
	default:
		return stateExit, fmt.Errorf("unexpected state %s", st)
	}
}

func (c *Controller) menu() (state, error) {
	c.printMenu()
	line, err := c.in.ReadLine(c.p.Sprintf(msgChoose))
	if err != nil {
		return stateMenu, err
	}

	switch command(line) {
	case cmdFind:
		return stateSearch, nil
	case cmdAdd:
		return stateAdd, nil
	case cmdList:
		return stateList, nil
	case cmdExit:
		c.farewell()
		return stateExit, nil
	default:
		c.logger.Debug("invalid command", "input", line)
		c.println(c.styles.Error, msgInvalid)
		return stateMenu, nil
	}
}

func (c *Controller) printMenu() {
	_, _ = fmt.Fprintln(c.out)
	_, _ = fmt.Fprintln(c.out, c.styles.Header.Render(c.p.Sprintf(msgMenuTitle)))
	for _, key := range []string{msgMenuFind, msgMenuAdd, msgMenuList, msgMenuExit} {
		_, _ = fmt.Fprintln(c.out, c.p.Sprintf(key))
	}
}

func (c *Controller) search() error {
	author, err := c.in.ReadLine(c.p.Sprintf(msgAskAuthor))
	if err != nil {
		return err
	}

	shelf, err := c.lib.FindShelf(author)
	if err != nil {
		if !errors.Is(err, catalog.ErrNotFound) {
			return err
		}
		c.logger.Debug("lookup missed", "author", author, "error", err)
		c.println(c.styles.Error, msgNotFound)
		return nil
	}
	_, _ = fmt.Fprintln(c.out, c.styles.Success.Render(c.p.Sprintf(msgFound, shelf)))
	return nil
}

func (c *Controller) add() error {
	author, err := c.in.ReadLine(c.p.Sprintf(msgAskNewAuthor))
	if err != nil {
		return err
	}
	book, err := c.in.ReadLine(c.p.Sprintf(msgAskBook))
	if err != nil {
		return err
	}

	shelf, err := c.lib.AddBook(author, book)
	if err != nil {
		if !errors.Is(err, catalog.ErrAlreadyPresent) {
			return err
		}
		c.logger.Debug("add rejected", "author", author, "book", book, "shelf", shelf, "error", err)
		c.println(c.styles.Error, msgAddFailed)
		return nil
	}
	c.logger.Info("book added", "author", author, "book", book, "shelf", shelf)
	c.println(c.styles.Success, msgAdded)
	return nil
}

func (c *Controller) list() {
	renderBooks(c.out, c.p, c.styles, c.listStyle, c.lib.ListBooks())
}

func (c *Controller) farewell() {
	c.println(c.styles.Header, msgGoodbye)
}

func (c *Controller) println(style lipgloss.Style, key string) {
	_, _ = fmt.Fprintln(c.out, style.Render(c.p.Sprintf(key)))
}
