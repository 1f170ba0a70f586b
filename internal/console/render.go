package console

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/muesli/termenv"
	"golang.org/x/text/message"

	"github.com/leapstack-labs/bookshelf/internal/catalog"
)

// ListStyle selects how the book listing is printed.
type ListStyle string

// List styles.
const (
	ListPlain ListStyle = "plain"
	ListTable ListStyle = "table"
)

// UnmarshalText validates the style name.
func (s *ListStyle) UnmarshalText(text []byte) error {
	switch v := ListStyle(text); v {
	case ListPlain, ListTable:
		*s = v
		return nil
	case "":
		*s = ListPlain
		return nil
	default:
		return fmt.Errorf("unknown list style %q (want %s or %s)", text, ListPlain, ListTable)
	}
}

// Styles holds the lipgloss styles used for console output.
type Styles struct {
	Header  lipgloss.Style
	Success lipgloss.Style
	Error   lipgloss.Style
	Muted   lipgloss.Style
}

// NewStyles builds styles bound to w. With color false every style renders
// plain text.
func NewStyles(w io.Writer, color bool) Styles {
	r := lipgloss.NewRenderer(w)
	if !color {
		r.SetColorProfile(termenv.Ascii)
	}
	return Styles{
		Header:  r.NewStyle().Bold(true),
		Success: r.NewStyle().Foreground(lipgloss.Color("2")),
		Error:   r.NewStyle().Foreground(lipgloss.Color("1")),
		Muted:   r.NewStyle().Faint(true),
	}
}

// renderBooks writes entries in the given style.
func renderBooks(w io.Writer, p *message.Printer, st Styles, style ListStyle, entries []catalog.Entry) {
	_, _ = fmt.Fprintln(w)
	_, _ = fmt.Fprintln(w, st.Header.Render(p.Sprintf(msgListTitle)))

	if len(entries) == 0 {
		_, _ = fmt.Fprintln(w, st.Muted.Render(p.Sprintf(msgListEmpty)))
		return
	}

	if style == ListTable {
		t := table.NewWriter()
		t.SetOutputMirror(w)
		t.SetStyle(table.StyleLight)
		// Keep translated headers as written.
		t.Style().Format.Header = text.FormatDefault
		t.AppendHeader(table.Row{p.Sprintf(msgColAuthor), p.Sprintf(msgColBook)})
		for _, e := range entries {
			t.AppendRow(table.Row{e.Author, e.Book})
		}
		t.Render()
		return
	}

	for _, e := range entries {
		_, _ = fmt.Fprintf(w, "%s: '%s'\n", e.Author, e.Book)
	}
}
