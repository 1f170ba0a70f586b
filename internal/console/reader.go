package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/chzyer/readline"
)

// ErrInterrupted is returned by a LineReader when the user interrupts the
// current line (Ctrl-C at a terminal).
var ErrInterrupted = errors.New("input interrupted")

// LineReader reads one line of input after showing a prompt. It returns
// io.EOF once input is exhausted.
type LineReader interface {
	ReadLine(prompt string) (string, error)
}

// StreamReader reads lines from any io.Reader and echoes prompts to an
// io.Writer. It is used when stdin is not a terminal.
type StreamReader struct {
	r *bufio.Reader
	w io.Writer
}

// NewStreamReader creates a StreamReader.
func NewStreamReader(r io.Reader, w io.Writer) *StreamReader {
	return &StreamReader{r: bufio.NewReader(r), w: w}
}

// ReadLine implements LineReader. A final line without a terminator is
// returned before io.EOF.
func (s *StreamReader) ReadLine(prompt string) (string, error) {
	_, _ = fmt.Fprint(s.w, prompt)
	line, err := s.r.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && line != "" {
			return trimEOL(line), nil
		}
		return "", err
	}
	return trimEOL(line), nil
}

// TerminalConfig configures a TerminalReader.
type TerminalConfig struct {
	// HistoryFile keeps line history across sessions when non-empty.
	HistoryFile string
	Stdout      io.Writer
	Stderr      io.Writer
}

// TerminalReader reads lines with readline editing and history.
type TerminalReader struct {
	rl *readline.Instance
}

// NewTerminalReader creates a TerminalReader. Close must be called to
// restore the terminal.
func NewTerminalReader(cfg TerminalConfig) (*TerminalReader, error) {
	rl, err := readline.NewEx(&readline.Config{
		HistoryFile:     cfg.HistoryFile,
		AutoComplete:    menuCompleter(),
		InterruptPrompt: "^C",
		Stdout:          cfg.Stdout,
		Stderr:          cfg.Stderr,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize line editor: %w", err)
	}
	return &TerminalReader{rl: rl}, nil
}

// ReadLine implements LineReader.
func (t *TerminalReader) ReadLine(prompt string) (string, error) {
	t.rl.SetPrompt(prompt)
	line, err := t.rl.Readline()
	switch {
	case errors.Is(err, readline.ErrInterrupt):
		return "", ErrInterrupted
	case err != nil:
		return "", err
	}
	return trimEOL(line), nil
}

// Close releases the terminal.
func (t *TerminalReader) Close() error {
	return t.rl.Close()
}

func menuCompleter() *readline.PrefixCompleter {
	items := make([]readline.PrefixCompleterInterface, 0, len(commands))
	for _, c := range commands {
		items = append(items, readline.PcItem(string(c)))
	}
	return readline.NewPrefixCompleter(items...)
}

func trimEOL(s string) string {
	return strings.TrimRight(s, "\r\n")
}
