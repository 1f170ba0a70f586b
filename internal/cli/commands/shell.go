package commands

import (
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/leapstack-labs/bookshelf/internal/catalog"
	"github.com/leapstack-labs/bookshelf/internal/cli/config"
	"github.com/leapstack-labs/bookshelf/internal/console"
)

// NewShellCommand creates the shell command.
func NewShellCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "shell",
		Aliases: []string{"repl"},
		Short:   "Run the interactive catalog",
		Long: `Run the interactive library catalog.

The catalog starts with two books, each on its own shelf. Choose an action
by its number: find the shelf of an author's book, add a book, list every
book, or exit. The catalog lives in memory and is gone when the program
exits.

When stdin is not a terminal, commands are read line by line and the
program exits at end of input.`,
		Example: `  # Interactive session
  bookshelf shell

  # Scripted session
  printf '2\nGogol\nDead Souls\n3\n0\n' | bookshelf shell

  # Russian menu with a table listing
  bookshelf shell --lang ru --list-style table`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return RunShell(cmd)
		},
	}
}

// RunShell runs a catalog session on the command's input and output.
func RunShell(cmd *cobra.Command) error {
	ctx := cmd.Context()
	cfg := config.FromContext(ctx)
	logger := config.GetLogger(ctx).With("session", uuid.NewString())

	out := cmd.OutOrStdout()
	in, closeReader, err := openLineReader(cmd, cfg)
	if err != nil {
		return err
	}
	defer closeReader()

	logger.Debug("starting session",
		"language", console.MatchLanguage(cfg.Language).String(),
		"list_style", cfg.ListStyle,
		"interactive", isTerminal(cmd.InOrStdin()))

	ctrl := console.New(catalog.NewDefault(logger), in, out, console.Options{
		Language:  cfg.Language,
		ListStyle: cfg.ListStyle,
		Color:     cfg.UseColor(isTerminal(out)),
		Logger:    logger,
	})
	return ctrl.Run(ctx)
}

// openLineReader picks line editing for terminals and plain line reads for
// everything else.
func openLineReader(cmd *cobra.Command, cfg *config.Config) (console.LineReader, func(), error) {
	if isTerminal(cmd.InOrStdin()) {
		rl, err := console.NewTerminalReader(console.TerminalConfig{
			HistoryFile: cfg.HistoryFile,
			Stdout:      cmd.OutOrStdout(),
			Stderr:      cmd.ErrOrStderr(),
		})
		if err != nil {
			return nil, nil, fmt.Errorf("failed to start shell: %w", err)
		}
		return rl, func() { _ = rl.Close() }, nil
	}
	return console.NewStreamReader(cmd.InOrStdin(), cmd.OutOrStdout()), func() {}, nil
}

func isTerminal(v any) bool {
	f, ok := v.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
