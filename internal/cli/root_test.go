package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, input string, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	cmd := NewRootCmd()
	out, errOut := new(bytes.Buffer), new(bytes.Buffer)
	cmd.SetIn(strings.NewReader(input))
	cmd.SetOut(out)
	cmd.SetErr(errOut)
	cmd.SetArgs(args)
	err = cmd.Execute()
	return out.String(), errOut.String(), err
}

func TestRoot_FlagsReachShell(t *testing.T) {
	stdout, _, err := execute(t, "3\n0\n", "--lang", "ru", "--list-style", "table", "--color", "never")
	require.NoError(t, err)

	assert.Contains(t, stdout, "=== Библиотечная система ===")
	assert.Contains(t, stdout, "Автор")
	assert.Contains(t, stdout, "War and Peace")
	assert.Contains(t, stdout, "До свидания!")
}

func TestRoot_ShellSubcommand(t *testing.T) {
	stdout, _, err := execute(t, "9\n0\n", "repl")
	require.NoError(t, err)

	assert.Contains(t, stdout, "Invalid command!")
}

func TestRoot_VerboseLogsToStderr(t *testing.T) {
	stdout, stderr, err := execute(t, "2\nGogol\nDead Souls\n0\n", "-v")
	require.NoError(t, err)

	assert.Contains(t, stdout, "Book added successfully!")
	assert.Contains(t, stderr, "book shelved")
	assert.Contains(t, stderr, "session=")
	assert.NotContains(t, stdout, "level=")
}

func TestRoot_QuietByDefault(t *testing.T) {
	_, stderr, err := execute(t, "2\nGogol\nDead Souls\n0\n")
	require.NoError(t, err)

	assert.Empty(t, stderr)
}

func TestRoot_ConfigFile(t *testing.T) {
	cfgPath := filepath.Join(t.TempDir(), "custom.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("list_style: table\n"), 0600))

	stdout, _, err := execute(t, "3\n0\n", "--config", cfgPath)
	require.NoError(t, err)

	assert.Contains(t, stdout, "Author")
	assert.NotContains(t, stdout, "Tolstoy: 'War and Peace'")
}

func TestRoot_InvalidConfig(t *testing.T) {
	_, _, err := execute(t, "0\n", "--list-style", "json")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown list style")
}

func TestRoot_RejectsArgs(t *testing.T) {
	_, _, err := execute(t, "", "books")
	assert.Error(t, err)
}
