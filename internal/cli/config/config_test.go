package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"

	"github.com/leapstack-labs/bookshelf/internal/console"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	cfgPath := filepath.Join(t.TempDir(), "bookshelf.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte(content), 0600))
	return cfgPath
}

func newFlags(t *testing.T) *pflag.FlagSet {
	t.Helper()
	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.String("lang", "", "language")
	flags.String("list-style", "", "list style")
	flags.String("color", "", "color mode")
	flags.String("history-file", "", "history file")
	flags.BoolP("verbose", "v", false, "verbose")
	return flags
}

// TestLoadConfig_Defaults tests the values used when nothing is configured.
func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig("", nil)
	require.NoError(t, err)

	assert.Equal(t, language.English.String(), cfg.Language.String())
	assert.Equal(t, console.ListPlain, cfg.ListStyle)
	assert.Equal(t, ColorAuto, cfg.Color)
	assert.Empty(t, cfg.HistoryFile)
	assert.False(t, cfg.Verbose)
	assert.Empty(t, GetConfigFileUsed())
}

// TestLoadConfig_File tests reading every key from a YAML file.
func TestLoadConfig_File(t *testing.T) {
	cfgPath := writeConfig(t, `language: ru
list_style: table
color: never
history_file: /tmp/bookshelf_history
verbose: true
`)

	cfg, err := LoadConfig(cfgPath, nil)
	require.NoError(t, err)

	assert.Equal(t, "ru", cfg.Language.String())
	assert.Equal(t, console.ListTable, cfg.ListStyle)
	assert.Equal(t, ColorNever, cfg.Color)
	assert.Equal(t, "/tmp/bookshelf_history", cfg.HistoryFile)
	assert.True(t, cfg.Verbose)
	assert.Equal(t, cfgPath, GetConfigFileUsed())
}

// TestLoadConfig_DiscoversFileInWorkingDir tests lookup of bookshelf.yaml.
func TestLoadConfig_DiscoversFileInWorkingDir(t *testing.T) {
	cfgPath := writeConfig(t, "list_style: table\n")
	t.Chdir(filepath.Dir(cfgPath))

	cfg, err := LoadConfig("", nil)
	require.NoError(t, err)

	assert.Equal(t, console.ListTable, cfg.ListStyle)
	assert.Equal(t, "bookshelf.yaml", GetConfigFileUsed())
}

// TestLoadConfig_MissingFile tests that an explicit file must exist.
func TestLoadConfig_MissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"), nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error reading config file")
}

// TestLoadConfig_FlagPrecedence tests that flags override env vars and config file.
func TestLoadConfig_FlagPrecedence(t *testing.T) {
	cfgPath := writeConfig(t, "list_style: plain\nlanguage: en\n")
	t.Setenv("BOOKSHELF_LIST_STYLE", "plain")
	t.Setenv("BOOKSHELF_LANGUAGE", "en")

	flags := newFlags(t)
	require.NoError(t, flags.Set("list-style", "table"))
	require.NoError(t, flags.Set("lang", "ru"))

	cfg, err := LoadConfig(cfgPath, flags)
	require.NoError(t, err)

	assert.Equal(t, console.ListTable, cfg.ListStyle, "flag value should override config file and env var")
	assert.Equal(t, "ru", cfg.Language.String(), "--lang maps to the language key")
}

// TestLoadConfig_EnvPrecedenceOverFile tests that env vars override config file.
func TestLoadConfig_EnvPrecedenceOverFile(t *testing.T) {
	cfgPath := writeConfig(t, "color: never\n")
	t.Setenv("BOOKSHELF_COLOR", "always")

	cfg, err := LoadConfig(cfgPath, nil)
	require.NoError(t, err)

	assert.Equal(t, ColorAlways, cfg.Color, "env var should override config file")
}

// TestLoadConfig_FlagNotSetUsesEnv tests that unset flags fall back to env vars.
func TestLoadConfig_FlagNotSetUsesEnv(t *testing.T) {
	t.Setenv("BOOKSHELF_HISTORY_FILE", "/from/env")

	cfg, err := LoadConfig("", newFlags(t))
	require.NoError(t, err)

	assert.Equal(t, "/from/env", cfg.HistoryFile, "env var should be used when flag is not set")
}

// TestLoadConfig_ExpandsHistoryFile tests environment expansion in history_file.
func TestLoadConfig_ExpandsHistoryFile(t *testing.T) {
	t.Setenv("BOOKSHELF_TEST_HOME", "/home/reader")
	cfgPath := writeConfig(t, "history_file: ${BOOKSHELF_TEST_HOME}/.bookshelf_history\n")

	cfg, err := LoadConfig(cfgPath, nil)
	require.NoError(t, err)

	assert.Equal(t, "/home/reader/.bookshelf_history", cfg.HistoryFile)
}

// TestLoadConfig_Invalid tests rejection of bad values.
func TestLoadConfig_Invalid(t *testing.T) {
	tests := []struct {
		name      string
		content   string
		errSubstr string
	}{
		{name: "unknown list style", content: "list_style: json\n", errSubstr: "unknown list style"},
		{name: "unknown color", content: "color: rainbow\n", errSubstr: "color must be one of"},
		{name: "malformed language", content: "language: \"!!\"\n", errSubstr: "unable to decode config"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadConfig(writeConfig(t, tt.content), nil)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errSubstr)
		})
	}
}

// TestConfig_UseColor tests color resolution.
func TestConfig_UseColor(t *testing.T) {
	tests := []struct {
		mode  ColorMode
		isTTY bool
		want  bool
	}{
		{ColorAuto, true, true},
		{ColorAuto, false, false},
		{ColorAlways, false, true},
		{ColorNever, true, false},
	}

	for _, tt := range tests {
		cfg := &Config{Color: tt.mode}
		assert.Equal(t, tt.want, cfg.UseColor(tt.isTTY), "mode=%s tty=%v", tt.mode, tt.isTTY)
	}
}

// TestConfig_Validate tests the Validate method.
func TestConfig_Validate(t *testing.T) {
	valid := &Config{Color: ColorAuto, ListStyle: console.ListPlain}
	assert.NoError(t, valid.Validate())

	empty := &Config{}
	assert.Error(t, empty.Validate())
}
