// Package config provides configuration management for the bookshelf CLI.
package config

import (
	"golang.org/x/text/language"

	"github.com/leapstack-labs/bookshelf/internal/console"
)

// ColorMode controls styled output.
type ColorMode string

// Color modes.
const (
	ColorAuto   ColorMode = "auto"
	ColorAlways ColorMode = "always"
	ColorNever  ColorMode = "never"
)

// Config holds all CLI configuration options.
type Config struct {
	Language    language.Tag      `koanf:"language"`
	ListStyle   console.ListStyle `koanf:"list_style"`
	Color       ColorMode         `koanf:"color"`
	HistoryFile string            `koanf:"history_file"`
	Verbose     bool              `koanf:"verbose"`
}

// Default configuration values.
const (
	DefaultLanguage  = "en"
	DefaultListStyle = console.ListPlain
	DefaultColor     = ColorAuto
	EnvPrefix        = "BOOKSHELF_"
)

// ConfigFileNames are looked up in the working directory when no config file
// is given explicitly.
var ConfigFileNames = []string{"bookshelf.yaml", "bookshelf.yml"}

// UseColor resolves the color mode against whether output is a terminal.
func (c *Config) UseColor(isTTY bool) bool {
	switch c.Color {
	case ColorAlways:
		return true
	case ColorNever:
		return false
	default:
		return isTTY
	}
}
