package config

import (
	"fmt"

	"github.com/leapstack-labs/bookshelf/internal/console"
)

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	switch c.Color {
	case ColorAuto, ColorAlways, ColorNever:
	default:
		return fmt.Errorf("color must be one of %s, %s or %s, got %q", ColorAuto, ColorAlways, ColorNever, c.Color)
	}

	switch c.ListStyle {
	case console.ListPlain, console.ListTable:
	default:
		return fmt.Errorf("list_style must be %s or %s, got %q", console.ListPlain, console.ListTable, c.ListStyle)
	}
	return nil
}
