package catalog

import "log/slog"

// DefaultSeed is the content of a freshly started catalog: one book per
// author, each on its own shelf.
var DefaultSeed = []Entry{
	{Author: "Tolstoy", Book: "War and Peace"},
	{Author: "Pushkin", Book: "Eugene Onegin"},
}

// NewDefault creates a catalog holding DefaultSeed.
func NewDefault(logger *slog.Logger) *Catalog {
	return NewWithSeed(logger, DefaultSeed)
}
