// Package main provides the CLI for the bookshelf catalog.
package main

import (
	"os"

	"github.com/leapstack-labs/bookshelf/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
