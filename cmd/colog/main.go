// Package main is the entry point for the colog CLI.
package main

import (
	"os"

	"github.com/colog-labs/colog/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
