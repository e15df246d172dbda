// Package main is the entry point for the ilk CLI tool.
package main

import (
	"os"

	"github.com/aidanlsb/interlink/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
