// Package main provides the entry point for the patscan CLI.
package main

import (
	"os"

	"github.com/patscan/patscan/cmd/patscan/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
