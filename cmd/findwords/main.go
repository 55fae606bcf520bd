// Package main is the entry point for the findwords CLI.
package main

import (
	"os"

	"github.com/f3rmion/findwords/cmd/findwords/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
