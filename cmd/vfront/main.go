// Package main provides the vfront CLI.
package main

import (
	"os"

	"github.com/leapstack-labs/vfront/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
