// Package main provides the devreg CLI.
package main

import (
	"os"

	"github.com/leapstack-labs/devreg/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
