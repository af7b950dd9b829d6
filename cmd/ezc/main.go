// Command ezc tokenizes and parses ez source files.
package main

import (
	"os"

	"github.com/you-not-fish/ez/cmd/ezc/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
