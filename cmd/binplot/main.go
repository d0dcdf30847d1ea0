// main is the entry point for the binplot CLI.
package main

import (
	"os"

	"github.com/orbitlab/binplot/cmd"
	"github.com/orbitlab/binplot/internal/contract"
)

func main() {
	if err := cmd.Execute(); err != nil {
		contract.LogWarn("command failed", err)
		os.Exit(1)
	}
}
