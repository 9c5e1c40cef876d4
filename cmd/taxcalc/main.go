package main

import (
	"os"

	"github.com/cyphera/tax-calculator/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		cli.RenderError(os.Stderr, err)
		os.Exit(1)
	}
}
