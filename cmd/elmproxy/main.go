package main

import (
	"os"

	"github.com/stencil-elm/elmproxy/internal/cli/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
