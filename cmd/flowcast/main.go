package main

import (
	"os"

	"github.com/flowcast-dev/flowcast/internal/commands"
)

func main() {
	if err := commands.NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
