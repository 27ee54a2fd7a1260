package main

import (
	"os"

	"fecstream/cmd/fecstream/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
