package main

import (
	"os"

	"github.com/msto63/consoleargs/cmd/consoleargs/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
