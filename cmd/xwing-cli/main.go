package main

import (
	"os"

	"github.com/pqforge/xwing-go/cmd/xwing-cli/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
