package main

import (
	"os"

	"pulseboard/cmd/pulseboard/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
