package main

import (
	"os"

	"symboleq/cmd/symboleq/commands"
)

func main() {
	os.Exit(commands.Execute())
}
