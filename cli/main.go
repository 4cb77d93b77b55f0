package main

import (
	"os"

	"lostfound/cli/commands"
)

func main() {
	commands.Entrypoint(os.Args)
}
