package main

import (
	"os"

	"github.com/josephlewis42/goxargs/commands"
)

func main() {
	os.Exit(commands.Xargs(os.Args, os.Stdin, os.Stdout, os.Stderr))
}
