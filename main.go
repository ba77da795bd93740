package main

import (
	"os"

	"github.com/thenoetrevino/termllo/cmd"
	"github.com/thenoetrevino/termllo/internal/cli"
)

func main() {
	os.Exit(cli.ExitCodeFor(cmd.Execute()))
}
