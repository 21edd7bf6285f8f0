package main

import (
	"os"

	"github.com/morsel-lang/morsel/pkg/cli"
)

func main() {
	os.Exit(cli.Run(os.Args[1:]))
}
