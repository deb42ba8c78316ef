package main

import (
	"os"

	"github.com/pwalrus/stoch-coc/pkg/cli"
)

func main() {
	os.Exit(cli.Run(os.Args[1:]))
}
