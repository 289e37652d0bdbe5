package main

import (
	"os"

	"github.com/raveheart1/workgraph/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		cli.PrintError(err)
		os.Exit(cli.ExitCode(err))
	}
}
