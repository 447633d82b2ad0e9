package main

import (
	"os"

	"github.com/qntx/nativelib/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
