package main

import (
	"os"

	"github.com/feel-lang/feel/cmd/feel/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
