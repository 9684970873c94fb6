package main

import (
	"os"

	"github.com/imishinist/rlboard/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
