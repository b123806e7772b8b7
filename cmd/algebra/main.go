package main

import (
	"os"

	"github.com/tbruckner/algebra/cmd/algebra/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
