package main

import (
	"os"

	"github.com/nvaldes/cribado/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
