package main

import (
	"os"

	"github.com/autolytix/fleetcare/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
