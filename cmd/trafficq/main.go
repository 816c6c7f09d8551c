package main

import (
	"os"

	"github.com/citypulse/trafficq/internal/cli"
)

func main() {
	if err := cli.RootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
