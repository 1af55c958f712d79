package main

import (
	"os"

	"supplier-cost/cmd/cli/cmd"
	"supplier-cost/internal/logging"
)

func main() {
	defer logging.Sync()

	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
