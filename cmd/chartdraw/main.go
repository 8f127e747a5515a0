// Command chartdraw computes drawing-tool geometry from the command line.
package main

import (
	"fmt"
	"os"

	"chartdraw/internal/cli"
	"chartdraw/internal/logging"
)

func main() {
	logger := logging.NewLogger()

	rootCmd := cli.NewRootCmd(logger)
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
