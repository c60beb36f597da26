package main

import (
	"errors"
	"fmt"
	"os"
	"runtime"

	"github.com/nauticalab/uconfig/internal/cli"
)

// Build-time variables (set with -ldflags)
var (
	version   = "dev"
	buildTime = "unknown"
	gitCommit = "unknown"
	goVersion = runtime.Version()
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		if !errors.Is(err, cli.ErrConfigsDiffer) {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		os.Exit(1)
	}
}
