// Command fundictl is the FundiConnect marketplace CLI.
package main

import (
	"fmt"
	"os"

	"github.com/fundiconnect/fundictl/internal/cmd"
)

// Build metadata injected at link time via -ldflags.
var (
	version   = "dev"
	commit    = "HEAD"
	buildDate = "unknown"
)

func main() {
	cmd.SetVersionInfo(version, commit, buildDate)

	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
