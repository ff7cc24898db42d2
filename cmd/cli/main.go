package main

import (
	"fmt"
	"os"

	"github.com/de-tools/report-splash/pkg/runtime/terminal"
)

// version is set at build time via -ldflags.
var version = "dev"

func main() {
	cli := terminal.NewCLI(terminal.Options{
		Version: version,
		Output:  os.Stdout,
	})

	if err := cli.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
