// Command ivtreedemo is a thin single-process harness exercising the
// IntervalTree package against a config file of named address ranges.
package main

import (
	"fmt"
	"os"

	"github.com/twostay-labs/ivtree/cmd/ivtreedemo/commands"
)

func main() {
	if err := commands.NewRootCommand().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
