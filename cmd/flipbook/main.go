// Command flipbook plays, traces and renders rectangle animation scenes.
package main

import (
	"fmt"
	"os"

	"github.com/go-drift/flipbook/cmd/flipbook/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
