// Command allerbees runs the pollen-gathering game in a terminal, headless, or as a spectator server
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "allerbees: %v\n", err)
		os.Exit(1)
	}
}
