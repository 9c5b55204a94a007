package main

import (
	"errors"
	"fmt"
	"os"
)

func main() {
	rootCmd := NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		// Readiness failures are already reported on stdout; anything
		// else is an operational error worth printing.
		if !errors.Is(err, errNotReady) {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		os.Exit(1)
	}
}
