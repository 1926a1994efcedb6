// Command gcdlab is the command-line front end for the gcdlab library:
// compute a GCD with a chosen algorithm, compare all seven, find the
// fastest, or benchmark them.
//
// Exit codes: 0 on success, 1 on unknown command/variant or
// computation failure.
package main

import (
	"os"
)

func main() {
	// Execute the root command. Cobra handles parsing the arguments
	// and prints the failing error; we only map it to the exit code.
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
