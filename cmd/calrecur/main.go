// Command calrecur is a thin CLI wrapper over the recurrence engine: it
// reads an .ics file, selects one VEVENT, and prints its occurrence
// sequence. It adds no recurrence semantics of its own.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
