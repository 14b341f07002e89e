// Command taskpad is the CLI entrypoint.
package main

import (
	"fmt"
	"os"

	"taskpad/cmd"
)

func main() {
	if err := cmd.Run(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
