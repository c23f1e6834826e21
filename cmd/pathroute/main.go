// Command pathroute inspects route patterns: it prints their tokens,
// matches and builds paths, and writes OpenAPI documents.
package main

import (
	"fmt"
	"os"
)

// Version information set at build time.
var version = "dev"

func main() {
	rootCmd := newRootCmd()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "\033[31mError:\033[0m %s\n", err)
		os.Exit(1)
	}
}
