package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/AntonioJCosta/argloc/internal/adapters/shellsplit"
	"github.com/AntonioJCosta/argloc/internal/handlers/cli"
	"github.com/AntonioJCosta/argloc/internal/handlers/ui"
)

// Version is set at build time
var Version = "dev"

func main() {
	splitter := shellsplit.NewSplitter(environ())
	rootCmd := cli.NewRootCommand(Version, splitter)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, ui.ErrorColor(fmt.Sprintf("Error: %v", err)))
		os.Exit(1)
	}
}

// environ returns the process environment for variable expansion in --line.
func environ() map[string]string {
	env := make(map[string]string)
	for _, kv := range os.Environ() {
		if k, v, ok := strings.Cut(kv, "="); ok {
			env[k] = v
		}
	}
	return env
}
