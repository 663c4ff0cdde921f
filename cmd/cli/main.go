package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/NotAShelf/ssa/pkg/runtime/terminal"
	"github.com/NotAShelf/ssa/pkg/runtime/terminal/commands"
)

// overridden at build time via -ldflags "-X main.version=..."
var version = "dev"

func main() {
	cli := terminal.NewCLI(terminal.Options{
		Version:   version,
		Output:    os.Stdout,
		ErrOutput: os.Stderr,
	})

	if err := cli.Execute(); err != nil {
		var exitErr commands.ExitCodeError
		if errors.As(err, &exitErr) {
			os.Exit(exitErr.Code)
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
