// Package main is the entry point for the validation CLI.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/thoreinstein/validation/cmd/validation/commands"
	"github.com/thoreinstein/validation/internal/errors"
	"github.com/thoreinstein/validation/internal/logging"
)

func main() {
	// replaced once flags are parsed
	slog.SetDefault(logging.Default())

	if err := commands.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		var exitErr *errors.ExitError
		if errors.As(err, &exitErr) && exitErr.Suggestion != "" {
			fmt.Fprintf(os.Stderr, "%s\n", exitErr.Suggestion)
		}
		os.Exit(errors.ExitCode(err))
	}
}
