// Package cmd holds build metadata injected via ldflags:
//
//	go build -ldflags "-X github.com/thoreinstein/validation/cmd.Version=1.0.0"
package cmd

import "fmt"

var (
	// Version is the release tag; "dev" for local builds.
	Version = "dev"
	// Commit is the source revision.
	Commit = "none"
	// Date is when the binary was built.
	Date = "unknown"
)

// Info renders the three build values as the version command prints them.
func Info() string {
	return fmt.Sprintf("validation version %s\n  commit: %s\n  built:  %s\n", Version, Commit, Date)
}
