package commands

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/thoreinstein/validation/internal/config"
	"github.com/thoreinstein/validation/internal/paths"
	"github.com/thoreinstein/validation/internal/user"
	"github.com/thoreinstein/validation/pkg/validator"
)

// resetFlags restores every flag of c and its children to its default so
// consecutive Execute calls do not leak state.
func resetFlags(c *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	c.Flags().VisitAll(reset)
	c.PersistentFlags().VisitAll(reset)
	for _, child := range c.Commands() {
		resetFlags(child)
	}
}

// execute runs the root command with args in an isolated configuration
// directory and returns stdout and stderr.
func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()

	t.Setenv(paths.ConfigDirEnv, t.TempDir())
	t.Setenv("VALIDATION_DEBUG", "")

	noColor := color.NoColor
	color.NoColor = true
	origLogger := slog.Default()
	t.Cleanup(func() {
		slog.SetDefault(origLogger)
		color.NoColor = noColor
		resetFlags(rootCmd)
		settings = defaultSettings()
	})

	resetFlags(rootCmd)
	settings = defaultSettings()

	var stdout, stderr bytes.Buffer
	rootCmd.SetOut(&stdout)
	rootCmd.SetErr(&stderr)
	rootCmd.SetArgs(args)

	err := rootCmd.Execute()
	return stdout.String(), stderr.String(), err
}

func defaultSettings() config.Settings {
	return config.Settings{Rules: user.DefaultRules(), Format: validator.FormatText}
}

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatal(err)
	}
	return path
}
