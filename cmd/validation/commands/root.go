// Package commands implements the CLI commands for validation.
package commands

import (
	"context"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/thoreinstein/validation/cmd"
	"github.com/thoreinstein/validation/internal/config"
	"github.com/thoreinstein/validation/internal/errors"
	"github.com/thoreinstein/validation/internal/logging"
	"github.com/thoreinstein/validation/internal/user"
	"github.com/thoreinstein/validation/pkg/validator"
)

// verbosity holds the count of -v flags.
var verbosity int

// quiet holds the value of the -q/--quiet flag.
var quiet bool

// logFormat holds the value of the --log-format flag.
var logFormat string

// logFile holds the path to the log file.
var logFile string

// configPath holds the value of the --config flag.
var configPath string

// formatFlag holds the value of the --format flag.
var formatFlag string

// loadedConfig is the configuration read during initialization.
var loadedConfig *config.Config

// configLoadErr holds any error that occurred during config loading.
var configLoadErr error

// settings are the validated configuration plus flag overrides, resolved
// before any subcommand runs.
var settings = config.Settings{
	Rules:  user.DefaultRules(),
	Format: validator.FormatText,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v",
		"increase verbosity level (e.g., -v, -vv)")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false,
		"suppress non-error output")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "text",
		"log format: text, json")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "",
		"write logs to file in JSON format")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "",
		"config file (default: ./config.yaml, then ~/.config/validation/config.yaml)")
	rootCmd.PersistentFlags().StringVarP(&formatFlag, "format", "f", "",
		"report format: text, json, yaml, toml (default from config)")

	rootCmd.Version = cmd.Version
	rootCmd.SetVersionTemplate("validation version {{.Version}}\n")

	rootCmd.SilenceErrors = true
	rootCmd.SilenceUsage = true
}

func initConfig() {
	config.Init()
	loadedConfig, configLoadErr = config.Load(configPath)
}

var rootCmd = &cobra.Command{
	Use:   "validation",
	Short: "Validate structured input field by field",
	Long: `validation checks a set of named fields against per-field rules,
collects every failure into one ordered report and, when nothing failed,
builds the target value from the converted fields.

The user command validates a sample user (first name, last name, e-mail).
The result command demonstrates the Result combinators the validator is
built on.`,
	Example: `  # Validate a user
  validation user --first-name Slavik --last-name XXX --email user@wp.pl

  # Same, as JSON
  validation user --first-name Slavik --last-name XXX --email user@wp.pl -f json

  # Pick a sample input interactively
  validation user --pick

  See Also: validation config validate, validation result`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := setupLogging(cmd); err != nil {
			return err
		}
		return resolveSettings(cmd, args)
	},
	Run: func(cmd *cobra.Command, _ []string) {
		_ = cmd.Help()
	},
}

// setupLogging configures the default logger based on verbosity flags.
func setupLogging(cmd *cobra.Command) error {
	if quiet && verbosity > 0 {
		return errors.NewUserError(errors.New("conflicting flags"), "cannot use --quiet and --verbose together")
	}

	var level slog.Level
	if quiet {
		level = slog.LevelError
	} else {
		v := verbosity

		// flags win over the environment
		if v == 0 {
			if val, ok := os.LookupEnv("VALIDATION_DEBUG"); ok {
				switch val {
				case "1", "true":
					v = 2
				case "2":
					v = 3
				}
			}
		}
		level = logging.LevelFromVerbosity(v)
	}

	handlers := []slog.Handler{
		logging.NewFormatHandler(logging.Config{
			Level:  level,
			Format: logging.Format(logFormat),
			Output: cmd.ErrOrStderr(),
		}),
	}

	if logFile != "" {
		f, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0600)
		if err != nil {
			return errors.NewUserError(errors.Wrap(err, "opening log file"), "check the --log-file path")
		}
		handlers = append(handlers, slog.NewJSONHandler(f, &slog.HandlerOptions{
			Level: level,
		}))
	}

	var handler slog.Handler
	if len(handlers) > 1 {
		handler = logging.NewMultiHandler(handlers...)
	} else {
		handler = handlers[0]
	}

	logger := slog.New(handler)
	slog.SetDefault(logger)

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	cmd.SetContext(logging.NewContext(ctx, logger))

	return nil
}

// resolveSettings validates the loaded configuration and applies --format.
func resolveSettings(cmd *cobra.Command, _ []string) error {
	// config validate reports problems itself
	if cmd.Name() == "help" || cmd.Name() == "version" || cmd == configValidateCmd {
		return nil
	}

	if configLoadErr != nil {
		return errors.NewConfigError(configLoadErr)
	}

	if loadedConfig != nil {
		if err := config.Validate(loadedConfig); err != nil {
			return errors.NewConfigError(err)
		}
		settings = loadedConfig.Settings().Value()
	}

	if formatFlag != "" {
		f, err := validator.ParseFormat(formatFlag)
		if err != nil {
			return errors.NewUserError(err, "Run 'validation --help' to see valid formats")
		}
		settings.Format = f
	}

	logging.FromContext(cmd.Context()).Debug("settings resolved",
		"config", config.ConfigFileUsed(),
		"first_name_max_length", settings.Rules.FirstNameMaxLength,
		"last_name_max_length", settings.Rules.LastNameMaxLength,
		"format", string(settings.Format),
	)

	return nil
}

// Execute runs the root command.
func Execute() error {
	return errors.Wrap(rootCmd.Execute(), "executing root command")
}
