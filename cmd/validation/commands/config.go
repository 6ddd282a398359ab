package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/thoreinstein/validation/internal/config"
	"github.com/thoreinstein/validation/internal/errors"
	"github.com/thoreinstein/validation/pkg/result"
	"github.com/thoreinstein/validation/pkg/validator"
)

func init() {
	configCmd.AddCommand(configValidateCmd)
	rootCmd.AddCommand(configCmd)
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect the validation configuration",
	Long: `Inspect the configuration stored in ./config.yaml or
~/.config/validation/config.yaml.`,
	Run: func(cmd *cobra.Command, _ []string) {
		_ = cmd.Help()
	},
}

var configValidateCmd = &cobra.Command{
	Use:   "validate [path]",
	Short: "Validate a configuration file",
	Long: `Load a configuration file and check every setting.

Without a path the default search locations are used (or --config).
All problems are reported at once.`,
	Example: `  # Validate the active configuration
  validation config validate

  # Validate a specific file as JSON
  validation config validate ./config.yaml -f json

See Also: validation user`,
	Args: cobra.MaximumNArgs(1),
	RunE: runConfigValidate,
}

func runConfigValidate(cmd *cobra.Command, args []string) error {
	cfg, err := loadForValidation(args)
	if err != nil {
		return errors.NewConfigError(err)
	}

	// the config under test may itself carry a broken format
	format := validator.FormatText
	if formatFlag != "" {
		if format, err = validator.ParseFormat(formatFlag); err != nil {
			return errors.NewUserError(err, "Run 'validation --help' to see valid formats")
		}
	}

	checked := cfg.Settings()

	name := "config"
	if used := config.ConfigFileUsed(); used != "" {
		name = used
	}
	report := validator.NewReport(name, result.Map(checked, func(s config.Settings) string {
		return fmt.Sprintf("first_name_max_length=%d last_name_max_length=%d format=%s",
			s.Rules.FirstNameMaxLength, s.Rules.LastNameMaxLength, s.Format)
	}))
	if err := validator.NewReporter(cmd.OutOrStdout(), format).Report(report); err != nil {
		return errors.NewSystemError(err, "")
	}

	if msgs, failed := checked.GetErr(); failed {
		return errors.NewExitError(errors.Wrapf(config.ErrInvalidConfig, "%d setting(s) rejected", len(msgs)), errors.ExitUser)
	}
	return nil
}

// loadForValidation reuses the configuration loaded at startup unless an
// explicit path was given.
func loadForValidation(args []string) (*config.Config, error) {
	if len(args) == 0 {
		return loadedConfig, configLoadErr
	}
	config.Init()
	return config.Load(args[0])
}
