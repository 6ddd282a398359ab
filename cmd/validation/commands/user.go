package commands

import (
	"fmt"
	"io"

	"github.com/ktr0731/go-fuzzyfinder"
	"github.com/spf13/cobra"

	"github.com/thoreinstein/validation/internal/errors"
	"github.com/thoreinstein/validation/internal/fileutil"
	"github.com/thoreinstein/validation/internal/logging"
	"github.com/thoreinstein/validation/internal/user"
	"github.com/thoreinstein/validation/pkg/validator"
)

var (
	userFirstName string
	userLastName  string
	userEmail     string
	userPick      bool
	userPreset    string
	userInputFile string
	userOutput    string
)

// pickPreset chooses a preset interactively. Replaced in tests.
var pickPreset = findPresetInteractive

func init() {
	userCmd.Flags().StringVar(&userFirstName, "first-name", "", "first name")
	userCmd.Flags().StringVar(&userLastName, "last-name", "", "last name")
	userCmd.Flags().StringVar(&userEmail, "email", "", "e-mail address")
	userCmd.Flags().BoolVar(&userPick, "pick", false,
		"choose a sample input interactively")
	userCmd.Flags().StringVar(&userPreset, "preset", "",
		"use a named sample input (valid, long-first-name, missing-last-name, bad-email, everything-wrong)")
	userCmd.Flags().StringVarP(&userInputFile, "input", "i", "",
		"read fields from a YAML or JSON file (keys: first_name, last_name, email)")
	userCmd.Flags().StringVarP(&userOutput, "output", "o", "",
		"write the report to a file instead of stdout")
	userCmd.MarkFlagsMutuallyExclusive("pick", "preset", "input")
	rootCmd.AddCommand(userCmd)
}

var userCmd = &cobra.Command{
	Use:   "user",
	Short: "Validate a user and build it",
	Long: `Validate a user's first name, last name and e-mail address.

Every field is checked, and all failures are reported together in the
order the fields are declared. A field flag that is not given counts as
missing. The user is built only when every field passes.

Maximum name lengths come from the configuration file
(first_name_max_length, last_name_max_length).`,
	Example: `  # Valid user
  validation user --first-name Slavik --last-name XXX --email user@wp.pl

  # Missing last name
  validation user --first-name Slavik --email user@wp.pl

  # Sample input
  validation user --preset everything-wrong -f yaml

  # Fields from a file, report to a file
  validation user -i user.yaml -o report.json -f json

See Also: validation config validate`,
	Args: cobra.NoArgs,
	RunE: runUser,
}

func runUser(cmd *cobra.Command, _ []string) error {
	in, err := userInput(cmd)
	if err != nil {
		return err
	}
	if in == nil {
		return nil
	}

	logger := logging.FromContext(cmd.Context())
	built := user.Build(*in, settings.Rules, validator.WithLogger(logger))

	report := validator.NewReport("user", built)
	switch {
	case userOutput != "":
		err := fileutil.WriteAtomic(userOutput, 0644, func(w io.Writer) error {
			return validator.NewReporter(w, settings.Format).Report(report)
		})
		if err != nil {
			return errors.NewSystemError(err, "check the --output path")
		}
		logger.Info("report written", "path", userOutput, "format", string(settings.Format))
	case !quiet || built.IsError():
		if err := validator.NewReporter(cmd.OutOrStdout(), settings.Format).Report(report); err != nil {
			return errors.NewSystemError(err, "")
		}
	}

	if msgs, failed := built.GetErr(); failed {
		return errors.NewValidationError(len(msgs))
	}
	return nil
}

// userInput assembles the raw input from flags, a preset or a file. A nil input
// with a nil error means the picker was cancelled.
func userInput(cmd *cobra.Command) (*user.Input, error) {
	switch {
	case userPick:
		p, err := pickPreset(cmd.ErrOrStderr(), user.Presets())
		if err != nil || p == nil {
			return nil, err
		}
		return &p.Input, nil
	case userPreset != "":
		p, ok := user.FindPreset(userPreset)
		if !ok {
			return nil, errors.NewUserError(
				errors.Wrapf(errors.ErrUnknownPreset, "%q", userPreset),
				"Run 'validation user --help' to see the presets")
		}
		return &p.Input, nil
	case userInputFile != "":
		in, err := user.LoadInput(userInputFile)
		if err != nil {
			return nil, errors.NewUserError(err, "check the --input file")
		}
		return &in, nil
	}

	flags := cmd.Flags()
	in := &user.Input{}
	if flags.Changed("first-name") {
		in.FirstName = &userFirstName
	}
	if flags.Changed("last-name") {
		in.LastName = &userLastName
	}
	if flags.Changed("email") {
		in.Email = &userEmail
	}
	return in, nil
}

func findPresetInteractive(w io.Writer, presets []user.Preset) (*user.Preset, error) {
	idx, err := fuzzyfinder.Find(
		presets,
		func(i int) string {
			return presets[i].Name
		},
		fuzzyfinder.WithPreviewWindow(func(i, _, _ int) string {
			if i == -1 {
				return ""
			}
			p := presets[i]
			return fmt.Sprintf("Name: %s\n\n%s\n\nfirstName: %s\nlastName:  %s\nemail:     %s",
				p.Name,
				p.Description,
				show(p.Input.FirstName),
				show(p.Input.LastName),
				show(p.Input.Email),
			)
		}),
	)
	if err != nil {
		if errors.Is(err, fuzzyfinder.ErrAbort) {
			fmt.Fprintln(w, "No preset selected.")
			return nil, nil
		}
		return nil, errors.NewSystemError(errors.Wrap(err, "interactive preset selection failed"), "")
	}
	return &presets[idx], nil
}

func show(s *string) string {
	if s == nil {
		return "(unset)"
	}
	return fmt.Sprintf("%q", *s)
}
