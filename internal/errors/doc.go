// Package errors provides error handling conventions for the validation CLI.
//
// It defines sentinel errors for common failure conditions, an ExitError
// type carrying a process exit code, and forwards the constructors of
// github.com/cockroachdb/errors so command code needs a single import.
//
// # Exit Codes
//
//   - ExitSuccess (0): command completed successfully
//   - ExitUser (1): rejected input, bad flags or configuration
//   - ExitSystem (2): I/O or terminal failure
//
// # ExitError
//
//	err := errors.NewUserError(errors.ErrUnknownPreset, "Run 'validation user --pick'")
//	os.Exit(errors.ExitCode(err))
package errors
