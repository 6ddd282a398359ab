// Package logging provides structured logging for the validation CLI using
// slog.
//
// Loggers write text (colourised on a terminal) or JSON, honour the -v/-q
// verbosity flags through [LevelFromVerbosity], and can fan out to several
// handlers with [MultiHandler]. The validator logs each evaluated field at
// debug level.
//
// # Basic Usage
//
//	logger := logging.New(logging.Config{
//		Level:  slog.LevelInfo,
//		Format: logging.FormatText,
//		Output: os.Stderr,
//	})
//	logger.Info("validating", "target", "user")
//
// # Testing
//
// For tests, use [ForTest] to capture log output via the testing framework:
//
//	v := validator.New[*user.Builder](validator.WithLogger(logging.ForTest(t)))
//
// # Quiet Mode
//
// Use [NewDiscard] when log output should be suppressed entirely.
package logging
