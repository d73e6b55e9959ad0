// Package logging provides structured logging for foodpicker.
//
// This package wraps a global zap logger with a few convenience functions.
// Logging is silent by default: the interactive picker owns the terminal, so
// nothing is written unless a level is configured.
//
// # Log Levels
//
//   - Debug: every controller transition, observer notifications
//   - Info: catalog and config loading, session start and end
//   - Error: command failures, logged before the error box is printed
//
// # Configuration
//
// The level comes from the --log-level flag, the log_level config key, or the
// FOODPICKER_LOG_LEVEL environment variable, in that order. When running the
// TUI, set log_file so output does not interleave with the screen:
//
//	if err := logging.Initialize(logging.Options{Level: "debug", File: "/tmp/foodpicker.log"}); err != nil {
//	    return err
//	}
//	defer logging.Sync()
//
// # Thread Safety
//
// All logging functions are safe for concurrent use.
package logging
