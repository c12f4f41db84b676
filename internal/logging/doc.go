// Package logging provides structured logging for iconaudit using slog.
//
// Text output goes through [Handler], which colorizes levels and attribute
// keys when the writer is a terminal. JSON output uses the standard library
// handler. [MultiHandler] tees records to several handlers, which the CLI uses
// to mirror console output into a --log-file.
//
//	logger := logging.New(logging.Config{
//		Level:  slog.LevelInfo,
//		Format: logging.FormatText,
//		Output: os.Stderr,
//	})
//	logger.Info("run finished", "icons", 42)
//
// Tests should use [ForTest] so that output is attached to the test log.
package logging
