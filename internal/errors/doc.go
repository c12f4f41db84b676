// Package errors provides error handling conventions for the iconaudit CLI.
//
// The package re-exports the constructors and inspection helpers of
// github.com/cockroachdb/errors so that the rest of the module imports a
// single errors package, and adds sentinel errors, an ExitError type for CLI
// exit code handling, and exit code constants following Unix conventions.
//
// # Sentinel Errors
//
//	if errors.Is(err, errors.ErrWrongContext) {
//	    // the document is not the icon library
//	}
//
// # Exit Codes
//
//   - ExitSuccess (0): Command completed successfully
//   - ExitUser (1): User-related error (invalid input, violations found, etc.)
//   - ExitSystem (2): System-related error (I/O, permissions, etc.)
//
// # ExitError
//
// [ExitError] wraps an underlying error with an exit code and optional
// suggestion. It supports unwrapping via [errors.Unwrap] and [errors.As]:
//
//	err := errors.NewUserError(errors.ErrInvalidConfig, "Check your config file")
//	var exitErr *errors.ExitError
//	if errors.As(err, &exitErr) {
//	    os.Exit(exitErr.Code)
//	}
package errors
