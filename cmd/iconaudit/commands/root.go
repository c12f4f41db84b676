// Package commands implements the CLI commands for iconaudit.
package commands

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/ZebraDevs/zeta-icons-figma-plugin/cmd"
	"github.com/ZebraDevs/zeta-icons-figma-plugin/internal/config"
	"github.com/ZebraDevs/zeta-icons-figma-plugin/internal/errors"
	"github.com/ZebraDevs/zeta-icons-figma-plugin/internal/logging"
)

// configFile holds the value of the --config flag.
var configFile string

// verbosity holds the count of -v flags.
var verbosity int

// quiet holds the value of the -q/--quiet flag.
var quiet bool

// logFormat holds the value of the --log-format flag.
var logFormat string

// logFile holds the path to the log file.
var logFile string

// loadedConfig and configLoadErr hold the outcome of config loading.
var (
	loadedConfig  *config.Config
	configLoadErr error
)

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&configFile, "config", "",
		"config file (default: ./iconaudit.yaml, then the user config dir)")
	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v",
		"increase verbosity level (e.g., -v, -vv)")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false,
		"suppress non-error output")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "text",
		"log format: text, json")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "",
		"write logs to file in JSON format")

	rootCmd.Version = cmd.Version
	rootCmd.SetVersionTemplate("iconaudit version {{.Version}}\n")

	// Silence errors and usage so we can control error output
	rootCmd.SilenceErrors = true
	rootCmd.SilenceUsage = true
}

func initConfig() {
	config.Init()
	loadedConfig, configLoadErr = config.Load(configFile)
}

var rootCmd = &cobra.Command{
	Use:   "iconaudit",
	Short: "Audit and repair icon library documents",
	Long: `iconaudit validates every icon in an icon library document against the
library's naming, color, layer and sizing conventions.

Each icon gets a border reflecting its worst remaining violation, and the
violations that are safe to repair (disallowed near-black and near-white
fills, stray layers, wrong footprint) are fixed in place.

Documents are scene files in YAML, JSON or TOML.`,
	Example: `  # Audit a library and save fixes and annotations
  iconaudit run library.yaml

  # Preview without writing anything
  iconaudit run library.yaml --dry-run

  # Show the results for one icon
  iconaudit select library.yaml --id 2:1

  See Also: iconaudit config show`,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		return setupLogging(cmd)
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

		// CLI flags take precedence, but if not set, check env var
		if v == 0 {
			if val, ok := os.LookupEnv("ICONAUDIT_DEBUG"); ok {
				switch val {
				case "1", "true":
					v = 2 // Debug
				case "2":
					v = 3 // Trace
				}
			}
		}
		level = logging.LevelFromVerbosity(v)
	}

	opts := &slog.HandlerOptions{
		Level: level,
	}

	var primaryHandler slog.Handler
	switch logging.ParseFormat(logFormat) {
	case logging.FormatJSON:
		primaryHandler = slog.NewJSONHandler(cmd.ErrOrStderr(), opts)
	default:
		primaryHandler = logging.NewHandler(cmd.ErrOrStderr(), opts)
	}

	handlers := []slog.Handler{primaryHandler}

	if logFile != "" {
		f, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return errors.NewUserError(err, "failed to open log file")
		}
		// File output uses JSON format
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

// currentConfig returns the loaded configuration, or a config error when it
// could not be read or is invalid.
func currentConfig() (*config.Config, error) {
	if configLoadErr != nil {
		return nil, errors.NewConfigError(configLoadErr)
	}
	if loadedConfig == nil {
		return nil, errors.NewConfigError(errors.Wrap(errors.ErrInvalidConfig, "configuration not loaded"))
	}
	if errs := config.Validate(loadedConfig); len(errs) > 0 {
		return nil, errors.NewConfigError(errors.Mark(errors.Join(errs...), errors.ErrInvalidConfig))
	}
	return loadedConfig, nil
}

// Execute runs the root command.
func Execute() error {
	return errors.Wrap(rootCmd.Execute(), "executing root command")
}

// ExitCode maps an error returned by Execute to a process exit code.
func ExitCode(err error) int {
	if err == nil {
		return errors.ExitSuccess
	}
	var exitErr *errors.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	return errors.ExitUser
}

// PrintError writes err and any suggestion or hints attached to it.
func PrintError(w io.Writer, err error) {
	var exitErr *errors.ExitError
	if errors.As(err, &exitErr) && exitErr.Err != nil {
		fmt.Fprintf(w, "Error: %v\n", exitErr.Err)
	} else {
		fmt.Fprintf(w, "Error: %v\n", err)
	}
	for _, hint := range errors.GetAllHints(err) {
		fmt.Fprintf(w, "  %s\n", hint)
	}
	if exitErr != nil && exitErr.Suggestion != "" {
		fmt.Fprintf(w, "  %s\n", exitErr.Suggestion)
	}
}
