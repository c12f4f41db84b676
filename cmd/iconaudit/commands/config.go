package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/ZebraDevs/zeta-icons-figma-plugin/internal/config"
	"github.com/ZebraDevs/zeta-icons-figma-plugin/internal/errors"
	"github.com/ZebraDevs/zeta-icons-figma-plugin/internal/paths"
)

func init() {
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configGetCmd)
	configCmd.AddCommand(configPathCmd)
	rootCmd.AddCommand(configCmd)
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect iconaudit configuration",
	Long: `Inspect the configuration read from iconaudit.yaml and ICONAUDIT_*
environment variables.

Without a subcommand, shows the effective configuration.`,
	Example: `  # Show the effective configuration
  iconaudit config

  # Get a specific value
  iconaudit config get fix.width

See Also: iconaudit run`,
	RunE: runConfigShow,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the effective configuration",
	Long: `Show the effective configuration in YAML format, followed by any
validation problems.`,
	RunE: runConfigShow,
}

var configGetCmd = &cobra.Command{
	Use:   "get <key>",
	Short: "Get a configuration value",
	Long: `Get a single configuration value by key.

Supports dot notation for nested keys. Array values are printed one per line.`,
	Example: `  iconaudit config get colors.map_to_black`,
	Args:    cobra.ExactArgs(1),
	RunE:    runConfigGet,
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print where configuration is read from",
	RunE:  runConfigPath,
}

func runConfigShow(cmd *cobra.Command, _ []string) error {
	if configLoadErr != nil {
		return errors.NewConfigError(configLoadErr)
	}
	data, err := yaml.Marshal(loadedConfig)
	if err != nil {
		return errors.Wrap(err, "marshaling config")
	}

	out := cmd.OutOrStdout()
	if used := config.Used(); used != "" {
		fmt.Fprintf(out, "# %s\n", used)
	} else {
		fmt.Fprintln(out, "# defaults (no config file found)")
	}
	fmt.Fprint(out, string(data))

	errs := config.Validate(loadedConfig)
	if len(errs) == 0 {
		return nil
	}
	for _, e := range errs {
		fmt.Fprintf(out, "# invalid: %v\n", e)
	}
	return errors.NewExitError(errors.Mark(errors.Join(errs...), errors.ErrInvalidConfig), errors.ExitUser)
}

func runConfigGet(cmd *cobra.Command, args []string) error {
	key := args[0]
	out := cmd.OutOrStdout()

	if !viper.IsSet(key) {
		return errors.NewUserError(errors.Wrapf(errors.ErrNotFound, "config key %q", key), "Run: iconaudit config show")
	}

	switch v := viper.Get(key).(type) {
	case []any:
		for _, item := range v {
			fmt.Fprintln(out, item)
		}
	case []string:
		for _, item := range v {
			fmt.Fprintln(out, item)
		}
	default:
		fmt.Fprintln(out, viper.GetString(key))
	}
	return nil
}

func runConfigPath(cmd *cobra.Command, _ []string) error {
	out := cmd.OutOrStdout()
	if used := config.Used(); used != "" {
		fmt.Fprintln(out, used)
		return nil
	}
	fmt.Fprintf(out, "%s/%s.yaml (not found)\n", paths.ConfigDir(), paths.ConfigFileName)
	return nil
}
