package commands

import (
	"github.com/spf13/cobra"
)

var (
	runDryRun bool
	runNoFix  bool
	runJSON   bool
	runAll    bool
)

func init() {
	runCmd.Flags().BoolVar(&runDryRun, "dry-run", false, "validate and fix in memory without saving the scene")
	runCmd.Flags().BoolVar(&runNoFix, "no-fix", false, "report violations without auto-fixing them")
	runCmd.Flags().BoolVar(&runJSON, "json", false, "output results as JSON")
	runCmd.Flags().BoolVar(&runAll, "all", false, "include compliant icons in text output")
	rootCmd.AddCommand(runCmd)
}

var runCmd = &cobra.Command{
	Use:   "run <scene>",
	Short: "Validate every icon in a scene",
	Long: `Validate every icon on the scene's page, auto-fix what is safe to fix,
annotate each icon with a border for its severity, and save the scene.

The command exits with status 1 when any icon still has a high severity
violation after fixing.`,
	Example: `  # Audit and save
  iconaudit run library.yaml

  # Report only, leave the file untouched
  iconaudit run library.yaml --no-fix --dry-run

  # Machine-readable output
  iconaudit run library.yaml --json

See Also: iconaudit select, iconaudit remediate`,
	Args: cobra.ExactArgs(1),
	RunE: runRun,
}

func runRun(cmd *cobra.Command, args []string) error {
	pub := newConsolePublisher(cmd.OutOrStdout(), runJSON, runAll)
	s, err := openSession(cmd, args[0], pub, sessionOptions{noFix: runNoFix, dryRun: runDryRun})
	if err != nil {
		return err
	}

	results, err := s.run(cmd.Context())
	if err != nil {
		return err
	}
	if pub.err != nil {
		return pub.err
	}
	return checkSeverity(results)
}
