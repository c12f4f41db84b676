package commands

import (
	"github.com/spf13/cobra"

	"github.com/ZebraDevs/zeta-icons-figma-plugin/internal/errors"
)

var (
	remediateIDs    []string
	remediateJSON   bool
	remediateDryRun bool
)

func init() {
	remediateCmd.Flags().StringSliceVar(&remediateIDs, "id", nil, "icon node id to remediate (repeatable)")
	remediateCmd.Flags().BoolVar(&remediateJSON, "json", false, "output results as JSON")
	remediateCmd.Flags().BoolVar(&remediateDryRun, "dry-run", false, "do not save the scene")
	_ = remediateCmd.MarkFlagRequired("id")
	rootCmd.AddCommand(remediateCmd)
}

var remediateCmd = &cobra.Command{
	Use:   "remediate <scene>",
	Short: "Flatten and rename the layers of specific icons",
	Long: `Collapse every variant of the given icons into a single layer with the
canonical layer name, then validate the whole scene again.

Layer remediation runs even when auto-fix is disabled in the configuration.`,
	Example: `  # Remediate two icons
  iconaudit remediate library.yaml --id 2:1 --id 3:1

See Also: iconaudit run`,
	Args: cobra.ExactArgs(1),
	RunE: runRemediate,
}

func runRemediate(cmd *cobra.Command, args []string) error {
	pub := newConsolePublisher(cmd.OutOrStdout(), remediateJSON, false)
	s, err := openSession(cmd, args[0], pub, sessionOptions{dryRun: remediateDryRun})
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	results, remErr := s.engine.RemediateLayers(ctx, remediateIDs)
	if errors.Is(remErr, errors.ErrWrongContext) {
		return runError(remErr)
	}
	if err := s.save(ctx); err != nil {
		return err
	}
	if pub.err != nil {
		return pub.err
	}
	if remErr != nil {
		return errors.NewUserError(remErr, "Some icons could not be remediated; see the log for details")
	}
	return checkSeverity(results)
}
