package commands

import (
	"fmt"
	"strings"

	"github.com/ktr0731/go-fuzzyfinder"
	"github.com/spf13/cobra"

	"github.com/ZebraDevs/zeta-icons-figma-plugin/internal/errors"
	"github.com/ZebraDevs/zeta-icons-figma-plugin/internal/validator"
)

var (
	selectID          string
	selectInteractive bool
	selectJSON        bool
	selectDryRun      bool
)

func init() {
	selectCmd.Flags().StringVar(&selectID, "id", "", "select the icon with this node id")
	selectCmd.Flags().BoolVarP(&selectInteractive, "interactive", "i", false, "pick the icon with a fuzzy finder")
	selectCmd.Flags().BoolVar(&selectJSON, "json", false, "output results as JSON")
	selectCmd.Flags().BoolVar(&selectDryRun, "dry-run", false, "do not save the selection or annotations")
	selectCmd.MarkFlagsMutuallyExclusive("id", "interactive")
	rootCmd.AddCommand(selectCmd)
}

var selectCmd = &cobra.Command{
	Use:   "select <scene>",
	Short: "Show results for the selected icons",
	Long: `Validate the scene and show the results for the current selection.

With --id the icon with that node id becomes the selection. With
--interactive the icon is picked from a fuzzy finder. Without either, the
selection stored in the scene is used; when it holds no icons, every
result is shown.`,
	Example: `  # Results for the stored selection
  iconaudit select library.yaml

  # Select one icon by id
  iconaudit select library.yaml --id 2:1

  # Pick interactively
  iconaudit select library.yaml -i

See Also: iconaudit run`,
	Args: cobra.ExactArgs(1),
	RunE: runSelect,
}

func runSelect(cmd *cobra.Command, args []string) error {
	pub := newConsolePublisher(cmd.OutOrStdout(), selectJSON, true)
	s, err := openSession(cmd, args[0], pub, sessionOptions{dryRun: selectDryRun})
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	pub.muted = true
	results, err := s.engine.Run(ctx)
	pub.muted = false
	if err != nil {
		return runError(err)
	}

	id := selectID
	if selectInteractive {
		if len(results) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "No icons found on this page.")
			return nil
		}
		id, err = pickIcon(results)
		if errors.Is(err, fuzzyfinder.ErrAbort) {
			return nil
		}
		if err != nil {
			return err
		}
	}

	if id == "" {
		s.engine.SelectionChanged(ctx)
	} else if _, err := s.engine.SelectIcon(ctx, id); err != nil {
		return errors.NewUserError(err, "List icon ids with: iconaudit run "+args[0]+" --all")
	}
	if pub.err != nil {
		return pub.err
	}
	return s.save(ctx)
}

// pickIcon lets the user choose an icon from results.
func pickIcon(results []validator.Result) (string, error) {
	idx, err := fuzzyfinder.Find(
		results,
		func(i int) string {
			return fmt.Sprintf("%s (%s) %s", results[i].Name, results[i].ID, results[i].Severity())
		},
		fuzzyfinder.WithPreviewWindow(func(i, _, _ int) string {
			if i == -1 {
				return ""
			}
			return describeResult(&results[i])
		}),
	)
	if err != nil {
		if errors.Is(err, fuzzyfinder.ErrAbort) {
			return "", err
		}
		return "", errors.Wrap(err, "interactive selection failed")
	}
	return results[idx].ID, nil
}

// describeResult renders a plain-text summary for the finder preview.
func describeResult(r *validator.Result) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Name: %s\nID: %s\nSeverity: %s\n", r.Name, r.ID, r.Severity())
	if len(r.Errors) > 0 {
		sb.WriteString("\nViolations:\n")
		for _, e := range r.Errors {
			fmt.Fprintf(&sb, "  %s: %s\n", e.Kind, e.Message)
		}
	}
	if fixes := r.AppliedFixes(); len(fixes) > 0 {
		sb.WriteString("\nFixed:\n")
		for _, f := range fixes {
			fmt.Fprintf(&sb, "  %s: %s\n", f.Kind, f.Description)
		}
	}
	return sb.String()
}
