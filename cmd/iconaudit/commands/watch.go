package commands

import (
	"context"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"github.com/ZebraDevs/zeta-icons-figma-plugin/internal/errors"
	"github.com/ZebraDevs/zeta-icons-figma-plugin/internal/logging"
)

var (
	watchJSON     bool
	watchNoFix    bool
	watchDebounce time.Duration
)

func init() {
	watchCmd.Flags().BoolVar(&watchJSON, "json", false, "output results as JSON")
	watchCmd.Flags().BoolVar(&watchNoFix, "no-fix", false, "report violations without auto-fixing them")
	watchCmd.Flags().DurationVar(&watchDebounce, "debounce", 300*time.Millisecond, "quiet period before re-running after a change")
	rootCmd.AddCommand(watchCmd)
}

var watchCmd = &cobra.Command{
	Use:   "watch <scene>",
	Short: "Re-run validation whenever the scene changes",
	Long: `Validate the scene, then validate it again every time the file is
changed by another program. Changes written by iconaudit itself do not
trigger a new run.

Stop with Ctrl-C.`,
	Example: `  iconaudit watch library.yaml

See Also: iconaudit run`,
	Args: cobra.ExactArgs(1),
	RunE: runWatch,
}

func runWatch(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	logger := logging.FromContext(ctx)

	pub := newConsolePublisher(cmd.OutOrStdout(), watchJSON, false)
	pub.clearTerminal = !watchJSON && logging.IsTTY(cmd.OutOrStdout())
	s, err := openSession(cmd, args[0], pub, sessionOptions{noFix: watchNoFix})
	if err != nil {
		return err
	}

	rerun := func() error {
		if _, err := s.run(ctx); err != nil {
			if errors.Is(err, errors.ErrWrongContext) {
				return err
			}
			logger.Error("validation run failed", "error", err)
		}
		return pub.err
	}
	if err := rerun(); err != nil {
		return err
	}

	target, err := filepath.Abs(args[0])
	if err != nil {
		return errors.Wrap(err, "resolving scene path")
	}
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return errors.NewSystemError(err, "File watching is not available on this system")
	}
	defer watcher.Close()

	// Watch the directory: editors often replace the file instead of writing it.
	if err := watcher.Add(filepath.Dir(target)); err != nil {
		return errors.NewSystemError(err, "Check that the scene directory is readable")
	}
	logger.Info("watching scene", "path", target)

	return watchLoop(ctx, watcher.Events, watcher.Errors, target, watchDebounce, func() error {
		changed, err := s.doc.Reload()
		if err != nil {
			logger.Warn("reloading scene failed", "path", target, "error", err)
			return nil
		}
		if !changed {
			logger.Debug("scene unchanged", "path", target)
			return nil
		}
		return rerun()
	})
}

// watchLoop calls onChange once per burst of events on target, after the
// events have been quiet for debounce. It returns when ctx is done, when
// the event channel closes, or when onChange fails.
func watchLoop(ctx context.Context, events <-chan fsnotify.Event, errs <-chan error,
	target string, debounce time.Duration, onChange func() error,
) error {
	logger := logging.FromContext(ctx)

	timer := time.NewTimer(debounce)
	if !timer.Stop() {
		<-timer.C
	}
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			if !relevant(ev, target) {
				continue
			}
			logger.Log(ctx, logging.LevelTrace, "scene event", "op", ev.Op.String(), "path", ev.Name)
			timer.Reset(debounce)
		case err, ok := <-errs:
			if !ok {
				return nil
			}
			logger.Warn("watch error", "error", err)
		case <-timer.C:
			if err := onChange(); err != nil {
				return err
			}
		}
	}
}

func relevant(ev fsnotify.Event, target string) bool {
	if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) && !ev.Has(fsnotify.Rename) {
		return false
	}
	name, err := filepath.Abs(ev.Name)
	if err != nil {
		return false
	}
	return name == target
}
