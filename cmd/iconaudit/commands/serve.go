package commands

import (
	"bufio"
	"context"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ZebraDevs/zeta-icons-figma-plugin/internal/engine"
	"github.com/ZebraDevs/zeta-icons-figma-plugin/internal/logging"
)

var (
	serveNoFix  bool
	serveDryRun bool
)

func init() {
	serveCmd.Flags().BoolVar(&serveNoFix, "no-fix", false, "report violations without auto-fixing them")
	serveCmd.Flags().BoolVar(&serveDryRun, "dry-run", false, "do not save the scene")
	rootCmd.AddCommand(serveCmd)
}

var serveCmd = &cobra.Command{
	Use:   "serve <scene>",
	Short: "Drive the engine with requests read from stdin",
	Long: `Read one request per line from stdin and write display messages to
stdout as JSON lines, for use by an editor or display process.

Requests:
  run                 validate every icon
  selection           show results for the stored selection
  select <id>         select an icon and show its results
  remediate <id>...   remediate the layers of icons, then validate again

Messages: {"type":"clear"}, {"type":"results","summary":{...},"icons":[...]}
and {"type":"no_icons"}. The scene is saved after every published result set.`,
	Example: `  printf 'run\nselect 2:1\n' | iconaudit serve library.yaml`,
	Args:    cobra.ExactArgs(1),
	RunE:    runServe,
}

func runServe(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	var s *session
	pub := newStreamPublisher(cmd.OutOrStdout(), func() error { return s.save(ctx) })

	var err error
	s, err = openSession(cmd, args[0], pub, sessionOptions{noFix: serveNoFix, dryRun: serveDryRun})
	if err != nil {
		return err
	}

	events := make(chan engine.Event)
	go readEvents(ctx, cmd.InOrStdin(), events)

	if err := s.engine.Loop(ctx, events); err != nil {
		return err
	}
	return pub.err
}

// readEvents parses requests from r until EOF, then closes events.
func readEvents(ctx context.Context, r io.Reader, events chan<- engine.Event) {
	defer close(events)
	logger := logging.FromContext(ctx)

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		ev, err := engine.ParseEvent(line)
		if err != nil {
			logger.Warn("ignoring request", "request", line, "error", err)
			continue
		}
		select {
		case events <- ev:
		case <-ctx.Done():
			return
		}
	}
	if err := scanner.Err(); err != nil {
		logger.Error("reading requests", "error", err)
	}
}
