package commands

import (
	"context"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ZebraDevs/zeta-icons-figma-plugin/internal/config"
	"github.com/ZebraDevs/zeta-icons-figma-plugin/internal/engine"
	"github.com/ZebraDevs/zeta-icons-figma-plugin/internal/errors"
	"github.com/ZebraDevs/zeta-icons-figma-plugin/internal/fix"
	"github.com/ZebraDevs/zeta-icons-figma-plugin/internal/logging"
	"github.com/ZebraDevs/zeta-icons-figma-plugin/internal/paths"
	"github.com/ZebraDevs/zeta-icons-figma-plugin/internal/rules"
	"github.com/ZebraDevs/zeta-icons-figma-plugin/internal/scene"
	"github.com/ZebraDevs/zeta-icons-figma-plugin/internal/validator"
)

// contextSuggestion accompanies a run refused by the context guard.
const contextSuggestion = "Open the icon library on its icons page, or set skip_context_check: true"

// session is a loaded document wired to an engine.
type session struct {
	doc    *scene.Document
	cfg    *config.Config
	engine *engine.Engine
	dryRun bool
}

type sessionOptions struct {
	noFix  bool
	dryRun bool
}

// openSession loads the scene at path and builds an engine publishing to pub.
func openSession(cmd *cobra.Command, path string, pub engine.Publisher, opts sessionOptions) (*session, error) {
	cfg, err := currentConfig()
	if err != nil {
		return nil, err
	}

	doc, err := loadScene(path)
	if err != nil {
		return nil, err
	}

	rs, err := rules.New(cfg.RulesConfig())
	if err != nil {
		return nil, errors.NewConfigError(err)
	}

	logger := logging.FromContext(cmd.Context())
	engineOpts := []engine.Option{
		engine.WithPublisher(pub),
		engine.WithGuard(cfg.Guard()),
		engine.WithLogger(logger),
		engine.WithLayerFixer(fix.NewLayerFixer(doc, cfg.Fix.LayerName, cfg.Rules.VariantCount)),
	}
	if cfg.Fix.Enabled && !opts.noFix {
		engineOpts = append(engineOpts, engine.WithClassifier(fix.NewClassifier(doc, cfg.FixOptions(), logger)))
	}

	return &session{
		doc:    doc,
		cfg:    cfg,
		engine: engine.New(doc, rs, engineOpts...),
		dryRun: opts.dryRun,
	}, nil
}

func loadScene(path string) (*scene.Document, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, errors.NewUserError(errors.Wrapf(errors.ErrNotFound, "scene %s", path), "Check the scene path")
	}
	doc, err := scene.Load(path)
	switch {
	case err == nil:
		return doc, nil
	case errors.Is(err, scene.ErrUnknownFormat):
		return nil, errors.NewUserError(err,
			"Scene files must end in one of: "+strings.Join(paths.SceneExtensions(), ", "))
	default:
		return nil, errors.NewUserError(err, "Check that the scene file is well formed")
	}
}

// run validates the document and saves it unless this is a dry run.
func (s *session) run(ctx context.Context) ([]validator.Result, error) {
	results, err := s.engine.Run(ctx)
	if err != nil {
		return nil, runError(err)
	}
	return results, s.save(ctx)
}

// save writes pending changes back to the scene file.
func (s *session) save(ctx context.Context) error {
	if s.dryRun || !s.doc.Dirty() {
		return nil
	}
	if err := s.doc.Save(); err != nil {
		return errors.NewSystemError(err, "Check that the scene file is writable")
	}
	logging.FromContext(ctx).Debug("scene saved", "path", s.doc.Path(), "writes", s.doc.Writes())
	return nil
}

func runError(err error) error {
	if errors.Is(err, errors.ErrWrongContext) {
		return errors.NewUserError(err, contextSuggestion)
	}
	return err
}

// checkSeverity fails when any icon still has a high-severity violation.
func checkSeverity(results []validator.Result) error {
	high := validator.Summarize(results).High
	if high == 0 {
		return nil
	}
	return errors.NewExitError(
		errors.Wrapf(errors.ErrValidationFailed, "%d icon(s) with high severity violations", high),
		errors.ExitUser)
}
