package engine

import (
	"context"
	"log/slog"
	"slices"
	"sync"

	"github.com/ZebraDevs/zeta-icons-figma-plugin/internal/annotate"
	"github.com/ZebraDevs/zeta-icons-figma-plugin/internal/errors"
	"github.com/ZebraDevs/zeta-icons-figma-plugin/internal/fix"
	"github.com/ZebraDevs/zeta-icons-figma-plugin/internal/host"
	"github.com/ZebraDevs/zeta-icons-figma-plugin/internal/validator"
)

// Engine runs validation over one document.
type Engine struct {
	mu sync.Mutex

	doc        host.Document
	validator  validator.Validator
	classifier *fix.Classifier
	layers     fix.Fixer
	annotator  *annotate.Annotator
	publisher  Publisher
	guard      *Guard
	logger     *slog.Logger

	store Store
	names NameRegistry
}

// Option configures an Engine.
type Option func(*Engine)

// WithClassifier enables auto-fixing through c.
func WithClassifier(c *fix.Classifier) Option {
	return func(e *Engine) { e.classifier = c }
}

// WithLayerFixer sets the fixer used by RemediateLayers. It defaults to the
// classifier's layer fixer, or a default fix.LayerFixer.
func WithLayerFixer(f fix.Fixer) Option {
	return func(e *Engine) { e.layers = f }
}

// WithPublisher sets the display. The default discards every message.
func WithPublisher(p Publisher) Option {
	return func(e *Engine) { e.publisher = p }
}

// WithGuard restricts runs to the files and pages allowed by g. A nil
// guard disables the check.
func WithGuard(g *Guard) Option {
	return func(e *Engine) { e.guard = g }
}

// WithLogger sets the logger.
func WithLogger(l *slog.Logger) Option {
	return func(e *Engine) { e.logger = l }
}

// New creates an Engine validating doc with v.
func New(doc host.Document, v validator.Validator, opts ...Option) *Engine {
	e := &Engine{
		doc:       doc,
		validator: v,
		annotator: annotate.New(),
		publisher: Discard,
		logger:    slog.Default(),
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.layers == nil {
		if e.classifier != nil && e.classifier.Layers != nil {
			e.layers = e.classifier.Layers
		} else {
			e.layers = fix.NewLayerFixer(doc, fix.DefaultLayerName, fix.DefaultVariants)
		}
	}
	return e
}

// Reset clears the result store and the name registry.
func (e *Engine) Reset() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.reset()
}

func (e *Engine) reset() {
	e.store.Reset()
	e.names.Reset()
}

// Results returns the results of the most recent run in document order.
func (e *Engine) Results() []validator.Result {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.store.All()
}

// UsedNames returns the names claimed during the most recent run.
func (e *Engine) UsedNames() []string {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.names.Names()
}

// Run validates every icon on the page and publishes the full result set.
// It fails only when the document is outside the allowed context; per-icon
// validator failures are logged and the icon is left out of the results.
func (e *Engine) Run(ctx context.Context) ([]validator.Result, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.run(ctx)
}

func (e *Engine) run(ctx context.Context) ([]validator.Result, error) {
	if e.guard != nil {
		if err := e.guard.Check(e.doc); err != nil {
			return nil, err
		}
	}

	e.reset()
	e.publisher.Clear()

	icons := e.doc.Icons()
	e.logger.DebugContext(ctx, "validation run started", "icons", len(icons))

	for _, icon := range icons {
		e.validateIcon(ctx, icon)
	}

	if len(icons) == 0 {
		e.logger.InfoContext(ctx, "no icons found", "file", e.doc.FileName(), "page", e.doc.PageName())
		e.publisher.NoIcons()
		return nil, nil
	}

	results := e.store.All()
	e.publisher.Publish(results)
	e.logger.DebugContext(ctx, "validation run finished", "icons", len(icons), "stored", len(results))
	return results, nil
}

func (e *Engine) validateIcon(ctx context.Context, icon host.Node) {
	log := e.logger.With("icon_id", icon.ID(), "icon", icon.Name())

	errs, err := e.validator.Validate(validator.Input{
		Name:      icon.Name(),
		Category:  icon.ParentName(),
		UsedNames: e.names.Names(),
		Icon:      icon,
	})
	if err != nil {
		log.ErrorContext(ctx, "validator failed", "error", err)
		e.names.Claim(icon.Name())
		return
	}

	res := validator.Result{
		ID:     icon.ID(),
		Name:   icon.Name(),
		Found:  slices.Clone(errs),
		Errors: errs,
	}
	if e.classifier != nil && len(errs) > 0 {
		res.Errors, res.Fixes = e.classifier.Apply(icon, errs)
	}
	e.store.Put(res)

	if suggested, ok := validator.SuggestedName(res.Found); ok {
		e.names.Claim(suggested)
	} else {
		e.names.Claim(icon.Name())
	}

	severity := res.Severity()
	if _, err := e.annotator.Annotate(icon, severity); err != nil {
		log.WarnContext(ctx, "annotation failed", "error", err)
	}
	log.Log(ctx, levelFor(severity), "icon validated",
		"severity", severity.String(), "errors", len(res.Errors), "fixed", len(res.AppliedFixes()))
}

func levelFor(s validator.Severity) slog.Level {
	if s == validator.SeverityNone {
		return slog.LevelDebug
	}
	return slog.LevelInfo
}

// SelectionChanged publishes the results for the icons currently selected,
// or every result when no icon is selected.
func (e *Engine) SelectionChanged(ctx context.Context) []validator.Result {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.selectionChanged(ctx)
}

func (e *Engine) selectionChanged(ctx context.Context) []validator.Result {
	e.publisher.Clear()

	var ids []string
	for _, n := range host.Icons(e.doc.Selection()) {
		ids = append(ids, n.ID())
	}

	var view []validator.Result
	if len(ids) == 0 {
		view = e.store.All()
	} else {
		view = e.store.Filter(ids)
	}
	e.logger.DebugContext(ctx, "selection changed", "selected_icons", len(ids), "results", len(view))
	e.publisher.Publish(view)
	return view
}

// SelectIcon selects the node with the given ID and publishes the
// resulting view.
func (e *Engine) SelectIcon(ctx context.Context, id string) ([]validator.Result, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	node, err := e.doc.NodeByID(ctx, id)
	if err != nil {
		return nil, errors.Wrapf(err, "selecting %s", id)
	}
	if err := e.doc.SetSelection([]host.Node{node}); err != nil {
		return nil, errors.Wrapf(err, "selecting %s", id)
	}
	return e.selectionChanged(ctx), nil
}

// RemediateLayers runs the layer fixer on each listed icon and then starts
// a new run. Icons that cannot be found or fixed are reported in the
// returned error; the run happens regardless.
func (e *Engine) RemediateLayers(ctx context.Context, ids []string) ([]validator.Result, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.guard != nil {
		if err := e.guard.Check(e.doc); err != nil {
			return nil, err
		}
	}

	var failures []error
	for _, id := range ids {
		node, err := e.doc.NodeByID(ctx, id)
		if err != nil {
			failures = append(failures, errors.Wrapf(err, "remediating %s", id))
			continue
		}
		desc, err := e.layers.Fix(node)
		if err != nil {
			e.logger.WarnContext(ctx, "layer remediation failed", "icon_id", id, "icon", node.Name(), "error", err)
			failures = append(failures, errors.Wrapf(err, "remediating %s", node.Name()))
			continue
		}
		e.logger.InfoContext(ctx, "layers remediated", "icon_id", id, "icon", node.Name(), "detail", desc)
	}

	results, err := e.run(ctx)
	if err != nil {
		failures = append(failures, err)
	}
	return results, errors.Join(failures...)
}
