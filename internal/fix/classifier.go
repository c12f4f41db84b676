package fix

import (
	"log/slog"
	"strings"

	"github.com/ZebraDevs/zeta-icons-figma-plugin/internal/errors"
	"github.com/ZebraDevs/zeta-icons-figma-plugin/internal/host"
	"github.com/ZebraDevs/zeta-icons-figma-plugin/internal/validator"
)

// Classifier routes reported errors to the fixers that can repair them.
type Classifier struct {
	Colors *ColorNormalizer
	Layers Fixer
	Bounds Fixer

	// Convert is the table a color error must reference to be fixable.
	Convert ConvertTable

	// OptimisticLayerCredit drops layer errors even when the icon's
	// structure could not be repaired.
	OptimisticLayerCredit bool

	Logger *slog.Logger
}

// Options configures NewClassifier.
type Options struct {
	Convert               ConvertTable
	LayerName             string
	Width, Height         float64
	Variants              int
	MaxDepth              int
	OptimisticLayerCredit bool
}

// NewClassifier wires the three fixers against doc.
func NewClassifier(doc host.Document, opts Options, logger *slog.Logger) *Classifier {
	if opts.Convert == nil {
		opts.Convert = DefaultConvertTable()
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Classifier{
		Colors:                NewColorNormalizer(opts.Convert, opts.MaxDepth),
		Layers:                NewLayerFixer(doc, opts.LayerName, opts.Variants),
		Bounds:                BoundsFixer{Width: opts.Width, Height: opts.Height},
		Convert:               opts.Convert,
		OptimisticLayerCredit: opts.OptimisticLayerCredit,
		Logger:                logger,
	}
}

// referencesConvertible reports whether a color error names a color from the
// convert table.
func (c *Classifier) referencesConvertible(e validator.Error) bool {
	msg := strings.ToUpper(e.Message)
	for _, hex := range c.Convert.Colors() {
		if strings.Contains(msg, strings.TrimPrefix(hex, "#")) {
			return true
		}
	}
	return false
}

// attempt tracks one fixer run per kind within an Apply call.
type attempt struct {
	ok  bool
	fix int
}

// Apply fixes what it can on icon and returns the errors that remain,
// together with a record of every fix attempted. errs is not modified.
func (c *Classifier) Apply(icon host.Node, errs []validator.Error) ([]validator.Error, []validator.Fix) {
	var (
		remaining []validator.Error
		fixes     []validator.Fix
		attempts  = make(map[validator.Kind]*attempt)
		partsBad  = validator.HasKind(errs, validator.KindIconParts)
	)

	run := func(kind validator.Kind, fixer Fixer) *attempt {
		if a, ok := attempts[kind]; ok {
			return a
		}
		a := &attempt{fix: len(fixes)}
		attempts[kind] = a

		desc, err := fixer.Fix(icon)
		switch {
		case err == nil:
			a.ok = true
			fixes = append(fixes, validator.Fix{Kind: kind, Applied: true, Description: desc})
		case kind == validator.KindLayer && errors.Is(err, ErrUnsupportedStructure) && c.OptimisticLayerCredit:
			a.ok = true
			fixes = append(fixes, validator.Fix{Kind: kind, Applied: true, Description: "credited without changes: " + err.Error()})
		default:
			fixes = append(fixes, validator.Fix{Kind: kind, Applied: false, Err: err.Error()})
			c.Logger.Warn("auto-fix failed",
				"icon_id", icon.ID(), "icon", icon.Name(), "kind", kind.String(), "error", err)
		}
		return a
	}

	for _, e := range errs {
		var a *attempt
		switch e.Kind {
		case validator.KindColor:
			if c.Colors != nil && c.referencesConvertible(e) {
				a = run(validator.KindColor, c.Colors)
			}
		case validator.KindLayer:
			if c.Layers != nil {
				a = run(validator.KindLayer, c.Layers)
			}
		case validator.KindBoundingBox:
			if c.Bounds != nil && !partsBad {
				a = run(validator.KindBoundingBox, c.Bounds)
			}
		case validator.KindName, validator.KindCategory, validator.KindIconParts, validator.KindOther:
			// Reported to the user.
		}

		if a != nil && a.ok {
			fixes[a.fix].Resolved++
			continue
		}
		remaining = append(remaining, e)
	}

	for _, f := range fixes {
		if f.Applied {
			c.Logger.Info("auto-fixed",
				"icon_id", icon.ID(), "icon", icon.Name(), "kind", f.Kind.String(),
				"resolved", f.Resolved, "detail", f.Description)
		}
	}
	return remaining, fixes
}
