// Package annotate marks icons with a border whose color and weight reflect
// their aggregate validation severity.
package annotate

import (
	"github.com/ZebraDevs/zeta-icons-figma-plugin/internal/errors"
	"github.com/ZebraDevs/zeta-icons-figma-plugin/internal/host"
	"github.com/ZebraDevs/zeta-icons-figma-plugin/internal/validator"
)

// Border colors.
var (
	Brand   = host.Color{R: 0.48235294222831726, G: 0.3803921639919281, B: 1}
	Warning = host.Color{R: 1, G: 0.5, B: 0}
	Danger  = host.Color{R: 1, G: 0, B: 0}
)

// Stroke weights.
const (
	DefaultWeight = 1
	HighWeight    = 3
)

// Style is the border treatment for one severity.
type Style struct {
	Color  host.Color
	Weight float64
}

// StyleFor returns the border treatment for s.
func StyleFor(s validator.Severity) Style {
	switch s {
	case validator.SeverityHigh:
		return Style{Color: Danger, Weight: HighWeight}
	case validator.SeverityMedium:
		return Style{Color: Warning, Weight: DefaultWeight}
	default:
		return Style{Color: Brand, Weight: DefaultWeight}
	}
}

// Annotator applies severity borders.
type Annotator struct{}

// New returns an Annotator.
func New() *Annotator { return &Annotator{} }

// Annotate sets icon's border for severity. Nothing is written when the
// first stroke already carries the target color. It reports whether the
// icon was changed.
func (a *Annotator) Annotate(icon host.Node, severity validator.Severity) (bool, error) {
	style := StyleFor(severity)

	if strokes := icon.Strokes(); len(strokes) > 0 && strokes[0].Color.Equal(style.Color) {
		return false, nil
	}

	if err := icon.SetStrokes([]host.Paint{host.Solid(style.Color)}); err != nil {
		return false, errors.Wrapf(err, "annotating %s", icon.ID())
	}
	if err := icon.SetStrokeWeight(style.Weight); err != nil {
		return true, errors.Wrapf(err, "setting stroke weight on %s", icon.ID())
	}
	return true, nil
}
