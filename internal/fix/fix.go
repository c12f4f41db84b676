package fix

import (
	"github.com/ZebraDevs/zeta-icons-figma-plugin/internal/errors"
	"github.com/ZebraDevs/zeta-icons-figma-plugin/internal/host"
)

// Defaults for the canonical icon layout.
const (
	DefaultLayerName = "Vector"
	DefaultWidth     = 112
	DefaultHeight    = 72
	DefaultVariants  = 2
	DefaultMaxDepth  = 64
)

// Convert table targets.
const (
	TargetBlack = "black"
	TargetWhite = "white"
)

// ErrUnsupportedStructure indicates the icon does not have the variant
// layout the layer fixer knows how to repair.
var ErrUnsupportedStructure = errors.New("unsupported icon structure")

// Fixer repairs one kind of violation on an icon. It returns a short
// description of what changed.
type Fixer interface {
	Fix(icon host.Node) (string, error)
}

// ConvertTable maps a target color name (TargetBlack, TargetWhite) to the
// disallowed hex colors that are converted to it.
type ConvertTable map[string][]string

// DefaultConvertTable returns the near-black and near-white tones the
// library has historically used instead of pure black and white.
func DefaultConvertTable() ConvertTable {
	return ConvertTable{
		TargetBlack: {"#1D1E23", "#2C2F36", "#0F1012"},
		TargetWhite: {"#F3F6FA", "#FEFEFE", "#FAFAFA"},
	}
}

// Colors returns every source color in the table, normalized.
func (t ConvertTable) Colors() []string {
	var all []string
	for _, target := range []string{TargetBlack, TargetWhite} {
		for _, c := range t[target] {
			all = append(all, host.NormalizeHex(c))
		}
	}
	return all
}
