package host

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/ZebraDevs/zeta-icons-figma-plugin/internal/errors"
)

// PaintType is the kind of a fill or stroke.
type PaintType string

const (
	PaintSolid    PaintType = "SOLID"
	PaintGradient PaintType = "GRADIENT_LINEAR"
	PaintImage    PaintType = "IMAGE"
)

// Color is an RGB color with channels in [0, 1].
type Color struct {
	R float64 `json:"r" yaml:"r" toml:"r"`
	G float64 `json:"g" yaml:"g" toml:"g"`
	B float64 `json:"b" yaml:"b" toml:"b"`
}

var (
	Black = Color{R: 0, G: 0, B: 0}
	White = Color{R: 1, G: 1, B: 1}
)

// Paint is a fill or stroke.
type Paint struct {
	Type    PaintType `json:"type" yaml:"type" toml:"type"`
	Color   Color     `json:"color" yaml:"color" toml:"color"`
	Opacity *float64  `json:"opacity,omitempty" yaml:"opacity,omitempty" toml:"opacity,omitempty"`
}

// Solid returns an opaque solid paint of c.
func Solid(c Color) Paint {
	return Paint{Type: PaintSolid, Color: c}
}

// IsSolid reports whether p is a solid paint. An empty type counts as solid.
func (p Paint) IsSolid() bool {
	return p.Type == PaintSolid || p.Type == ""
}

// Hex renders c as an uppercase 8-bit "#RRGGBB" string.
func (c Color) Hex() string {
	return fmt.Sprintf("#%02X%02X%02X", channel(c.R), channel(c.G), channel(c.B))
}

func channel(v float64) int {
	return int(math.Round(math.Max(0, math.Min(1, v)) * 255))
}

// ParseHex parses "#RRGGBB" or "RRGGBB", in any case.
func ParseHex(s string) (Color, error) {
	h := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(h) != 6 {
		return Color{}, errors.Newf("invalid hex color %q", s)
	}
	v, err := strconv.ParseUint(h, 16, 32)
	if err != nil {
		return Color{}, errors.Wrapf(err, "invalid hex color %q", s)
	}
	return Color{
		R: float64(v>>16&0xFF) / 255,
		G: float64(v>>8&0xFF) / 255,
		B: float64(v&0xFF) / 255,
	}, nil
}

// NormalizeHex canonicalizes a hex string to "#RRGGBB" uppercase.
// Invalid input is returned upper-cased but otherwise unchanged.
func NormalizeHex(s string) string {
	c, err := ParseHex(s)
	if err != nil {
		return strings.ToUpper(strings.TrimSpace(s))
	}
	return c.Hex()
}

// Equal reports whether c and o render to the same 8-bit color.
func (c Color) Equal(o Color) bool {
	return c.Hex() == o.Hex()
}
