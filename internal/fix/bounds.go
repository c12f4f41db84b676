package fix

import (
	"fmt"

	"github.com/ZebraDevs/zeta-icons-figma-plugin/internal/host"
)

// BoundsFixer resizes an icon to the canonical footprint.
type BoundsFixer struct {
	Width, Height float64
}

// Fix implements Fixer. The size is always written.
func (f BoundsFixer) Fix(icon host.Node) (string, error) {
	w, h := f.Width, f.Height
	if w <= 0 || h <= 0 {
		w, h = DefaultWidth, DefaultHeight
	}
	oldW, oldH := icon.Size()
	if err := icon.Resize(w, h); err != nil {
		return "", err
	}
	return fmt.Sprintf("resized %gx%g to %gx%g", oldW, oldH, w, h), nil
}
