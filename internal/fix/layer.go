package fix

import (
	"fmt"

	"github.com/ZebraDevs/zeta-icons-figma-plugin/internal/errors"
	"github.com/ZebraDevs/zeta-icons-figma-plugin/internal/host"
)

// LayerFixer collapses each variant of an icon into a single layer with the
// canonical name.
type LayerFixer struct {
	doc      host.Document
	name     string
	variants int
}

// NewLayerFixer creates a LayerFixer. Icons must have exactly variants
// variants to be repaired.
func NewLayerFixer(doc host.Document, name string, variants int) *LayerFixer {
	if name == "" {
		name = DefaultLayerName
	}
	if variants <= 0 {
		variants = DefaultVariants
	}
	return &LayerFixer{doc: doc, name: name, variants: variants}
}

// Fix implements Fixer.
func (f *LayerFixer) Fix(icon host.Node) (string, error) {
	variants, err := icon.Children()
	if err != nil {
		return "", errors.Wrap(err, "listing variants")
	}
	if len(variants) != f.variants {
		return "", errors.Wrapf(ErrUnsupportedStructure, "expected %d variants, found %d", f.variants, len(variants))
	}

	flattened, renamed := 0, 0
	for _, v := range variants {
		layers, err := v.Children()
		if err != nil {
			return "", errors.Wrapf(err, "listing layers of %q", v.Name())
		}
		var leaf host.Node
		switch len(layers) {
		case 0:
			continue
		case 1:
			leaf = layers[0]
		default:
			leaf, err = f.doc.Flatten(layers, v)
			if err != nil {
				return "", errors.Wrapf(err, "flattening %q", v.Name())
			}
			flattened++
		}
		if leaf.Name() == f.name {
			continue
		}
		if err := leaf.SetName(f.name); err != nil {
			return "", errors.Wrapf(err, "renaming layer in %q", v.Name())
		}
		renamed++
	}
	return fmt.Sprintf("flattened %d variant(s), renamed %d layer(s) to %q", flattened, renamed, f.name), nil
}
