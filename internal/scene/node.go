package scene

import (
	"slices"

	"github.com/ZebraDevs/zeta-icons-figma-plugin/internal/errors"
	"github.com/ZebraDevs/zeta-icons-figma-plugin/internal/host"
)

// node adapts a NodeData to host.Node.
type node struct {
	doc    *Document
	data   *NodeData
	parent *node
}

var _ host.Node = (*node)(nil)

func (n *node) ID() string          { return n.data.ID }
func (n *node) Type() host.NodeType { return n.data.Type }
func (n *node) Name() string        { return n.data.Name }

func (n *node) ParentName() string {
	if n.parent == nil {
		return ""
	}
	return n.parent.data.Name
}

func (n *node) writable() error {
	if n.data.Locked {
		return errors.Wrapf(host.ErrReadOnly, "%s %q", n.data.Type, n.data.Name)
	}
	return nil
}

func (n *node) SetName(name string) error {
	if err := n.writable(); err != nil {
		return err
	}
	n.data.Name = name
	n.doc.touch()
	return nil
}

func (n *node) Children() ([]host.Node, error) {
	if n.data.External {
		return nil, errors.Wrapf(host.ErrChildrenUnavailable, "%s %q", n.data.Type, n.data.Name)
	}
	children := make([]host.Node, len(n.data.Children))
	for i, c := range n.data.Children {
		children[i] = &node{doc: n.doc, data: c, parent: n}
	}
	return children, nil
}

func (n *node) Fills() []host.Paint { return slices.Clone(n.data.Fills) }

func (n *node) SetFills(fills []host.Paint) error {
	if err := n.writable(); err != nil {
		return err
	}
	n.data.Fills = slices.Clone(fills)
	n.doc.touch()
	return nil
}

func (n *node) Strokes() []host.Paint { return slices.Clone(n.data.Strokes) }

func (n *node) SetStrokes(strokes []host.Paint) error {
	if err := n.writable(); err != nil {
		return err
	}
	n.data.Strokes = slices.Clone(strokes)
	n.doc.touch()
	return nil
}

func (n *node) StrokeWeight() float64 { return n.data.StrokeWeight }

func (n *node) SetStrokeWeight(weight float64) error {
	if err := n.writable(); err != nil {
		return err
	}
	n.data.StrokeWeight = weight
	n.doc.touch()
	return nil
}

func (n *node) Size() (float64, float64) { return n.data.Width, n.data.Height }

func (n *node) Resize(width, height float64) error {
	if err := n.writable(); err != nil {
		return err
	}
	if width <= 0 || height <= 0 {
		return errors.Newf("invalid size %gx%g", width, height)
	}
	n.data.Width = width
	n.data.Height = height
	n.doc.touch()
	return nil
}
