package scene

import (
	"bytes"
	"context"
	"slices"

	"github.com/google/uuid"

	"github.com/ZebraDevs/zeta-icons-figma-plugin/internal/errors"
	"github.com/ZebraDevs/zeta-icons-figma-plugin/internal/host"
	"github.com/ZebraDevs/zeta-icons-figma-plugin/pkg/fileutil"
)

// Document is a scene loaded into memory. It implements host.Document.
//
// Document is not safe for concurrent use; the engine drives it from a single
// goroutine.
type Document struct {
	path   string
	format Format
	file   *File

	writes int
	dirty  bool
	// synced is the file content last read or written.
	synced []byte
}

var _ host.Document = (*Document)(nil)

// New wraps an in-memory scene. Save requires a path, see SetPath.
func New(f *File) *Document {
	if f == nil {
		f = &File{}
	}
	return &Document{file: f, format: FormatYAML}
}

// Load reads and decodes the scene at path.
func Load(path string) (*Document, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}
	data, err := fileutil.ReadFileWithLimit(path)
	if err != nil {
		return nil, errors.Wrapf(err, "reading scene %s", path)
	}
	f, err := Decode(data, format)
	if err != nil {
		return nil, errors.Wrapf(err, "loading scene %s", path)
	}
	return &Document{path: path, format: format, file: f, synced: data}, nil
}

// Reload re-reads the document from disk. It reports false, leaving the
// document untouched, when the file still holds what was last read or
// saved. Unsaved changes are discarded on reload.
func (d *Document) Reload() (bool, error) {
	if d.path == "" {
		return false, errors.New("scene has no path")
	}
	data, err := fileutil.ReadFileWithLimit(d.path)
	if err != nil {
		return false, errors.Wrapf(err, "reading scene %s", d.path)
	}
	if bytes.Equal(data, d.synced) {
		return false, nil
	}
	f, err := Decode(data, d.format)
	if err != nil {
		return false, errors.Wrapf(err, "loading scene %s", d.path)
	}
	d.file = f
	d.synced = data
	d.dirty = false
	return true, nil
}

// SetPath sets the file Save writes to; the format follows the extension.
func (d *Document) SetPath(path string) error {
	format, err := FormatFromPath(path)
	if err != nil {
		return err
	}
	d.path = path
	d.format = format
	return nil
}

// Path returns the file the document was loaded from.
func (d *Document) Path() string { return d.path }

// Save writes the document back atomically, keeping the file's permissions.
func (d *Document) Save() error {
	if d.path == "" {
		return errors.New("scene has no path")
	}
	data, err := Encode(d.file, d.format)
	if err != nil {
		return err
	}
	if err := fileutil.AtomicWriteFile(d.path, data, fileutil.FileMode(d.path, 0o644)); err != nil {
		return errors.Wrapf(err, "saving scene %s", d.path)
	}
	d.synced = data
	d.dirty = false
	return nil
}

// Dirty reports whether the document changed since it was loaded or saved.
func (d *Document) Dirty() bool { return d.dirty }

// Writes counts mutations applied to the document.
func (d *Document) Writes() int { return d.writes }

// File returns the underlying scene data.
func (d *Document) File() *File { return d.file }

func (d *Document) touch() {
	d.writes++
	d.dirty = true
}

// FileName implements host.Document.
func (d *Document) FileName() string { return d.file.File }

// PageName implements host.Document.
func (d *Document) PageName() string { return d.file.Page }

// Icons returns COMPONENT_SET nodes depth-first in document order. Icons
// are not searched for nested icons, and external nodes are not entered.
func (d *Document) Icons() []host.Node {
	var icons []host.Node
	var walk func(parent *node, children []*NodeData)
	walk = func(parent *node, children []*NodeData) {
		for _, c := range children {
			n := &node{doc: d, data: c, parent: parent}
			if c.Type.IsIcon() {
				icons = append(icons, n)
				continue
			}
			if !c.External {
				walk(n, c.Children)
			}
		}
	}
	walk(nil, d.file.Nodes)
	return icons
}

// Selection implements host.Document. Unknown IDs are skipped.
func (d *Document) Selection() []host.Node {
	var nodes []host.Node
	for _, id := range d.file.Selection {
		if n := d.find(id); n != nil {
			nodes = append(nodes, n)
		}
	}
	return nodes
}

// SetSelection implements host.Document.
func (d *Document) SetSelection(nodes []host.Node) error {
	ids := make([]string, 0, len(nodes))
	for _, n := range nodes {
		ids = append(ids, n.ID())
	}
	if slices.Equal(ids, d.file.Selection) {
		return nil
	}
	d.file.Selection = ids
	d.dirty = true
	return nil
}

// NodeByID implements host.Document.
func (d *Document) NodeByID(ctx context.Context, id string) (host.Node, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.Wrap(err, "looking up node")
	}
	n := d.find(id)
	if n == nil {
		return nil, errors.Wrapf(host.ErrNodeNotFound, "id %q", id)
	}
	return n, nil
}

func (d *Document) find(id string) *node {
	var search func(parent *node, children []*NodeData) *node
	search = func(parent *node, children []*NodeData) *node {
		for _, c := range children {
			n := &node{doc: d, data: c, parent: parent}
			if c.ID == id {
				return n
			}
			if found := search(n, c.Children); found != nil {
				return found
			}
		}
		return nil
	}
	return search(nil, d.file.Nodes)
}

// Flatten implements host.Document. The merged nodes are replaced, at the
// position of the first of them, by one VECTOR carrying the first non-empty
// fills found among them.
func (d *Document) Flatten(nodes []host.Node, parent host.Node) (host.Node, error) {
	if len(nodes) == 0 {
		return nil, errors.New("flatten: no nodes")
	}
	p, ok := parent.(*node)
	if !ok || p.doc != d {
		return nil, errors.New("flatten: parent does not belong to this scene")
	}
	if err := p.writable(); err != nil {
		return nil, err
	}

	merged := make(map[*NodeData]bool, len(nodes))
	for _, n := range nodes {
		sn, ok := n.(*node)
		if !ok || !slices.Contains(p.data.Children, sn.data) {
			return nil, errors.Newf("flatten: %s is not a child of %s", n.ID(), parent.ID())
		}
		if err := sn.writable(); err != nil {
			return nil, err
		}
		merged[sn.data] = true
	}

	var fills []host.Paint
	for _, c := range p.data.Children {
		if merged[c] {
			if fills = firstFills(c); fills != nil {
				break
			}
		}
	}

	flat := &NodeData{
		ID:    uuid.NewString(),
		Type:  host.TypeVector,
		Name:  "Vector",
		Fills: fills,
	}

	children := make([]*NodeData, 0, len(p.data.Children)-len(merged)+1)
	inserted := false
	for _, c := range p.data.Children {
		if !merged[c] {
			children = append(children, c)
			continue
		}
		if !inserted {
			children = append(children, flat)
			inserted = true
		}
	}
	p.data.Children = children
	d.touch()

	return &node{doc: d, data: flat, parent: p}, nil
}

func firstFills(n *NodeData) []host.Paint {
	if len(n.Fills) > 0 {
		return slices.Clone(n.Fills)
	}
	for _, c := range n.Children {
		if f := firstFills(c); f != nil {
			return f
		}
	}
	return nil
}
