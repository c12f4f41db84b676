// Package host defines the boundary between the audit engine and the design
// document it inspects.
//
// The engine never creates or destroys icons. It reads structure through
// [Node] and [Document] and issues a small set of mutations: renaming layers,
// replacing fills and strokes, resizing, and flattening. Every mutation can be
// rejected by the host, so each returns an error.
package host

import (
	"context"

	"github.com/ZebraDevs/zeta-icons-figma-plugin/internal/errors"
)

// NodeType is the host's node type tag.
type NodeType string

// Node types the engine cares about. Hosts may report others.
const (
	TypeDocument     NodeType = "DOCUMENT"
	TypePage         NodeType = "PAGE"
	TypeFrame        NodeType = "FRAME"
	TypeSection      NodeType = "SECTION"
	TypeGroup        NodeType = "GROUP"
	TypeComponentSet NodeType = "COMPONENT_SET"
	TypeComponent    NodeType = "COMPONENT"
	TypeInstance     NodeType = "INSTANCE"
	TypeVector       NodeType = "VECTOR"
	TypeBooleanOp    NodeType = "BOOLEAN_OPERATION"
)

// IsIcon reports whether t is the icon family type (a variant set).
func (t NodeType) IsIcon() bool {
	return t == TypeComponentSet
}

// Sentinel errors hosts return from Node and Document methods.
var (
	// ErrReadOnly indicates the host rejected a mutation.
	ErrReadOnly = errors.New("node is read-only")

	// ErrChildrenUnavailable indicates a node's children cannot be enumerated.
	ErrChildrenUnavailable = errors.New("children unavailable")

	// ErrNodeNotFound indicates no node has the requested ID.
	ErrNodeNotFound = errors.New("node not found")
)

// Node is a single node in the design document.
type Node interface {
	ID() string
	Type() NodeType
	Name() string
	SetName(name string) error

	// ParentName is the name of the enclosing container; for icons this is
	// the category. Empty for top-level nodes.
	ParentName() string

	// Children returns direct children in document order. Hosts return
	// ErrChildrenUnavailable when they cannot be enumerated.
	Children() ([]Node, error)

	Fills() []Paint
	SetFills(fills []Paint) error

	Strokes() []Paint
	SetStrokes(strokes []Paint) error
	StrokeWeight() float64
	SetStrokeWeight(weight float64) error

	Size() (width, height float64)
	Resize(width, height float64) error
}

// Document is the host document scoped to the current page.
type Document interface {
	// FileName and PageName identify the context for the guard.
	FileName() string
	PageName() string

	// Icons returns every icon family node on the page in document order.
	Icons() []Node

	// Selection returns the currently selected nodes.
	Selection() []Node
	SetSelection(nodes []Node) error

	// NodeByID resolves an ID. It may suspend until the host answers.
	NodeByID(ctx context.Context, id string) (Node, error)

	// Flatten merges nodes, which share parent, into a single vector layer
	// and returns it.
	Flatten(nodes []Node, parent Node) (Node, error)
}

// Icons filters nodes down to icon family nodes, preserving order.
func Icons(nodes []Node) []Node {
	var icons []Node
	for _, n := range nodes {
		if n.Type().IsIcon() {
			icons = append(icons, n)
		}
	}
	return icons
}
