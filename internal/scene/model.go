package scene

import "github.com/ZebraDevs/zeta-icons-figma-plugin/internal/host"

// File is the on-disk shape of a scene.
type File struct {
	File      string      `json:"file" yaml:"file" toml:"file"`
	Page      string      `json:"page" yaml:"page" toml:"page"`
	Selection []string    `json:"selection,omitempty" yaml:"selection,omitempty" toml:"selection,omitempty"`
	Nodes     []*NodeData `json:"nodes" yaml:"nodes" toml:"nodes"`
}

// NodeData is the on-disk shape of a node.
type NodeData struct {
	ID           string        `json:"id" yaml:"id" toml:"id"`
	Type         host.NodeType `json:"type" yaml:"type" toml:"type"`
	Name         string        `json:"name" yaml:"name" toml:"name"`
	Fills        []host.Paint  `json:"fills,omitempty" yaml:"fills,omitempty" toml:"fills,omitempty"`
	Strokes      []host.Paint  `json:"strokes,omitempty" yaml:"strokes,omitempty" toml:"strokes,omitempty"`
	StrokeWeight float64       `json:"stroke_weight,omitempty" yaml:"stroke_weight,omitempty" toml:"stroke_weight,omitempty"`
	Width        float64       `json:"width,omitempty" yaml:"width,omitempty" toml:"width,omitempty"`
	Height       float64       `json:"height,omitempty" yaml:"height,omitempty" toml:"height,omitempty"`
	Locked       bool          `json:"locked,omitempty" yaml:"locked,omitempty" toml:"locked,omitempty"`
	External     bool          `json:"external,omitempty" yaml:"external,omitempty" toml:"external,omitempty"`
	Children     []*NodeData   `json:"children,omitempty" yaml:"children,omitempty" toml:"children,omitempty"`
}
