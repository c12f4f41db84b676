// Package testutil provides builders for scene documents used across the
// iconaudit test suites.
package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/ZebraDevs/zeta-icons-figma-plugin/internal/host"
	"github.com/ZebraDevs/zeta-icons-figma-plugin/internal/scene"
)

// Canonical library values used by the builders.
const (
	LibraryFile = "Icon Library"
	IconsPage   = "Icons"
	IconWidth   = 112
	IconHeight  = 72
)

// Layer builds a vector layer filled with hex.
func Layer(id, hex string) *scene.NodeData {
	c, err := host.ParseHex(hex)
	if err != nil {
		panic(err)
	}
	return &scene.NodeData{
		ID:    id,
		Type:  host.TypeVector,
		Name:  "Vector",
		Fills: []host.Paint{host.Solid(c)},
	}
}

// Variant builds a component holding layers.
func Variant(id, name string, layers ...*scene.NodeData) *scene.NodeData {
	return &scene.NodeData{ID: id, Type: host.TypeComponent, Name: name, Children: layers}
}

// Icon builds a canonical-sized component set.
func Icon(id, name string, variants ...*scene.NodeData) *scene.NodeData {
	return &scene.NodeData{
		ID:       id,
		Type:     host.TypeComponentSet,
		Name:     name,
		Width:    IconWidth,
		Height:   IconHeight,
		Children: variants,
	}
}

// CompliantIcon builds an icon with the two expected variants, each holding a
// single black "Vector" layer.
func CompliantIcon(id, name string) *scene.NodeData {
	return Icon(id, name,
		Variant(id+"/r", "Style=Round", Layer(id+"/r/v", "#000000")),
		Variant(id+"/s", "Style=Sharp", Layer(id+"/s/v", "#000000")),
	)
}

// Category builds a frame grouping icons.
func Category(id, name string, icons ...*scene.NodeData) *scene.NodeData {
	return &scene.NodeData{ID: id, Type: host.TypeFrame, Name: name, Children: icons}
}

// Library builds an in-memory document on the icons page of the icon library.
func Library(nodes ...*scene.NodeData) *scene.Document {
	return scene.New(&scene.File{File: LibraryFile, Page: IconsPage, Nodes: nodes})
}

// WriteFile writes content to name inside dir and returns the path.
func WriteFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("writing %s: %v", name, err)
	}
	return path
}

// MustNode resolves id in doc or fails the test.
func MustNode(t *testing.T, doc host.Document, id string) host.Node {
	t.Helper()
	n, err := doc.NodeByID(t.Context(), id)
	if err != nil {
		t.Fatalf("NodeByID(%q): %v", id, err)
	}
	return n
}

// SaveLibrary writes a library built from nodes to name inside dir and
// returns the path. The format follows the extension of name.
func SaveLibrary(t *testing.T, dir, name string, nodes ...*scene.NodeData) string {
	t.Helper()
	doc := Library(nodes...)
	path := filepath.Join(dir, name)
	if err := doc.SetPath(path); err != nil {
		t.Fatalf("SetPath(%s): %v", name, err)
	}
	if err := doc.Save(); err != nil {
		t.Fatalf("Save(%s): %v", name, err)
	}
	return path
}
