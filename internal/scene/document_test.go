package scene_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/ZebraDevs/zeta-icons-figma-plugin/internal/errors"
	"github.com/ZebraDevs/zeta-icons-figma-plugin/internal/host"
	"github.com/ZebraDevs/zeta-icons-figma-plugin/internal/scene"
	"github.com/ZebraDevs/zeta-icons-figma-plugin/internal/testutil"
)

func TestLoad_Formats(t *testing.T) {
	for _, name := range []string{"library.yaml", "library.json", "library.toml"} {
		t.Run(name, func(t *testing.T) {
			doc, err := scene.Load(filepath.Join("testdata", name))
			if err != nil {
				t.Fatalf("Load() error = %v", err)
			}
			if doc.FileName() != "Icon Library" || doc.PageName() != "Icons" {
				t.Errorf("context = %q/%q", doc.FileName(), doc.PageName())
			}
			icons := doc.Icons()
			if len(icons) == 0 || icons[0].Name() != "ic_arrow_up" {
				t.Fatalf("first icon = %v", icons)
			}
			if icons[0].ParentName() != "Arrows" {
				t.Errorf("ParentName() = %q, want Arrows", icons[0].ParentName())
			}
			w, h := icons[0].Size()
			if w != 112 || h != 72 {
				t.Errorf("Size() = %vx%v, want 112x72", w, h)
			}
		})
	}
}

func TestLoad_UnknownExtension(t *testing.T) {
	_, err := scene.Load("icons.fig")
	if !errors.Is(err, scene.ErrUnknownFormat) {
		t.Errorf("Load() error = %v, want ErrUnknownFormat", err)
	}
}

func TestDocument_IconsOrder(t *testing.T) {
	doc, err := scene.Load(filepath.Join("testdata", "library.yaml"))
	if err != nil {
		t.Fatal(err)
	}

	var got []string
	for _, icon := range doc.Icons() {
		got = append(got, icon.ID())
	}
	want := []string{"2:1", "3:1", "5:1"}
	if len(got) != len(want) {
		t.Fatalf("Icons() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Icons()[%d] = %s, want %s", i, got[i], want[i])
		}
	}
}

func TestDocument_LockedAndExternal(t *testing.T) {
	doc, err := scene.Load(filepath.Join("testdata", "library.yaml"))
	if err != nil {
		t.Fatal(err)
	}
	locked := testutil.MustNode(t, doc, "3:1")
	if err := locked.Resize(112, 72); !errors.Is(err, host.ErrReadOnly) {
		t.Errorf("Resize on locked node error = %v, want ErrReadOnly", err)
	}
	if doc.Writes() != 0 {
		t.Errorf("rejected mutation counted as a write")
	}

	external := testutil.MustNode(t, doc, "5:1")
	if _, err := external.Children(); !errors.Is(err, host.ErrChildrenUnavailable) {
		t.Errorf("Children on external node error = %v, want ErrChildrenUnavailable", err)
	}
}

func TestDocument_NodeByID(t *testing.T) {
	doc := testutil.Library(testutil.Category("c", "Arrows", testutil.CompliantIcon("i", "ic_a")))

	n, err := doc.NodeByID(t.Context(), "i/s/v")
	if err != nil {
		t.Fatalf("NodeByID() error = %v", err)
	}
	if n.ParentName() != "Style=Sharp" {
		t.Errorf("ParentName() = %q", n.ParentName())
	}

	if _, err := doc.NodeByID(t.Context(), "nope"); !errors.Is(err, host.ErrNodeNotFound) {
		t.Errorf("missing node error = %v, want ErrNodeNotFound", err)
	}

	ctx, cancel := context.WithCancel(t.Context())
	cancel()
	if _, err := doc.NodeByID(ctx, "i"); !errors.Is(err, context.Canceled) {
		t.Errorf("cancelled lookup error = %v, want context.Canceled", err)
	}
}

func TestDocument_Selection(t *testing.T) {
	doc := testutil.Library(testutil.Category("c", "Arrows",
		testutil.CompliantIcon("a", "ic_a"),
		testutil.CompliantIcon("b", "ic_b"),
	))
	if len(doc.Selection()) != 0 {
		t.Fatal("new document should have an empty selection")
	}

	b := testutil.MustNode(t, doc, "b")
	if err := doc.SetSelection([]host.Node{b}); err != nil {
		t.Fatal(err)
	}
	sel := doc.Selection()
	if len(sel) != 1 || sel[0].ID() != "b" {
		t.Errorf("Selection() = %v", sel)
	}
	if !doc.Dirty() {
		t.Error("changing the selection should mark the document dirty")
	}
}

func TestDocument_Flatten(t *testing.T) {
	variant := testutil.Variant("v", "Style=Round",
		testutil.Layer("l1", "#1D1E23"),
		testutil.Layer("l2", "#FFFFFF"),
	)
	doc := testutil.Library(testutil.Category("c", "Arrows", testutil.Icon("i", "ic_a", variant)))

	parent := testutil.MustNode(t, doc, "v")
	children, err := parent.Children()
	if err != nil {
		t.Fatal(err)
	}

	flat, err := doc.Flatten(children, parent)
	if err != nil {
		t.Fatalf("Flatten() error = %v", err)
	}
	if flat.Type() != host.TypeVector {
		t.Errorf("flattened type = %s", flat.Type())
	}
	fills := flat.Fills()
	if len(fills) != 1 || fills[0].Color.Hex() != "#1D1E23" {
		t.Errorf("flattened fills = %+v, want the first layer's fills", fills)
	}

	after, _ := parent.Children()
	if len(after) != 1 || after[0].ID() != flat.ID() {
		t.Errorf("variant children after flatten = %v", after)
	}
}

func TestDocument_FlattenRejectsForeignNodes(t *testing.T) {
	doc := testutil.Library(testutil.Category("c", "Arrows",
		testutil.Icon("i", "ic_a",
			testutil.Variant("v1", "A", testutil.Layer("l1", "#000000")),
			testutil.Variant("v2", "B", testutil.Layer("l2", "#000000")),
		),
	))
	foreign := testutil.MustNode(t, doc, "l2")
	parent := testutil.MustNode(t, doc, "v1")
	if _, err := doc.Flatten([]host.Node{foreign}, parent); err == nil {
		t.Error("Flatten() should reject nodes from another parent")
	}
}

func TestDocument_SaveRoundTrip(t *testing.T) {
	for _, ext := range []string{".yaml", ".json", ".toml"} {
		t.Run(ext, func(t *testing.T) {
			doc := testutil.Library(testutil.Category("c", "Arrows", testutil.CompliantIcon("i", "ic_a")))
			path := filepath.Join(t.TempDir(), "icons"+ext)
			if err := doc.SetPath(path); err != nil {
				t.Fatal(err)
			}

			icon := testutil.MustNode(t, doc, "i")
			if err := icon.SetStrokes([]host.Paint{host.Solid(host.Color{R: 1})}); err != nil {
				t.Fatal(err)
			}
			if err := doc.Save(); err != nil {
				t.Fatalf("Save() error = %v", err)
			}
			if doc.Dirty() {
				t.Error("Save() should clear the dirty flag")
			}

			reloaded, err := scene.Load(path)
			if err != nil {
				t.Fatalf("Load() error = %v", err)
			}
			strokes := testutil.MustNode(t, reloaded, "i").Strokes()
			if len(strokes) != 1 || strokes[0].Color.Hex() != "#FF0000" {
				t.Errorf("strokes after reload = %+v", strokes)
			}
		})
	}
}

func TestDocument_SaveKeepsPermissions(t *testing.T) {
	path := filepath.Join(t.TempDir(), "icons.yaml")
	if err := os.WriteFile(path, []byte("file: x\npage: y\nnodes: []\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	doc, err := scene.Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if err := doc.Save(); err != nil {
		t.Fatal(err)
	}
	info, err := os.Stat(path)
	if err != nil {
		t.Fatal(err)
	}
	if info.Mode().Perm() != 0o600 {
		t.Errorf("mode = %o, want 600", info.Mode().Perm())
	}
}

func TestDocument_Reload(t *testing.T) {
	dir := t.TempDir()
	path := testutil.WriteFile(t, dir, "lib.yaml", "file: Icon Library\npage: Icons\nnodes:\n  - id: \"1\"\n    type: COMPONENT_SET\n    name: ic_a\n")

	doc, err := scene.Load(path)
	if err != nil {
		t.Fatal(err)
	}

	changed, err := doc.Reload()
	if err != nil || changed {
		t.Fatalf("Reload() on unchanged file = %v, %v; want false, nil", changed, err)
	}

	icon := testutil.MustNode(t, doc, "1")
	if err := icon.SetName("ic_b"); err != nil {
		t.Fatal(err)
	}
	if err := doc.Save(); err != nil {
		t.Fatal(err)
	}
	if changed, _ := doc.Reload(); changed {
		t.Error("Reload() after Save() should see no change")
	}

	testutil.WriteFile(t, dir, "lib.yaml", "file: Icon Library\npage: Icons\nnodes:\n  - id: \"1\"\n    type: COMPONENT_SET\n    name: ic_c\n")
	changed, err = doc.Reload()
	if err != nil || !changed {
		t.Fatalf("Reload() after external edit = %v, %v; want true, nil", changed, err)
	}
	if got := testutil.MustNode(t, doc, "1").Name(); got != "ic_c" {
		t.Errorf("Name() after reload = %q, want ic_c", got)
	}
	if doc.Dirty() {
		t.Error("Dirty() after reload = true")
	}
}

func TestDocument_ReloadWithoutPath(t *testing.T) {
	if _, err := scene.New(nil).Reload(); err == nil {
		t.Error("Reload() without a path should fail")
	}
}
