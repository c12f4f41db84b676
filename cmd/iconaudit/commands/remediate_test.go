package commands

import (
	"strings"
	"testing"

	"github.com/ZebraDevs/zeta-icons-figma-plugin/internal/errors"
	"github.com/ZebraDevs/zeta-icons-figma-plugin/internal/host"
	"github.com/ZebraDevs/zeta-icons-figma-plugin/internal/scene"
	"github.com/ZebraDevs/zeta-icons-figma-plugin/internal/testutil"
	"github.com/ZebraDevs/zeta-icons-figma-plugin/internal/validator"
)

// messyIcon has a round variant split into two misnamed layers.
func messyIcon(id, name string) *scene.NodeData {
	first := testutil.Layer(id+"/r/a", "#000000")
	first.Name = "Path"
	second := testutil.Layer(id+"/r/b", "#000000")
	second.Name = "Path 2"
	return testutil.Icon(id, name,
		testutil.Variant(id+"/r", "Style=Round", first, second),
		testutil.Variant(id+"/s", "Style=Sharp", testutil.Layer(id+"/s/v", "#000000")),
	)
}

// noFixConfig disables auto-fixing so layer problems survive a run.
const noFixConfig = "fix:\n  enabled: false\n"

func TestRemediate_FlattensLayers(t *testing.T) {
	path := testutil.SaveLibrary(t, t.TempDir(), "library.yaml",
		testutil.Category("c1", "Arrows",
			messyIcon("1:1", "ic_messy"),
			testutil.CompliantIcon("1:2", "ic_up"),
		),
	)
	cfg := writeConfig(t, noFixConfig)

	out, err := execute(t, nil, "--config", cfg, "run", path, "--json", "--dry-run")
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}
	rep := decodeReport(t, out)
	if len(rep.Icons[0].Errors) != 1 || rep.Icons[0].Errors[0].Kind != validator.KindLayer {
		t.Fatalf("errors before remediation = %+v, want one layer error", rep.Icons[0].Errors)
	}

	out, err = execute(t, nil, "--config", cfg, "remediate", path, "--id", "1:1")
	if err != nil {
		t.Fatalf("remediate failed: %v", err)
	}
	if !strings.Contains(out, "✓ 2 icon(s) passed") {
		t.Errorf("output = %q, want pass summary", out)
	}

	doc := openScene(t, path)
	round := doc.File().Nodes[0].Children[0].Children[0]
	if len(round.Children) != 1 || round.Children[0].Name != "Vector" {
		t.Errorf("round variant children = %+v, want one Vector layer", round.Children)
	}
}

func TestRemediate_UnknownID(t *testing.T) {
	path := testutil.SaveLibrary(t, t.TempDir(), "library.yaml",
		testutil.Category("c1", "Arrows", testutil.CompliantIcon("1:1", "ic_up")),
	)

	out, err := execute(t, nil, "remediate", path, "--id", "9:9", "--json")
	if err == nil {
		t.Fatal("expected error for unknown id")
	}
	if !errors.Is(err, host.ErrNodeNotFound) {
		t.Errorf("error = %v, want ErrNodeNotFound", err)
	}

	// The follow-up run still happens.
	rep := decodeReport(t, out)
	if rep.Summary.Icons != 1 {
		t.Errorf("summary = %+v, want one icon", rep.Summary)
	}
}

func TestRemediate_WrongContext(t *testing.T) {
	path := writeScene(t, testutil.LibraryFile, "Drafts", messyIcon("1:1", "ic_messy"))
	before := readFile(t, path)

	_, err := execute(t, nil, "remediate", path, "--id", "1:1")
	if !errors.Is(err, errors.ErrWrongContext) {
		t.Fatalf("error = %v, want ErrWrongContext", err)
	}
	if string(before) != string(readFile(t, path)) {
		t.Error("refused remediation modified the scene file")
	}
}

func TestRemediate_RequiresID(t *testing.T) {
	path := testutil.SaveLibrary(t, t.TempDir(), "library.yaml")

	if _, err := execute(t, nil, "remediate", path); err == nil {
		t.Fatal("expected error without --id")
	}
}
