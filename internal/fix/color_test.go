package fix_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ZebraDevs/zeta-icons-figma-plugin/internal/errors"
	"github.com/ZebraDevs/zeta-icons-figma-plugin/internal/fix"
	"github.com/ZebraDevs/zeta-icons-figma-plugin/internal/host"
	"github.com/ZebraDevs/zeta-icons-figma-plugin/internal/scene"
	"github.com/ZebraDevs/zeta-icons-figma-plugin/internal/testutil"
)

func fillHex(t *testing.T, doc host.Document, id string) string {
	t.Helper()
	fills := testutil.MustNode(t, doc, id).Fills()
	require.NotEmpty(t, fills, "node %s has no fills", id)
	return fills[0].Color.Hex()
}

func mixedIcon() *scene.NodeData {
	return testutil.Icon("i", "ic_mixed",
		testutil.Variant("r", "Style=Round",
			testutil.Layer("r1", "#1D1E23"),
			testutil.Layer("r2", "#F3F6FA"),
		),
		testutil.Variant("s", "Style=Sharp",
			testutil.Layer("s1", "#FF8800"),
			testutil.Layer("s2", "#000000"),
		),
	)
}

func TestColorNormalizer_Recolors(t *testing.T) {
	doc := testutil.Library(testutil.Category("c", "Arrows", mixedIcon()))
	n := fix.NewColorNormalizer(fix.DefaultConvertTable(), 0)

	rep := n.Normalize(testutil.MustNode(t, doc, "i"))

	assert.Equal(t, 2, rep.Recolored)
	assert.Equal(t, 7, rep.Visited)
	assert.Empty(t, rep.Skipped)
	assert.Equal(t, "#000000", fillHex(t, doc, "r1"))
	assert.Equal(t, "#FFFFFF", fillHex(t, doc, "r2"))
	assert.Equal(t, "#FF8800", fillHex(t, doc, "s1"), "colors outside the table are untouched")
	assert.Equal(t, "#000000", fillHex(t, doc, "s2"))
}

func TestColorNormalizer_Idempotent(t *testing.T) {
	doc := testutil.Library(testutil.Category("c", "Arrows", mixedIcon()))
	n := fix.NewColorNormalizer(fix.DefaultConvertTable(), 0)
	icon := testutil.MustNode(t, doc, "i")

	n.Normalize(icon)
	writes := doc.Writes()
	snapshot := map[string]string{}
	for _, id := range []string{"r1", "r2", "s1", "s2"} {
		snapshot[id] = fillHex(t, doc, id)
	}

	rep := n.Normalize(icon)

	assert.Zero(t, rep.Recolored)
	assert.Equal(t, writes, doc.Writes(), "second pass must not write")
	for id, hex := range snapshot {
		assert.Equal(t, hex, fillHex(t, doc, id))
	}
}

func TestColorNormalizer_SkipsUnreadableBranch(t *testing.T) {
	broken := testutil.Variant("r", "Style=Round", testutil.Layer("r1", "#1D1E23"))
	broken.External = true
	icon := testutil.Icon("i", "ic_a",
		broken,
		testutil.Variant("s", "Style=Sharp", testutil.Layer("s1", "#1D1E23")),
	)
	doc := testutil.Library(testutil.Category("c", "Arrows", icon))

	rep := fix.NewColorNormalizer(fix.DefaultConvertTable(), 0).Normalize(testutil.MustNode(t, doc, "i"))

	require.Len(t, rep.Skipped, 1)
	assert.Equal(t, "r", rep.Skipped[0].NodeID)
	assert.True(t, errors.Is(rep.Skipped[0].Err, host.ErrChildrenUnavailable))
	assert.Equal(t, "#000000", fillHex(t, doc, "s1"), "sibling branch is still processed")
	assert.Equal(t, 1, rep.Recolored)
}

func TestColorNormalizer_DepthLimit(t *testing.T) {
	doc := testutil.Library(testutil.Category("c", "Arrows", mixedIcon()))

	rep := fix.NewColorNormalizer(fix.DefaultConvertTable(), 1).Normalize(testutil.MustNode(t, doc, "i"))

	assert.Zero(t, rep.Recolored, "layers sit below the depth limit")
	assert.Len(t, rep.Skipped, 2)
}

func TestColorNormalizer_FixReportsRejection(t *testing.T) {
	icon := mixedIcon()
	icon.Children[0].Children[0].Locked = true
	doc := testutil.Library(testutil.Category("c", "Arrows", icon))

	_, err := fix.NewColorNormalizer(fix.DefaultConvertTable(), 0).Fix(testutil.MustNode(t, doc, "i"))

	require.Error(t, err)
	assert.True(t, errors.Is(err, host.ErrReadOnly))
}

func TestConvertTable_Colors(t *testing.T) {
	table := fix.ConvertTable{fix.TargetBlack: {"#1d1e23"}, fix.TargetWhite: {"fefefe"}}
	assert.Equal(t, []string{"#1D1E23", "#FEFEFE"}, table.Colors())
}
