package fix

import (
	"fmt"

	"github.com/ZebraDevs/zeta-icons-figma-plugin/internal/errors"
	"github.com/ZebraDevs/zeta-icons-figma-plugin/internal/host"
)

// TraversalFailure records a branch the normalizer could not enter.
type TraversalFailure struct {
	NodeID string
	Err    error
}

// NormalizeReport is the outcome of one normalization pass.
type NormalizeReport struct {
	// Recolored counts fills rewritten to black or white.
	Recolored int
	// Visited counts nodes inspected.
	Visited int
	// Skipped lists branches whose children could not be enumerated.
	Skipped []TraversalFailure
	// Rejected lists nodes whose fills the host refused to change.
	Rejected []TraversalFailure
}

// ColorNormalizer rewrites disallowed fills to pure black or pure white.
type ColorNormalizer struct {
	toBlack  map[string]bool
	toWhite  map[string]bool
	maxDepth int
}

// NewColorNormalizer builds a normalizer from a convert table.
// maxDepth <= 0 uses DefaultMaxDepth.
func NewColorNormalizer(table ConvertTable, maxDepth int) *ColorNormalizer {
	if maxDepth <= 0 {
		maxDepth = DefaultMaxDepth
	}
	n := &ColorNormalizer{
		toBlack:  make(map[string]bool),
		toWhite:  make(map[string]bool),
		maxDepth: maxDepth,
	}
	for _, c := range table[TargetBlack] {
		n.toBlack[host.NormalizeHex(c)] = true
	}
	for _, c := range table[TargetWhite] {
		n.toWhite[host.NormalizeHex(c)] = true
	}
	return n
}

type frame struct {
	node  host.Node
	depth int
}

// Normalize visits root and its descendants depth-first. A branch that cannot
// be enumerated, or lies deeper than the depth bound, is recorded in the
// report and skipped; the rest of the tree is still processed.
func (n *ColorNormalizer) Normalize(root host.Node) NormalizeReport {
	var rep NormalizeReport
	stack := []frame{{node: root}}

	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		rep.Visited++

		changed, err := n.normalizeFills(f.node)
		if err != nil {
			rep.Rejected = append(rep.Rejected, TraversalFailure{NodeID: f.node.ID(), Err: err})
		}
		rep.Recolored += changed

		children, err := f.node.Children()
		if err != nil {
			rep.Skipped = append(rep.Skipped, TraversalFailure{NodeID: f.node.ID(), Err: err})
			continue
		}
		if len(children) > 0 && f.depth >= n.maxDepth {
			rep.Skipped = append(rep.Skipped, TraversalFailure{
				NodeID: f.node.ID(),
				Err:    errors.Newf("depth limit %d reached", n.maxDepth),
			})
			continue
		}
		// Push in reverse so children are visited in document order.
		for i := len(children) - 1; i >= 0; i-- {
			stack = append(stack, frame{node: children[i], depth: f.depth + 1})
		}
	}
	return rep
}

func (n *ColorNormalizer) normalizeFills(node host.Node) (int, error) {
	fills := node.Fills()
	changed := 0
	for i, p := range fills {
		if !p.IsSolid() || p.Color.Equal(host.Black) || p.Color.Equal(host.White) {
			continue
		}
		hex := p.Color.Hex()
		switch {
		case n.toBlack[hex]:
			fills[i] = host.Solid(host.Black)
			changed++
		case n.toWhite[hex]:
			fills[i] = host.Solid(host.White)
			changed++
		}
	}
	if changed == 0 {
		return 0, nil
	}
	if err := node.SetFills(fills); err != nil {
		return 0, err
	}
	return changed, nil
}

// Fix implements Fixer. It fails only when the host rejected a fill change;
// unreadable branches do not fail the fix.
func (n *ColorNormalizer) Fix(icon host.Node) (string, error) {
	rep := n.Normalize(icon)
	if len(rep.Rejected) > 0 {
		return "", errors.Wrapf(rep.Rejected[0].Err, "recoloring %s", rep.Rejected[0].NodeID)
	}
	desc := fmt.Sprintf("recolored %d fill(s)", rep.Recolored)
	if len(rep.Skipped) > 0 {
		desc += fmt.Sprintf(", %d branch(es) skipped", len(rep.Skipped))
	}
	return desc, nil
}
