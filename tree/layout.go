package tree

import (
	"github.com/vk/geoscript/engine"
)

const (
	// Padding around a node's box when testing for overlap.
	overlapPadding = 20.0

	// Vertical gap added below a node when pushing its neighbor down.
	overlapGap = 140.0
)

// Layout nudges nodes apart for readability: every node whose box
// overlaps another pushes that other node down by its own height plus
// a gap. Nodes that overlap nothing keep their positions, so the pass
// is a no-op on an already clean layout. It is a heuristic, not a
// packing solver; densely packed graphs may still overlap after one
// pass.
func Layout(g engine.Graph) {
	nodes := g.Nodes()
	for _, a := range nodes {
		for _, b := range nodes {
			if a == b {
				continue
			}
			if nodesOverlap(a, b) {
				_, _, _, ah := a.Bounds()
				bx, by, _, _ := b.Bounds()
				b.SetPosition(bx, by-(ah+overlapGap))
			}
		}
	}
}

func nodesOverlap(a, b engine.Node) bool {
	ax, ay, aw, _ := a.Bounds()
	bx, by, bw, bh := b.Bounds()
	return ax+aw+overlapPadding >= bx &&
		ax <= bx+bw+overlapPadding &&
		ay+bh+overlapPadding >= by &&
		ay <= by+bh+overlapPadding
}
