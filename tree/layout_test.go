package tree_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vk/geoscript/engine"
	"github.com/vk/geoscript/tree"
)

func layoutGraph(t *testing.T, name string) engine.Graph {
	t.Helper()
	g, err := newTestEngine(t).Graph(name)
	require.NoError(t, err)
	return g
}

func TestLayoutKeepsSeparatedNodes(t *testing.T) {
	g := layoutGraph(t, "clean")

	a, err := g.NewNode("math")
	require.NoError(t, err)
	b, err := g.NewNode("math")
	require.NoError(t, err)
	a.SetPosition(0, 0)
	b.SetPosition(400, 0)

	tree.Layout(g)

	ax, ay := a.Position()
	bx, by := b.Position()
	assert.InDelta(t, 0.0, ax, 1e-9)
	assert.InDelta(t, 0.0, ay, 1e-9)
	assert.InDelta(t, 400.0, bx, 1e-9)
	assert.InDelta(t, 0.0, by, 1e-9)
}

func TestLayoutPushesOverlappingNodeDown(t *testing.T) {
	g := layoutGraph(t, "stacked")

	a, err := g.NewNode("math")
	require.NoError(t, err)
	b, err := g.NewNode("math")
	require.NoError(t, err)
	a.SetPosition(0, 0)
	b.SetPosition(0, 0)

	tree.Layout(g)

	ax, ay := a.Position()
	bx, by := b.Position()
	assert.InDelta(t, 0.0, ax, 1e-9)
	assert.InDelta(t, 0.0, bx, 1e-9)
	assert.NotEqual(t, ay, by, "one of the pair moves off the other")

	moved := ay
	if by != 0 {
		moved = by
	}
	_, _, _, h := a.Bounds()
	assert.LessOrEqual(t, moved, -(h + 140.0), "the push clears the full node height plus the gap")
}
