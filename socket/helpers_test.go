package socket_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vk/geoscript/catalog"
	"github.com/vk/geoscript/engine"
	"github.com/vk/geoscript/inmem"
	"github.com/vk/geoscript/socket"
)

// newTestGraph builds a fresh graph over the embedded standard
// catalog.
func newTestGraph(t *testing.T, name string) *inmem.Graph {
	t.Helper()
	cat, err := catalog.Standard(context.Background())
	require.NoError(t, err)
	g, err := inmem.NewEngine(cat).Graph(name)
	require.NoError(t, err)
	return g.(*inmem.Graph)
}

func newScalar(t *testing.T, g engine.Graph) *socket.Scalar {
	t.Helper()
	h, err := socket.NewSourceNode(g, "scene_time")
	require.NoError(t, err)
	return socket.NewScalar(h, 0)
}

func newVector(t *testing.T, g engine.Graph) *socket.Vector3 {
	t.Helper()
	h, err := socket.NewSourceNode(g, "position")
	require.NoError(t, err)
	return socket.NewVector3(h, 0)
}

func newBoolean(t *testing.T, g engine.Graph) *socket.Boolean {
	t.Helper()
	h, err := socket.NewSourceNode(g, "is_viewport")
	require.NoError(t, err)
	return socket.NewBoolean(h, 0)
}

func newGeometry(t *testing.T, g engine.Graph) *socket.Geometry {
	t.Helper()
	out, err := g.DeclareInput("geometry", engine.TagGeometry, engine.PortMeta{})
	require.NoError(t, err)
	return socket.NewGeometry(socket.NewHandle(g, out.Node, 0), out.Index)
}

// lastNode returns the most recently created node.
func lastNode(t *testing.T, g *inmem.Graph) *inmem.Node {
	t.Helper()
	nodes := g.Nodes()
	require.NotEmpty(t, nodes)
	return nodes[len(nodes)-1].(*inmem.Node)
}

func attrString(t *testing.T, n engine.Node, name string) string {
	t.Helper()
	v, ok := n.Attr(name)
	require.True(t, ok, "attr %q not set", name)
	return v.AsString()
}
