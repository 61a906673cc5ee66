package tree_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vk/geoscript/catalog"
	"github.com/vk/geoscript/engine"
	"github.com/vk/geoscript/inmem"
	"github.com/vk/geoscript/socket"
	"github.com/vk/geoscript/tree"
)

func newTestEngine(t *testing.T) *inmem.Engine {
	t.Helper()
	cat, err := catalog.Standard(context.Background())
	require.NoError(t, err)
	return inmem.NewEngine(cat)
}

func TestBuildDeclaresBoundaries(t *testing.T) {
	eng := newTestEngine(t)

	built, err := tree.Build(context.Background(), eng, "offset_z", func(tr *tree.Tree) error {
		geo, err := tr.InputGeometry("geometry", "mesh to displace")
		if err != nil {
			return err
		}
		amount, err := tr.InputFloat("amount", tree.FloatInput{Default: 1.0})
		if err != nil {
			return err
		}
		offset, err := socket.CombineXYZ(0.0, 0.0, amount)
		if err != nil {
			return err
		}
		moved, err := geo.MoveVertices(nil, offset, nil)
		if err != nil {
			return err
		}
		return tr.OutputGeometry(moved, "geometry", "displaced mesh")
	})
	require.NoError(t, err)

	assert.Equal(t, "offset_z", built.Name())
	assert.Equal(t, 2, built.NumInputs())
	assert.Equal(t, 1, built.NumOutputs())

	inputs := built.Graph().Inputs()
	require.Len(t, inputs, 2)
	assert.Equal(t, "geometry", inputs[0].Name)
	assert.Equal(t, engine.TagGeometry, inputs[0].Tag)
	assert.Equal(t, "amount", inputs[1].Name)
	assert.Equal(t, engine.TagValue, inputs[1].Tag)

	outputs := built.Graph().Outputs()
	require.Len(t, outputs, 1)
	assert.Equal(t, engine.TagGeometry, outputs[0].Tag)
}

func TestBuildBodyErrorAborts(t *testing.T) {
	eng := newTestEngine(t)
	boom := errors.New("boom")

	_, err := tree.Build(context.Background(), eng, "broken", func(tr *tree.Tree) error {
		return boom
	})
	require.ErrorIs(t, err, boom)
}

func TestRebuildStartsFromScratch(t *testing.T) {
	eng := newTestEngine(t)
	ctx := context.Background()

	first, err := tree.Build(ctx, eng, "rebuilt", func(tr *tree.Tree) error {
		_, err := tr.InputGeometry("geometry", "")
		return err
	})
	require.NoError(t, err)
	require.Equal(t, 1, first.NumInputs())

	second, err := tree.Build(ctx, eng, "rebuilt", func(tr *tree.Tree) error {
		_, err := tr.InputFloat("amount", tree.FloatInput{})
		return err
	})
	require.NoError(t, err)

	assert.Same(t, first.Graph(), second.Graph(), "the name keeps resolving to one graph")
	inputs := second.Graph().Inputs()
	require.Len(t, inputs, 1)
	assert.Equal(t, "amount", inputs[0].Name)
}

func TestDuplicateInputName(t *testing.T) {
	eng := newTestEngine(t)

	_, err := tree.Build(context.Background(), eng, "dup", func(tr *tree.Tree) error {
		if _, err := tr.InputFloat("amount", tree.FloatInput{}); err != nil {
			return err
		}
		_, err := tr.InputFloat("amount", tree.FloatInput{})
		return err
	})
	require.Error(t, err)
}

func TestCall(t *testing.T) {
	eng := newTestEngine(t)
	ctx := context.Background()

	unit, err := tree.Build(ctx, eng, "sum_vectors", func(tr *tree.Tree) error {
		a, err := tr.InputVector("a", tree.VectorInput{})
		if err != nil {
			return err
		}
		b, err := tr.InputVector("b", tree.VectorInput{})
		if err != nil {
			return err
		}
		sum, err := a.Add(b)
		if err != nil {
			return err
		}
		return tr.OutputVector(sum, "sum", "")
	})
	require.NoError(t, err)

	_, err = tree.Build(ctx, eng, "caller", func(tr *tree.Tree) error {
		v, err := tr.InputVector("v", tree.VectorInput{})
		if err != nil {
			return err
		}
		g := tr.Graph().(*inmem.Graph)
		nodesBefore := len(g.Nodes())
		linksBefore := len(g.Links())

		res, err := unit.Call(v, [3]float64{0, 0, 1})
		if err != nil {
			return err
		}

		assert.Equal(t, nodesBefore+1, len(g.Nodes()), "a call is one group node")
		assert.Equal(t, linksBefore+1, len(g.Links()), "literal arguments fold into defaults")

		sum, ok := res.(*socket.Vector3)
		require.True(t, ok, "a single vector output unwraps to a Vector3")
		assert.Equal(t, "group", sum.Handle().Node().Kind())

		sub, bound := sum.Handle().Node().(*inmem.Node).Subgraph()
		require.True(t, bound)
		assert.Same(t, unit.Graph(), sub)

		return tr.OutputVector(sum, "sum", "")
	})
	require.NoError(t, err)
}

func TestCallMultipleOutputs(t *testing.T) {
	eng := newTestEngine(t)
	ctx := context.Background()

	unit, err := tree.Build(ctx, eng, "decompose", func(tr *tree.Tree) error {
		v, err := tr.InputVector("v", tree.VectorInput{})
		if err != nil {
			return err
		}
		x, err := v.X()
		if err != nil {
			return err
		}
		y, err := v.Y()
		if err != nil {
			return err
		}
		if err := tr.OutputFloat(x, "x", ""); err != nil {
			return err
		}
		return tr.OutputFloat(y, "y", "")
	})
	require.NoError(t, err)

	_, err = tree.Build(ctx, eng, "decompose_caller", func(tr *tree.Tree) error {
		v, err := tr.InputVector("v", tree.VectorInput{})
		if err != nil {
			return err
		}
		res, err := unit.Call(v)
		if err != nil {
			return err
		}
		sockets, ok := res.([]socket.Socket)
		require.True(t, ok, "two outputs come back as an ordered list")
		require.Len(t, sockets, 2)
		x, ok := sockets[0].(*socket.Scalar)
		require.True(t, ok)
		assert.Equal(t, 0, x.Index())
		assert.Equal(t, 1, sockets[1].Index())
		return tr.OutputFloat(x, "x", "")
	})
	require.NoError(t, err)
}

func TestCallRefusesForeignSockets(t *testing.T) {
	eng := newTestEngine(t)
	ctx := context.Background()

	unit, err := tree.Build(ctx, eng, "passthrough", func(tr *tree.Tree) error {
		v, err := tr.InputVector("v", tree.VectorInput{})
		if err != nil {
			return err
		}
		return tr.OutputVector(v, "v", "")
	})
	require.NoError(t, err)

	other, err := tree.Build(ctx, eng, "other", func(tr *tree.Tree) error {
		_, err := tr.InputVector("v", tree.VectorInput{})
		return err
	})
	require.NoError(t, err)

	_, err = tree.Build(ctx, eng, "mixer", func(tr *tree.Tree) error {
		mine, err := tr.InputVector("v", tree.VectorInput{})
		if err != nil {
			return err
		}
		foreign := socket.NewVector3(socket.NewHandle(other.Graph(), other.Graph().Nodes()[0], 0), 0)
		_, err = unit.Call(mine, foreign)
		var cross *socket.CrossGraphError
		require.ErrorAs(t, err, &cross)
		return nil
	})
	require.NoError(t, err)
}
