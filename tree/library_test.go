package tree_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vk/geoscript/inmem"
	"github.com/vk/geoscript/socket"
	"github.com/vk/geoscript/tree"
)

func doubled(s *socket.Scalar) (*socket.Scalar, error) {
	return s.Mul(2.0)
}

func polar(v *socket.Vector3) (*socket.Scalar, *socket.Scalar, error) {
	length, err := v.Length()
	if err != nil {
		return nil, nil, err
	}
	z, err := v.Z()
	if err != nil {
		return nil, nil, err
	}
	return length, z, nil
}

func alwaysFails(s *socket.Scalar) (*socket.Scalar, error) {
	return nil, errors.New("deliberate failure")
}

func TestLibraryFunction(t *testing.T) {
	eng := newTestEngine(t)
	lib := tree.NewLibrary(eng)
	ctx := context.Background()

	unit, err := lib.Function(ctx, doubled)
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(unit.Name(), "[unit] "))
	assert.Contains(t, unit.Name(), "doubled")
	assert.Equal(t, 1, unit.NumInputs())
	assert.Equal(t, 1, unit.NumOutputs())

	inputs := unit.Graph().Inputs()
	require.Len(t, inputs, 1)
	assert.Equal(t, "input_0", inputs[0].Name)

	outputs := unit.Graph().Outputs()
	require.Len(t, outputs, 1)
	assert.Equal(t, "result", outputs[0].Name)
}

func TestLibraryMemoizes(t *testing.T) {
	eng := newTestEngine(t)
	lib := tree.NewLibrary(eng)
	ctx := context.Background()

	first, err := lib.Function(ctx, doubled)
	require.NoError(t, err)
	graphs := len(eng.Graphs())

	second, err := lib.Function(ctx, doubled)
	require.NoError(t, err)

	assert.Same(t, first, second, "the same function resolves to one tree")
	assert.Equal(t, graphs, len(eng.Graphs()), "no second graph is registered")
}

func TestLibraryMultipleResults(t *testing.T) {
	eng := newTestEngine(t)
	lib := tree.NewLibrary(eng)

	unit, err := lib.Function(context.Background(), polar)
	require.NoError(t, err)

	outputs := unit.Graph().Outputs()
	require.Len(t, outputs, 2)
	assert.Equal(t, "result_0", outputs[0].Name)
	assert.Equal(t, "result_1", outputs[1].Name)
}

func TestLibraryRejectsBadSignatures(t *testing.T) {
	eng := newTestEngine(t)
	lib := tree.NewLibrary(eng)
	ctx := context.Background()

	t.Run("non-socket parameter", func(t *testing.T) {
		_, err := lib.Function(ctx, func(x float64) (*socket.Scalar, error) { return nil, nil })
		var bad *tree.UnsupportedAnnotationError
		require.ErrorAs(t, err, &bad)
		assert.Equal(t, "parameter", bad.Dir)
		assert.Equal(t, 0, bad.Pos)
	})

	t.Run("non-socket result", func(t *testing.T) {
		_, err := lib.Function(ctx, func(s *socket.Scalar) (string, error) { return "", nil })
		var bad *tree.UnsupportedAnnotationError
		require.ErrorAs(t, err, &bad)
		assert.Equal(t, "result", bad.Dir)
	})

	t.Run("variadic function", func(t *testing.T) {
		_, err := lib.Function(ctx, func(ss ...*socket.Scalar) error { return nil })
		require.Error(t, err)
	})

	t.Run("not a function", func(t *testing.T) {
		_, err := lib.Function(ctx, 42)
		require.Error(t, err)
	})
}

var nestedLib *tree.Library

func offsetByOne(s *socket.Scalar) (*socket.Scalar, error) {
	return s.Add(1.0)
}

func viaCallee(s *socket.Scalar) (*socket.Scalar, error) {
	callee, err := nestedLib.Function(context.Background(), offsetByOne)
	if err != nil {
		return nil, err
	}
	res, err := callee.Call(s)
	if err != nil {
		return nil, err
	}
	return res.(*socket.Scalar), nil
}

func selfReferential(s *socket.Scalar) (*socket.Scalar, error) {
	if _, err := nestedLib.Function(context.Background(), selfReferential); err != nil {
		return nil, err
	}
	return s, nil
}

func TestLibraryNestedFunctions(t *testing.T) {
	eng := newTestEngine(t)
	nestedLib = tree.NewLibrary(eng)
	ctx := context.Background()

	outer, err := nestedLib.Function(ctx, viaCallee)
	require.NoError(t, err, "resolving a callee unit mid-build must not block")

	callee, err := nestedLib.Function(ctx, offsetByOne)
	require.NoError(t, err)
	assert.Contains(t, callee.Name(), "offsetByOne")

	var groups int
	for _, n := range outer.Graph().Nodes() {
		if n.Kind() != "group" {
			continue
		}
		groups++
		sub, bound := n.(*inmem.Node).Subgraph()
		require.True(t, bound)
		assert.Same(t, callee.Graph(), sub)
	}
	assert.Equal(t, 1, groups, "the outer body calls the callee once")
}

func TestLibraryRejectsSelfReference(t *testing.T) {
	eng := newTestEngine(t)
	nestedLib = tree.NewLibrary(eng)

	_, err := nestedLib.Function(context.Background(), selfReferential)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "its own construction")
}

func TestLibraryPropagatesBodyError(t *testing.T) {
	eng := newTestEngine(t)
	lib := tree.NewLibrary(eng)

	_, err := lib.Function(context.Background(), alwaysFails)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "deliberate failure")
}
