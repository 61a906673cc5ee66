package app

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vk/geoscript/catalog"
	"github.com/vk/geoscript/engine"
	"github.com/vk/geoscript/inmem"
	"github.com/vk/geoscript/tree"
)

func TestLerpUnitShape(t *testing.T) {
	cat, err := catalog.Standard(context.Background())
	require.NoError(t, err)
	eng := inmem.NewEngine(cat)

	unit, err := tree.NewLibrary(eng).Function(context.Background(), lerp)
	require.NoError(t, err)

	assert.Equal(t, 3, unit.NumInputs())
	assert.Equal(t, 1, unit.NumOutputs())

	inputs := unit.Graph().Inputs()
	require.Len(t, inputs, 3)
	assert.Equal(t, engine.TagVector, inputs[0].Tag)
	assert.Equal(t, engine.TagVector, inputs[1].Tag)
	assert.Equal(t, engine.TagValue, inputs[2].Tag)

	outputs := unit.Graph().Outputs()
	require.Len(t, outputs, 1)
	assert.Equal(t, engine.TagVector, outputs[0].Tag)
}

func TestBuildShowcase(t *testing.T) {
	cat, err := catalog.Standard(context.Background())
	require.NoError(t, err)
	eng := inmem.NewEngine(cat)

	require.NoError(t, buildShowcase(context.Background(), eng))

	names := make([]string, 0, 3)
	for _, g := range eng.Graphs() {
		names = append(names, g.Name())
	}
	assert.Contains(t, names, "displacement")
	assert.Contains(t, names, "surface_probe")
}
