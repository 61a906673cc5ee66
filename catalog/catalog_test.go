package catalog_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zclconf/go-cty/cty"

	"github.com/vk/geoscript/catalog"
	"github.com/vk/geoscript/engine"
)

func TestStandardCatalog(t *testing.T) {
	cat, err := catalog.Standard(context.Background())
	require.NoError(t, err)

	for _, kind := range []string{
		"math", "compare", "map_range",
		"vector_math", "separate_xyz", "combine_xyz",
		"boolean_math",
		"set_position", "set_id", "proximity", "transform",
		"separate_geometry", "separate_components", "merge_by_distance",
		"geometry_to_instance", "bounding_box", "convex_hull", "raycast",
		"position", "normal", "radius", "index_id", "scene_time",
		"named_attribute", "is_viewport", "object_info",
		"random_value",
		"group", "group_input", "group_output",
	} {
		_, ok := cat.Kind(kind)
		assert.True(t, ok, "standard catalog is missing %q", kind)
	}

	t.Run("math kind shape", func(t *testing.T) {
		spec, ok := cat.Kind("math")
		require.True(t, ok)
		assert.Len(t, spec.Inputs, 3)
		assert.Len(t, spec.Outputs, 1)
		assert.Equal(t, engine.TagValue, spec.Inputs[0].Tag)
		assert.Equal(t, engine.LiteralFloat, spec.Inputs[0].Literal)

		op, ok := spec.Attr("operation")
		require.True(t, ok)
		assert.Contains(t, op.Options, "MULTIPLY_ADD")
		assert.Equal(t, "ADD", op.Default.AsString())
	})

	t.Run("boundary kinds are marked", func(t *testing.T) {
		in, ok := cat.Kind("group_input")
		require.True(t, ok)
		assert.Equal(t, "input", in.Boundary)

		out, ok := cat.Kind("group_output")
		require.True(t, ok)
		assert.Equal(t, "output", out.Boundary)

		grp, ok := cat.Kind("group")
		require.True(t, ok)
		assert.True(t, grp.Subgraph)
	})
}

func TestLoadRejectsBadManifests(t *testing.T) {
	ctx := context.Background()

	t.Run("unknown type keyword", func(t *testing.T) {
		_, err := catalog.Load(ctx, map[string][]byte{
			"bad.hcl": []byte(`
node "broken" {
  input "value" {
    type = quaternion
  }
}
`),
		})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "quaternion")
	})

	t.Run("duplicate input name", func(t *testing.T) {
		_, err := catalog.Load(ctx, map[string][]byte{
			"dup.hcl": []byte(`
node "broken" {
  input "value" {
    type = float
  }
  input "value" {
    type = float
  }
}
`),
		})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "duplicate input")
	})

	t.Run("duplicate kind", func(t *testing.T) {
		_, err := catalog.Load(ctx, map[string][]byte{
			"twice.hcl": []byte(`
node "twin" {}
node "twin" {}
`),
		})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "duplicate kind")
	})

	t.Run("default outside attr options", func(t *testing.T) {
		_, err := catalog.Load(ctx, map[string][]byte{
			"opts.hcl": []byte(`
node "broken" {
  attr "operation" {
    options = ["ADD", "SUBTRACT"]
    default = "DIVIDE"
  }
}
`),
		})
		require.Error(t, err)
	})

	t.Run("mistyped slot default", func(t *testing.T) {
		_, err := catalog.Load(ctx, map[string][]byte{
			"def.hcl": []byte(`
node "broken" {
  input "value" {
    type    = float
    default = true
  }
}
`),
		})
		require.Error(t, err)
	})
}

func TestCheckLiteral(t *testing.T) {
	cases := []struct {
		name string
		kind engine.LiteralKind
		val  cty.Value
		ok   bool
	}{
		{"float accepts number", engine.LiteralFloat, cty.NumberFloatVal(1.5), true},
		{"int accepts number", engine.LiteralInt, cty.NumberIntVal(3), true},
		{"float rejects bool", engine.LiteralFloat, cty.True, false},
		{"bool accepts bool", engine.LiteralBool, cty.False, true},
		{"bool rejects string", engine.LiteralBool, cty.StringVal("yes"), false},
		{"string accepts string", engine.LiteralString, cty.StringVal("uv"), true},
		{"vector accepts a 3-tuple", engine.LiteralVector, cty.TupleVal([]cty.Value{
			cty.NumberFloatVal(0), cty.NumberFloatVal(0), cty.NumberFloatVal(1),
		}), true},
		{"vector rejects a 2-tuple", engine.LiteralVector, cty.TupleVal([]cty.Value{
			cty.NumberFloatVal(0), cty.NumberFloatVal(1),
		}), false},
		{"none rejects everything", engine.LiteralNone, cty.NumberFloatVal(0), false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := catalog.CheckLiteral(tc.kind, tc.val)
			if tc.ok {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}

func TestCheckAttrValue(t *testing.T) {
	spec := &catalog.AttrSpec{Name: "mode", Options: []string{"ALL", "CONNECTED"}}

	assert.NoError(t, spec.CheckAttrValue(cty.StringVal("ALL")))
	assert.Error(t, spec.CheckAttrValue(cty.StringVal("NONE")))
	assert.Error(t, spec.CheckAttrValue(cty.True))

	open := &catalog.AttrSpec{Name: "free"}
	assert.NoError(t, open.CheckAttrValue(cty.True), "attrs without options accept any value")
}
