package socket_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vk/geoscript/inmem"
	"github.com/vk/geoscript/socket"
)

func TestScalarBinary(t *testing.T) {
	t.Run("two sockets link both inputs", func(t *testing.T) {
		g := newTestGraph(t, "add_sockets")
		a := newScalar(t, g)
		b := newScalar(t, g)
		nodesBefore := len(g.Nodes())
		linksBefore := len(g.Links())

		sum, err := a.Add(b)
		require.NoError(t, err)

		assert.Equal(t, nodesBefore+1, len(g.Nodes()))
		assert.Equal(t, linksBefore+2, len(g.Links()))
		node := sum.Handle().Node()
		assert.Equal(t, "math", node.Kind())
		assert.Equal(t, "ADD", attrString(t, node, "operation"))
	})

	t.Run("literal operand becomes a slot default", func(t *testing.T) {
		g := newTestGraph(t, "add_literal")
		a := newScalar(t, g)
		linksBefore := len(g.Links())

		sum, err := a.Add(2.5)
		require.NoError(t, err)

		assert.Equal(t, linksBefore+1, len(g.Links()))
		node := sum.Handle().Node().(*inmem.Node)
		v, ok := node.Default(1)
		require.True(t, ok)
		f, _ := v.AsBigFloat().Float64()
		assert.InDelta(t, 2.5, f, 1e-9)
		_, ok = node.Default(0)
		assert.False(t, ok, "linked slot must not carry a default")
	})

	t.Run("int literal coerces into a float slot", func(t *testing.T) {
		g := newTestGraph(t, "add_int")
		a := newScalar(t, g)

		_, err := a.Mul(3)
		require.NoError(t, err)
	})

	t.Run("unsupported operand type", func(t *testing.T) {
		g := newTestGraph(t, "add_string")
		a := newScalar(t, g)
		nodesBefore := len(g.Nodes())

		_, err := a.Add("two")
		require.ErrorIs(t, err, socket.ErrNotSupported)
		assert.Equal(t, nodesBefore, len(g.Nodes()), "no node may be created for a refused dispatch")
	})

	t.Run("dispatch table", func(t *testing.T) {
		g := newTestGraph(t, "ops")
		a := newScalar(t, g)
		b := newScalar(t, g)

		cases := []struct {
			op   string
			call func() (*socket.Scalar, error)
		}{
			{"ADD", func() (*socket.Scalar, error) { return a.Add(b) }},
			{"SUBTRACT", func() (*socket.Scalar, error) { return a.Sub(b) }},
			{"MULTIPLY", func() (*socket.Scalar, error) { return a.Mul(b) }},
			{"DIVIDE", func() (*socket.Scalar, error) { return a.Div(b) }},
			{"MODULO", func() (*socket.Scalar, error) { return a.Mod(b) }},
			{"POWER", func() (*socket.Scalar, error) { return a.Pow(b) }},
		}
		for _, tc := range cases {
			t.Run(tc.op, func(t *testing.T) {
				s, err := tc.call()
				require.NoError(t, err)
				assert.Equal(t, tc.op, attrString(t, s.Handle().Node(), "operation"))
			})
		}
	})
}

func TestScalarUnary(t *testing.T) {
	g := newTestGraph(t, "unary")
	a := newScalar(t, g)

	linksBefore := len(g.Links())
	abs, err := a.Abs()
	require.NoError(t, err)

	assert.Equal(t, linksBefore+1, len(g.Links()), "unary node links exactly one input")
	node := abs.Handle().Node()
	assert.Equal(t, "ABSOLUTE", attrString(t, node, "operation"))

	inm := node.(*inmem.Node)
	_, ok := inm.Default(1)
	assert.False(t, ok)
	_, ok = inm.Default(2)
	assert.False(t, ok)
}

func TestScalarNeg(t *testing.T) {
	g := newTestGraph(t, "neg")
	a := newScalar(t, g)

	n, err := a.Neg()
	require.NoError(t, err)

	node := n.Handle().Node().(*inmem.Node)
	assert.Equal(t, "MULTIPLY", attrString(t, node, "operation"))
	v, ok := node.Default(0)
	require.True(t, ok, "the -1 factor folds into the first slot")
	f, _ := v.AsBigFloat().Float64()
	assert.InDelta(t, -1.0, f, 1e-9)
}

func TestScalarComparisons(t *testing.T) {
	g := newTestGraph(t, "cmp")
	a := newScalar(t, g)
	b := newScalar(t, g)

	lt, err := a.LessThan(b)
	require.NoError(t, err)

	node := lt.Handle().Node()
	assert.Equal(t, "compare", node.Kind())
	assert.Equal(t, "LESS_THAN", attrString(t, node, "operation"))
	assert.Equal(t, "FLOAT", attrString(t, node, "data_type"))
	assert.Equal(t, "ELEMENT", attrString(t, node, "mode"))

	t.Run("remaining operators", func(t *testing.T) {
		ops := map[string]func(any) (*socket.Boolean, error){
			"GREATER_THAN":  a.GreaterThan,
			"LESS_EQUAL":    a.LessEqual,
			"GREATER_EQUAL": a.GreaterEqual,
		}
		for want, call := range ops {
			res, err := call(0.5)
			require.NoError(t, err)
			assert.Equal(t, want, attrString(t, res.Handle().Node(), "operation"))
		}
	})
}

func TestScalarAngleConversions(t *testing.T) {
	g := newTestGraph(t, "angles")
	a := newScalar(t, g)

	rad, err := a.ToRadians()
	require.NoError(t, err)
	assert.Equal(t, "RADIANS", attrString(t, rad.Handle().Node(), "operation"))

	deg, err := rad.ToDegrees()
	require.NoError(t, err)
	assert.Equal(t, "DEGREES", attrString(t, deg.Handle().Node(), "operation"))
}
