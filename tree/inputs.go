package tree

import (
	"github.com/zclconf/go-cty/cty"

	"github.com/vk/geoscript/engine"
	"github.com/vk/geoscript/socket"
)

// FloatInput carries the optional metadata of a float boundary input.
type FloatInput struct {
	Tooltip          string
	Domain           string
	DefaultAttribute string
	Default          float64
	Min, Max         *float64
}

// IntInput carries the optional metadata of an integer boundary input.
type IntInput struct {
	Tooltip          string
	Domain           string
	DefaultAttribute string
	Default          int
	Min, Max         *float64
}

// VectorInput carries the optional metadata of a vector boundary
// input.
type VectorInput struct {
	Tooltip          string
	Domain           string
	DefaultAttribute string
	Default          [3]float64
	Min, Max         *float64
}

// BoolInput carries the optional metadata of a boolean boundary input.
type BoolInput struct {
	Tooltip          string
	Domain           string
	DefaultAttribute string
	Default          bool
}

func (t *Tree) declareInput(name string, tag engine.TypeTag, meta engine.PortMeta) (socket.Handle, int, error) {
	out, err := t.graph.DeclareInput(name, tag, meta)
	if err != nil {
		return socket.Handle{}, 0, err
	}
	t.inputCount++
	return socket.NewHandle(t.graph, out.Node, 0), out.Index, nil
}

// InputGeometry declares a geometry input and returns the socket that
// reads it inside the tree.
func (t *Tree) InputGeometry(name, tooltip string) (*socket.Geometry, error) {
	h, idx, err := t.declareInput(name, engine.TagGeometry, engine.PortMeta{Tooltip: tooltip})
	if err != nil {
		return nil, err
	}
	return socket.NewGeometry(h, idx), nil
}

// InputObject declares an object-reference input.
func (t *Tree) InputObject(name, tooltip string) (*socket.ObjectRef, error) {
	h, idx, err := t.declareInput(name, engine.TagObject, engine.PortMeta{Tooltip: tooltip})
	if err != nil {
		return nil, err
	}
	return socket.NewObjectRef(h, idx), nil
}

// InputBoolean declares a boolean input.
func (t *Tree) InputBoolean(name string, opt BoolInput) (*socket.Boolean, error) {
	h, idx, err := t.declareInput(name, engine.TagBoolean, engine.PortMeta{
		Tooltip:          opt.Tooltip,
		Domain:           opt.Domain,
		DefaultAttribute: opt.DefaultAttribute,
		Default:          cty.BoolVal(opt.Default),
	})
	if err != nil {
		return nil, err
	}
	return socket.NewBoolean(h, idx), nil
}

// InputFloat declares a float input.
func (t *Tree) InputFloat(name string, opt FloatInput) (*socket.Scalar, error) {
	h, idx, err := t.declareInput(name, engine.TagValue, engine.PortMeta{
		Tooltip:          opt.Tooltip,
		Domain:           opt.Domain,
		DefaultAttribute: opt.DefaultAttribute,
		Default:          cty.NumberFloatVal(opt.Default),
		Min:              opt.Min,
		Max:              opt.Max,
	})
	if err != nil {
		return nil, err
	}
	return socket.NewScalar(h, idx), nil
}

// InputInt declares an integer input. The socket is a Scalar, same as
// a float input; the boundary keeps the integer tag.
func (t *Tree) InputInt(name string, opt IntInput) (*socket.Scalar, error) {
	h, idx, err := t.declareInput(name, engine.TagInt, engine.PortMeta{
		Tooltip:          opt.Tooltip,
		Domain:           opt.Domain,
		DefaultAttribute: opt.DefaultAttribute,
		Default:          cty.NumberIntVal(int64(opt.Default)),
		Min:              opt.Min,
		Max:              opt.Max,
	})
	if err != nil {
		return nil, err
	}
	return socket.NewScalar(h, idx), nil
}

// InputVector declares a vector input.
func (t *Tree) InputVector(name string, opt VectorInput) (*socket.Vector3, error) {
	h, idx, err := t.declareInput(name, engine.TagVector, engine.PortMeta{
		Tooltip:          opt.Tooltip,
		Domain:           opt.Domain,
		DefaultAttribute: opt.DefaultAttribute,
		Default: cty.TupleVal([]cty.Value{
			cty.NumberFloatVal(opt.Default[0]),
			cty.NumberFloatVal(opt.Default[1]),
			cty.NumberFloatVal(opt.Default[2]),
		}),
		Min: opt.Min,
		Max: opt.Max,
	})
	if err != nil {
		return nil, err
	}
	return socket.NewVector3(h, idx), nil
}
