package socket

import (
	"fmt"

	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/gocty"

	"github.com/vk/geoscript/engine"
)

// Handle is a copyable reference to one node in a graph, plus the
// layout layer the node was placed in. The graph owns the node; any
// number of handles may point at it.
type Handle struct {
	graph engine.Graph
	node  engine.Node
	layer int
}

// NewHandle wraps an existing node. Boundary and subgraph machinery
// use this to hand out sockets for nodes the construction algorithm
// did not place itself.
func NewHandle(g engine.Graph, n engine.Node, layer int) Handle {
	return Handle{graph: g, node: n, layer: layer}
}

// Graph returns the graph the node belongs to.
func (h Handle) Graph() engine.Graph { return h.graph }

// Node returns the underlying node.
func (h Handle) Node() engine.Node { return h.node }

// Layer returns the horizontal layout layer of the node.
func (h Handle) Layer() int { return h.layer }

// Input references input slot i, or fails with an ArityError.
func (h Handle) Input(i int) (engine.Input, error) {
	if n := h.node.NumInputs(); i < 0 || i >= n {
		return engine.Input{}, &ArityError{Kind: h.node.Kind(), Dir: "input", Index: i, Len: n}
	}
	return engine.Input{Node: h.node, Index: i}, nil
}

// Output references output slot i, or fails with an ArityError.
func (h Handle) Output(i int) (engine.Output, error) {
	if n := h.node.NumOutputs(); i < 0 || i >= n {
		return engine.Output{}, &ArityError{Kind: h.node.Kind(), Dir: "output", Index: i, Len: n}
	}
	return engine.Output{Node: h.node, Index: i}, nil
}

// ConnectArgument wires one argument into input slot index.
//
// A nil argument leaves the slot at its kind default. A socket is
// linked after checking its variant against the slot's tag. A Go
// literal is checked against the slot's literal kind and stored as
// the slot default; the only coercion is an int into a float slot.
func (h Handle) ConnectArgument(index int, v any) error {
	if isNilSocket(v) {
		return nil
	}
	in, err := h.Input(index)
	if err != nil {
		return err
	}
	slot, err := h.node.InputType(index)
	if err != nil {
		return err
	}

	if s, ok := v.(Socket); ok {
		sh := s.Handle()
		if sh.graph != h.graph {
			return &CrossGraphError{A: h.graph.Name(), B: sh.graph.Name()}
		}
		if !s.Accepts(slot.Tag) {
			return &TypeMismatchError{Arg: index, Expected: string(slot.Tag), Actual: s.Variant()}
		}
		out, err := sh.Output(s.Index())
		if err != nil {
			return err
		}
		return h.graph.Link(out, in)
	}

	val, kind, err := literalValue(index, v)
	if err != nil {
		return err
	}
	if kind != slot.Literal && !(kind == engine.LiteralInt && slot.Literal == engine.LiteralFloat) {
		return &TypeMismatchError{Arg: index, Expected: slot.Literal.String(), Actual: kind.String()}
	}
	return h.node.SetDefault(index, val)
}

// literalValue renders a Go literal as the cty value the engine
// stores, tagged with its literal kind.
func literalValue(index int, v any) (cty.Value, engine.LiteralKind, error) {
	switch lit := v.(type) {
	case float64:
		val, err := gocty.ToCtyValue(lit, cty.Number)
		if err != nil {
			return cty.NilVal, engine.LiteralNone, err
		}
		return val, engine.LiteralFloat, nil
	case int:
		val, err := gocty.ToCtyValue(lit, cty.Number)
		if err != nil {
			return cty.NilVal, engine.LiteralNone, err
		}
		return val, engine.LiteralInt, nil
	case bool:
		return cty.BoolVal(lit), engine.LiteralBool, nil
	case string:
		return cty.StringVal(lit), engine.LiteralString, nil
	case [3]float64:
		return cty.TupleVal([]cty.Value{
			cty.NumberFloatVal(lit[0]),
			cty.NumberFloatVal(lit[1]),
			cty.NumberFloatVal(lit[2]),
		}), engine.LiteralVector, nil
	}
	return cty.NilVal, engine.LiteralNone, &TypeMismatchError{
		Arg:      index,
		Expected: "socket or literal",
		Actual:   fmt.Sprintf("%T", v),
	}
}
