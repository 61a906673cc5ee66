package inmem

import (
	"fmt"

	"github.com/zclconf/go-cty/cty"

	"github.com/vk/geoscript/catalog"
	"github.com/vk/geoscript/engine"
)

// Default layout sizes. Height grows with slot count so the layout
// pass sees realistic bounding boxes.
const (
	defaultNodeWidth  = 140.0
	baseNodeHeight    = 46.0
	perSlotNodeHeight = 22.0
)

// Node is one entry in an in-memory graph. The kind never changes
// after creation; attributes, slot defaults and position may.
type Node struct {
	g    *Graph
	spec *catalog.KindSpec
	id   int

	defaults map[int]cty.Value
	attrs    map[string]cty.Value

	sub *Graph

	x, y float64
}

// Kind returns the node's kind name.
func (n *Node) Kind() string { return n.spec.Kind }

// ID returns a graph-unique identifier used in dumps.
func (n *Node) ID() string {
	return fmt.Sprintf("%s_%d", n.spec.Kind, n.id)
}

// inputSlots resolves the node's input slot list. Static kinds read
// the catalog; boundary and subgraph kinds mirror graph boundaries.
func (n *Node) inputSlots() []engine.SlotType {
	switch {
	case n.spec.Boundary == "input":
		return nil
	case n.spec.Boundary == "output":
		return n.g.Outputs()
	case n.spec.Subgraph:
		if n.sub == nil {
			return nil
		}
		return n.sub.Inputs()
	default:
		slots := make([]engine.SlotType, len(n.spec.Inputs))
		for i, s := range n.spec.Inputs {
			slots[i] = engine.SlotType{Name: s.Name, Tag: s.Tag, Literal: s.Literal}
		}
		return slots
	}
}

func (n *Node) outputSlots() []engine.SlotType {
	switch {
	case n.spec.Boundary == "input":
		return n.g.Inputs()
	case n.spec.Boundary == "output":
		return nil
	case n.spec.Subgraph:
		if n.sub == nil {
			return nil
		}
		return n.sub.Outputs()
	default:
		slots := make([]engine.SlotType, len(n.spec.Outputs))
		for i, s := range n.spec.Outputs {
			slots[i] = engine.SlotType{Name: s.Name, Tag: s.Tag, Literal: engine.LiteralNone}
		}
		return slots
	}
}

// NumInputs reports the node's input arity.
func (n *Node) NumInputs() int { return len(n.inputSlots()) }

// NumOutputs reports the node's output arity.
func (n *Node) NumOutputs() int { return len(n.outputSlots()) }

// InputType reports the type of input slot i.
func (n *Node) InputType(i int) (engine.SlotType, error) {
	slots := n.inputSlots()
	if i < 0 || i >= len(slots) {
		return engine.SlotType{}, fmt.Errorf("inmem: node %s: input %d out of range (arity %d)", n.ID(), i, len(slots))
	}
	return slots[i], nil
}

// OutputType reports the type of output slot i.
func (n *Node) OutputType(i int) (engine.SlotType, error) {
	slots := n.outputSlots()
	if i < 0 || i >= len(slots) {
		return engine.SlotType{}, fmt.Errorf("inmem: node %s: output %d out of range (arity %d)", n.ID(), i, len(slots))
	}
	return slots[i], nil
}

// Input builds a reference to input slot i.
func (n *Node) Input(i int) (engine.Input, error) {
	if _, err := n.InputType(i); err != nil {
		return engine.Input{}, err
	}
	return engine.Input{Node: n, Index: i}, nil
}

// Output builds a reference to output slot i.
func (n *Node) Output(i int) (engine.Output, error) {
	if _, err := n.OutputType(i); err != nil {
		return engine.Output{}, err
	}
	return engine.Output{Node: n, Index: i}, nil
}

// SetDefault stores a literal default on input slot i after checking
// it against the slot's literal kind.
func (n *Node) SetDefault(i int, v cty.Value) error {
	slot, err := n.InputType(i)
	if err != nil {
		return err
	}
	if err := catalog.CheckLiteral(slot.Literal, v); err != nil {
		return fmt.Errorf("inmem: node %s, input %q: %w", n.ID(), slot.Name, err)
	}
	if n.defaults == nil {
		n.defaults = make(map[int]cty.Value)
	}
	n.defaults[i] = v
	return nil
}

// Default reads back a slot's effective default: the stored value, or
// the kind's manifest default.
func (n *Node) Default(i int) (cty.Value, bool) {
	if v, ok := n.defaults[i]; ok {
		return v, true
	}
	if !n.spec.Subgraph && n.spec.Boundary == "" && i >= 0 && i < len(n.spec.Inputs) {
		if d := n.spec.Inputs[i].Default; d != cty.NilVal {
			return d, true
		}
	}
	return cty.NilVal, false
}

// SetAttr sets a configuration attribute declared by the kind.
func (n *Node) SetAttr(name string, v cty.Value) error {
	spec, ok := n.spec.Attr(name)
	if !ok {
		return fmt.Errorf("inmem: node %s: kind %q declares no attr %q", n.ID(), n.spec.Kind, name)
	}
	if err := spec.CheckAttrValue(v); err != nil {
		return fmt.Errorf("inmem: node %s: %w", n.ID(), err)
	}
	if n.attrs == nil {
		n.attrs = make(map[string]cty.Value)
	}
	n.attrs[name] = v
	return nil
}

// Attr reads an attribute back, falling through to the kind's declared
// default when never set.
func (n *Node) Attr(name string) (cty.Value, bool) {
	if v, ok := n.attrs[name]; ok {
		return v, true
	}
	if spec, ok := n.spec.Attr(name); ok && spec.Default != cty.NilVal {
		return spec.Default, true
	}
	return cty.NilVal, false
}

// BindSubgraph points a subgraph-reference node at another graph.
func (n *Node) BindSubgraph(sub engine.Graph) error {
	if !n.spec.Subgraph {
		return fmt.Errorf("inmem: node %s: kind %q is not a subgraph reference", n.ID(), n.spec.Kind)
	}
	sg, ok := sub.(*Graph)
	if !ok {
		return fmt.Errorf("inmem: node %s: cannot bind a graph from a foreign engine (%T)", n.ID(), sub)
	}
	n.sub = sg
	return nil
}

// Subgraph returns the bound subgraph, if any.
func (n *Node) Subgraph() (engine.Graph, bool) {
	if n.sub == nil {
		return nil, false
	}
	return n.sub, true
}

// SetPosition moves the node to a layout position.
func (n *Node) SetPosition(x, y float64) {
	n.x, n.y = x, y
}

// Position reports the node's layout position.
func (n *Node) Position() (float64, float64) {
	return n.x, n.y
}

// Bounds reports the node's layout rectangle.
func (n *Node) Bounds() (x, y, w, h float64) {
	w = n.spec.Width
	if w <= 0 {
		w = defaultNodeWidth
	}
	h = n.spec.Height
	if h <= 0 {
		slots := n.NumInputs()
		if outs := n.NumOutputs(); outs > slots {
			slots = outs
		}
		h = baseNodeHeight + perSlotNodeHeight*float64(slots)
	}
	return n.x, n.y, w, h
}
