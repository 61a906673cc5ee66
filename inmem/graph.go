package inmem

import (
	"fmt"

	"github.com/vk/geoscript/catalog"
	"github.com/vk/geoscript/engine"
)

// Boundary kind names are fixed by the standard manifest set; the
// engine materialises these nodes itself when a boundary is declared.
const (
	kindGroupInput  = "group_input"
	kindGroupOutput = "group_output"
)

// boundaryPort is one declared graph-level input or output.
type boundaryPort struct {
	slot engine.SlotType
	meta engine.PortMeta
}

// link is one directed connection between two slots of this graph.
type link struct {
	fromNode *Node
	fromIdx  int
	toNode   *Node
	toIdx    int
}

// Graph is one host-owned node/link structure.
type Graph struct {
	eng  *Engine
	name string

	nodes []*Node
	links []link

	inputs  []boundaryPort
	outputs []boundaryPort

	inNode  *Node
	outNode *Node

	nextID int
}

// Name returns the graph's registered name.
func (g *Graph) Name() string { return g.name }

// NewNode instantiates a node of the named kind. Boundary kinds are
// engine-managed and cannot be created directly.
func (g *Graph) NewNode(kind string) (engine.Node, error) {
	spec, ok := g.eng.cat.Kind(kind)
	if !ok {
		return nil, fmt.Errorf("inmem: graph %q: unknown node kind %q", g.name, kind)
	}
	if spec.Boundary != "" {
		return nil, fmt.Errorf("inmem: graph %q: kind %q is a boundary kind and is created by boundary declaration", g.name, kind)
	}
	return g.newNode(spec), nil
}

func (g *Graph) newNode(spec *catalog.KindSpec) *Node {
	n := &Node{
		g:    g,
		spec: spec,
		id:   g.nextID,
	}
	g.nextID++
	g.nodes = append(g.nodes, n)
	return n
}

// Link connects an output slot to an input slot. Both ends must belong
// to this graph; an input accepts one incoming link, and relinking
// replaces the previous one.
func (g *Graph) Link(from engine.Output, to engine.Input) error {
	fromNode, ok := from.Node.(*Node)
	if !ok || fromNode.g != g {
		return fmt.Errorf("inmem: graph %q: link source does not belong to this graph", g.name)
	}
	toNode, ok := to.Node.(*Node)
	if !ok || toNode.g != g {
		return fmt.Errorf("inmem: graph %q: link target does not belong to this graph", g.name)
	}
	if from.Index < 0 || from.Index >= fromNode.NumOutputs() {
		return fmt.Errorf("inmem: graph %q: link source output %d out of range", g.name, from.Index)
	}
	if to.Index < 0 || to.Index >= toNode.NumInputs() {
		return fmt.Errorf("inmem: graph %q: link target input %d out of range", g.name, to.Index)
	}

	for i := range g.links {
		if g.links[i].toNode == toNode && g.links[i].toIdx == to.Index {
			g.links[i] = link{fromNode, from.Index, toNode, to.Index}
			return nil
		}
	}
	g.links = append(g.links, link{fromNode, from.Index, toNode, to.Index})
	return nil
}

// DeclareInput adds a named graph-level input and returns the boundary
// output slot that exposes it inside the graph.
func (g *Graph) DeclareInput(name string, tag engine.TypeTag, meta engine.PortMeta) (engine.Output, error) {
	if err := g.checkPortName(name, g.inputs); err != nil {
		return engine.Output{}, err
	}
	if g.inNode == nil {
		spec, ok := g.eng.cat.Kind(kindGroupInput)
		if !ok {
			return engine.Output{}, fmt.Errorf("inmem: catalog does not define %q", kindGroupInput)
		}
		g.inNode = g.newNode(spec)
	}
	g.inputs = append(g.inputs, boundaryPort{
		slot: engine.SlotType{Name: name, Tag: tag, Literal: literalForTag(tag)},
		meta: meta,
	})
	return engine.Output{Node: g.inNode, Index: len(g.inputs) - 1}, nil
}

// DeclareOutput adds a named graph-level output and returns the
// boundary input slot that final values are linked into.
func (g *Graph) DeclareOutput(name string, tag engine.TypeTag, meta engine.PortMeta) (engine.Input, error) {
	if err := g.checkPortName(name, g.outputs); err != nil {
		return engine.Input{}, err
	}
	if g.outNode == nil {
		spec, ok := g.eng.cat.Kind(kindGroupOutput)
		if !ok {
			return engine.Input{}, fmt.Errorf("inmem: catalog does not define %q", kindGroupOutput)
		}
		g.outNode = g.newNode(spec)
	}
	g.outputs = append(g.outputs, boundaryPort{
		slot: engine.SlotType{Name: name, Tag: tag, Literal: literalForTag(tag)},
		meta: meta,
	})
	return engine.Input{Node: g.outNode, Index: len(g.outputs) - 1}, nil
}

func (g *Graph) checkPortName(name string, ports []boundaryPort) error {
	if name == "" {
		return fmt.Errorf("inmem: graph %q: boundary port name must not be empty", g.name)
	}
	for _, p := range ports {
		if p.slot.Name == name {
			return fmt.Errorf("inmem: graph %q: duplicate boundary port %q", g.name, name)
		}
	}
	return nil
}

// Inputs reports the declared boundary inputs in declaration order.
func (g *Graph) Inputs() []engine.SlotType {
	return portSlots(g.inputs)
}

// Outputs reports the declared boundary outputs in declaration order.
func (g *Graph) Outputs() []engine.SlotType {
	return portSlots(g.outputs)
}

func portSlots(ports []boundaryPort) []engine.SlotType {
	out := make([]engine.SlotType, len(ports))
	for i, p := range ports {
		out[i] = p.slot
	}
	return out
}

// Clear removes every node, link and boundary declaration. Any default
// values tuned on the previous contents are discarded with them.
func (g *Graph) Clear() error {
	g.nodes = nil
	g.links = nil
	g.inputs = nil
	g.outputs = nil
	g.inNode = nil
	g.outNode = nil
	g.nextID = 0
	return nil
}

// Nodes returns a snapshot of all nodes in creation order.
func (g *Graph) Nodes() []engine.Node {
	out := make([]engine.Node, len(g.nodes))
	for i, n := range g.nodes {
		out[i] = n
	}
	return out
}

// LinkRef is one connection, exposed for inspection and dumps.
type LinkRef struct {
	From engine.Output
	To   engine.Input
}

// Links returns a snapshot of the graph's links in creation order.
func (g *Graph) Links() []LinkRef {
	out := make([]LinkRef, len(g.links))
	for i, l := range g.links {
		out[i] = LinkRef{
			From: engine.Output{Node: l.fromNode, Index: l.fromIdx},
			To:   engine.Input{Node: l.toNode, Index: l.toIdx},
		}
	}
	return out
}

// literalForTag derives the constant-carrying subtype of a boundary
// port from its semantic tag.
func literalForTag(tag engine.TypeTag) engine.LiteralKind {
	switch tag {
	case engine.TagValue:
		return engine.LiteralFloat
	case engine.TagInt:
		return engine.LiteralInt
	case engine.TagBoolean:
		return engine.LiteralBool
	case engine.TagVector:
		return engine.LiteralVector
	case engine.TagString:
		return engine.LiteralString
	default:
		return engine.LiteralNone
	}
}
