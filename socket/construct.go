package socket

import (
	"github.com/vk/geoscript/engine"
)

// Horizontal spacing between layout layers.
const layerSpacing = 200.0

// NewNode instantiates a node of the given kind in the graph shared by
// the socket arguments, one layer to the right of the rightmost input.
// Literal and nil arguments cannot anchor a graph on their own.
func NewNode(kind string, args ...any) (Handle, error) {
	g, layer, err := anchor(kind, args)
	if err != nil {
		return Handle{}, err
	}
	return placeNode(g, kind, layer)
}

// NewSourceNode instantiates a node with no socket arguments, such as
// an attribute source, in an explicitly given graph at layer zero.
func NewSourceNode(g engine.Graph, kind string) (Handle, error) {
	return placeNode(g, kind, 0)
}

// AddLinkedNode is NewNode followed by connecting every argument, in
// order, to the node's input slots. This is the primitive every domain
// operation reduces to. A failed connection leaves the node in the
// graph with the links made so far; construction is all-or-nothing to
// the caller, who abandons the returned sockets on error.
func AddLinkedNode(kind string, args ...any) (Handle, error) {
	h, err := NewNode(kind, args...)
	if err != nil {
		return Handle{}, err
	}
	for i, a := range args {
		if err := h.ConnectArgument(i, a); err != nil {
			return Handle{}, err
		}
	}
	return h, nil
}

func placeNode(g engine.Graph, kind string, layer int) (Handle, error) {
	node, err := g.NewNode(kind)
	if err != nil {
		return Handle{}, err
	}
	node.SetPosition(layerSpacing*float64(layer), 0)
	return Handle{graph: g, node: node, layer: layer}, nil
}

// anchor finds the graph shared by all socket arguments and the layer
// just right of the rightmost one.
func anchor(kind string, args []any) (engine.Graph, int, error) {
	var g engine.Graph
	maxLayer := 0
	for _, a := range args {
		if isNilSocket(a) {
			continue
		}
		s, ok := a.(Socket)
		if !ok {
			continue
		}
		h := s.Handle()
		if g == nil {
			g = h.graph
		}
		if h.graph != g {
			return nil, 0, &CrossGraphError{A: g.Name(), B: h.graph.Name()}
		}
		if h.layer > maxLayer {
			maxLayer = h.layer
		}
	}
	if g == nil {
		return nil, 0, &NoAnchorError{Kind: kind}
	}
	return g, maxLayer + 1, nil
}
