package tree

import (
	"fmt"

	"github.com/vk/geoscript/engine"
	"github.com/vk/geoscript/socket"
)

const kindGroup = "group"

// Call instantiates this tree as a single node in the caller's graph,
// inferred from the socket arguments. Arguments are connected to the
// tree's declared inputs positionally with the usual type checking.
//
// The result mirrors the declared outputs: nil for none, the single
// socket for one, and an ordered []socket.Socket otherwise. Each
// output is wrapped by its reported tag.
func (t *Tree) Call(args ...any) (any, error) {
	h, err := socket.NewNode(kindGroup, args...)
	if err != nil {
		return nil, err
	}
	node := h.Node()
	if err := node.BindSubgraph(t.graph); err != nil {
		return nil, err
	}
	for i, a := range args {
		if err := h.ConnectArgument(i, a); err != nil {
			return nil, err
		}
	}

	outputs := make([]socket.Socket, 0, node.NumOutputs())
	for i := 0; i < node.NumOutputs(); i++ {
		slot, err := node.OutputType(i)
		if err != nil {
			return nil, err
		}
		wrapped, err := wrapOutput(h, i, slot.Tag)
		if err != nil {
			return nil, fmt.Errorf("tree: calling %q: %w", t.name, err)
		}
		outputs = append(outputs, wrapped)
	}

	switch len(outputs) {
	case 0:
		return nil, nil
	case 1:
		return outputs[0], nil
	default:
		return outputs, nil
	}
}

func wrapOutput(h socket.Handle, index int, tag engine.TypeTag) (socket.Socket, error) {
	switch tag {
	case engine.TagValue, engine.TagInt:
		return socket.NewScalar(h, index), nil
	case engine.TagBoolean:
		return socket.NewBoolean(h, index), nil
	case engine.TagVector:
		return socket.NewVector3(h, index), nil
	case engine.TagGeometry:
		return socket.NewGeometry(h, index), nil
	case engine.TagObject:
		return socket.NewObjectRef(h, index), nil
	}
	return nil, fmt.Errorf("output %d has tag %q, which no socket variant represents", index, tag)
}
