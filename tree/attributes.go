package tree

import (
	"github.com/zclconf/go-cty/cty"

	"github.com/vk/geoscript/socket"
)

// Attribute sources: zero-input nodes reading built-in fields of the
// geometry the tree is evaluated on. They take no socket argument, so
// the tree provides the graph explicitly.

// Position reads the position of each element.
func (t *Tree) Position() (*socket.Vector3, error) {
	h, err := socket.NewSourceNode(t.graph, "position")
	if err != nil {
		return nil, err
	}
	return socket.NewVector3(h, 0), nil
}

// Normal reads the surface normal of each element.
func (t *Tree) Normal() (*socket.Vector3, error) {
	h, err := socket.NewSourceNode(t.graph, "normal")
	if err != nil {
		return nil, err
	}
	return socket.NewVector3(h, 0), nil
}

// Radius reads the point or curve radius attribute.
func (t *Tree) Radius() (*socket.Scalar, error) {
	h, err := socket.NewSourceNode(t.graph, "radius")
	if err != nil {
		return nil, err
	}
	return socket.NewScalar(h, 0), nil
}

// ID reads the stable per-element identifier.
func (t *Tree) ID() (*socket.Scalar, error) {
	h, err := socket.NewSourceNode(t.graph, "index_id")
	if err != nil {
		return nil, err
	}
	return socket.NewScalar(h, 0), nil
}

// SceneTimeSeconds reads the evaluation time in seconds.
func (t *Tree) SceneTimeSeconds() (*socket.Scalar, error) {
	h, err := socket.NewSourceNode(t.graph, "scene_time")
	if err != nil {
		return nil, err
	}
	return socket.NewScalar(h, 0), nil
}

// SceneTimeFrame reads the evaluation time as a frame number.
func (t *Tree) SceneTimeFrame() (*socket.Scalar, error) {
	h, err := socket.NewSourceNode(t.graph, "scene_time")
	if err != nil {
		return nil, err
	}
	return socket.NewScalar(h, 1), nil
}

// IsViewport is true when the tree is evaluated for interactive
// display.
func (t *Tree) IsViewport() (*socket.Boolean, error) {
	h, err := socket.NewSourceNode(t.graph, "is_viewport")
	if err != nil {
		return nil, err
	}
	return socket.NewBoolean(h, 0), nil
}

// NamedAttribute reads an arbitrary attribute by name with the given
// data type.
func (t *Tree) NamedAttribute(name, dataType string) (*socket.Scalar, error) {
	h, err := socket.NewSourceNode(t.graph, "named_attribute")
	if err != nil {
		return nil, err
	}
	if err := h.Node().SetAttr("data_type", cty.StringVal(dataType)); err != nil {
		return nil, err
	}
	if err := h.ConnectArgument(0, name); err != nil {
		return nil, err
	}
	return socket.NewScalar(h, 0), nil
}
