package socket

import (
	"github.com/zclconf/go-cty/cty"

	"github.com/vk/geoscript/engine"
)

const kindObjectInfo = "object_info"

// ObjectRef is a socket referencing an external scene object.
type ObjectRef struct {
	h   Handle
	idx int
}

// NewObjectRef wraps output index of the handled node as an ObjectRef.
func NewObjectRef(h Handle, index int) *ObjectRef {
	return &ObjectRef{h: h, idx: index}
}

// Handle returns the producing node's handle.
func (o *ObjectRef) Handle() Handle { return o.h }

// Index is the output slot this socket reads from.
func (o *ObjectRef) Index() int { return o.idx }

// Accepts reports whether the reference may connect to a slot of the
// given tag.
func (o *ObjectRef) Accepts(tag engine.TypeTag) bool {
	return tag == engine.TagObject
}

// Variant names the socket type for error messages.
func (o *ObjectRef) Variant() string { return "ObjectRef" }

// objectInfo builds one info node for the object. Relative switches
// the readings to the space of the geometry being evaluated instead of
// world space.
func (o *ObjectRef) objectInfo(asInstance *Boolean, relative bool) (Handle, error) {
	h, err := AddLinkedNode(kindObjectInfo, o, asInstance)
	if err != nil {
		return Handle{}, err
	}
	space := "ORIGINAL"
	if relative {
		space = "RELATIVE"
	}
	if err := h.Node().SetAttr("transform_space", cty.StringVal(space)); err != nil {
		return Handle{}, err
	}
	return h, nil
}

// Geometry reads the geometry contained in the object.
func (o *ObjectRef) Geometry(asInstance *Boolean, relative bool) (*Geometry, error) {
	h, err := o.objectInfo(asInstance, relative)
	if err != nil {
		return nil, err
	}
	return NewGeometry(h, 3), nil
}

// Location reads the object's position.
func (o *ObjectRef) Location(asInstance *Boolean, relative bool) (*Vector3, error) {
	h, err := o.objectInfo(asInstance, relative)
	if err != nil {
		return nil, err
	}
	return NewVector3(h, 0), nil
}

// Rotation reads the object's Euler rotation.
func (o *ObjectRef) Rotation(asInstance *Boolean, relative bool) (*Vector3, error) {
	h, err := o.objectInfo(asInstance, relative)
	if err != nil {
		return nil, err
	}
	return NewVector3(h, 1), nil
}

// Scale reads the object's scale vector.
func (o *ObjectRef) Scale(asInstance *Boolean, relative bool) (*Vector3, error) {
	h, err := o.objectInfo(asInstance, relative)
	if err != nil {
		return nil, err
	}
	return NewVector3(h, 2), nil
}
