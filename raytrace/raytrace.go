// Package raytrace builds ray-geometry intersection nodes and exposes
// their outputs through a RayHit handle.
package raytrace

import (
	"fmt"

	"github.com/zclconf/go-cty/cty"

	"github.com/vk/geoscript/socket"
)

const kindRaycast = "raycast"

// Input slot indices of the raycast kind. The attribute input read at
// evaluation time depends on the node's data_type, so one slot exists
// per attribute type.
const (
	slotTarget          = 0
	slotAttributeVector = 1
	slotAttributeFloat  = 2
	slotAttributeColor  = 3
	slotAttributeBool   = 4
	slotAttributeInt    = 5
	slotSourcePosition  = 6
	slotRayDirection    = 7
	slotRayLength       = 8
)

// RayHit exposes the outputs of one raycast node.
type RayHit struct {
	h socket.Handle
}

// IsHit is true where the ray intersected the target.
func (r *RayHit) IsHit() *socket.Boolean { return socket.NewBoolean(r.h, 0) }

// HitPosition is the intersection point.
func (r *RayHit) HitPosition() *socket.Vector3 { return socket.NewVector3(r.h, 1) }

// HitNormal is the target's surface normal at the intersection.
func (r *RayHit) HitNormal() *socket.Vector3 { return socket.NewVector3(r.h, 2) }

// HitDistance is the distance from the ray origin to the intersection.
func (r *RayHit) HitDistance() *socket.Scalar { return socket.NewScalar(r.h, 3) }

// Attribute is the sampled attribute at the intersection. The output
// carries whatever type the node's data_type selects, so the socket
// variant follows that attr rather than the static slot type.
func (r *RayHit) Attribute() (socket.Socket, error) {
	dt, ok := r.h.Node().Attr("data_type")
	if !ok {
		return nil, fmt.Errorf("raytrace: raycast node reports no data_type")
	}
	switch dt.AsString() {
	case "FLOAT", "INT":
		return socket.NewScalar(r.h, 4), nil
	case "BOOLEAN":
		return socket.NewBoolean(r.h, 4), nil
	case "FLOAT_VECTOR":
		return socket.NewVector3(r.h, 4), nil
	}
	return nil, fmt.Errorf("raytrace: attribute data type %q has no socket variant", dt.AsString())
}

// Raycast casts rays from sourcePosition along rayDirection onto
// target, up to rayLength away.
func Raycast(target *socket.Geometry, sourcePosition, rayDirection *socket.Vector3, rayLength any) (*RayHit, error) {
	return RaycastWithAttribute(target, sourcePosition, rayDirection, rayLength, nil, "FLOAT", "INTERPOLATED")
}

// RaycastWithAttribute additionally samples an attribute of the target
// at the intersection. dataType picks the attribute slot the value
// feeds, mapping selects nearest-element or interpolated sampling.
func RaycastWithAttribute(target *socket.Geometry, sourcePosition, rayDirection *socket.Vector3, rayLength, attribute any, dataType, mapping string) (*RayHit, error) {
	args := make([]any, 9)
	args[slotTarget] = target
	args[slotSourcePosition] = sourcePosition
	args[slotRayDirection] = rayDirection
	args[slotRayLength] = rayLength

	switch dataType {
	case "FLOAT":
		args[slotAttributeFloat] = attribute
	case "INT":
		args[slotAttributeInt] = attribute
	case "FLOAT_VECTOR":
		args[slotAttributeVector] = attribute
	case "BOOLEAN":
		args[slotAttributeBool] = attribute
	default:
		return nil, fmt.Errorf("raytrace: unsupported attribute data type %q", dataType)
	}

	h, err := socket.AddLinkedNode(kindRaycast, args...)
	if err != nil {
		return nil, err
	}
	node := h.Node()
	if err := node.SetAttr("data_type", cty.StringVal(dataType)); err != nil {
		return nil, err
	}
	if err := node.SetAttr("mapping", cty.StringVal(mapping)); err != nil {
		return nil, err
	}
	return &RayHit{h: h}, nil
}
