package socket

import (
	"github.com/zclconf/go-cty/cty"

	"github.com/vk/geoscript/engine"
)

const (
	kindSetPosition        = "set_position"
	kindSetID              = "set_id"
	kindProximity          = "proximity"
	kindTransform          = "transform"
	kindSeparateGeometry   = "separate_geometry"
	kindSeparateComponents = "separate_components"
	kindMergeByDistance    = "merge_by_distance"
	kindGeometryToInstance = "geometry_to_instance"
	kindBoundingBox        = "bounding_box"
	kindConvexHull         = "convex_hull"
)

// Geometry is a socket carrying mesh, curve, point or instance data.
type Geometry struct {
	h   Handle
	idx int

	// components memoizes the separate_components node shared by the
	// per-component accessors.
	components *Handle
}

// NewGeometry wraps output index of the handled node as a Geometry.
func NewGeometry(h Handle, index int) *Geometry {
	return &Geometry{h: h, idx: index}
}

// Handle returns the producing node's handle.
func (g *Geometry) Handle() Handle { return g.h }

// Index is the output slot this socket reads from.
func (g *Geometry) Index() int { return g.idx }

// Accepts reports whether the geometry may connect to a slot of the
// given tag.
func (g *Geometry) Accepts(tag engine.TypeTag) bool {
	return tag == engine.TagGeometry
}

// Variant names the socket type for error messages.
func (g *Geometry) Variant() string { return "Geometry" }

// MoveVertices moves selected elements to an absolute position and/or
// by a relative offset. Nil arguments leave the corresponding slot at
// its default, so a pure offset move passes position as nil.
func (g *Geometry) MoveVertices(position, offset *Vector3, selection *Boolean) (*Geometry, error) {
	h, err := AddLinkedNode(kindSetPosition, g, selection, position, offset)
	if err != nil {
		return nil, err
	}
	return NewGeometry(h, 0), nil
}

// SetID assigns the id attribute on selected elements. The id operand
// is a *Scalar or an int literal.
func (g *Geometry) SetID(id any, selection *Boolean) (*Geometry, error) {
	h, err := AddLinkedNode(kindSetID, g, selection, id)
	if err != nil {
		return nil, err
	}
	return NewGeometry(h, 0), nil
}

func (g *Geometry) closest(targetElement string, sourcePosition *Vector3) (*Vector3, *Scalar, error) {
	h, err := AddLinkedNode(kindProximity, g, sourcePosition)
	if err != nil {
		return nil, nil, err
	}
	if err := h.Node().SetAttr("target_element", cty.StringVal(targetElement)); err != nil {
		return nil, nil, err
	}
	return NewVector3(h, 0), NewScalar(h, 1), nil
}

// ClosestPoint finds the point on this geometry nearest to
// sourcePosition, returning its position and distance.
func (g *Geometry) ClosestPoint(sourcePosition *Vector3) (*Vector3, *Scalar, error) {
	return g.closest("POINTS", sourcePosition)
}

// ClosestEdge finds the nearest position on this geometry's edges.
func (g *Geometry) ClosestEdge(sourcePosition *Vector3) (*Vector3, *Scalar, error) {
	return g.closest("EDGES", sourcePosition)
}

// ClosestFace finds the nearest position on this geometry's faces.
func (g *Geometry) ClosestFace(sourcePosition *Vector3) (*Vector3, *Scalar, error) {
	return g.closest("FACES", sourcePosition)
}

// Transform translates, rotates and scales the entire geometry.
func (g *Geometry) Transform(translation, rotation, scale *Vector3) (*Geometry, error) {
	h, err := AddLinkedNode(kindTransform, g, translation, rotation, scale)
	if err != nil {
		return nil, err
	}
	return NewGeometry(h, 0), nil
}

// SeparateGeometry splits the geometry by a boolean selection on the
// given domain, returning the selected and inverted halves.
func (g *Geometry) SeparateGeometry(selection *Boolean, domain string) (*Geometry, *Geometry, error) {
	h, err := AddLinkedNode(kindSeparateGeometry, g, selection)
	if err != nil {
		return nil, nil, err
	}
	if err := h.Node().SetAttr("domain", cty.StringVal(domain)); err != nil {
		return nil, nil, err
	}
	return NewGeometry(h, 0), NewGeometry(h, 1), nil
}

func (g *Geometry) component(index int) (*Geometry, error) {
	if g.components == nil {
		h, err := AddLinkedNode(kindSeparateComponents, g)
		if err != nil {
			return nil, err
		}
		g.components = &h
	}
	return NewGeometry(*g.components, index), nil
}

// MeshComponent isolates the mesh inside this geometry, if any. The
// five component accessors share one decomposition node.
func (g *Geometry) MeshComponent() (*Geometry, error) { return g.component(0) }

// PointCloudComponent isolates the point cloud inside this geometry.
func (g *Geometry) PointCloudComponent() (*Geometry, error) { return g.component(1) }

// CurveComponent isolates the curves inside this geometry.
func (g *Geometry) CurveComponent() (*Geometry, error) { return g.component(2) }

// VolumeComponent isolates the volume inside this geometry.
func (g *Geometry) VolumeComponent() (*Geometry, error) { return g.component(3) }

// InstancesComponent isolates the instances inside this geometry.
func (g *Geometry) InstancesComponent() (*Geometry, error) { return g.component(4) }

func (g *Geometry) mergeByDistance(distance, selection any, mode string) (*Geometry, error) {
	h, err := AddLinkedNode(kindMergeByDistance, g, selection, distance)
	if err != nil {
		return nil, err
	}
	if err := h.Node().SetAttr("mode", cty.StringVal(mode)); err != nil {
		return nil, err
	}
	return NewGeometry(h, 0), nil
}

// MergeAllByDistance merges all selected vertices closer to each other
// than distance.
func (g *Geometry) MergeAllByDistance(distance, selection any) (*Geometry, error) {
	return g.mergeByDistance(distance, selection, "ALL")
}

// MergeConnectedByDistance merges selected vertices closer than
// distance, but only when an edge connects them.
func (g *Geometry) MergeConnectedByDistance(distance, selection any) (*Geometry, error) {
	return g.mergeByDistance(distance, selection, "CONNECTED")
}

// ToInstances wraps the geometry as a single instance.
func (g *Geometry) ToInstances() (*Geometry, error) {
	h, err := AddLinkedNode(kindGeometryToInstance, g)
	if err != nil {
		return nil, err
	}
	return NewGeometry(h, 0), nil
}

// boundingBoxNode reuses the producing node when this socket already
// comes from a bounding box, so asking for the box geometry and the
// corner points yields one node, not two.
func (g *Geometry) boundingBoxNode() (Handle, error) {
	if g.h.Node().Kind() == kindBoundingBox {
		return g.h, nil
	}
	return AddLinkedNode(kindBoundingBox, g)
}

// BoundingBoxGeometry builds the axis-aligned bounding box mesh.
func (g *Geometry) BoundingBoxGeometry() (*Geometry, error) {
	h, err := g.boundingBoxNode()
	if err != nil {
		return nil, err
	}
	return NewGeometry(h, 0), nil
}

// BoundingBoxPoints returns the two opposite corners of the bounding
// box.
func (g *Geometry) BoundingBoxPoints() (*Vector3, *Vector3, error) {
	h, err := g.boundingBoxNode()
	if err != nil {
		return nil, nil, err
	}
	return NewVector3(h, 1), NewVector3(h, 2), nil
}

// ConvexHull builds the convex hull mesh of this geometry.
func (g *Geometry) ConvexHull() (*Geometry, error) {
	h, err := AddLinkedNode(kindConvexHull, g)
	if err != nil {
		return nil, err
	}
	return NewGeometry(h, 0), nil
}
