package socket

import (
	"fmt"

	"github.com/zclconf/go-cty/cty"

	"github.com/vk/geoscript/engine"
)

const (
	kindVectorMath  = "vector_math"
	kindSeparateXYZ = "separate_xyz"
	kindCombineXYZ  = "combine_xyz"
)

// Vector3 is a socket carrying a 3D vector field.
type Vector3 struct {
	h   Handle
	idx int

	// sep memoizes the separate_xyz node shared by X, Y and Z.
	sep *Handle
}

// NewVector3 wraps output index of the handled node as a Vector3.
func NewVector3(h Handle, index int) *Vector3 {
	return &Vector3{h: h, idx: index}
}

// Handle returns the producing node's handle.
func (v *Vector3) Handle() Handle { return v.h }

// Index is the output slot this socket reads from.
func (v *Vector3) Index() int { return v.idx }

// Accepts reports whether the vector may connect to a slot of the
// given tag.
func (v *Vector3) Accepts(tag engine.TypeTag) bool {
	return tag == engine.TagVector
}

// Variant names the socket type for error messages.
func (v *Vector3) Variant() string { return "Vector3" }

// VectorUnary applies a single-operand vector operation and wraps the
// vector output.
func VectorUnary(operand *Vector3, op string) (*Vector3, error) {
	h, err := vectorMathNode(op, operand)
	if err != nil {
		return nil, err
	}
	return NewVector3(h, 0), nil
}

// VectorBinary applies an elementwise two-operand vector operation.
// Each operand is a *Vector3 or a [3]float64 literal, and at least one
// must be a *Vector3.
func VectorBinary(left, right any, op string) (*Vector3, error) {
	if err := checkVectorOperands(op, left, right); err != nil {
		return nil, err
	}
	h, err := vectorMathNode(op, left, right)
	if err != nil {
		return nil, err
	}
	return NewVector3(h, 0), nil
}

func vectorMathNode(op string, args ...any) (Handle, error) {
	h, err := AddLinkedNode(kindVectorMath, args...)
	if err != nil {
		return Handle{}, err
	}
	if err := h.Node().SetAttr("operation", cty.StringVal(op)); err != nil {
		return Handle{}, err
	}
	return h, nil
}

func checkVectorOperands(op string, operands ...any) error {
	sockets := 0
	for _, o := range operands {
		if isNilSocket(o) {
			continue
		}
		switch o.(type) {
		case *Vector3:
			sockets++
		case [3]float64:
		default:
			return fmt.Errorf("%w: %s with %T operand", ErrNotSupported, op, o)
		}
	}
	if sockets == 0 {
		return fmt.Errorf("%w: %s needs at least one Vector3 operand", ErrNotSupported, op)
	}
	return nil
}

// Add builds the elementwise sum.
func (v *Vector3) Add(other any) (*Vector3, error) { return VectorBinary(v, other, "ADD") }

// Sub builds the elementwise difference.
func (v *Vector3) Sub(other any) (*Vector3, error) { return VectorBinary(v, other, "SUBTRACT") }

// Mul dispatches vector-by-scalar multiplication to Scale. Multiplying
// two vectors is refused: elementwise multiply and scaling are
// distinct operations and the caller must pick one.
func (v *Vector3) Mul(other any) (*Vector3, error) {
	switch other.(type) {
	case *Scalar, float64, int:
		return v.Scale(other)
	case *Vector3, [3]float64:
		return nil, fmt.Errorf("%w: multiplying two vectors is ambiguous, use Scale or an explicit elementwise MULTIPLY", ErrNotSupported)
	}
	return nil, fmt.Errorf("%w: MULTIPLY with %T operand", ErrNotSupported, other)
}

// Scale multiplies every element by a scalar factor. The factor feeds
// the dedicated scale slot, not the second vector slot.
func (v *Vector3) Scale(factor any) (*Vector3, error) {
	switch factor.(type) {
	case *Scalar, float64, int:
	default:
		return nil, fmt.Errorf("%w: SCALE with %T factor", ErrNotSupported, factor)
	}
	h, err := vectorMathNode("SCALE", v, nil, nil, factor)
	if err != nil {
		return nil, err
	}
	return NewVector3(h, 0), nil
}

// Dot builds the dot product of two vectors.
func (v *Vector3) Dot(other *Vector3) (*Scalar, error) {
	h, err := vectorMathNode("DOT_PRODUCT", v, other)
	if err != nil {
		return nil, err
	}
	return NewScalar(h, 1), nil
}

// Cross builds the cross product of two vectors.
func (v *Vector3) Cross(other *Vector3) (*Vector3, error) {
	return VectorBinary(v, other, "CROSS_PRODUCT")
}

// Length builds the euclidean norm of the vector.
func (v *Vector3) Length() (*Scalar, error) {
	h, err := vectorMathNode("LENGTH", v)
	if err != nil {
		return nil, err
	}
	return NewScalar(h, 1), nil
}

// Distance builds the distance between two points.
func (v *Vector3) Distance(other any) (*Scalar, error) {
	if err := checkVectorOperands("DISTANCE", v, other); err != nil {
		return nil, err
	}
	h, err := vectorMathNode("DISTANCE", v, other)
	if err != nil {
		return nil, err
	}
	return NewScalar(h, 1), nil
}

// Normalize builds the unit vector pointing the same way.
func (v *Vector3) Normalize() (*Vector3, error) {
	return VectorUnary(v, "NORMALIZE")
}

// X reads the first component. The three component accessors share one
// decomposition node, created on first access.
func (v *Vector3) X() (*Scalar, error) { return v.component(0) }

// Y reads the second component.
func (v *Vector3) Y() (*Scalar, error) { return v.component(1) }

// Z reads the third component.
func (v *Vector3) Z() (*Scalar, error) { return v.component(2) }

func (v *Vector3) component(index int) (*Scalar, error) {
	if v.sep == nil {
		h, err := AddLinkedNode(kindSeparateXYZ, v)
		if err != nil {
			return nil, err
		}
		v.sep = &h
	}
	return NewScalar(*v.sep, index), nil
}

// CombineXYZ builds a vector from three scalar components. At least
// one component must be a *Scalar to anchor the graph.
func CombineXYZ(x, y, z any) (*Vector3, error) {
	if err := checkScalarOperands("COMBINE_XYZ", x, y, z); err != nil {
		return nil, err
	}
	h, err := AddLinkedNode(kindCombineXYZ, x, y, z)
	if err != nil {
		return nil, err
	}
	return NewVector3(h, 0), nil
}
