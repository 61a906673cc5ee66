package socket

import (
	"fmt"

	"github.com/zclconf/go-cty/cty"

	"github.com/vk/geoscript/engine"
)

const (
	kindMath    = "math"
	kindCompare = "compare"
)

// Scalar is a socket carrying a floating point or integer field.
type Scalar struct {
	h   Handle
	idx int
}

// NewScalar wraps output index of the handled node as a Scalar.
func NewScalar(h Handle, index int) *Scalar {
	return &Scalar{h: h, idx: index}
}

// Handle returns the producing node's handle.
func (s *Scalar) Handle() Handle { return s.h }

// Index is the output slot this socket reads from.
func (s *Scalar) Index() int { return s.idx }

// Accepts reports whether the scalar may connect to a slot of the
// given tag.
func (s *Scalar) Accepts(tag engine.TypeTag) bool {
	return tag == engine.TagValue || tag == engine.TagInt
}

// Variant names the socket type for error messages.
func (s *Scalar) Variant() string { return "Scalar" }

// ScalarUnary applies a single-operand math operation.
func ScalarUnary(operand *Scalar, op string) (*Scalar, error) {
	h, err := AddLinkedNode(kindMath, operand)
	if err != nil {
		return nil, err
	}
	if err := h.Node().SetAttr("operation", cty.StringVal(op)); err != nil {
		return nil, err
	}
	return NewScalar(h, 0), nil
}

// ScalarBinary applies a two-operand math operation. Each operand is a
// *Scalar, float64 or int, and at least one must be a *Scalar.
func ScalarBinary(left, right any, op string) (*Scalar, error) {
	if err := checkScalarOperands(op, left, right); err != nil {
		return nil, err
	}
	h, err := AddLinkedNode(kindMath, left, right)
	if err != nil {
		return nil, err
	}
	if err := h.Node().SetAttr("operation", cty.StringVal(op)); err != nil {
		return nil, err
	}
	return NewScalar(h, 0), nil
}

// ScalarTernary applies a three-operand math operation such as
// MULTIPLY_ADD, SMOOTH_MIN or WRAP.
func ScalarTernary(a, b, c any, op string) (*Scalar, error) {
	if err := checkScalarOperands(op, a, b, c); err != nil {
		return nil, err
	}
	h, err := AddLinkedNode(kindMath, a, b, c)
	if err != nil {
		return nil, err
	}
	if err := h.Node().SetAttr("operation", cty.StringVal(op)); err != nil {
		return nil, err
	}
	return NewScalar(h, 0), nil
}

// ScalarComparison compares two scalars and yields a boolean field.
// The epsilon operand only matters for EQUAL and NOT_EQUAL and may be
// nil otherwise.
func ScalarComparison(left, right, epsilon any, op, mode string) (*Boolean, error) {
	if err := checkScalarOperands(op, left, right, epsilon); err != nil {
		return nil, err
	}
	h, err := AddLinkedNode(kindCompare, left, right, epsilon)
	if err != nil {
		return nil, err
	}
	node := h.Node()
	if err := node.SetAttr("operation", cty.StringVal(op)); err != nil {
		return nil, err
	}
	if err := node.SetAttr("data_type", cty.StringVal("FLOAT")); err != nil {
		return nil, err
	}
	if err := node.SetAttr("mode", cty.StringVal(mode)); err != nil {
		return nil, err
	}
	return NewBoolean(h, 0), nil
}

// checkScalarOperands rejects operand pairings the scalar dispatch
// cannot serve, before any node is created.
func checkScalarOperands(op string, operands ...any) error {
	sockets := 0
	for _, o := range operands {
		if isNilSocket(o) {
			continue
		}
		switch o.(type) {
		case *Scalar:
			sockets++
		case float64, int:
		default:
			return fmt.Errorf("%w: %s with %T operand", ErrNotSupported, op, o)
		}
	}
	if sockets == 0 {
		return fmt.Errorf("%w: %s needs at least one Scalar operand", ErrNotSupported, op)
	}
	return nil
}

// Add builds self + other.
func (s *Scalar) Add(other any) (*Scalar, error) { return ScalarBinary(s, other, "ADD") }

// Sub builds self - other.
func (s *Scalar) Sub(other any) (*Scalar, error) { return ScalarBinary(s, other, "SUBTRACT") }

// Mul builds self * other.
func (s *Scalar) Mul(other any) (*Scalar, error) { return ScalarBinary(s, other, "MULTIPLY") }

// Div builds self / other.
func (s *Scalar) Div(other any) (*Scalar, error) { return ScalarBinary(s, other, "DIVIDE") }

// Mod builds self mod other.
func (s *Scalar) Mod(other any) (*Scalar, error) { return ScalarBinary(s, other, "MODULO") }

// Pow builds self raised to other.
func (s *Scalar) Pow(other any) (*Scalar, error) { return ScalarBinary(s, other, "POWER") }

// Neg builds -self as a multiplication by -1.
func (s *Scalar) Neg() (*Scalar, error) { return ScalarBinary(-1.0, s, "MULTIPLY") }

// Abs builds |self|.
func (s *Scalar) Abs() (*Scalar, error) { return ScalarUnary(s, "ABSOLUTE") }

// Round builds self rounded to the nearest integer.
func (s *Scalar) Round() (*Scalar, error) { return ScalarUnary(s, "ROUND") }

// Trunc builds self with the fractional part removed.
func (s *Scalar) Trunc() (*Scalar, error) { return ScalarUnary(s, "TRUNC") }

// Floor builds the largest integer below self.
func (s *Scalar) Floor() (*Scalar, error) { return ScalarUnary(s, "FLOOR") }

// Ceil builds the smallest integer above self.
func (s *Scalar) Ceil() (*Scalar, error) { return ScalarUnary(s, "CEIL") }

// LessThan compares self < other.
func (s *Scalar) LessThan(other any) (*Boolean, error) {
	return ScalarComparison(s, other, nil, "LESS_THAN", "ELEMENT")
}

// GreaterThan compares self > other.
func (s *Scalar) GreaterThan(other any) (*Boolean, error) {
	return ScalarComparison(s, other, nil, "GREATER_THAN", "ELEMENT")
}

// LessEqual compares self <= other.
func (s *Scalar) LessEqual(other any) (*Boolean, error) {
	return ScalarComparison(s, other, nil, "LESS_EQUAL", "ELEMENT")
}

// GreaterEqual compares self >= other.
func (s *Scalar) GreaterEqual(other any) (*Boolean, error) {
	return ScalarComparison(s, other, nil, "GREATER_EQUAL", "ELEMENT")
}

// ToRadians converts the field from degrees to radians.
func (s *Scalar) ToRadians() (*Scalar, error) { return ScalarUnary(s, "RADIANS") }

// ToDegrees converts the field from radians to degrees.
func (s *Scalar) ToDegrees() (*Scalar, error) { return ScalarUnary(s, "DEGREES") }
