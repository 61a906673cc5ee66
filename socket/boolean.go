package socket

import (
	"fmt"

	"github.com/zclconf/go-cty/cty"

	"github.com/vk/geoscript/engine"
)

const kindBooleanMath = "boolean_math"

// Boolean is a socket carrying a boolean field.
type Boolean struct {
	h   Handle
	idx int
}

// NewBoolean wraps output index of the handled node as a Boolean.
func NewBoolean(h Handle, index int) *Boolean {
	return &Boolean{h: h, idx: index}
}

// Handle returns the producing node's handle.
func (b *Boolean) Handle() Handle { return b.h }

// Index is the output slot this socket reads from.
func (b *Boolean) Index() int { return b.idx }

// Accepts reports whether the boolean may connect to a slot of the
// given tag.
func (b *Boolean) Accepts(tag engine.TypeTag) bool {
	return tag == engine.TagBoolean
}

// Variant names the socket type for error messages.
func (b *Boolean) Variant() string { return "Boolean" }

// BooleanBinary applies a two-operand logic operation. Each operand is
// a *Boolean or a bool, and at least one must be a *Boolean.
func BooleanBinary(left, right any, op string) (*Boolean, error) {
	if err := checkBooleanOperands(op, left, right); err != nil {
		return nil, err
	}
	h, err := AddLinkedNode(kindBooleanMath, left, right)
	if err != nil {
		return nil, err
	}
	if err := h.Node().SetAttr("operation", cty.StringVal(op)); err != nil {
		return nil, err
	}
	return NewBoolean(h, 0), nil
}

func checkBooleanOperands(op string, operands ...any) error {
	sockets := 0
	for _, o := range operands {
		if isNilSocket(o) {
			continue
		}
		switch o.(type) {
		case *Boolean:
			sockets++
		case bool:
		default:
			return fmt.Errorf("%w: %s with %T operand", ErrNotSupported, op, o)
		}
	}
	if sockets == 0 {
		return fmt.Errorf("%w: %s needs at least one Boolean operand", ErrNotSupported, op)
	}
	return nil
}

// And builds self AND other.
func (b *Boolean) And(other any) (*Boolean, error) { return BooleanBinary(b, other, "AND") }

// Or builds self OR other.
func (b *Boolean) Or(other any) (*Boolean, error) { return BooleanBinary(b, other, "OR") }

// Xor builds self XOR other.
func (b *Boolean) Xor(other any) (*Boolean, error) { return BooleanBinary(b, other, "XOR") }

// Xnor builds self XNOR other, true where both sides agree.
func (b *Boolean) Xnor(other any) (*Boolean, error) { return BooleanBinary(b, other, "XNOR") }

// Nimply builds self AND NOT other.
func (b *Boolean) Nimply(other any) (*Boolean, error) { return BooleanBinary(b, other, "NIMPLY") }

// Not builds the negation. Only the first input of the logic node is
// read for NOT.
func (b *Boolean) Not() (*Boolean, error) {
	h, err := AddLinkedNode(kindBooleanMath, b)
	if err != nil {
		return nil, err
	}
	if err := h.Node().SetAttr("operation", cty.StringVal("NOT")); err != nil {
		return nil, err
	}
	return NewBoolean(h, 0), nil
}
