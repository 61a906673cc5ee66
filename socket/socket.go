package socket

import (
	"github.com/vk/geoscript/engine"
)

// Socket is a typed handle to one output of one node. Implementations
// are the closed set of variants in this package; each declares the
// slot tags it may link into.
type Socket interface {
	// Handle returns the producing node's handle.
	Handle() Handle

	// Index is the output slot this socket reads from.
	Index() int

	// Accepts reports whether the variant may connect to an input slot
	// carrying the given tag.
	Accepts(tag engine.TypeTag) bool

	// Variant names the socket type for error messages.
	Variant() string
}

// isNilSocket reports whether v is a typed nil pointer to one of the
// variants. Optional arguments arrive this way and mean "leave the
// slot at its default", same as an untyped nil.
func isNilSocket(v any) bool {
	switch s := v.(type) {
	case nil:
		return true
	case *Scalar:
		return s == nil
	case *Vector3:
		return s == nil
	case *Boolean:
		return s == nil
	case *Geometry:
		return s == nil
	case *ObjectRef:
		return s == nil
	}
	return false
}
