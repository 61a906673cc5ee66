package socket

import (
	"errors"
	"fmt"
)

// ErrNotSupported marks an arithmetic dispatch that no operand pairing
// can serve. Callers match it with errors.Is.
var ErrNotSupported = errors.New("operation not supported for operand types")

// TypeMismatchError reports an argument whose type cannot connect to
// the target input slot.
type TypeMismatchError struct {
	Arg      int
	Expected string
	Actual   string
}

func (e *TypeMismatchError) Error() string {
	return fmt.Sprintf("socket: argument %d: slot accepts %s, got %s", e.Arg, e.Expected, e.Actual)
}

// CrossGraphError reports sockets from two different graphs passed to
// one construction call.
type CrossGraphError struct {
	A string
	B string
}

func (e *CrossGraphError) Error() string {
	return fmt.Sprintf("socket: operands belong to different graphs %q and %q", e.A, e.B)
}

// NoAnchorError reports a construction call with no socket among its
// arguments, leaving no graph to build into.
type NoAnchorError struct {
	Kind string
}

func (e *NoAnchorError) Error() string {
	return fmt.Sprintf("socket: cannot place %q node: no socket argument anchors a graph", e.Kind)
}

// ArityError reports slot access beyond a node kind's declared arity.
type ArityError struct {
	Kind  string
	Dir   string
	Index int
	Len   int
}

func (e *ArityError) Error() string {
	return fmt.Sprintf("socket: node kind %q has %d %s slots, index %d out of range", e.Kind, e.Len, e.Dir, e.Index)
}
