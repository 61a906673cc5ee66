// Package random builds uniform and Bernoulli distribution nodes.
//
// One node kind serves every distribution; data_type selects which
// input slots are read and which output carries the result, so the
// builders wire explicit slot indices instead of positional argument
// order.
package random

import (
	"github.com/zclconf/go-cty/cty"

	"github.com/vk/geoscript/socket"
)

const kindRandomValue = "random_value"

// Input slot indices of the random_value kind.
const (
	slotMinVector = 0
	slotMaxVector = 1
	slotMin       = 2
	slotMax       = 3
	slotMinInt    = 4
	slotMaxInt    = 5
	slotProb      = 6
	slotID        = 7
	slotSeed      = 8
)

// Output slot indices of the random_value kind.
const (
	outVector  = 0
	outValue   = 1
	outInt     = 2
	outBoolean = 3
)

func randomNode(dataType string, anchors []any, slots map[int]any) (socket.Handle, error) {
	h, err := socket.NewNode(kindRandomValue, anchors...)
	if err != nil {
		return socket.Handle{}, err
	}
	if err := h.Node().SetAttr("data_type", cty.StringVal(dataType)); err != nil {
		return socket.Handle{}, err
	}
	for _, slot := range []int{slotMinVector, slotMaxVector, slotMin, slotMax, slotMinInt, slotMaxInt, slotProb, slotID, slotSeed} {
		v, ok := slots[slot]
		if !ok {
			continue
		}
		if err := h.ConnectArgument(slot, v); err != nil {
			return socket.Handle{}, err
		}
	}
	return h, nil
}

// Float builds a uniform float distribution on [min, max]. The id
// operand separates elements, the seed reshuffles the distribution.
func Float(min, max, id, seed any) (*socket.Scalar, error) {
	h, err := randomNode("FLOAT", []any{min, max, id, seed}, map[int]any{
		slotMin:  min,
		slotMax:  max,
		slotID:   id,
		slotSeed: seed,
	})
	if err != nil {
		return nil, err
	}
	return socket.NewScalar(h, outValue), nil
}

// Int builds a uniform integer distribution on [min, max].
func Int(min, max, id, seed any) (*socket.Scalar, error) {
	h, err := randomNode("INT", []any{min, max, id, seed}, map[int]any{
		slotMinInt: min,
		slotMaxInt: max,
		slotID:     id,
		slotSeed:   seed,
	})
	if err != nil {
		return nil, err
	}
	return socket.NewScalar(h, outInt), nil
}

// Vector builds an elementwise uniform distribution on the box
// spanned by min and max.
func Vector(min, max, id, seed any) (*socket.Vector3, error) {
	h, err := randomNode("FLOAT_VECTOR", []any{min, max, id, seed}, map[int]any{
		slotMinVector: min,
		slotMaxVector: max,
		slotID:        id,
		slotSeed:      seed,
	})
	if err != nil {
		return nil, err
	}
	return socket.NewVector3(h, outVector), nil
}

// Bool builds a Bernoulli distribution, true with the given
// probability.
func Bool(probability, id, seed any) (*socket.Boolean, error) {
	h, err := randomNode("BOOLEAN", []any{probability, id, seed}, map[int]any{
		slotProb: probability,
		slotID:   id,
		slotSeed: seed,
	})
	if err != nil {
		return nil, err
	}
	return socket.NewBoolean(h, outBoolean), nil
}
