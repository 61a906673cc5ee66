// Package gmath builds standard scalar math over the socket layer.
// Operands follow the socket dispatch rules: *socket.Scalar, float64
// or int, with at least one Scalar to anchor the graph.
package gmath

import (
	"github.com/zclconf/go-cty/cty"

	"github.com/vk/geoscript/socket"
)

// MultiplyAdd builds value*multiplier + addend as one fused node.
func MultiplyAdd(value, multiplier, addend any) (*socket.Scalar, error) {
	return socket.ScalarTernary(value, multiplier, addend, "MULTIPLY_ADD")
}

// CompareEpsilon yields 1.0 where a and b differ by at most epsilon,
// 0.0 elsewhere.
func CompareEpsilon(a, b, epsilon any) (*socket.Scalar, error) {
	return socket.ScalarTernary(a, b, epsilon, "COMPARE")
}

// SmoothMin is a smooth, differentiable approximation of min.
func SmoothMin(a, b, distance any) (*socket.Scalar, error) {
	return socket.ScalarTernary(a, b, distance, "SMOOTH_MIN")
}

// SmoothMax is a smooth, differentiable approximation of max.
func SmoothMax(a, b, distance any) (*socket.Scalar, error) {
	return socket.ScalarTernary(a, b, distance, "SMOOTH_MAX")
}

// Wrap folds value into the range [min, max).
func Wrap(value, min, max any) (*socket.Scalar, error) {
	return socket.ScalarTernary(value, min, max, "WRAP")
}

// Clamp limits the field to [0, 1]. When the socket already comes from
// a node with a clamp flag, the flag is switched on in place and the
// same socket is returned; otherwise one pass-through node is added.
func Clamp(s *socket.Scalar) (*socket.Scalar, error) {
	node := s.Handle().Node()
	switch node.Kind() {
	case "math":
		if err := node.SetAttr("use_clamp", cty.True); err != nil {
			return nil, err
		}
		return s, nil
	case "map_range":
		if err := node.SetAttr("clamp", cty.True); err != nil {
			return nil, err
		}
		return s, nil
	}

	h, err := socket.AddLinkedNode("math", s, 0.0)
	if err != nil {
		return nil, err
	}
	if err := h.Node().SetAttr("operation", cty.StringVal("ADD")); err != nil {
		return nil, err
	}
	if err := h.Node().SetAttr("use_clamp", cty.True); err != nil {
		return nil, err
	}
	return socket.NewScalar(h, 0), nil
}

// Log takes the logarithm of value in the given base.
func Log(value, base any) (*socket.Scalar, error) {
	return socket.ScalarBinary(value, base, "LOGARITHM")
}

// Sqrt takes the square root.
func Sqrt(value *socket.Scalar) (*socket.Scalar, error) {
	return socket.ScalarUnary(value, "SQRT")
}

// InverseSqrt builds 1/sqrt(value).
func InverseSqrt(value *socket.Scalar) (*socket.Scalar, error) {
	return socket.ScalarUnary(value, "INVERSE_SQRT")
}

// Exp raises e to the value.
func Exp(value *socket.Scalar) (*socket.Scalar, error) {
	return socket.ScalarUnary(value, "EXPONENT")
}

// Power raises base to exp.
func Power(base, exp any) (*socket.Scalar, error) {
	return socket.ScalarBinary(base, exp, "POWER")
}

// Min takes the smaller of two fields.
func Min(a, b any) (*socket.Scalar, error) {
	return socket.ScalarBinary(a, b, "MINIMUM")
}

// Max takes the larger of two fields.
func Max(a, b any) (*socket.Scalar, error) {
	return socket.ScalarBinary(a, b, "MAXIMUM")
}

// Sign maps positive values to 1, negative to -1 and zero to 0.
func Sign(value *socket.Scalar) (*socket.Scalar, error) {
	return socket.ScalarUnary(value, "SIGN")
}

// Fract keeps the fractional part of the value.
func Fract(value *socket.Scalar) (*socket.Scalar, error) {
	return socket.ScalarUnary(value, "FRACT")
}

// Snap rounds value down to a multiple of increment.
func Snap(value, increment any) (*socket.Scalar, error) {
	return socket.ScalarBinary(value, increment, "SNAP")
}

// PingPong bounces the value between 0 and scale.
func PingPong(value, scale any) (*socket.Scalar, error) {
	return socket.ScalarBinary(value, scale, "PINGPONG")
}

// Sin returns the sine of the field.
func Sin(value *socket.Scalar) (*socket.Scalar, error) {
	return socket.ScalarUnary(value, "SINE")
}

// Cos returns the cosine of the field.
func Cos(value *socket.Scalar) (*socket.Scalar, error) {
	return socket.ScalarUnary(value, "COSINE")
}

// Tan returns the tangent of the field.
func Tan(value *socket.Scalar) (*socket.Scalar, error) {
	return socket.ScalarUnary(value, "TANGENT")
}

// Asin returns the arcsine of the field.
func Asin(value *socket.Scalar) (*socket.Scalar, error) {
	return socket.ScalarUnary(value, "ARCSINE")
}

// Acos returns the arccosine of the field.
func Acos(value *socket.Scalar) (*socket.Scalar, error) {
	return socket.ScalarUnary(value, "ARCCOSINE")
}

// Atan returns the arctangent of the field.
func Atan(value *socket.Scalar) (*socket.Scalar, error) {
	return socket.ScalarUnary(value, "ARCTANGENT")
}

// Atan2 returns the angle of the point (x, y) from the positive
// x-axis. Argument order follows the usual atan2 convention.
func Atan2(y, x any) (*socket.Scalar, error) {
	return socket.ScalarBinary(y, x, "ARCTAN2")
}

// Sinh returns the hyperbolic sine of the field.
func Sinh(value *socket.Scalar) (*socket.Scalar, error) {
	return socket.ScalarUnary(value, "SINH")
}

// Cosh returns the hyperbolic cosine of the field.
func Cosh(value *socket.Scalar) (*socket.Scalar, error) {
	return socket.ScalarUnary(value, "COSH")
}

// Tanh returns the hyperbolic tangent of the field.
func Tanh(value *socket.Scalar) (*socket.Scalar, error) {
	return socket.ScalarUnary(value, "TANH")
}

// Step is the Heaviside step: 1.0 where x < edge, 0.0 otherwise.
func Step(edge, x any) (*socket.Scalar, error) {
	return socket.ScalarBinary(x, edge, "LESS_THAN")
}

// Drop mirrors Step: 1.0 where x > edge, 0.0 otherwise.
func Drop(edge, x any) (*socket.Scalar, error) {
	return socket.ScalarBinary(x, edge, "GREATER_THAN")
}

// IsEqual is true where a and b differ by at most epsilon.
func IsEqual(a, b, epsilon any) (*socket.Boolean, error) {
	return socket.ScalarComparison(a, b, epsilon, "EQUAL", "ELEMENT")
}

// IsNotEqual is true where a and b differ by more than epsilon.
func IsNotEqual(a, b, epsilon any) (*socket.Boolean, error) {
	return socket.ScalarComparison(a, b, epsilon, "NOT_EQUAL", "ELEMENT")
}

// MapRange remaps value from [fromMin, fromMax] to [toMin, toMax]
// without clamping. Steps only matters for STEPPED interpolation.
func MapRange(value, fromMin, fromMax, toMin, toMax, steps any, interpolation string) (*socket.Scalar, error) {
	return mapRange(value, fromMin, fromMax, toMin, toMax, steps, interpolation, false)
}

// MapRangeClamped remaps like MapRange and clamps the result to the
// target range.
func MapRangeClamped(value, fromMin, fromMax, toMin, toMax, steps any, interpolation string) (*socket.Scalar, error) {
	return mapRange(value, fromMin, fromMax, toMin, toMax, steps, interpolation, true)
}

func mapRange(value, fromMin, fromMax, toMin, toMax, steps any, interpolation string, clamp bool) (*socket.Scalar, error) {
	h, err := socket.AddLinkedNode("map_range", value, fromMin, fromMax, toMin, toMax, steps)
	if err != nil {
		return nil, err
	}
	node := h.Node()
	if err := node.SetAttr("interpolation_type", cty.StringVal(interpolation)); err != nil {
		return nil, err
	}
	if err := node.SetAttr("clamp", cty.BoolVal(clamp)); err != nil {
		return nil, err
	}
	return socket.NewScalar(h, 0), nil
}
