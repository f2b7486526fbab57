// Package kernel provides the element-wise loops behind the fixed-size vector types.
// This is an internal package - external users should use the geometry package.
//
// All functions assume their slice arguments have the same length
// (caller's responsibility). Results are written to the first argument.
package kernel

import "golang.org/x/exp/constraints"

// Number is the set of element types the kernels operate on.
type Number interface {
	constraints.Integer | constraints.Float
}

// Add stores a+b in dst.
func Add[T Number](dst, a, b []T) {
	for i := range dst {
		dst[i] = a[i] + b[i]
	}
}

// Sub stores a-b in dst.
func Sub[T Number](dst, a, b []T) {
	for i := range dst {
		dst[i] = a[i] - b[i]
	}
}

// Mul stores the element-wise product of a and b in dst.
func Mul[T Number](dst, a, b []T) {
	for i := range dst {
		dst[i] = a[i] * b[i]
	}
}

// Scale stores alpha*src in dst.
func Scale[T Number](dst []T, alpha T, src []T) {
	for i := range dst {
		dst[i] = src[i] * alpha
	}
}

// Div stores src/alpha in dst.
// For integer element types a zero alpha panics.
func Div[T Number](dst []T, alpha T, src []T) {
	for i := range dst {
		dst[i] = src[i] / alpha
	}
}

// DivFloat divides every element of a by d in float64 and converts the
// quotient back to T. Integer elements are truncated toward zero.
func DivFloat[T Number](a []T, d float64) {
	for i := range a {
		a[i] = T(float64(a[i]) / d)
	}
}

// Dot calculates the dot product of two vectors in T.
// Small integer types wrap on overflow; use DotWide to avoid it.
func Dot[T Number](a, b []T) T {
	var ret T
	for i := range a {
		ret += a[i] * b[i]
	}

	return ret
}

// SquaredNorm calculates the dot product of a with itself.
func SquaredNorm[T Number](a []T) T {
	return Dot(a, a)
}

// DotWide calculates the dot product of two vectors without wrapping small
// integer types. Integer elements are multiplied and summed in int64
// (uint64 for unsigned types), float elements in float64.
// The sum is exact for 8- and 16-bit integer elements.
func DotWide[T Number](a, b []T) float64 {
	switch {
	case isFloat[T]():
		var ret float64
		for i := range a {
			ret += float64(a[i]) * float64(b[i])
		}

		return ret
	case isSigned[T]():
		var ret int64
		for i := range a {
			ret += int64(a[i]) * int64(b[i])
		}

		return float64(ret)
	default:
		var ret uint64
		for i := range a {
			ret += uint64(a[i]) * uint64(b[i])
		}

		return float64(ret)
	}
}

func isFloat[T Number]() bool {
	half := 0.5
	return T(half) != 0
}

func isSigned[T Number]() bool {
	var m T
	m--
	return m < 0
}

// Negate flips the sign of every element of a.
func Negate[T Number](a []T) {
	for i := range a {
		a[i] = -a[i]
	}
}
