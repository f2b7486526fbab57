package geometry

import (
	"fmt"
	"math"

	"github.com/hupe1980/geometry/internal/kernel"
)

// Vec2 is a 2-component vector.
type Vec2[T Scalar] [Dim2]T

// NewVec2 returns the vector (x, y).
func NewVec2[T Scalar](x, y T) Vec2[T] {
	return Vec2[T]{x, y}
}

// Zero2 returns the zero vector.
func Zero2[T Scalar]() Vec2[T] {
	return Vec2[T]{}
}

// Vec2FromSlice copies s into a new vector.
// Returns *ErrDimensionMismatch if len(s) != Dim2.
func Vec2FromSlice[T Scalar](s []T) (Vec2[T], error) {
	var v Vec2[T]
	if err := fromSlice(v[:], s); err != nil {
		return Vec2[T]{}, err
	}

	return v, nil
}

// ConvertVec2 converts every component of v to U.
func ConvertVec2[U, T Scalar](v Vec2[T]) Vec2[U] {
	return Vec2[U]{U(v[0]), U(v[1])}
}

// ScaleVec2 returns s * v.
func ScaleVec2[T Scalar](s T, v Vec2[T]) Vec2[T] {
	return v.Scale(s)
}

// Dim returns the number of components, Dim2.
func (Vec2[T]) Dim() int {
	return Dim2
}

// Data returns a copy of the components.
func (v Vec2[T]) Data() [Dim2]T {
	return v
}

// X returns the first component.
func (v Vec2[T]) X() T {
	return v[0]
}

// Y returns the second component.
func (v Vec2[T]) Y() T {
	return v[1]
}

// XY returns a copy of v.
func (v Vec2[T]) XY() Vec2[T] {
	return v
}

// Add returns v + o.
func (v Vec2[T]) Add(o Vec2[T]) (r Vec2[T]) {
	kernel.Add(r[:], v[:], o[:])
	return
}

// Sub returns v - o.
func (v Vec2[T]) Sub(o Vec2[T]) (r Vec2[T]) {
	kernel.Sub(r[:], v[:], o[:])
	return
}

// Mul returns the component-wise product of v and o.
func (v Vec2[T]) Mul(o Vec2[T]) (r Vec2[T]) {
	kernel.Mul(r[:], v[:], o[:])
	return
}

// Scale returns v * s.
func (v Vec2[T]) Scale(s T) (r Vec2[T]) {
	kernel.Scale(r[:], s, v[:])
	return
}

// Div returns v / s. For integer T a zero s panics.
func (v Vec2[T]) Div(s T) (r Vec2[T]) {
	kernel.Div(r[:], s, v[:])
	return
}

// Neg returns -v.
func (v Vec2[T]) Neg() Vec2[T] {
	kernel.Negate(v[:])
	return v
}

// Equal reports whether v == o (exact comparison).
func (v Vec2[T]) Equal(o Vec2[T]) bool {
	return v == o
}

// Dot returns the dot product of v and o in T; small integer types wrap.
func (v Vec2[T]) Dot(o Vec2[T]) T {
	return kernel.Dot(v[:], o[:])
}

// DotWide returns the dot product of v and o as float64. Integer components
// are summed in 64 bits, so 8- and 16-bit vectors do not wrap.
func (v Vec2[T]) DotWide(o Vec2[T]) float64 {
	return kernel.DotWide(v[:], o[:])
}

// SquaredMag returns the squared Euclidean length of v in T.
func (v Vec2[T]) SquaredMag() T {
	return kernel.SquaredNorm(v[:])
}

// Magnitude returns the Euclidean length of v.
func (v Vec2[T]) Magnitude() float64 {
	return math.Sqrt(kernel.DotWide(v[:], v[:]))
}

// Normalized returns v divided by its magnitude; v is not modified.
func (v Vec2[T]) Normalized() Vec2[T] {
	v.Normalize()
	return v
}

// Normalize divides v by its magnitude in place.
func (v *Vec2[T]) Normalize() {
	kernel.DivFloat(v[:], v.Magnitude())
}

// TryNormalized returns the normalized copy of v, or false if v is zero.
func (v Vec2[T]) TryNormalized() (Vec2[T], bool) {
	if v.Magnitude() == 0 {
		return Vec2[T]{}, false
	}

	return v.Normalized(), true
}

// Project returns the vector projection of v onto o.
func (v Vec2[T]) Project(o Vec2[T]) Vec2[T] {
	return o.Scale(v.Dot(o) / o.Dot(o))
}

// String returns v as "Vector2[...]".
func (v Vec2[T]) String() string {
	return formatComponents(v[:], newFormatOptions(nil))
}

// Text returns v formatted according to opts.
func (v Vec2[T]) Text(opts ...FormatOption) string {
	return formatComponents(v[:], newFormatOptions(opts))
}

// Format implements fmt.Formatter.
func (v Vec2[T]) Format(f fmt.State, verb rune) {
	formatState(f, verb, v[:])
}
