package geometry

import (
	"fmt"
	"math"

	"github.com/hupe1980/geometry/internal/kernel"
)

// Vec4 is a 4-component vector.
type Vec4[T Scalar] [Dim4]T

// NewVec4 returns the vector (x, y, z, w).
func NewVec4[T Scalar](x, y, z, w T) Vec4[T] {
	return Vec4[T]{x, y, z, w}
}

// Zero4 returns the zero vector.
func Zero4[T Scalar]() Vec4[T] {
	return Vec4[T]{}
}

// Vec4FromSlice copies s into a new vector.
// Returns *ErrDimensionMismatch if len(s) != Dim4.
func Vec4FromSlice[T Scalar](s []T) (Vec4[T], error) {
	var v Vec4[T]
	if err := fromSlice(v[:], s); err != nil {
		return Vec4[T]{}, err
	}

	return v, nil
}

// ConvertVec4 converts every component of v to U.
func ConvertVec4[U, T Scalar](v Vec4[T]) Vec4[U] {
	return Vec4[U]{U(v[0]), U(v[1]), U(v[2]), U(v[3])}
}

// ScaleVec4 returns s * v.
func ScaleVec4[T Scalar](s T, v Vec4[T]) Vec4[T] {
	return v.Scale(s)
}

// Dim returns the number of components, Dim4.
func (Vec4[T]) Dim() int {
	return Dim4
}

// Data returns a copy of the components.
func (v Vec4[T]) Data() [Dim4]T {
	return v
}

// X returns the first component.
func (v Vec4[T]) X() T {
	return v[0]
}

// Y returns the second component.
func (v Vec4[T]) Y() T {
	return v[1]
}

// Z returns the third component.
func (v Vec4[T]) Z() T {
	return v[2]
}

// W returns the fourth component.
func (v Vec4[T]) W() T {
	return v[3]
}

// XY returns the first two components as a Vec2.
func (v Vec4[T]) XY() Vec2[T] {
	return Vec2[T]{v[0], v[1]}
}

// XYZ returns the first three components as a Vec3.
func (v Vec4[T]) XYZ() Vec3[T] {
	return Vec3[T]{v[0], v[1], v[2]}
}

// Add returns v + o.
func (v Vec4[T]) Add(o Vec4[T]) (r Vec4[T]) {
	kernel.Add(r[:], v[:], o[:])
	return
}

// Sub returns v - o.
func (v Vec4[T]) Sub(o Vec4[T]) (r Vec4[T]) {
	kernel.Sub(r[:], v[:], o[:])
	return
}

// Mul returns the component-wise product of v and o.
func (v Vec4[T]) Mul(o Vec4[T]) (r Vec4[T]) {
	kernel.Mul(r[:], v[:], o[:])
	return
}

// Scale returns v * s.
func (v Vec4[T]) Scale(s T) (r Vec4[T]) {
	kernel.Scale(r[:], s, v[:])
	return
}

// Div returns v / s. For integer T a zero s panics.
func (v Vec4[T]) Div(s T) (r Vec4[T]) {
	kernel.Div(r[:], s, v[:])
	return
}

// Neg returns -v.
func (v Vec4[T]) Neg() Vec4[T] {
	kernel.Negate(v[:])
	return v
}

// Equal reports whether v == o (exact comparison).
func (v Vec4[T]) Equal(o Vec4[T]) bool {
	return v == o
}

// Dot returns the dot product of v and o in T; small integer types wrap.
func (v Vec4[T]) Dot(o Vec4[T]) T {
	return kernel.Dot(v[:], o[:])
}

// DotWide returns the dot product of v and o as float64. Integer components
// are summed in 64 bits, so 8- and 16-bit vectors do not wrap.
func (v Vec4[T]) DotWide(o Vec4[T]) float64 {
	return kernel.DotWide(v[:], o[:])
}

// SquaredMag returns the squared Euclidean length of v in T.
func (v Vec4[T]) SquaredMag() T {
	return kernel.SquaredNorm(v[:])
}

// Magnitude returns the Euclidean length of v.
func (v Vec4[T]) Magnitude() float64 {
	return math.Sqrt(kernel.DotWide(v[:], v[:]))
}

// Normalized returns v divided by its magnitude; v is not modified.
func (v Vec4[T]) Normalized() Vec4[T] {
	v.Normalize()
	return v
}

// Normalize divides v by its magnitude in place.
func (v *Vec4[T]) Normalize() {
	kernel.DivFloat(v[:], v.Magnitude())
}

// TryNormalized returns the normalized copy of v, or false if v is zero.
func (v Vec4[T]) TryNormalized() (Vec4[T], bool) {
	if v.Magnitude() == 0 {
		return Vec4[T]{}, false
	}

	return v.Normalized(), true
}

// Project returns the vector projection of v onto o.
func (v Vec4[T]) Project(o Vec4[T]) Vec4[T] {
	return o.Scale(v.Dot(o) / o.Dot(o))
}

// String returns v as "Vector4[...]".
func (v Vec4[T]) String() string {
	return formatComponents(v[:], newFormatOptions(nil))
}

// Text returns v formatted according to opts.
func (v Vec4[T]) Text(opts ...FormatOption) string {
	return formatComponents(v[:], newFormatOptions(opts))
}

// Format implements fmt.Formatter.
func (v Vec4[T]) Format(f fmt.State, verb rune) {
	formatState(f, verb, v[:])
}
