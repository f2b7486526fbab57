package geometry

import (
	"fmt"
	"math"

	"github.com/hupe1980/geometry/internal/kernel"
)

// Vec3 is a 3-component vector.
//
// Components are read and written with index expressions (v[0], v[1], v[2]).
// A constant index outside [0, Dim3) does not compile; a variable one panics.
type Vec3[T Scalar] [Dim3]T

// NewVec3 returns the vector (x, y, z).
func NewVec3[T Scalar](x, y, z T) Vec3[T] {
	return Vec3[T]{x, y, z}
}

// Zero3 returns the vector with every component set to zero.
// It is equal to the zero value of Vec3[T].
func Zero3[T Scalar]() Vec3[T] {
	return Vec3[T]{}
}

// Vec3FromSlice copies s into a new vector.
// Returns *ErrDimensionMismatch if len(s) != Dim3.
func Vec3FromSlice[T Scalar](s []T) (Vec3[T], error) {
	var v Vec3[T]
	if err := fromSlice(v[:], s); err != nil {
		return Vec3[T]{}, err
	}

	return v, nil
}

// ConvertVec3 converts every component of v to U using Go's conversion rules
// (float to integer conversions truncate toward zero).
func ConvertVec3[U, T Scalar](v Vec3[T]) Vec3[U] {
	return Vec3[U]{U(v[0]), U(v[1]), U(v[2])}
}

// ScaleVec3 returns s * v. It is equal to v.Scale(s).
func ScaleVec3[T Scalar](s T, v Vec3[T]) Vec3[T] {
	return v.Scale(s)
}

// Dim returns the number of components, Dim3.
func (Vec3[T]) Dim() int {
	return Dim3
}

// Data returns a copy of the components.
func (v Vec3[T]) Data() [Dim3]T {
	return v
}

// X returns the first component.
func (v Vec3[T]) X() T {
	return v[0]
}

// Y returns the second component.
func (v Vec3[T]) Y() T {
	return v[1]
}

// Z returns the third component.
func (v Vec3[T]) Z() T {
	return v[2]
}

// XY returns the first two components as a Vec2.
func (v Vec3[T]) XY() Vec2[T] {
	return Vec2[T]{v[0], v[1]}
}

// XYZ returns a copy of v.
func (v Vec3[T]) XYZ() Vec3[T] {
	return v
}

// Add returns v + o.
func (v Vec3[T]) Add(o Vec3[T]) (r Vec3[T]) {
	kernel.Add(r[:], v[:], o[:])
	return
}

// Sub returns v - o.
func (v Vec3[T]) Sub(o Vec3[T]) (r Vec3[T]) {
	kernel.Sub(r[:], v[:], o[:])
	return
}

// Mul returns the component-wise (Hadamard) product of v and o.
func (v Vec3[T]) Mul(o Vec3[T]) (r Vec3[T]) {
	kernel.Mul(r[:], v[:], o[:])
	return
}

// Scale returns v * s.
func (v Vec3[T]) Scale(s T) (r Vec3[T]) {
	kernel.Scale(r[:], s, v[:])
	return
}

// Div returns v / s. For integer T a zero s panics.
func (v Vec3[T]) Div(s T) (r Vec3[T]) {
	kernel.Div(r[:], s, v[:])
	return
}

// Neg returns -v.
func (v Vec3[T]) Neg() Vec3[T] {
	kernel.Negate(v[:])
	return v
}

// Equal reports whether every component of v equals the one of o.
// The comparison is exact; it is the same as v == o.
func (v Vec3[T]) Equal(o Vec3[T]) bool {
	return v == o
}

// Dot returns the dot product of v and o in T.
// Small integer types wrap on overflow; DotWide does not.
func (v Vec3[T]) Dot(o Vec3[T]) T {
	return kernel.Dot(v[:], o[:])
}

// DotWide returns the dot product of v and o as float64. Integer components
// are summed in 64 bits, so 8- and 16-bit vectors do not wrap.
func (v Vec3[T]) DotWide(o Vec3[T]) float64 {
	return kernel.DotWide(v[:], o[:])
}

// SquaredMag returns the squared Euclidean length of v in T.
// Like Dot it wraps for small integer types.
func (v Vec3[T]) SquaredMag() T {
	return kernel.SquaredNorm(v[:])
}

// Magnitude returns the Euclidean length of v.
func (v Vec3[T]) Magnitude() float64 {
	return math.Sqrt(kernel.DotWide(v[:], v[:]))
}

// Normalized returns v divided by its magnitude; v is not modified.
//
// The zero vector has no direction: for float T the result is NaN in every
// component. Use TryNormalized when v may be zero.
func (v Vec3[T]) Normalized() Vec3[T] {
	v.Normalize()
	return v
}

// Normalize divides v by its magnitude in place.
// The zero vector precondition of Normalized applies.
func (v *Vec3[T]) Normalize() {
	kernel.DivFloat(v[:], v.Magnitude())
}

// TryNormalized returns the normalized copy of v.
// Returns false if v has zero magnitude.
func (v Vec3[T]) TryNormalized() (Vec3[T], bool) {
	if v.Magnitude() == 0 {
		return Vec3[T]{}, false
	}

	return v.Normalized(), true
}

// Cross returns the cross product v × o.
func (v Vec3[T]) Cross(o Vec3[T]) Vec3[T] {
	return Vec3[T]{
		v[1]*o[2] - v[2]*o[1],
		v[2]*o[0] - v[0]*o[2],
		v[0]*o[1] - v[1]*o[0],
	}
}

// Project returns the vector projection of v onto o:
// o * (v·o / o·o).
//
// For integer T the quotient is an integer division and a zero o panics.
// For float T a zero o yields NaN components.
func (v Vec3[T]) Project(o Vec3[T]) Vec3[T] {
	return o.Scale(v.Dot(o) / o.Dot(o))
}

// String returns v as "Vector3[x;y;z]".
func (v Vec3[T]) String() string {
	return formatComponents(v[:], newFormatOptions(nil))
}

// Text returns v formatted according to opts.
func (v Vec3[T]) Text(opts ...FormatOption) string {
	return formatComponents(v[:], newFormatOptions(opts))
}

// Format implements fmt.Formatter.
func (v Vec3[T]) Format(f fmt.State, verb rune) {
	formatState(f, verb, v[:])
}
