package geometry

import "golang.org/x/exp/constraints"

// Scalar is the set of component types a vector can hold.
// Instantiating a vector with any other type is a compile error.
type Scalar interface {
	constraints.Integer | constraints.Float
}

// Dimensions of the vector types. They size the backing arrays and are
// usable wherever Go requires a constant.
const (
	Dim2 = 2
	Dim3 = 3
	Dim4 = 4
)

// Common instantiations.
type (
	Vector2  = Vec2[float64]
	Vector3  = Vec3[float64]
	Vector2f = Vec2[float32]
	Vector3f = Vec3[float32]
	Vector2i = Vec2[int]
	Vector3i = Vec3[int]
)
