// Package geometry provides fixed-dimension mathematical vectors over
// integer and floating-point scalars.
//
// The dimension is part of the type: Vec2[T], Vec3[T] and Vec4[T] are
// arrays of 2, 3 and 4 components. Operations only accept operands of the
// same type, so mixing dimensions is a compile error, and operations that
// need a minimum dimension (XYZ, Cross) only exist where they apply.
//
// Other dimensions are added the same way: declare another array type
// (e.g. type Vec5[T Scalar] [5]T) with methods over the internal kernels.
//
// # Quick Start
//
//	a := geometry.NewVec3(1.0, 2.0, 3.0)
//	b := geometry.Vector3{1, 1, 1}
//
//	a.Add(b)          // Vector3[2;3;4]
//	a.Mul(b)          // component-wise product
//	a.Scale(2)        // same as geometry.ScaleVec3(2, a)
//	a.Dot(b)          // 6, in T
//	a.DotWide(b)      // 6, as float64 without small-integer wrap
//	a.Cross(b)        // Vector3[-1;2;-1]
//	a.Magnitude()     // always float64
//	a.Normalized()    // new vector; a.Normalize() works in place
//	a.Project(b)      // projection of a onto b
//	a.XY()            // Vector2[1;2]
//
// Vectors are values: assignment copies all components and == compares
// them exactly. Components are accessed with index expressions (a[0]).
//
// # Preconditions
//
// Normalizing a zero vector and projecting onto a zero vector divide by
// zero. Float vectors get NaN components; integer projection panics.
// TryNormalized reports the zero case instead.
//
// # Formatting
//
// Vectors print as "Vector3[1;2;3]". Format verbs apply to every component
// (fmt.Sprintf("%.2f", v)), and Text accepts FormatOption values to change
// the prefix, separator, brackets or verb.
package geometry
