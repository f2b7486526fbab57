package main

import (
	"fmt"
	"io"

	"github.com/hupe1980/geometry"
)

func equalsText(eq bool) string {
	if eq {
		return "equals"
	}

	return "not equals"
}

func runDemo(w io.Writer) {
	access := geometry.NewVec3(10, 20, 30)
	mutable := geometry.NewVec3(1, 2, 3)
	mutable[0] = 42

	fmt.Fprintf(w, "dimension of %T: %d\n", geometry.Vector3{}, len(geometry.Vector3{}))
	fmt.Fprintf(w, "access %v: %d %d %d\n", access, access[0], access[1], access[2])
	fmt.Fprintf(w, "mutated %v\n", mutable)

	vec1 := geometry.NewVec3(1.0, 2.0, 3.0)
	vec2 := geometry.NewVec3(1.0, 2.0, 3.0)
	vec3 := geometry.NewVec3(16.0, -4.0, 256.0)

	fmt.Fprintf(w, "%v and %v are %s\n", vec1, vec2, equalsText(vec1 == vec2))
	fmt.Fprintf(w, "%v and %v are %s\n", vec1, vec2, equalsText(!(vec1 != vec2)))
	fmt.Fprintf(w, "%v and %v are %s\n", vec1, vec3, equalsText(vec1 == vec3))
	fmt.Fprintf(w, "%v and %v are %s\n", vec1, vec3, equalsText(!(vec1 != vec3)))

	vec4 := geometry.NewVec3[float32](1, 1, 1)
	fmt.Fprintln(w, vec4.XYZ())
	fmt.Fprintf(w, "magnitude of %v: %v\n", vec4, vec4.Magnitude())
	fmt.Fprintf(w, "cross product %v\n", vec1.Cross(geometry.ConvertVec3[float64](vec4)))
	fmt.Fprintln(w, vec1.Add(vec2))
	fmt.Fprintln(w, vec1.Mul(vec2))
	fmt.Fprintln(w, vec1.Sub(vec2))
	fmt.Fprintln(w, vec1.Sub(vec2).Sub(vec2))

	vec5 := geometry.NewVec2[float32](1, 2)
	vec6 := geometry.NewVec2(1.0, 2.0)
	fmt.Fprintf(w, "%v and %v are %s\n", vec5, vec6, equalsText(geometry.ConvertVec2[float64](vec5) == vec6))
}
