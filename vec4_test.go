package geometry_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hupe1980/geometry"
	"github.com/hupe1980/geometry/testutil"
)

func TestVec4(t *testing.T) {
	v := geometry.NewVec4(1, 2, 3, 4)
	w := geometry.Vec4[int]{4, 3, 2, 1}

	assert.Equal(t, 1, v.X())
	assert.Equal(t, 2, v.Y())
	assert.Equal(t, 3, v.Z())
	assert.Equal(t, 4, v.W())
	assert.Equal(t, geometry.NewVec2(1, 2), v.XY())
	assert.Equal(t, geometry.NewVec3(1, 2, 3), v.XYZ())

	assert.Equal(t, geometry.Vec4[int]{5, 5, 5, 5}, v.Add(w))
	assert.Equal(t, geometry.Vec4[int]{-3, -1, 1, 3}, v.Sub(w))
	assert.Equal(t, geometry.Vec4[int]{4, 6, 6, 4}, v.Mul(w))
	assert.Equal(t, geometry.Vec4[int]{2, 4, 6, 8}, v.Scale(2))
	assert.Equal(t, geometry.Vec4[int]{2, 4, 6, 8}, geometry.ScaleVec4(2, v))
	assert.Equal(t, geometry.Vec4[int]{0, 1, 1, 2}, v.Div(2))
	assert.Equal(t, geometry.Vec4[int]{-1, -2, -3, -4}, v.Neg())
	assert.Equal(t, 20, v.Dot(w))
	assert.Equal(t, 30, v.SquaredMag())
	assert.True(t, v.Equal(geometry.Vec4[int]{1, 2, 3, 4}))
	assert.False(t, v.Equal(w))

	u := geometry.Vec4[float64]{2, 0, 0, 0}
	assert.Equal(t, geometry.Vec4[float64]{1, 0, 0, 0}, u.Normalized())
	u.Normalize()
	assert.Equal(t, 1.0, u.Magnitude())

	assert.Equal(t, geometry.Vec4[float64]{0, 0, 0, 5}, geometry.Vec4[float64]{1, 2, 3, 5}.Project(geometry.Vec4[float64]{0, 0, 0, 1}))
}

func TestVec4Swizzle(t *testing.T) {
	rng := testutil.NewRNG(7)

	for i := 0; i < rounds; i++ {
		v := rng.IntVec4(-50, 50)
		assert.Equal(t, geometry.NewVec3(v[0], v[1], v[2]), v.XYZ())
		assert.Equal(t, geometry.NewVec2(v[0], v[1]), v.XY())
		assert.Equal(t, v.XY(), v.XYZ().XY())
	}
}

func TestVec4Properties(t *testing.T) {
	rng := testutil.NewRNG(7)

	for i := 0; i < rounds; i++ {
		a := rng.UniformVec4(-10, 10)
		b := rng.UniformVec4(-10, 10)

		assert.Equal(t, a.Add(b), b.Add(a))
		assert.Equal(t, geometry.Vec4[float64]{}, a.Sub(a))
		assert.Equal(t, a, a.Mul(geometry.Vec4[float64]{1, 1, 1, 1}))
		assert.Equal(t, a.Scale(0.5), geometry.ScaleVec4(0.5, a))

		if n, ok := a.TryNormalized(); ok {
			assert.InDelta(t, 1, n.Magnitude(), 1e-12)
		}
	}
}

func TestVec4SmallIntegers(t *testing.T) {
	v := geometry.Vec4[int16]{200, -200, 200, -200}

	assert.Equal(t, 160000.0, v.DotWide(v))
	assert.Equal(t, 400.0, v.Magnitude())
}
