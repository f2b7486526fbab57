package kernel

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDot(t *testing.T) {
	tests := []struct {
		name     string
		a, b     []float32
		expected float32
	}{
		{"Positive values", []float32{1, 2, 3}, []float32{4, 5, 6}, 32.0},
		{"Negative values", []float32{-1, -2, -3}, []float32{-4, -5, -6}, 32.0},
		{"Mixed values", []float32{1, -2, 3}, []float32{-4, 5, -6}, -32.0},
		{"Zero values", []float32{0, 0, 0}, []float32{0, 0, 0}, 0.0},
		{"Empty", []float32{}, []float32{}, 0.0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result := Dot(tc.a, tc.b)
			assert.Equal(t, tc.expected, result)
		})
	}
}

func TestDotInt(t *testing.T) {
	assert.Equal(t, 32, Dot([]int{1, 2, 3}, []int{4, 5, 6}))
	assert.Equal(t, int8(-4), Dot([]int8{1, -1, 2}, []int8{1, 1, -2}))
}

func TestSquaredNorm(t *testing.T) {
	assert.Equal(t, 14.0, SquaredNorm([]float64{1, 2, 3}))
	assert.Equal(t, uint(25), SquaredNorm([]uint{3, 4}))
}

func TestElementWise(t *testing.T) {
	a := []int{1, 2, 3}
	b := []int{4, 5, 6}
	dst := make([]int, 3)

	Add(dst, a, b)
	assert.Equal(t, []int{5, 7, 9}, dst)

	Sub(dst, a, b)
	assert.Equal(t, []int{-3, -3, -3}, dst)

	Mul(dst, a, b)
	assert.Equal(t, []int{4, 10, 18}, dst)

	Scale(dst, 3, a)
	assert.Equal(t, []int{3, 6, 9}, dst)

	Div(dst, 2, b)
	assert.Equal(t, []int{2, 2, 3}, dst)

	// Inputs are never written.
	assert.Equal(t, []int{1, 2, 3}, a)
	assert.Equal(t, []int{4, 5, 6}, b)
}

func TestAliasedDst(t *testing.T) {
	a := []float64{1, 2, 3}
	Add(a, a, a)
	assert.Equal(t, []float64{2, 4, 6}, a)

	Scale(a, 0.5, a)
	assert.Equal(t, []float64{1, 2, 3}, a)
}

func TestDivFloat(t *testing.T) {
	f := []float64{3, 4}
	DivFloat(f, 5)
	assert.InDelta(t, 0.6, f[0], 1e-12)
	assert.InDelta(t, 0.8, f[1], 1e-12)

	i := []int{7, -7}
	DivFloat(i, 2)
	assert.Equal(t, []int{3, -3}, i)
}

func TestNegate(t *testing.T) {
	a := []float32{1, -2, 0}
	Negate(a)
	assert.Equal(t, []float32{-1, 2, 0}, a)
}

func BenchmarkDot(b *testing.B) {
	const size = 4
	va := make([]float64, size)
	vb := make([]float64, size)

	for i := range va {
		va[i] = rand.Float64() // nolint gosec
		vb[i] = rand.Float64() // nolint gosec
	}

	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_ = Dot(va, vb)
	}
}

func TestDotWide(t *testing.T) {
	tests := []struct {
		name     string
		got      float64
		expected float64
	}{
		{"int8", DotWide([]int8{100, 100, 100}, []int8{100, 100, 100}), 30000},
		{"int8 negative", DotWide([]int8{-128, 127}, []int8{127, -128}), -32512},
		{"uint8", DotWide([]uint8{20, 0}, []uint8{20, 0}), 400},
		{"int16", DotWide([]int16{300, 300}, []int16{300, -200}), 30000},
		{"uint16", DotWide([]uint16{65535}, []uint16{65535}), 4294836225},
		{"float32", DotWide([]float32{0.5, 2}, []float32{4, 1}), 4},
		{"float64", DotWide([]float64{1, 2, 3}, []float64{4, 5, 6}), 32},
		{"Empty", DotWide([]int{}, []int{}), 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, tc.got)
		})
	}

	// Dot keeps T and wraps.
	assert.Equal(t, int8(48), Dot([]int8{100, 100, 100}, []int8{100, 100, 100}))
}
