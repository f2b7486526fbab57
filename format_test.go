package geometry_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hupe1980/geometry"
)

func TestString(t *testing.T) {
	tests := []struct {
		name     string
		got      string
		expected string
	}{
		{"Vector3", geometry.NewVec3(1.0, 2.0, 3.0).String(), "Vector3[1;2;3]"},
		{"Vector3i", geometry.Vector3i{1, -2, 3}.String(), "Vector3[1;-2;3]"},
		{"Vector2", geometry.Vector2{0.5, -1}.String(), "Vector2[0.5;-1]"},
		{"Vector2f", geometry.Vector2f{1, 2}.String(), "Vector2[1;2]"},
		{"Vec4", geometry.Vec4[uint8]{1, 2, 3, 4}.String(), "Vector4[1;2;3;4]"},
		{"Zero", geometry.Vector3{}.String(), "Vector3[0;0;0]"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.got)
		})
	}
}

func TestFormatVerbs(t *testing.T) {
	tests := []struct {
		name     string
		format   string
		arg      any
		expected string
	}{
		{"Default", "%v", geometry.Vector3i{1, 2, 3}, "Vector3[1;2;3]"},
		{"String", "%s", geometry.Vector3{1, 2, 3}, "Vector3[1;2;3]"},
		{"Precision", "%.2f", geometry.Vector3{1, 2, 3}, "Vector3[1.00;2.00;3.00]"},
		{"Integer", "%d", geometry.Vector2i{7, -1}, "Vector2[7;-1]"},
		{"Width", "%3d", geometry.Vector2i{7, 1}, "Vector2[  7;  1]"},
		{"Plus", "%+d", geometry.Vec4[int]{1, -1, 0, 2}, "Vector4[+1;-1;+0;+2]"},
		{"Float32", "%v", geometry.Vector3f{1, 1, 1}, "Vector3[1;1;1]"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, fmt.Sprintf(tt.format, tt.arg))
		})
	}

	assert.Equal(t, "Vector3[1;2;3] and Vector3[1;2;3]",
		fmt.Sprint(geometry.Vector3{1, 2, 3}, " and ", geometry.Vector3{1, 2, 3}))
}

func TestText(t *testing.T) {
	v := geometry.Vector3{1, 2, 3}

	assert.Equal(t, v.String(), v.Text())
	assert.Equal(t, "v3(1, 2, 3)", v.Text(
		geometry.WithPrefix("v"),
		geometry.WithSeparator(", "),
		geometry.WithBrackets("(", ")"),
	))
	assert.Equal(t, "[1.0;2.0;3.0]", v.Text(
		geometry.WithPrefix(""),
		geometry.WithoutDimension(),
		geometry.WithVerb("%.1f"),
	))
	assert.Equal(t, "Vector3[1;2;3]", v.Text(geometry.WithVerb("")))
	assert.Equal(t, "Vector2<1 2>", geometry.Vector2i{1, 2}.Text(
		geometry.WithSeparator(" "),
		geometry.WithBrackets("<", ">"),
	))
	assert.Equal(t, "Vector4[1|2|3|4]", geometry.Vec4[int]{1, 2, 3, 4}.Text(geometry.WithSeparator("|")))
}
