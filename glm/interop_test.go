package glm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/image/math/f32"
)

func TestVectorInterop(t *testing.T) {
	assert.Equal(t, f32.Vec2{1, 2}, Vec2Of[float64](1, 2).F32())
	assert.Equal(t, f32.Vec3{1, 2, 3}, Vec3Of[float32](1, 2, 3).F32())
	assert.Equal(t, f32.Vec4{1, 2, 3, 4}, Vec4Of[float64](1, 2, 3, 4).F32())

	assert.Equal(t, Vec2Of[float64](1, 2), Vec2FromF32[float64](f32.Vec2{1, 2}))
	assert.Equal(t, Vec3Of[float32](1, 2, 3), Vec3FromF32[float32](f32.Vec3{1, 2, 3}))
	assert.Equal(t, Vec4Of[float64](1, 2, 3, 4), Vec4FromF32[float64](f32.Vec4{1, 2, 3, 4}))
}

func TestMatrixInterop(t *testing.T) {
	m := Mat4FromRows[float64](
		1, 2, 3, 4,
		5, 6, 7, 8,
		9, 10, 11, 12,
		13, 14, 15, 16,
	)

	want := f32.Mat4{
		1, 2, 3, 4,
		5, 6, 7, 8,
		9, 10, 11, 12,
		13, 14, 15, 16,
	}

	assert.Equal(t, want, m.F32())
	assert.Equal(t, m, Mat4FromF32[float64](want))

	// translation sits in the last column, the last element of each row
	translation := TranslationMat4(Vec3Of[float32](7, 8, 9)).F32()
	assert.Equal(t, float32(7), translation[3])
	assert.Equal(t, float32(8), translation[7])
	assert.Equal(t, float32(9), translation[11])

	m3 := Mat3FromRows[float32](
		1, 2, 3,
		4, 5, 6,
		7, 8, 9,
	)
	assert.Equal(t, f32.Mat3{1, 2, 3, 4, 5, 6, 7, 8, 9}, m3.F32())
	assert.Equal(t, m3, Mat3FromF32[float32](m3.F32()))
}
