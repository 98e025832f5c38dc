package glm

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTranslation(t *testing.T) {
	m3 := TranslationMat3(Vec2Of[float32](2, 3))
	assert.Equal(t, Vec3Of[float32](3, 4, 1), m3.Transform(Vec3Of[float32](1, 1, 1)))
	assert.Equal(t, Vec3Of[float32](1, 1, 0), m3.Transform(Vec3Of[float32](1, 1, 0)))
	assert.Equal(t, Vec3Of[float32](2, 3, 1), m3.Col3())

	m4 := TranslationMat4(Vec3Of[float64](2, 3, 4))
	assert.Equal(t, Vec3Of[float64](3, 5, 7), m4.TransformPoint(Vec3Of[float64](1, 2, 3)))
	assert.Equal(t, Vec4Of[float64](1, 2, 3, 0), m4.Transform(Vec4Of[float64](1, 2, 3, 0)))
	assert.Equal(t, Vec4Of[float64](2, 3, 4, 1), m4.Col4())
}

func TestScale(t *testing.T) {
	assert.Equal(t, Vec2Of[float32](2, 9), ScaleMat2(Vec2Of[float32](2, 3)).Transform(Vec2Of[float32](1, 3)))
	assert.Equal(t, Vec3Of[float32](2, 9, -4), ScaleMat3(Vec3Of[float32](2, 3, 4)).Transform(Vec3Of[float32](1, 3, -1)))
	assert.Equal(t, Vec4Of[float32](2, 9, -4, 5), ScaleMat4(Vec4Of[float32](2, 3, 4, 5)).Transform(Vec4Of[float32](1, 3, -1, 1)))
	assert.Equal(t, float32(24), ScaleMat3(Vec3Of[float32](2, 3, 4)).Determinant())
}

func TestRotationMatrices(t *testing.T) {
	r := RotationMat2[float64](DegToRad(90.0))
	assertVec2InDelta(t, YAxisVec2[float64](), r.Transform(XAxisVec2[float64]()))
	assertVec2InDelta(t, LeftVec2[float64](), r.Transform(YAxisVec2[float64]()))

	q := QuaternionFromAngleAxis(DegToRad(90.0), ZAxisVec3[float64]())
	assert.Equal(t, q.RotMat3(), RotationMat3(q))
	assert.Equal(t, q.RotMat4(), RotationMat4(q))
	assert.Equal(t, q.RotMat4(), Mat4FromQuaternion(q))
	assertVec3InDelta(t, YAxisVec3[float64](), RotationMat3(q).Transform(XAxisVec3[float64]()))
}

func TestChainedTransforms(t *testing.T) {
	q := QuaternionFromAngleAxis(DegToRad(90.0), ZAxisVec3[float64]())

	m := IdentityMat4[float64]().
		Translate(Vec3Of[float64](10, 0, 0)).
		Rotate(q).
		Scale(Vec3Of[float64](2, 2, 2))

	// scale first, then rotate, then translate
	assertVec3InDelta(t, Vec3Of[float64](10, 2, 0), m.TransformPoint(Vec3Of[float64](1, 0, 0)))
}

func TestPerspective(t *testing.T) {
	t.Run("finite", func(t *testing.T) {
		m := Perspective[float64](DegToRad(90.0), 2, 1, 100)

		assert.InDelta(t, 0.5, m[0].X(), 1e-12)
		assert.InDelta(t, 1.0, m[1].Y(), 1e-12)
		assert.Equal(t, -1.0, m[2].W())

		assert.InDelta(t, 1.0, depth(m, 1), 1e-12)
		assert.InDelta(t, 0.0, depth(m, 100), 1e-12)
		assert.Less(t, depth(m, 50), depth(m, 2))
	})

	t.Run("infinite", func(t *testing.T) {
		m := Perspective[float32](DegToRad(float32(60)), 1, 0.5, 0)

		assert.Equal(t, WAxisVec4[float32]().Neg(), m[2])
		assert.Equal(t, Vec4Of[float32](0, 0, 0.5, 0), m[3])
		assert.InDelta(t, math.Sqrt(3), m[1].Y(), delta)

		assert.InDelta(t, 1.0, depth(m, 0.5), delta)
		assert.InDelta(t, 0.0, depth(m, 1e7), delta)
	})
}

// depth projects a point at the given distance in front of the camera and
// returns its depth after the perspective divide.
func depth[T Float](m Mat4[T], distance T) T {
	clip := m.Transform(Vec4Of(0, 0, -distance, 1))
	return clip.Z() / clip.W()
}

func TestOrthographic(t *testing.T) {
	box := AABB3f{
		Min: Vec3Of[float32](-1, -2, -3),
		Max: Vec3Of[float32](3, 2, 5),
	}

	m := Orthographic(box)
	assert.Equal(t, Vec3Of[float32](0.5, 0.5, 0.5), m.TransformPoint(box.Max))
	assert.Equal(t, Vec3Of[float32](-0.5, -0.5, -0.5), m.TransformPoint(box.Min))
	assert.Equal(t, Vec3[float32]{}, m.TransformPoint(box.Centroid()))
}

func TestLookAt(t *testing.T) {
	eye := Vec3Of[float64](0, 0, 5)
	m := LookAt(eye, Vec3[float64]{}, UpVec3[float64]())

	assertVec3InDelta(t, Vec3[float64]{}, m.TransformPoint(eye))
	assertVec3InDelta(t, Vec3Of[float64](0, 0, -5), m.TransformPoint(Vec3[float64]{}))
	assertVec3InDelta(t, Vec3Of[float64](1, 1, -5), m.TransformPoint(Vec3Of[float64](1, 1, 0)))

	require.InDelta(t, 1.0, Mat3FromMat4(m).Determinant(), 1e-12)
}
