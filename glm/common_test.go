package glm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLerp(t *testing.T) {
	src := Vec3Of[float32](4, 0, 8)
	dst := Vec3Of[float32](0, 4, 0)

	assert.Equal(t, src, Lerp(src, dst, float32(1)))
	assert.Equal(t, dst, Lerp(src, dst, float32(0)))
	assert.Equal(t, Vec3Of[float32](1, 3, 2), Lerp(src, dst, float32(0.25)))

	n := Nlerp(Vec2Of[float64](1, 0), Vec2Of[float64](0, 1), 0.5)
	assertVec2InDelta(t, Vec2Of(0.7071067811865476, 0.7071067811865476), n)
}

func TestSlerp(t *testing.T) {
	src := QuaternionFromAngleAxis(DegToRad(10.0), ZAxisVec3[float64]())
	dst := QuaternionFromAngleAxis(DegToRad(90.0), ZAxisVec3[float64]())

	assertQuatInDelta(t, src, Slerp(src, dst, 0))
	assertQuatInDelta(t, dst, Slerp(src, dst, 1))
	assertQuatInDelta(t, QuaternionFromAngleAxis(DegToRad(50.0), ZAxisVec3[float64]()), Slerp(src, dst, 0.5))

	mid := Slerp(src, dst, 0.3)
	assert.InDelta(t, 1.0, mid.Norm(), 1e-12)
}

func TestNlerpQuaternion(t *testing.T) {
	src := IdentityQuaternion[float32]()
	dst := QuaternionFromAngleAxis(DegToRad(float32(60)), XAxisVec3[float32]())

	q := Nlerp(src, dst, float32(0.5))
	assert.InDelta(t, 1.0, q.Norm(), delta)
	assertQuatInDelta(t, QuaternionFromAngleAxis(DegToRad(float32(30)), XAxisVec3[float32]()), q)
}

func TestConstants(t *testing.T) {
	assert.InDelta(t, Pi/2, float64(DegToRad(90.0)), 1e-12)
	assert.InDelta(t, 180.0, RadToDeg[float64](Pi), 1e-12)
	assert.InDelta(t, float32(45), RadToDeg[float32](DegToRad(float32(45))), delta)
	assert.InDelta(t, Phi+1, Phi*Phi, 1e-12)
	assert.InDelta(t, 1.0, DegToRadFactor*RadToDegFactor, 1e-12)
	assert.InDelta(t, 2.718281828, E, 1e-9)
}
