package glm

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestQuaternionScenario(t *testing.T) {
	q := QuaternionFromAngleAxis(DegToRad(90.0), YAxisVec3[float64]())
	assertVec3InDelta(t, Vec3Of[float64](0, 0, -1), q.Rotate(XAxisVec3[float64]()))

	q32 := QuaternionFromAngleAxis(DegToRad(float32(90)), YAxisVec3[float32]())
	assertVec3InDelta(t, Vec3Of[float32](0, 0, -1), q32.Rotate(XAxisVec3[float32]()))
}

func TestHamiltonProduct(t *testing.T) {
	i := QuaternionOf(XAxisVec3[float32](), 0)
	j := QuaternionOf(YAxisVec3[float32](), 0)
	k := QuaternionOf(ZAxisVec3[float32](), 0)
	minusOne := QuaternionOf(Vec3[float32]{}, -1)

	assert.Equal(t, k, i.Mul(j))
	assert.Equal(t, k.MulScalar(-1), j.Mul(i))
	assert.Equal(t, minusOne, i.Mul(i))
	assert.Equal(t, minusOne, i.Mul(j).Mul(k))

	q := QuaternionOf(Vec3Of[float32](1, 2, 3), 4)
	assert.Equal(t, q, IdentityQuaternion[float32]().Mul(q))
	assert.Equal(t, q, q.Mul(IdentityQuaternion[float32]()))
}

func TestQuaternionParts(t *testing.T) {
	q := QuaternionOf(Vec3Of[float64](1, 2, 3), 4)

	assert.Equal(t, Vec3Of[float64](1, 2, 3), q.Vector())
	assert.Equal(t, 4.0, q.Real())
	assert.Equal(t, QuaternionOf(Vec3Of[float64](-1, -2, -3), 4), q.Conj())
	assert.Equal(t, 30.0, q.Norm())

	assert.InDelta(t, 1.0, q.Normalize().Norm(), 1e-12)
	assertQuatInDelta(t, IdentityQuaternion[float64](), q.Mul(q.Inverse()))

	assert.Equal(t, QuaternionOf(Vec3Of[float64](2, 4, 6), 8), q.Add(q))
	assert.Equal(t, QuaternionOf(Vec3[float64]{}, 0), q.Sub(q))
	assert.Equal(t, QuaternionOf(Vec3Of[float64](0.5, 1, 1.5), 2), q.DivScalar(2))

	assert.True(t, q.Eq(q).All())
	assert.False(t, q.Ne(q).Any())
	assert.Equal(t, uint32(0b1000), q.Gt(QuaternionOf(Vec3Of[float64](1, 2, 3), 0)).Bits())
	assert.Equal(t, uint32(0b0111), q.Lt(QuaternionOf(Vec3Of[float64](2, 3, 4), 4)).Bits())
	assert.True(t, q.Le(q).All())
	assert.True(t, q.Ge(q).All())

	assert.Equal(t, "(1, 2, 3; 4)", q.String())
}

func TestQuaternionAssign(t *testing.T) {
	q := IdentityQuaternion[float32]()
	q.AddAssign(IdentityQuaternion[float32]())
	assert.Equal(t, QuaternionOf(Vec3[float32]{}, 2), q)

	q.MulAssign(QuaternionOf(XAxisVec3[float32](), 0))
	assert.Equal(t, QuaternionOf(Vec3Of[float32](2, 0, 0), 0), q)

	q.SubAssign(q)
	assert.Equal(t, Quaternion[float32]{}, q)
}

func TestRotation(t *testing.T) {
	t.Run("float32", testRotation[float32])
	t.Run("float64", testRotation[float64])
}

func testRotation[T Float](t *testing.T) {
	axis := Vec3Of[T](1, 2, 2).Normalize()
	q := QuaternionFromAngleAxis(DegToRad(T(37)), axis)
	v := Vec3Of[T](3, -1, 4)

	assert.InDelta(t, 1.0, q.Norm(), delta)
	assert.InDelta(t, v.Length(), q.Rotate(v).Length(), delta)

	// the axis itself stays in place
	assertVec3InDelta(t, axis, q.Rotate(axis))

	// a vector perpendicular to the axis turns by exactly the angle
	r := QuaternionFromAngleAxis(DegToRad(T(30)), ZAxisVec3[T]())
	want := Vec3Of(2*T(math.Cos(math.Pi/6)), 2*T(math.Sin(math.Pi/6)), 0)
	assertVec3InDelta(t, want, r.Rotate(Vec3Of[T](2, 0, 0)))

	// composition
	assertVec3InDelta(t, q.Rotate(r.Rotate(v)), q.Mul(r).Rotate(v))

	// the matrix forms agree with Rotate
	assertVec3InDelta(t, q.Rotate(v), q.RotMat3().Transform(v))
	assertVec3InDelta(t, q.Rotate(v), q.RotMat4().TransformPoint(v))
	assertVec4InDelta(t, WAxisVec4[T](), q.RotMat4().Row(3))

	// a rotation matrix is orthonormal
	m := q.RotMat3()
	assertMat3InDelta(t, IdentityMat3[T](), m.Mul(m.Transpose()))
	assert.InDelta(t, 1.0, m.Determinant(), delta)
}

func TestRotMatOfScaledQuaternion(t *testing.T) {
	q := QuaternionFromAngleAxis(DegToRad(60.0), XAxisVec3[float64]())
	scaled := q.MulScalar(3)

	assertMat4InDelta(t, q.RotMat4(), scaled.RotMat4())
}

func TestRotate4(t *testing.T) {
	q := QuaternionFromAngleAxis(DegToRad(90.0), ZAxisVec3[float64]())
	got := q.Rotate4(Vec4Of[float64](1, 0, 0, 0))
	assertVec4InDelta(t, Vec4Of[float64](0, 1, 0, 0), got)
}

func TestFromCosAngleAxis(t *testing.T) {
	angle := DegToRad(50.0)
	want := QuaternionFromAngleAxis(angle, YAxisVec3[float64]())

	got := QuaternionFromCosAngleAxis(math.Cos(float64(angle/2)), YAxisVec3[float64]())
	assertQuatInDelta(t, want, got)
}

func TestFromEulerZXY(t *testing.T) {
	pitch, yaw, roll := DegToRad(20.0), DegToRad(-35.0), DegToRad(70.0)

	q := QuaternionFromEulerZXY[float64](pitch, yaw, roll)

	qRoll := QuaternionFromAngleAxis(roll, ZAxisVec3[float64]())
	qPitch := QuaternionFromAngleAxis(pitch, XAxisVec3[float64]())
	qYaw := QuaternionFromAngleAxis(yaw, YAxisVec3[float64]())

	v := Vec3Of[float64](1, 2, 3)
	assertVec3InDelta(t, qRoll.Rotate(qPitch.Rotate(qYaw.Rotate(v))), q.Rotate(v))

	// only yaw
	assertQuatInDelta(t, qYaw, QuaternionFromEulerZXY[float64](0, yaw, 0))
}

func TestExponent(t *testing.T) {
	q := QuaternionFromAngleAxis(DegToRad(80.0), Vec3Of[float64](0, 3, 4).Normalize())

	assertQuatInDelta(t, q, q.Exponent(1))

	half := q.Exponent(0.5)
	assertQuatInDelta(t, q, half.Mul(half))
	assertQuatInDelta(t, QuaternionFromAngleAxis(DegToRad(40.0), Vec3Of[float64](0, 3, 4).Normalize()), half)

	// no clamping, a real part outside [-1, 1] propagates NaN
	invalid := QuaternionOf(XAxisVec3[float64](), 2).Exponent(0.5)
	assert.True(t, math.IsNaN(invalid.Real()))
}

func TestSinglePrecisionRotationAngle(t *testing.T) {
	const exact = 1e-6

	q := QuaternionFromAngleAxis(DegToRad(float32(30)), ZAxisVec3[float32]())
	assert.InDelta(t, math.Sin(math.Pi/12), q.Vector().At(2), exact)
	assert.InDelta(t, math.Cos(math.Pi/12), q.Real(), exact)

	rotated := q.Rotate(XAxisVec3[float32]())
	assert.InDelta(t, math.Cos(math.Pi/6), rotated.At(0), exact)
	assert.InDelta(t, math.Sin(math.Pi/6), rotated.At(1), exact)
	assert.InDelta(t, 0, rotated.At(2), exact)

	m := RotationMat2[float32](DegToRad(float32(30)))
	turned := m.Transform(XAxisVec2[float32]())
	assert.InDelta(t, math.Cos(math.Pi/6), turned.At(0), exact)
	assert.InDelta(t, math.Sin(math.Pi/6), turned.At(1), exact)
}

func TestFastSincos(t *testing.T) {
	for deg := -180; deg <= 180; deg += 15 {
		r := DegToRad(float64(deg))
		s, c := FastSincos(r)
		assert.InDelta(t, math.Sin(float64(r)), s, 5e-3, "sin at %d degrees", deg)
		assert.InDelta(t, math.Cos(float64(r)), c, 5e-3, "cos at %d degrees", deg)
	}
}
