package glm

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScenario(t *testing.T) {
	assert.Equal(t, Vec2Of[float32](13, 17), Vec2Of[float32](6, 7).Add(Vec2Of[float32](7, 10)))
	assert.Equal(t, Vec3Of[float64](-59, -10, 53), Vec3Of[float64](6, 7, 8).Cross(Vec3Of[float64](1, 10, 3)))
}

func TestVectorLaws(t *testing.T) {
	t.Run("float32", testVectorLaws[float32])
	t.Run("float64", testVectorLaws[float64])
}

func testVectorLaws[T Float](t *testing.T) {
	t.Run("Vec2", func(t *testing.T) {
		a, b := Vec2Of[T](3, -5), Vec2Of[T](7, 2)
		assert.Equal(t, b.Add(a), a.Add(b))
		assert.Equal(t, b.Sub(a).Neg(), a.Sub(b))
		assert.Equal(t, b.Mul(a), a.Mul(b))
		assert.Equal(t, OneVec2[T](), a.Div(a))
		assert.Equal(t, a, a.Mul(OneVec2[T]()))
		assert.Equal(t, Vec2[T]{}, a.Mul(Vec2[T]{}))

		assert.Equal(t, b.Dot(a), a.Dot(b))
		assert.Equal(t, a.LengthSqr(), a.Dot(a))
		assert.Equal(t, a.X(), a.Dot(XAxisVec2[T]()))
	})

	t.Run("Vec3", func(t *testing.T) {
		a, b := Vec3Of[T](3, -5, 2), Vec3Of[T](7, 2, -1)
		assert.Equal(t, b.Add(a), a.Add(b))
		assert.Equal(t, b.Sub(a).Neg(), a.Sub(b))
		assert.Equal(t, b.Mul(a), a.Mul(b))
		assert.Equal(t, OneVec3[T](), a.Div(a))
		assert.Equal(t, a, a.Mul(OneVec3[T]()))
		assert.Equal(t, Vec3[T]{}, a.Mul(Vec3[T]{}))

		assert.Equal(t, b.Dot(a), a.Dot(b))
		assert.Equal(t, a.LengthSqr(), a.Dot(a))
		assert.Equal(t, a.X(), a.Dot(XAxisVec3[T]()))
	})

	t.Run("Vec4", func(t *testing.T) {
		a, b := Vec4Of[T](3, -5, 2, 9), Vec4Of[T](7, 2, -1, -4)
		assert.Equal(t, b.Add(a), a.Add(b))
		assert.Equal(t, b.Sub(a).Neg(), a.Sub(b))
		assert.Equal(t, b.Mul(a), a.Mul(b))
		assert.Equal(t, OneVec4[T](), a.Div(a))
		assert.Equal(t, a, a.Mul(OneVec4[T]()))
		assert.Equal(t, Vec4[T]{}, a.Mul(Vec4[T]{}))

		assert.Equal(t, b.Dot(a), a.Dot(b))
		assert.Equal(t, a.LengthSqr(), a.Dot(a))
		assert.Equal(t, a.X(), a.Dot(XAxisVec4[T]()))
	})
}

func TestCross2(t *testing.T) {
	a, b := Vec2Of[float32](3, 5), Vec2Of[float32](-2, 7)

	assert.Equal(t, Vec2Of[float32](5, -3), a.Cross())
	assert.Zero(t, a.Cross().Dot(a))
	assert.Equal(t, -b.Dot(a.Cross()), a.Dot(b.Cross()))
}

func TestCross3(t *testing.T) {
	t.Run("float32", testCross3[float32])
	t.Run("float64", testCross3[float64])
}

func testCross3[T Float](t *testing.T) {
	a, b, c := Vec3Of[T](1, 2, 3), Vec3Of[T](-4, 0, 5), Vec3Of[T](2, -7, 1)

	assert.Zero(t, a.Cross(b).Dot(a))
	assert.Zero(t, a.Cross(b).Dot(b))
	assert.Equal(t, b.Cross(a).Neg(), a.Cross(b))

	triple := a.Cross(b).Dot(c)
	assert.Equal(t, triple, b.Cross(c).Dot(a))
	assert.Equal(t, triple, c.Cross(a).Dot(b))

	want := b.MulScalar(a.Dot(c)).Sub(c.MulScalar(a.Dot(b)))
	assert.Equal(t, want, a.Cross(b.Cross(c)))

	assert.Equal(t, ZAxisVec3[T](), XAxisVec3[T]().Cross(YAxisVec3[T]()))
}

func TestCross4(t *testing.T) {
	a := Vec4Of[float64](6, 7, 8, 9)
	b := Vec4Of[float64](10, 6, 7, 41)
	c := Vec4Of[float64](420, 5, 2, 6)

	cross := a.Cross(b, c)
	assert.Equal(t, Vec4Of[float64](865, -110760, 96876, -542), cross)
	assert.Equal(t, -13561.0, OneVec4[float64]().Dot(cross))

	assert.Zero(t, cross.Dot(a))
	assert.Zero(t, cross.Dot(b))
	assert.Zero(t, cross.Dot(c))

	assert.Equal(t, cross.Neg(), b.Cross(a, c))

	assert.Equal(t, WAxisVec4[float64]().Neg(),
		XAxisVec4[float64]().Cross(YAxisVec4[float64](), ZAxisVec4[float64]()))
}

func TestConstructors(t *testing.T) {
	want := Vec4Of[float32](1, 2, 3, 4)

	assert.Equal(t, want, Vec4OfXYZ(Vec3Of[float32](1, 2, 3), 4))
	assert.Equal(t, want, Vec4OfYZW(1, Vec3Of[float32](2, 3, 4)))
	assert.Equal(t, want, Vec4OfXYAndZW(Vec2Of[float32](1, 2), Vec2Of[float32](3, 4)))
	assert.Equal(t, want, Vec4OfXY(Vec2Of[float32](1, 2), 3, 4))
	assert.Equal(t, want, Vec4OfYZ(1, Vec2Of[float32](2, 3), 4))
	assert.Equal(t, want, Vec4OfZW(1, 2, Vec2Of[float32](3, 4)))

	assert.Equal(t, Vec3Of[float32](1, 2, 3), Vec3OfXY(Vec2Of[float32](1, 2), 3))
	assert.Equal(t, Vec3Of[float32](1, 2, 3), Vec3OfYZ(1, Vec2Of[float32](2, 3)))

	assert.Equal(t, Vec3Of[float32](1, 2, 3), Vec2Of[float32](1, 2).Extend(3))
	assert.Equal(t, want, Vec3Of[float32](1, 2, 3).Extend(4))
	assert.Equal(t, Vec3Of[float32](1, 2, 3), want.Truncate())
	assert.Equal(t, Vec2Of[float32](1, 2), Vec3Of[float32](1, 2, 3).Truncate())

	assert.Equal(t, Vec3Of[float64](2, 2, 2), Vec3Splat[float64](2))
	assert.Equal(t, Vec4Of[float64](2, 2, 2, 2), Vec4Splat[float64](2))
	assert.Equal(t, Vec2Of[float64](2, 2), Vec2Splat[float64](2))
}

func TestDirections(t *testing.T) {
	assert.Equal(t, Vec3Of[float32](-1, 0, 0), LeftVec3[float32]())
	assert.Equal(t, Vec3Of[float32](1, 0, 0), RightVec3[float32]())
	assert.Equal(t, Vec3Of[float32](0, 1, 0), UpVec3[float32]())
	assert.Equal(t, Vec3Of[float32](0, -1, 0), DownVec3[float32]())
	assert.Equal(t, Vec3Of[float32](0, 0, -1), ForwardVec3[float32]())
	assert.Equal(t, Vec3Of[float32](0, 0, 1), BackwardVec3[float32]())

	assert.Equal(t, Vec2Of[float64](0, 1), UpVec2[float64]())
	assert.Equal(t, Vec2Of[float64](-1, 0), LeftVec2[float64]())
	assert.Equal(t, Vec4Of[float64](0, 0, -1, 0), ForwardVec4[float64]())
}

func TestTrailingLanesStayZero(t *testing.T) {
	v2 := Vec2Of[float32](1, 2)
	assert.Equal(t, [4]float32{1, 1, 0, 0}, [4]float32(v2.Div(v2).lanes))
	assert.Equal(t, [4]float32{2, 2, 0, 0}, [4]float32(Vec2Splat[float32](2).lanes))

	v3 := Vec3Of[float64](1, 2, 3)
	assert.Equal(t, [4]float64{1, 1, 1, 0}, [4]float64(v3.Div(v3).lanes))
	assert.Equal(t, [4]float64{3, 3, 3, 0}, [4]float64(v3.ZZZ().lanes))
	assert.Equal(t, [4]float64{1, 2, 3, 0}, [4]float64(Vec4Of[float64](1, 2, 3, 4).XYZ().lanes))
	assert.Equal(t, [4]float64{4, 1, 0, 0}, [4]float64(Vec4Of[float64](1, 2, 3, 4).WX().lanes))
}

func TestSwizzle(t *testing.T) {
	v2 := Vec2Of[float32](5, 6)
	assert.Equal(t, Vec2Of[float32](6, 5), v2.YX())
	assert.Equal(t, Vec4Of[float32](6, 6, 6, 6), v2.YYYY())
	assert.Equal(t, v2.YX(), v2.GR())
	assert.Equal(t, float32(6), v2.G())

	v3 := Vec3Of[float32](1, 2, 3)
	assert.Equal(t, Vec3Of[float32](3, 1, 2), v3.ZXY())
	assert.Equal(t, Vec2Of[float32](3, 1), v3.ZX())
	assert.Equal(t, v3.ZXY(), v3.BRG())
	assert.Equal(t, float32(3), v3.B())
	assert.Equal(t, Vec4Of[float32](1, 2, 3, 3), v3.XYZZ())

	v4 := Vec4Of[float32](1, 2, 3, 4)
	assert.Equal(t, Vec4Of[float32](4, 3, 2, 1), v4.WZYX())
	assert.Equal(t, Vec3Of[float32](1, 1, 2), v4.RRG())
	assert.Equal(t, float32(4), v4.A())
	assert.Equal(t, v4, v4.XYZW())
	assert.Equal(t, v4, v4.RGBA())
}

func TestMasks(t *testing.T) {
	zero2 := Vec2[float32]{}
	assert.True(t, zero2.Lt(OneVec2[float32]()).All())
	assert.False(t, zero2.Gt(OneVec2[float32]()).Any())
	assert.Equal(t, uint32(0b11), zero2.LtScalar(1).Bits())

	zero3 := Vec3[float32]{}
	assert.True(t, zero3.Lt(OneVec3[float32]()).All())
	assert.Equal(t, uint32(0b111), zero3.NeScalar(1).Bits())

	a := Vec3Of[float64](1, 2, 3)
	m := a.Ge(Vec3Splat[float64](2))
	assert.Equal(t, uint32(0b110), m.Bits())
	assert.True(t, m.Any())
	assert.False(t, m.All())
	assert.False(t, m.Lane(0))
	assert.True(t, m.Lane(2))

	assert.Equal(t, uint32(0b0001), Vec4Of[float64](1, 2, 3, 4).EqScalar(1).Bits())
	assert.Equal(t, uint32(0b1100), Vec4Of[float64](1, 2, 3, 4).GtScalar(2).Bits())
	assert.Equal(t, uint32(0b0011), Vec4Of[float64](1, 2, 3, 4).LeScalar(2).Bits())

	assert.True(t, a.Equal(Vec3Of[float64](1, 2, 3)))
	assert.False(t, a.Equal(Vec3Of[float64](1, 2, 4)))
}

func TestLengthAndNormalize(t *testing.T) {
	v := Vec3Of[float32](2, 3, 6)
	assert.Equal(t, float32(49), v.LengthSqr())
	assert.Equal(t, float32(7), v.Length())
	assertVec3InDelta(t, Vec3Of[float32](2.0/7, 3.0/7, 6.0/7), v.Normalize())

	assert.Equal(t, 5.0, Vec2Of[float64](3, 4).Length())
	assert.InDelta(t, 1.0, Vec4Of[float64](1, 2, 3, 4).Normalize().Length(), 1e-12)

	n := Vec2[float64]{}.Normalize()
	assert.True(t, math.IsNaN(n.X()))
}

func TestComponentwise(t *testing.T) {
	a := Vec4Of[float32](-1, 5, -3, 2)
	b := Vec4Of[float32](2, 1, -4, 2)

	assert.Equal(t, Vec4Of[float32](1, 5, 3, 2), a.Abs())
	assert.Equal(t, Vec4Of[float32](-1, 1, -4, 2), a.Min(b))
	assert.Equal(t, Vec4Of[float32](2, 5, -3, 2), a.Max(b))
	assert.Equal(t, a.Min(b), Min(a, b))
	assert.Equal(t, a.Max(b), Max(a, b))

	assert.Equal(t, Vec4Of[float32](1, 7, -1, 4), a.AddScalar(2))
	assert.Equal(t, Vec4Of[float32](-3, 3, -5, 0), a.SubScalar(2))
	assert.Equal(t, Vec4Of[float32](-2, 10, -6, 4), a.MulScalar(2))
	assert.Equal(t, Vec4Of[float32](-0.5, 2.5, -1.5, 1), a.DivScalar(2))
}

func TestAssign(t *testing.T) {
	v := Vec3Of[float64](1, 2, 3)
	v.AddAssign(Vec3Of[float64](1, 1, 1))
	assert.Equal(t, Vec3Of[float64](2, 3, 4), v)

	v.MulAssign(Vec3Of[float64](2, 2, 2))
	assert.Equal(t, Vec3Of[float64](4, 6, 8), v)

	v.SubAssign(Vec3Of[float64](4, 6, 8))
	assert.Equal(t, Vec3[float64]{}, v)

	w := Vec2Of[float32](4, 6)
	w.DivAssign(Vec2Of[float32](2, 3))
	assert.Equal(t, Vec2Of[float32](2, 2), w)
}

func TestAtAndComponents(t *testing.T) {
	v := Vec4Of[float64](1, 2, 3, 4)
	assert.Equal(t, 3.0, v.At(2))

	x, y, z, w := v.Components()
	assert.Equal(t, []float64{1, 2, 3, 4}, []float64{x, y, z, w})

	assert.Panics(t, func() { Vec2Of[float64](1, 2).At(2) })
	assert.Panics(t, func() { Vec3Of[float64](1, 2, 3).At(3) })

	assert.Equal(t, "(1, 2, 3)", Vec3Of[float32](1, 2, 3).String())
}

func TestMulMat(t *testing.T) {
	m := Mat2Of(Vec2Of[float32](3, 4), Vec2Of[float32](5, 6))
	v := Vec2Of[float32](1, 2)

	assert.Equal(t, Vec2Of[float32](11, 17), v.MulMat(m))
	assert.Equal(t, m.Transpose().Transform(v), v.MulMat(m))

	m3 := Mat3FromRows[float64](
		1, 2, 3,
		4, 5, 6,
		7, 8, 9,
	)
	v3 := Vec3Of[float64](1, 0, -1)
	assert.Equal(t, m3.Transpose().Transform(v3), v3.MulMat(m3))
}
