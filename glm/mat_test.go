package glm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func testMat2() Mat2[float32] {
	return Mat2Of(Vec2Of[float32](3, 1), Vec2Of[float32](2, 4))
}

func testMat3[T Float]() Mat3[T] {
	return Mat3Of(Vec3Of[T](2, 0, 1), Vec3Of[T](1, 3, 0), Vec3Of[T](0, 1, 4))
}

func testMat4[T Float]() Mat4[T] {
	return Mat4Of(
		Vec4Of[T](2, 1, 0, 1),
		Vec4Of[T](0, 3, 1, 0),
		Vec4Of[T](1, 0, 4, 2),
		Vec4Of[T](3, 1, 2, 5),
	)
}

func TestMatrixIdentity(t *testing.T) {
	assert.Equal(t, Vec2Of[float32](3, -7), IdentityMat2[float32]().Transform(Vec2Of[float32](3, -7)))
	assert.Equal(t, Vec3Of[float32](3, -7, 2), IdentityMat3[float32]().Transform(Vec3Of[float32](3, -7, 2)))
	assert.Equal(t, Vec4Of[float64](3, -7, 2, 9), IdentityMat4[float64]().Transform(Vec4Of[float64](3, -7, 2, 9)))

	m := testMat4[float64]()
	assert.Equal(t, m, IdentityMat4[float64]().Mul(m))
	assert.Equal(t, m, m.Mul(IdentityMat4[float64]()))

	assert.True(t, Mat3[float64]{}.IsZero())
	assert.False(t, IdentityMat3[float64]().IsZero())
}

func TestMatrixFromRows(t *testing.T) {
	m := Mat4FromRows[float32](
		1, 2, 3, 4,
		5, 6, 7, 8,
		9, 10, 11, 12,
		13, 14, 15, 16,
	)

	assert.Equal(t, Vec4Of[float32](1, 5, 9, 13), m.Col1())
	assert.Equal(t, Vec4Of[float32](4, 8, 12, 16), m.Col4())
	assert.Equal(t, Vec4Of[float32](5, 6, 7, 8), m.Row(1))
	assert.Equal(t, m.Col(2), m.Col3())

	m3 := Mat3FromRows[float32](
		1, 2, 3,
		4, 5, 6,
		7, 8, 9,
	)
	assert.Equal(t, Vec3Of[float32](2, 5, 8), m3.Col2())
	assert.Equal(t, Vec3Of[float32](7, 8, 9), m3.Row(2))

	m2 := Mat2FromRows[float32](
		1, 2,
		3, 4,
	)
	assert.Equal(t, Vec2Of[float32](1, 3), m2.Col1())
	assert.Equal(t, Vec2Of[float32](3, 4), m2.Row(1))
}

func TestMatrixNarrowing(t *testing.T) {
	m := Mat4FromRows[float64](
		1, 2, 3, 4,
		5, 6, 7, 8,
		9, 10, 11, 12,
		13, 14, 15, 16,
	)

	m3 := Mat3FromRows[float64](
		1, 2, 3,
		5, 6, 7,
		9, 10, 11,
	)
	assert.Equal(t, m3, Mat3FromMat4(m))

	m2 := Mat2FromRows[float64](
		1, 2,
		5, 6,
	)
	assert.Equal(t, m2, Mat2FromMat4(m))
	assert.Equal(t, m2, Mat2FromMat3(m3))

	assert.Equal(t, m2, Mat2OfVec4(Vec4Of[float64](1, 5, 2, 6)))
}

func TestMatrixAlgebra(t *testing.T) {
	t.Run("float32", testMatrixAlgebra[float32])
	t.Run("float64", testMatrixAlgebra[float64])
}

func testMatrixAlgebra[T Float](t *testing.T) {
	a := testMat4[T]()
	b := Mat4FromRows[T](
		1, 0, 2, 0,
		0, 1, 0, 3,
		4, 0, 1, 0,
		0, 5, 0, 1,
	)
	v := Vec4Of[T](1, -2, 3, -4)

	assert.Equal(t, a.Mul(b).Transform(v), a.Transform(b.Transform(v)))
	assert.Equal(t, a, a.Transpose().Transpose())
	assert.Equal(t, a.Row(2), a.Transpose().Col(2))

	assert.Equal(t, a.Add(b).Sub(b), a)
	assert.Equal(t, a.Add(a), a.MulScalar(2))
	assert.Equal(t, a, a.MulScalar(4).DivScalar(4))
	assert.Equal(t, T(2+3+4+5), a.Trace())

	assert.True(t, a.Equal(a))
	assert.False(t, a.Equal(b))

	m3 := testMat3[T]()
	assert.Equal(t, m3, m3.Transpose().Transpose())
	assert.Equal(t, Vec3Of[T](2, 1, 0), m3.Row(0))
	assert.Equal(t, m3.Row(0), m3.Transpose().Col1())
	assert.Equal(t, T(9), m3.Trace())
}

func TestDeterminant(t *testing.T) {
	assert.Equal(t, float32(10), testMat2().Determinant())
	assert.Equal(t, float32(25), testMat3[float32]().Determinant())
	assert.Equal(t, float32(68), testMat4[float32]().Determinant())
	assert.Equal(t, 68.0, testMat4[float64]().Determinant())

	// negating a single column flips the sign
	m := testMat4[float64]()
	m[2] = m[2].Neg()
	assert.Equal(t, -68.0, m.Determinant())

	m3 := testMat3[float64]()
	m3[0] = m3[0].Neg()
	assert.Equal(t, -25.0, m3.Determinant())

	m2 := testMat2()
	m2[1] = m2[1].Neg()
	assert.Equal(t, float32(-10), m2.Determinant())

	assert.Equal(t, 1.0, IdentityMat4[float64]().Determinant())
}

func TestCofactor(t *testing.T) {
	m := testMat4[float64]()
	c := m.Cofactor()

	for i := range 4 {
		for j := range 4 {
			want := 0.0
			if i == j {
				want = m.Determinant()
			}
			assert.Equal(t, want, m[i].Dot(c[j]), "column %d with cofactor %d", i, j)
		}
	}

	assert.Equal(t, Mat4Of(
		Vec4Of[float64](50, -1, 3, -31),
		Vec4Of[float64](-12, 22, 2, 2),
		Vec4Of[float64](10, -7, 21, -13),
		Vec4Of[float64](-14, 3, -9, 25),
	), c)

	m3 := testMat3[float64]()
	c3 := m3.Cofactor()
	for i := range 3 {
		for j := range 3 {
			want := 0.0
			if i == j {
				want = m3.Determinant()
			}
			assert.Equal(t, want, m3[i].Dot(c3[j]))
		}
	}

	m2 := testMat2()
	c2 := m2.Cofactor()
	assert.Equal(t, float32(10), m2[0].Dot(c2[0]))
	assert.Equal(t, float32(10), m2[1].Dot(c2[1]))
	assert.Zero(t, m2[0].Dot(c2[1]))
	assert.Zero(t, m2[1].Dot(c2[0]))
}

func TestInverse(t *testing.T) {
	t.Run("float32", testInverse[float32])
	t.Run("float64", testInverse[float64])
}

func testInverse[T Float](t *testing.T) {
	m4 := testMat4[T]()
	assertMat4InDelta(t, IdentityMat4[T](), m4.Inverse().Mul(m4))
	assertMat4InDelta(t, IdentityMat4[T](), m4.Mul(m4.Inverse()))

	m3 := testMat3[T]()
	assertMat3InDelta(t, IdentityMat3[T](), m3.Inverse().Mul(m3))

	m2 := Mat2Of(Vec2Of[T](3, 1), Vec2Of[T](2, 4))
	assertMat2InDelta(t, IdentityMat2[T](), m2.Inverse().Mul(m2))
	assertMat2InDelta(t, Mat2FromRows[T](0.4, -0.2, -0.1, 0.3), m2.Inverse())
}

func TestMatrixAssign(t *testing.T) {
	m := IdentityMat3[float32]()
	m.AddAssign(IdentityMat3[float32]())
	assert.Equal(t, IdentityMat3[float32]().MulScalar(2), m)

	m.MulAssign(IdentityMat3[float32]().MulScalar(3))
	assert.Equal(t, IdentityMat3[float32]().MulScalar(6), m)

	m.SubAssign(m)
	assert.True(t, m.IsZero())
}

func TestMatrixColumns(t *testing.T) {
	m := testMat3[float32]()
	cols := m.Columns()
	assert.Equal(t, m.Col1(), cols[0])
	assert.Equal(t, m.Col3(), cols[2])

	assert.Equal(t, "[(1, 0) (0, 1)]", IdentityMat2[float32]().String())
}
