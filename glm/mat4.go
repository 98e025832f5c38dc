package glm

import (
	"fmt"

	"github.com/oliverbestmann/lanemath/internal/lane"
)

// Mat4 is a column major 4x4 matrix. The zero value is the zero matrix,
// use IdentityMat4 for the identity.
type Mat4[T Float] [4]Vec4[T]

func IdentityMat4[T Float]() Mat4[T] {
	return Mat4[T]{XAxisVec4[T](), YAxisVec4[T](), ZAxisVec4[T](), WAxisVec4[T]()}
}

func Mat4Of[T Float](col1, col2, col3, col4 Vec4[T]) Mat4[T] {
	return Mat4[T]{col1, col2, col3, col4}
}

// Mat4FromRows builds a matrix from its elements given row by row.
func Mat4FromRows[T Float](
	m11, m12, m13, m14 T,
	m21, m22, m23, m24 T,
	m31, m32, m33, m34 T,
	m41, m42, m43, m44 T,
) Mat4[T] {
	return Mat4[T]{
		Vec4Of(m11, m21, m31, m41),
		Vec4Of(m12, m22, m32, m42),
		Vec4Of(m13, m23, m33, m43),
		Vec4Of(m14, m24, m34, m44),
	}
}

func (lhs Mat4[T]) Add(rhs Mat4[T]) Mat4[T] {
	return Mat4[T]{lhs[0].Add(rhs[0]), lhs[1].Add(rhs[1]), lhs[2].Add(rhs[2]), lhs[3].Add(rhs[3])}
}

func (lhs Mat4[T]) Sub(rhs Mat4[T]) Mat4[T] {
	return Mat4[T]{lhs[0].Sub(rhs[0]), lhs[1].Sub(rhs[1]), lhs[2].Sub(rhs[2]), lhs[3].Sub(rhs[3])}
}

// Transform multiplies the matrix with the column vector rhs.
func (lhs Mat4[T]) Transform(rhs Vec4[T]) Vec4[T] {
	return lhs[0].Mul(rhs.XXXX()).
		Add(lhs[1].Mul(rhs.YYYY())).
		Add(lhs[2].Mul(rhs.ZZZZ())).
		Add(lhs[3].Mul(rhs.WWWW()))
}

// TransformPoint transforms p as a point with w = 1 and drops w again
// without a perspective divide.
func (lhs Mat4[T]) TransformPoint(p Vec3[T]) Vec3[T] {
	return lhs.Transform(Vec4OfXYZ(p, 1)).XYZ()
}

func (lhs Mat4[T]) Mul(rhs Mat4[T]) Mat4[T] {
	return Mat4[T]{
		lhs.Transform(rhs[0]),
		lhs.Transform(rhs[1]),
		lhs.Transform(rhs[2]),
		lhs.Transform(rhs[3]),
	}
}

func (lhs Mat4[T]) MulScalar(s T) Mat4[T] {
	return Mat4[T]{lhs[0].MulScalar(s), lhs[1].MulScalar(s), lhs[2].MulScalar(s), lhs[3].MulScalar(s)}
}

func (lhs Mat4[T]) DivScalar(s T) Mat4[T] {
	return Mat4[T]{lhs[0].DivScalar(s), lhs[1].DivScalar(s), lhs[2].DivScalar(s), lhs[3].DivScalar(s)}
}

func (lhs *Mat4[T]) AddAssign(rhs Mat4[T]) {
	*lhs = lhs.Add(rhs)
}

func (lhs *Mat4[T]) SubAssign(rhs Mat4[T]) {
	*lhs = lhs.Sub(rhs)
}

func (lhs *Mat4[T]) MulAssign(rhs Mat4[T]) {
	*lhs = lhs.Mul(rhs)
}

func (lhs Mat4[T]) Translate(v Vec3[T]) Mat4[T] {
	return lhs.Mul(TranslationMat4(v))
}

func (lhs Mat4[T]) Scale(v Vec3[T]) Mat4[T] {
	return lhs.Mul(ScaleMat4(Vec4OfXYZ(v, 1)))
}

func (lhs Mat4[T]) Rotate(q Quaternion[T]) Mat4[T] {
	return lhs.Mul(RotationMat4(q))
}

// Col returns column i, counting from zero.
func (lhs Mat4[T]) Col(i int) Vec4[T] {
	return lhs[i]
}

func (lhs Mat4[T]) Col1() Vec4[T] {
	return lhs[0]
}

func (lhs Mat4[T]) Col2() Vec4[T] {
	return lhs[1]
}

func (lhs Mat4[T]) Col3() Vec4[T] {
	return lhs[2]
}

func (lhs Mat4[T]) Col4() Vec4[T] {
	return lhs[3]
}

// Row returns row i, counting from zero.
func (lhs Mat4[T]) Row(i int) Vec4[T] {
	return Vec4Of(lhs[0].At(i), lhs[1].At(i), lhs[2].At(i), lhs[3].At(i))
}

func (lhs Mat4[T]) Columns() [4]Vec4[T] {
	return lhs
}

func (lhs Mat4[T]) Equal(rhs Mat4[T]) bool {
	return lhs[0].Eq(rhs[0]).All() &&
		lhs[1].Eq(rhs[1]).All() &&
		lhs[2].Eq(rhs[2]).All() &&
		lhs[3].Eq(rhs[3]).All()
}

func (lhs Mat4[T]) IsZero() bool {
	return lhs == Mat4[T]{}
}

func (lhs Mat4[T]) Trace() T {
	return lhs[0].X() + lhs[1].Y() + lhs[2].Z() + lhs[3].W()
}

func (lhs Mat4[T]) Transpose() Mat4[T] {
	r0, r1, r2, r3 := lane.Transpose4(lhs[0].lanes, lhs[1].lanes, lhs[2].lanes, lhs[3].lanes)
	return Mat4[T]{{r0}, {r1}, {r2}, {r3}}
}

func (lhs Mat4[T]) Determinant() T {
	return lhs[0].Dot(lhs[1].Cross(lhs[2], lhs[3]))
}

// Cofactor returns the matrix of signed minors. Column i is orthogonal to
// every column of lhs except column i, and its dot product with column i is
// the determinant.
func (lhs Mat4[T]) Cofactor() Mat4[T] {
	return Mat4[T]{
		lhs[1].Cross(lhs[2], lhs[3]),
		lhs[0].Cross(lhs[3], lhs[2]),
		lhs[0].Cross(lhs[1], lhs[3]),
		lhs[1].Cross(lhs[0], lhs[2]),
	}
}

// Inverse returns the inverse matrix. A singular matrix yields Inf or NaN
// elements.
func (lhs Mat4[T]) Inverse() Mat4[T] {
	return lhs.Cofactor().Transpose().DivScalar(lhs.Determinant())
}

func (lhs Mat4[T]) String() string {
	return fmt.Sprintf("[%v %v %v %v]", lhs[0], lhs[1], lhs[2], lhs[3])
}
