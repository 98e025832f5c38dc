package glm

import (
	"fmt"

	"github.com/oliverbestmann/lanemath/internal/lane"
)

// Mat3 is a column major 3x3 matrix. The zero value is the zero matrix,
// use IdentityMat3 for the identity.
type Mat3[T Float] [3]Vec3[T]

func IdentityMat3[T Float]() Mat3[T] {
	return Mat3[T]{XAxisVec3[T](), YAxisVec3[T](), ZAxisVec3[T]()}
}

func Mat3Of[T Float](col1, col2, col3 Vec3[T]) Mat3[T] {
	return Mat3[T]{col1, col2, col3}
}

// Mat3FromRows builds a matrix from its elements given row by row.
func Mat3FromRows[T Float](
	m11, m12, m13 T,
	m21, m22, m23 T,
	m31, m32, m33 T,
) Mat3[T] {
	return Mat3[T]{
		Vec3Of(m11, m21, m31),
		Vec3Of(m12, m22, m32),
		Vec3Of(m13, m23, m33),
	}
}

// Mat3FromMat4 keeps the upper left 3x3 block.
func Mat3FromMat4[T Float](m Mat4[T]) Mat3[T] {
	return Mat3[T]{m[0].XYZ(), m[1].XYZ(), m[2].XYZ()}
}

func (lhs Mat3[T]) Add(rhs Mat3[T]) Mat3[T] {
	return Mat3[T]{lhs[0].Add(rhs[0]), lhs[1].Add(rhs[1]), lhs[2].Add(rhs[2])}
}

func (lhs Mat3[T]) Sub(rhs Mat3[T]) Mat3[T] {
	return Mat3[T]{lhs[0].Sub(rhs[0]), lhs[1].Sub(rhs[1]), lhs[2].Sub(rhs[2])}
}

// Transform multiplies the matrix with the column vector rhs.
func (lhs Mat3[T]) Transform(rhs Vec3[T]) Vec3[T] {
	return lhs[0].Mul(rhs.XXX()).
		Add(lhs[1].Mul(rhs.YYY())).
		Add(lhs[2].Mul(rhs.ZZZ()))
}

func (lhs Mat3[T]) Mul(rhs Mat3[T]) Mat3[T] {
	return Mat3[T]{lhs.Transform(rhs[0]), lhs.Transform(rhs[1]), lhs.Transform(rhs[2])}
}

func (lhs Mat3[T]) MulScalar(s T) Mat3[T] {
	return Mat3[T]{lhs[0].MulScalar(s), lhs[1].MulScalar(s), lhs[2].MulScalar(s)}
}

func (lhs Mat3[T]) DivScalar(s T) Mat3[T] {
	return Mat3[T]{lhs[0].DivScalar(s), lhs[1].DivScalar(s), lhs[2].DivScalar(s)}
}

func (lhs *Mat3[T]) AddAssign(rhs Mat3[T]) {
	*lhs = lhs.Add(rhs)
}

func (lhs *Mat3[T]) SubAssign(rhs Mat3[T]) {
	*lhs = lhs.Sub(rhs)
}

func (lhs *Mat3[T]) MulAssign(rhs Mat3[T]) {
	*lhs = lhs.Mul(rhs)
}

// Col returns column i, counting from zero.
func (lhs Mat3[T]) Col(i int) Vec3[T] {
	return lhs[i]
}

func (lhs Mat3[T]) Col1() Vec3[T] {
	return lhs[0]
}

func (lhs Mat3[T]) Col2() Vec3[T] {
	return lhs[1]
}

func (lhs Mat3[T]) Col3() Vec3[T] {
	return lhs[2]
}

// Row returns row i, counting from zero.
func (lhs Mat3[T]) Row(i int) Vec3[T] {
	return Vec3Of(lhs[0].At(i), lhs[1].At(i), lhs[2].At(i))
}

func (lhs Mat3[T]) Columns() [3]Vec3[T] {
	return lhs
}

func (lhs Mat3[T]) Equal(rhs Mat3[T]) bool {
	return lhs[0].Eq(rhs[0]).All() && lhs[1].Eq(rhs[1]).All() && lhs[2].Eq(rhs[2]).All()
}

func (lhs Mat3[T]) IsZero() bool {
	return lhs == Mat3[T]{}
}

func (lhs Mat3[T]) Trace() T {
	return lhs[0].X() + lhs[1].Y() + lhs[2].Z()
}

func (lhs Mat3[T]) Transpose() Mat3[T] {
	// the fourth register is zero, so the fourth lane of every row is too
	r0, r1, r2, _ := lane.Transpose4(lhs[0].lanes, lhs[1].lanes, lhs[2].lanes, lane.Lanes[T]{})
	return Mat3[T]{{r0}, {r1}, {r2}}
}

func (lhs Mat3[T]) Determinant() T {
	return lhs[0].Dot(lhs[1].Cross(lhs[2]))
}

// Cofactor returns the matrix of signed minors. Column i is orthogonal to
// every column of lhs except column i.
func (lhs Mat3[T]) Cofactor() Mat3[T] {
	return Mat3[T]{
		lhs[1].Cross(lhs[2]),
		lhs[2].Cross(lhs[0]),
		lhs[0].Cross(lhs[1]),
	}
}

// Inverse returns the inverse matrix. A singular matrix yields Inf or NaN
// elements.
func (lhs Mat3[T]) Inverse() Mat3[T] {
	return lhs.Cofactor().Transpose().DivScalar(lhs.Determinant())
}

func (lhs Mat3[T]) String() string {
	return fmt.Sprintf("[%v %v %v]", lhs[0], lhs[1], lhs[2])
}
