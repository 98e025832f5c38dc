package glm

import (
	"fmt"

	"github.com/oliverbestmann/lanemath/internal/lane"
)

// Mat2 is a column major 2x2 matrix. The zero value is the zero matrix,
// use IdentityMat2 for the identity.
type Mat2[T Float] [2]Vec2[T]

func IdentityMat2[T Float]() Mat2[T] {
	return Mat2[T]{XAxisVec2[T](), YAxisVec2[T]()}
}

func Mat2Of[T Float](col1, col2 Vec2[T]) Mat2[T] {
	return Mat2[T]{col1, col2}
}

// Mat2FromRows builds a matrix from its elements given row by row.
func Mat2FromRows[T Float](
	m11, m12 T,
	m21, m22 T,
) Mat2[T] {
	return Mat2[T]{
		Vec2Of(m11, m21),
		Vec2Of(m12, m22),
	}
}

// Mat2OfVec4 uses xy as first and zw as second column.
func Mat2OfVec4[T Float](v Vec4[T]) Mat2[T] {
	return Mat2[T]{v.XY(), v.ZW()}
}

// Mat2FromMat3 keeps the upper left 2x2 block.
func Mat2FromMat3[T Float](m Mat3[T]) Mat2[T] {
	return Mat2[T]{m[0].XY(), m[1].XY()}
}

// Mat2FromMat4 keeps the upper left 2x2 block.
func Mat2FromMat4[T Float](m Mat4[T]) Mat2[T] {
	return Mat2[T]{m[0].XY(), m[1].XY()}
}

func (lhs Mat2[T]) Add(rhs Mat2[T]) Mat2[T] {
	return Mat2[T]{lhs[0].Add(rhs[0]), lhs[1].Add(rhs[1])}
}

func (lhs Mat2[T]) Sub(rhs Mat2[T]) Mat2[T] {
	return Mat2[T]{lhs[0].Sub(rhs[0]), lhs[1].Sub(rhs[1])}
}

// Transform multiplies the matrix with the column vector rhs.
func (lhs Mat2[T]) Transform(rhs Vec2[T]) Vec2[T] {
	return lhs[0].Mul(rhs.XX()).Add(lhs[1].Mul(rhs.YY()))
}

func (lhs Mat2[T]) Mul(rhs Mat2[T]) Mat2[T] {
	return Mat2[T]{lhs.Transform(rhs[0]), lhs.Transform(rhs[1])}
}

func (lhs Mat2[T]) MulScalar(s T) Mat2[T] {
	return Mat2[T]{lhs[0].MulScalar(s), lhs[1].MulScalar(s)}
}

func (lhs Mat2[T]) DivScalar(s T) Mat2[T] {
	return Mat2[T]{lhs[0].DivScalar(s), lhs[1].DivScalar(s)}
}

func (lhs *Mat2[T]) AddAssign(rhs Mat2[T]) {
	*lhs = lhs.Add(rhs)
}

func (lhs *Mat2[T]) SubAssign(rhs Mat2[T]) {
	*lhs = lhs.Sub(rhs)
}

func (lhs *Mat2[T]) MulAssign(rhs Mat2[T]) {
	*lhs = lhs.Mul(rhs)
}

// Col returns column i, counting from zero.
func (lhs Mat2[T]) Col(i int) Vec2[T] {
	return lhs[i]
}

func (lhs Mat2[T]) Col1() Vec2[T] {
	return lhs[0]
}

func (lhs Mat2[T]) Col2() Vec2[T] {
	return lhs[1]
}

// Row returns row i, counting from zero.
func (lhs Mat2[T]) Row(i int) Vec2[T] {
	return Vec2Of(lhs[0].At(i), lhs[1].At(i))
}

func (lhs Mat2[T]) Columns() [2]Vec2[T] {
	return lhs
}

func (lhs Mat2[T]) Equal(rhs Mat2[T]) bool {
	return lhs[0].Eq(rhs[0]).All() && lhs[1].Eq(rhs[1]).All()
}

func (lhs Mat2[T]) IsZero() bool {
	return lhs == Mat2[T]{}
}

func (lhs Mat2[T]) Trace() T {
	return lhs[0].X() + lhs[1].Y()
}

func (lhs Mat2[T]) Transpose() Mat2[T] {
	// (c1x, c2x, c1y, c2y)
	rows := lane.UnpackLo(lhs[0].lanes, lhs[1].lanes)

	return Mat2[T]{
		{rows.Truncate(2)},
		{lane.MoveHL(rows, rows).Truncate(2)},
	}
}

func (lhs Mat2[T]) Determinant() T {
	return lhs[0].Dot(lhs[1].Cross())
}

// Cofactor returns the matrix of signed minors. Column i is orthogonal to
// every column of lhs except column i.
func (lhs Mat2[T]) Cofactor() Mat2[T] {
	return Mat2[T]{lhs[1].Cross(), lhs[0].Cross().Neg()}
}

// Inverse returns the inverse matrix. A singular matrix yields Inf or NaN
// elements, check Determinant first if that matters.
func (lhs Mat2[T]) Inverse() Mat2[T] {
	return lhs.Cofactor().Transpose().DivScalar(lhs.Determinant())
}

func (lhs Mat2[T]) String() string {
	return fmt.Sprintf("[%v %v]", lhs[0], lhs[1])
}
