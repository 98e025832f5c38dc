package glm

import (
	"fmt"

	"github.com/oliverbestmann/lanemath/internal/lane"
)

// Vec2 is a two component vector held in a four lane register. Lanes 2 and
// 3 are always zero.
type Vec2[T Float] struct {
	lanes lane.Lanes[T]
}

var _ Swizzler2[float32] = Vec2[float32]{}

func Vec2Of[T Float](x, y T) Vec2[T] {
	return Vec2[T]{lane.Set(x, y, 0, 0)}
}

// Vec2Splat returns a vector with both components set to value.
func Vec2Splat[T Float](value T) Vec2[T] {
	return Vec2[T]{lane.Splat(value).Truncate(2)}
}

func OneVec2[T Float]() Vec2[T] {
	return Vec2Splat[T](1)
}

func XAxisVec2[T Float]() Vec2[T] {
	return Vec2Of[T](1, 0)
}

func YAxisVec2[T Float]() Vec2[T] {
	return Vec2Of[T](0, 1)
}

func UpVec2[T Float]() Vec2[T] {
	return Vec2Of[T](0, 1)
}

func DownVec2[T Float]() Vec2[T] {
	return Vec2Of[T](0, -1)
}

func LeftVec2[T Float]() Vec2[T] {
	return Vec2Of[T](-1, 0)
}

func RightVec2[T Float]() Vec2[T] {
	return Vec2Of[T](1, 0)
}

func (lhs Vec2[T]) Add(rhs Vec2[T]) Vec2[T] {
	return Vec2[T]{lhs.lanes.Add(rhs.lanes)}
}

func (lhs Vec2[T]) Sub(rhs Vec2[T]) Vec2[T] {
	return Vec2[T]{lhs.lanes.Sub(rhs.lanes)}
}

func (lhs Vec2[T]) Mul(rhs Vec2[T]) Vec2[T] {
	return Vec2[T]{lhs.lanes.Mul(rhs.lanes)}
}

// Div divides component-wise. The unused lanes divide 0 by 0 and are
// cleared again.
func (lhs Vec2[T]) Div(rhs Vec2[T]) Vec2[T] {
	return Vec2[T]{lhs.lanes.Div(rhs.lanes).Truncate(2)}
}

func (lhs Vec2[T]) AddScalar(s T) Vec2[T] {
	return lhs.Add(Vec2Splat(s))
}

func (lhs Vec2[T]) SubScalar(s T) Vec2[T] {
	return lhs.Sub(Vec2Splat(s))
}

func (lhs Vec2[T]) MulScalar(s T) Vec2[T] {
	return lhs.Mul(Vec2Splat(s))
}

func (lhs Vec2[T]) DivScalar(s T) Vec2[T] {
	return lhs.Div(Vec2Splat(s))
}

func (lhs *Vec2[T]) AddAssign(rhs Vec2[T]) {
	*lhs = lhs.Add(rhs)
}

func (lhs *Vec2[T]) SubAssign(rhs Vec2[T]) {
	*lhs = lhs.Sub(rhs)
}

func (lhs *Vec2[T]) MulAssign(rhs Vec2[T]) {
	*lhs = lhs.Mul(rhs)
}

func (lhs *Vec2[T]) DivAssign(rhs Vec2[T]) {
	*lhs = lhs.Div(rhs)
}

func (lhs Vec2[T]) Eq(rhs Vec2[T]) Mask2 {
	return Mask2{lhs.lanes.Eq(rhs.lanes)}
}

func (lhs Vec2[T]) Ne(rhs Vec2[T]) Mask2 {
	return Mask2{lhs.lanes.Ne(rhs.lanes)}
}

func (lhs Vec2[T]) Lt(rhs Vec2[T]) Mask2 {
	return Mask2{lhs.lanes.Lt(rhs.lanes)}
}

func (lhs Vec2[T]) Le(rhs Vec2[T]) Mask2 {
	return Mask2{lhs.lanes.Le(rhs.lanes)}
}

func (lhs Vec2[T]) Ge(rhs Vec2[T]) Mask2 {
	return Mask2{lhs.lanes.Ge(rhs.lanes)}
}

func (lhs Vec2[T]) Gt(rhs Vec2[T]) Mask2 {
	return Mask2{lhs.lanes.Gt(rhs.lanes)}
}

func (lhs Vec2[T]) EqScalar(s T) Mask2 {
	return lhs.Eq(Vec2Splat(s))
}

func (lhs Vec2[T]) NeScalar(s T) Mask2 {
	return lhs.Ne(Vec2Splat(s))
}

func (lhs Vec2[T]) LtScalar(s T) Mask2 {
	return lhs.Lt(Vec2Splat(s))
}

func (lhs Vec2[T]) LeScalar(s T) Mask2 {
	return lhs.Le(Vec2Splat(s))
}

func (lhs Vec2[T]) GeScalar(s T) Mask2 {
	return lhs.Ge(Vec2Splat(s))
}

func (lhs Vec2[T]) GtScalar(s T) Mask2 {
	return lhs.Gt(Vec2Splat(s))
}

// Equal reports whether both components compare equal.
func (lhs Vec2[T]) Equal(rhs Vec2[T]) bool {
	return lhs.Eq(rhs).All()
}

func (lhs Vec2[T]) Neg() Vec2[T] {
	return Vec2[T]{lhs.lanes.Neg()}
}

func (lhs Vec2[T]) Abs() Vec2[T] {
	return Vec2[T]{lhs.lanes.Abs()}
}

func (lhs Vec2[T]) Min(rhs Vec2[T]) Vec2[T] {
	return Vec2[T]{lhs.lanes.Min(rhs.lanes)}
}

func (lhs Vec2[T]) Max(rhs Vec2[T]) Vec2[T] {
	return Vec2[T]{lhs.lanes.Max(rhs.lanes)}
}

// At returns component i. It panics if i is not 0 or 1.
func (lhs Vec2[T]) At(i int) T {
	return lhs.lanes[:2][i]
}

func (lhs Vec2[T]) Dot(rhs Vec2[T]) T {
	return lhs.lanes.Dot(rhs.lanes, valid2)
}

func (lhs Vec2[T]) LengthSqr() T {
	return lhs.Dot(lhs)
}

func (lhs Vec2[T]) Length() T {
	return sqrt(lhs.LengthSqr())
}

// Normalize divides by the length. A zero vector yields NaN components.
func (lhs Vec2[T]) Normalize() Vec2[T] {
	return lhs.DivScalar(lhs.Length())
}

// Cross returns the perpendicular (y, -x), the vector rotated clockwise by
// 90 degrees. lhs.Dot(rhs.Cross()) is the signed area spanned by both.
func (lhs Vec2[T]) Cross() Vec2[T] {
	return lhs.YX().Mul(Vec2Of[T](1, -1))
}

func (lhs Vec2[T]) Extend(z T) Vec3[T] {
	return Vec3OfXY(lhs, z)
}

// MulMat multiplies the row vector lhs with the matrix.
func (lhs Vec2[T]) MulMat(rhs Mat2[T]) Vec2[T] {
	return Vec2Of(lhs.Dot(rhs[0]), lhs.Dot(rhs[1]))
}

func (lhs Vec2[T]) Components() (x, y T) {
	x = lhs.lanes[0]
	y = lhs.lanes[1]
	return
}

func (lhs Vec2[T]) String() string {
	return fmt.Sprintf("(%v, %v)", lhs.lanes[0], lhs.lanes[1])
}
