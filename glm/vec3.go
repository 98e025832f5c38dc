package glm

import (
	"fmt"

	"github.com/oliverbestmann/lanemath/internal/lane"
)

// Vec3 is a three component vector held in a four lane register. Lane 3
// is always zero.
type Vec3[T Float] struct {
	lanes lane.Lanes[T]
}

var _ Swizzler3[float32] = Vec3[float32]{}

func Vec3Of[T Float](x, y, z T) Vec3[T] {
	return Vec3[T]{lane.Set(x, y, z, 0)}
}

// Vec3OfXY builds (xy.x, xy.y, z).
func Vec3OfXY[T Float](xy Vec2[T], z T) Vec3[T] {
	return Vec3[T]{lane.MoveLH(xy.lanes, lane.Splat(z)).Truncate(3)}
}

// Vec3OfYZ builds (x, yz.x, yz.y).
func Vec3OfYZ[T Float](x T, yz Vec2[T]) Vec3[T] {
	return Vec3[T]{lane.MoveLH(yz.lanes, lane.Splat(x)).Permute(2, 0, 1, 3).Truncate(3)}
}

// Vec3Splat returns a vector with all components set to value.
func Vec3Splat[T Float](value T) Vec3[T] {
	return Vec3[T]{lane.Splat(value).Truncate(3)}
}

func OneVec3[T Float]() Vec3[T] {
	return Vec3Splat[T](1)
}

func XAxisVec3[T Float]() Vec3[T] {
	return Vec3Of[T](1, 0, 0)
}

func YAxisVec3[T Float]() Vec3[T] {
	return Vec3Of[T](0, 1, 0)
}

func ZAxisVec3[T Float]() Vec3[T] {
	return Vec3Of[T](0, 0, 1)
}

func RightVec3[T Float]() Vec3[T] {
	return XAxisVec3[T]()
}

func LeftVec3[T Float]() Vec3[T] {
	return XAxisVec3[T]().Neg()
}

func UpVec3[T Float]() Vec3[T] {
	return YAxisVec3[T]()
}

func DownVec3[T Float]() Vec3[T] {
	return YAxisVec3[T]().Neg()
}

// ForwardVec3 points down the negative z axis.
func ForwardVec3[T Float]() Vec3[T] {
	return ZAxisVec3[T]().Neg()
}

func BackwardVec3[T Float]() Vec3[T] {
	return ZAxisVec3[T]()
}

func (lhs Vec3[T]) Add(rhs Vec3[T]) Vec3[T] {
	return Vec3[T]{lhs.lanes.Add(rhs.lanes)}
}

func (lhs Vec3[T]) Sub(rhs Vec3[T]) Vec3[T] {
	return Vec3[T]{lhs.lanes.Sub(rhs.lanes)}
}

func (lhs Vec3[T]) Mul(rhs Vec3[T]) Vec3[T] {
	return Vec3[T]{lhs.lanes.Mul(rhs.lanes)}
}

func (lhs Vec3[T]) Div(rhs Vec3[T]) Vec3[T] {
	return Vec3[T]{lhs.lanes.Div(rhs.lanes).Truncate(3)}
}

func (lhs Vec3[T]) AddScalar(s T) Vec3[T] {
	return lhs.Add(Vec3Splat(s))
}

func (lhs Vec3[T]) SubScalar(s T) Vec3[T] {
	return lhs.Sub(Vec3Splat(s))
}

func (lhs Vec3[T]) MulScalar(s T) Vec3[T] {
	return lhs.Mul(Vec3Splat(s))
}

func (lhs Vec3[T]) DivScalar(s T) Vec3[T] {
	return lhs.Div(Vec3Splat(s))
}

func (lhs *Vec3[T]) AddAssign(rhs Vec3[T]) {
	*lhs = lhs.Add(rhs)
}

func (lhs *Vec3[T]) SubAssign(rhs Vec3[T]) {
	*lhs = lhs.Sub(rhs)
}

func (lhs *Vec3[T]) MulAssign(rhs Vec3[T]) {
	*lhs = lhs.Mul(rhs)
}

func (lhs *Vec3[T]) DivAssign(rhs Vec3[T]) {
	*lhs = lhs.Div(rhs)
}

func (lhs Vec3[T]) Eq(rhs Vec3[T]) Mask3 {
	return Mask3{lhs.lanes.Eq(rhs.lanes)}
}

func (lhs Vec3[T]) Ne(rhs Vec3[T]) Mask3 {
	return Mask3{lhs.lanes.Ne(rhs.lanes)}
}

func (lhs Vec3[T]) Lt(rhs Vec3[T]) Mask3 {
	return Mask3{lhs.lanes.Lt(rhs.lanes)}
}

func (lhs Vec3[T]) Le(rhs Vec3[T]) Mask3 {
	return Mask3{lhs.lanes.Le(rhs.lanes)}
}

func (lhs Vec3[T]) Ge(rhs Vec3[T]) Mask3 {
	return Mask3{lhs.lanes.Ge(rhs.lanes)}
}

func (lhs Vec3[T]) Gt(rhs Vec3[T]) Mask3 {
	return Mask3{lhs.lanes.Gt(rhs.lanes)}
}

func (lhs Vec3[T]) EqScalar(s T) Mask3 {
	return lhs.Eq(Vec3Splat(s))
}

func (lhs Vec3[T]) NeScalar(s T) Mask3 {
	return lhs.Ne(Vec3Splat(s))
}

func (lhs Vec3[T]) LtScalar(s T) Mask3 {
	return lhs.Lt(Vec3Splat(s))
}

func (lhs Vec3[T]) LeScalar(s T) Mask3 {
	return lhs.Le(Vec3Splat(s))
}

func (lhs Vec3[T]) GeScalar(s T) Mask3 {
	return lhs.Ge(Vec3Splat(s))
}

func (lhs Vec3[T]) GtScalar(s T) Mask3 {
	return lhs.Gt(Vec3Splat(s))
}

func (lhs Vec3[T]) Equal(rhs Vec3[T]) bool {
	return lhs.Eq(rhs).All()
}

func (lhs Vec3[T]) Neg() Vec3[T] {
	return Vec3[T]{lhs.lanes.Neg()}
}

func (lhs Vec3[T]) Abs() Vec3[T] {
	return Vec3[T]{lhs.lanes.Abs()}
}

func (lhs Vec3[T]) Min(rhs Vec3[T]) Vec3[T] {
	return Vec3[T]{lhs.lanes.Min(rhs.lanes)}
}

func (lhs Vec3[T]) Max(rhs Vec3[T]) Vec3[T] {
	return Vec3[T]{lhs.lanes.Max(rhs.lanes)}
}

// At returns component i. It panics if i is not in [0, 3).
func (lhs Vec3[T]) At(i int) T {
	return lhs.lanes[:3][i]
}

func (lhs Vec3[T]) Dot(rhs Vec3[T]) T {
	return lhs.lanes.Dot(rhs.lanes, valid3)
}

func (lhs Vec3[T]) LengthSqr() T {
	return lhs.Dot(lhs)
}

func (lhs Vec3[T]) Length() T {
	return sqrt(lhs.LengthSqr())
}

func (lhs Vec3[T]) Normalize() Vec3[T] {
	return lhs.DivScalar(lhs.Length())
}

// Cross returns lhs × rhs. Both operands are rotated by one lane, multiplied
// crosswise and the difference is rotated back into x, y, z order.
func (lhs Vec3[T]) Cross(rhs Vec3[T]) Vec3[T] {
	return lhs.ZXY().Mul(rhs).Sub(lhs.Mul(rhs.ZXY())).ZXY()
}

func (lhs Vec3[T]) Extend(w T) Vec4[T] {
	return Vec4OfXYZ(lhs, w)
}

func (lhs Vec3[T]) Truncate() Vec2[T] {
	return lhs.XY()
}

func (lhs Vec3[T]) MulMat(rhs Mat3[T]) Vec3[T] {
	return Vec3Of(lhs.Dot(rhs[0]), lhs.Dot(rhs[1]), lhs.Dot(rhs[2]))
}

func (lhs Vec3[T]) Components() (x, y, z T) {
	x = lhs.lanes[0]
	y = lhs.lanes[1]
	z = lhs.lanes[2]
	return
}

func (lhs Vec3[T]) String() string {
	return fmt.Sprintf("(%v, %v, %v)", lhs.lanes[0], lhs.lanes[1], lhs.lanes[2])
}
