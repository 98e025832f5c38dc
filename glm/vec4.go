package glm

import (
	"fmt"

	"github.com/oliverbestmann/lanemath/internal/lane"
)

// Vec4 is a four component vector filling a whole four lane register.
type Vec4[T Float] struct {
	lanes lane.Lanes[T]
}

var _ Swizzler4[float32] = Vec4[float32]{}

func Vec4Of[T Float](x, y, z, w T) Vec4[T] {
	return Vec4[T]{lane.Set(x, y, z, w)}
}

// Vec4OfXYZ builds (xyz.x, xyz.y, xyz.z, w).
func Vec4OfXYZ[T Float](xyz Vec3[T], w T) Vec4[T] {
	// rotate xyz up by one lane, drop w into lane 0 and rotate back
	lanes := lane.MoveSS(xyz.lanes.Permute(3, 0, 1, 2), lane.Splat(w))
	return Vec4[T]{lanes.Permute(1, 2, 3, 0)}
}

// Vec4OfYZW builds (x, yzw.x, yzw.y, yzw.z).
func Vec4OfYZW[T Float](x T, yzw Vec3[T]) Vec4[T] {
	return Vec4OfXYZ(yzw, x).WXYZ()
}

// Vec4OfXYAndZW builds (xy.x, xy.y, zw.x, zw.y).
func Vec4OfXYAndZW[T Float](xy, zw Vec2[T]) Vec4[T] {
	return Vec4[T]{lane.MoveLH(xy.lanes, zw.lanes)}
}

// Vec4OfXY builds (xy.x, xy.y, z, w).
func Vec4OfXY[T Float](xy Vec2[T], z, w T) Vec4[T] {
	return Vec4OfXYAndZW(xy, Vec2Of(z, w))
}

// Vec4OfYZ builds (x, yz.x, yz.y, w).
func Vec4OfYZ[T Float](x T, yz Vec2[T], w T) Vec4[T] {
	return Vec4OfXY(yz, x, w).ZXYW()
}

// Vec4OfZW builds (x, y, zw.x, zw.y).
func Vec4OfZW[T Float](x, y T, zw Vec2[T]) Vec4[T] {
	return Vec4OfXYAndZW(Vec2Of(x, y), zw)
}

// Vec4Splat returns a vector with all components set to value.
func Vec4Splat[T Float](value T) Vec4[T] {
	return Vec4[T]{lane.Splat(value)}
}

func OneVec4[T Float]() Vec4[T] {
	return Vec4Splat[T](1)
}

func XAxisVec4[T Float]() Vec4[T] {
	return Vec4Of[T](1, 0, 0, 0)
}

func YAxisVec4[T Float]() Vec4[T] {
	return Vec4Of[T](0, 1, 0, 0)
}

func ZAxisVec4[T Float]() Vec4[T] {
	return Vec4Of[T](0, 0, 1, 0)
}

func WAxisVec4[T Float]() Vec4[T] {
	return Vec4Of[T](0, 0, 0, 1)
}

func RightVec4[T Float]() Vec4[T] {
	return XAxisVec4[T]()
}

func LeftVec4[T Float]() Vec4[T] {
	return XAxisVec4[T]().Neg()
}

func UpVec4[T Float]() Vec4[T] {
	return YAxisVec4[T]()
}

func DownVec4[T Float]() Vec4[T] {
	return YAxisVec4[T]().Neg()
}

func ForwardVec4[T Float]() Vec4[T] {
	return ZAxisVec4[T]().Neg()
}

func BackwardVec4[T Float]() Vec4[T] {
	return ZAxisVec4[T]()
}

func (lhs Vec4[T]) Add(rhs Vec4[T]) Vec4[T] {
	return Vec4[T]{lhs.lanes.Add(rhs.lanes)}
}

func (lhs Vec4[T]) Sub(rhs Vec4[T]) Vec4[T] {
	return Vec4[T]{lhs.lanes.Sub(rhs.lanes)}
}

func (lhs Vec4[T]) Mul(rhs Vec4[T]) Vec4[T] {
	return Vec4[T]{lhs.lanes.Mul(rhs.lanes)}
}

func (lhs Vec4[T]) Div(rhs Vec4[T]) Vec4[T] {
	return Vec4[T]{lhs.lanes.Div(rhs.lanes)}
}

func (lhs Vec4[T]) AddScalar(s T) Vec4[T] {
	return lhs.Add(Vec4Splat(s))
}

func (lhs Vec4[T]) SubScalar(s T) Vec4[T] {
	return lhs.Sub(Vec4Splat(s))
}

func (lhs Vec4[T]) MulScalar(s T) Vec4[T] {
	return lhs.Mul(Vec4Splat(s))
}

func (lhs Vec4[T]) DivScalar(s T) Vec4[T] {
	return lhs.Div(Vec4Splat(s))
}

func (lhs *Vec4[T]) AddAssign(rhs Vec4[T]) {
	*lhs = lhs.Add(rhs)
}

func (lhs *Vec4[T]) SubAssign(rhs Vec4[T]) {
	*lhs = lhs.Sub(rhs)
}

func (lhs *Vec4[T]) MulAssign(rhs Vec4[T]) {
	*lhs = lhs.Mul(rhs)
}

func (lhs *Vec4[T]) DivAssign(rhs Vec4[T]) {
	*lhs = lhs.Div(rhs)
}

func (lhs Vec4[T]) Eq(rhs Vec4[T]) Mask4 {
	return Mask4{lhs.lanes.Eq(rhs.lanes)}
}

func (lhs Vec4[T]) Ne(rhs Vec4[T]) Mask4 {
	return Mask4{lhs.lanes.Ne(rhs.lanes)}
}

func (lhs Vec4[T]) Lt(rhs Vec4[T]) Mask4 {
	return Mask4{lhs.lanes.Lt(rhs.lanes)}
}

func (lhs Vec4[T]) Le(rhs Vec4[T]) Mask4 {
	return Mask4{lhs.lanes.Le(rhs.lanes)}
}

func (lhs Vec4[T]) Ge(rhs Vec4[T]) Mask4 {
	return Mask4{lhs.lanes.Ge(rhs.lanes)}
}

func (lhs Vec4[T]) Gt(rhs Vec4[T]) Mask4 {
	return Mask4{lhs.lanes.Gt(rhs.lanes)}
}

func (lhs Vec4[T]) EqScalar(s T) Mask4 {
	return lhs.Eq(Vec4Splat(s))
}

func (lhs Vec4[T]) NeScalar(s T) Mask4 {
	return lhs.Ne(Vec4Splat(s))
}

func (lhs Vec4[T]) LtScalar(s T) Mask4 {
	return lhs.Lt(Vec4Splat(s))
}

func (lhs Vec4[T]) LeScalar(s T) Mask4 {
	return lhs.Le(Vec4Splat(s))
}

func (lhs Vec4[T]) GeScalar(s T) Mask4 {
	return lhs.Ge(Vec4Splat(s))
}

func (lhs Vec4[T]) GtScalar(s T) Mask4 {
	return lhs.Gt(Vec4Splat(s))
}

func (lhs Vec4[T]) Equal(rhs Vec4[T]) bool {
	return lhs.Eq(rhs).All()
}

func (lhs Vec4[T]) Neg() Vec4[T] {
	return Vec4[T]{lhs.lanes.Neg()}
}

func (lhs Vec4[T]) Abs() Vec4[T] {
	return Vec4[T]{lhs.lanes.Abs()}
}

func (lhs Vec4[T]) Min(rhs Vec4[T]) Vec4[T] {
	return Vec4[T]{lhs.lanes.Min(rhs.lanes)}
}

func (lhs Vec4[T]) Max(rhs Vec4[T]) Vec4[T] {
	return Vec4[T]{lhs.lanes.Max(rhs.lanes)}
}

// At returns component i. It panics if i is not in [0, 4).
func (lhs Vec4[T]) At(i int) T {
	return lhs.lanes[i]
}

func (lhs Vec4[T]) Dot(rhs Vec4[T]) T {
	return lhs.lanes.Dot(rhs.lanes, valid4)
}

func (lhs Vec4[T]) LengthSqr() T {
	return lhs.Dot(lhs)
}

func (lhs Vec4[T]) Length() T {
	return sqrt(lhs.LengthSqr())
}

func (lhs Vec4[T]) Normalize() Vec4[T] {
	return lhs.DivScalar(lhs.Length())
}

// Cross is the ternary cross product in four dimensions: the vector
// orthogonal to lhs, mhs and rhs. Component i is the 3x3 determinant of the
// three operands with row i dropped, signed +, -, +, -. For any d,
// d.Dot(a.Cross(b, c)) is the determinant of the matrix with columns d, a, b, c.
func (lhs Vec4[T]) Cross(mhs, rhs Vec4[T]) Vec4[T] {
	return Vec4Of(
		lhs.YZW().Dot(mhs.YZW().Cross(rhs.YZW())),
		-lhs.XZW().Dot(mhs.XZW().Cross(rhs.XZW())),
		lhs.XYW().Dot(mhs.XYW().Cross(rhs.XYW())),
		-lhs.XYZ().Dot(mhs.XYZ().Cross(rhs.XYZ())),
	)
}

func (lhs Vec4[T]) Truncate() Vec3[T] {
	return lhs.XYZ()
}

func (lhs Vec4[T]) MulMat(rhs Mat4[T]) Vec4[T] {
	return Vec4Of(lhs.Dot(rhs[0]), lhs.Dot(rhs[1]), lhs.Dot(rhs[2]), lhs.Dot(rhs[3]))
}

func (lhs Vec4[T]) Components() (x, y, z, w T) {
	x = lhs.lanes[0]
	y = lhs.lanes[1]
	z = lhs.lanes[2]
	w = lhs.lanes[3]
	return
}

func (lhs Vec4[T]) String() string {
	return fmt.Sprintf("(%v, %v, %v, %v)", lhs.lanes[0], lhs.lanes[1], lhs.lanes[2], lhs.lanes[3])
}
