package glm

import "fmt"

// Quaternion stores the vector part in xyz and the real part in w of V.
type Quaternion[T Float] struct {
	V Vec4[T]
}

// IdentityQuaternion is the rotation by zero radians.
func IdentityQuaternion[T Float]() Quaternion[T] {
	return Quaternion[T]{WAxisVec4[T]()}
}

func QuaternionOf[T Float](vector Vec3[T], real T) Quaternion[T] {
	return Quaternion[T]{Vec4OfXYZ(vector, real)}
}

// QuaternionFromAngleAxis returns the rotation by angle around axis. The
// axis must have unit length for the result to have unit norm.
func QuaternionFromAngleAxis[T Float](angle Rad, axis Vec3[T]) Quaternion[T] {
	s, c := sincos[T](angle / 2)
	return QuaternionOf(axis.MulScalar(s), c)
}

// QuaternionFromCosAngleAxis is QuaternionFromAngleAxis with the cosine
// already known. cos must be in [-1, 1].
func QuaternionFromCosAngleAxis[T Float](cos T, axis Vec3[T]) Quaternion[T] {
	return QuaternionOf(axis.MulScalar(sqrt(1-cos*cos)), cos)
}

// QuaternionFromEulerZXY rotates by roll around z, then pitch around x,
// then yaw around y, composed as roll * pitch * yaw.
func QuaternionFromEulerZXY[T Float](pitch, yaw, roll Rad) Quaternion[T] {
	qRoll := QuaternionFromAngleAxis(roll, ZAxisVec3[T]())
	qPitch := QuaternionFromAngleAxis(pitch, XAxisVec3[T]())
	qYaw := QuaternionFromAngleAxis(yaw, YAxisVec3[T]())
	return qRoll.Mul(qPitch).Mul(qYaw)
}

// Vector returns the imaginary part.
func (lhs Quaternion[T]) Vector() Vec3[T] {
	return lhs.V.XYZ()
}

// Real returns the scalar part.
func (lhs Quaternion[T]) Real() T {
	return lhs.V.W()
}

// Conj negates the vector part.
func (lhs Quaternion[T]) Conj() Quaternion[T] {
	return Quaternion[T]{lhs.V.Mul(Vec4Of[T](-1, -1, -1, 1))}
}

// Norm is the squared length of all four components.
func (lhs Quaternion[T]) Norm() T {
	return lhs.V.LengthSqr()
}

func (lhs Quaternion[T]) Normalize() Quaternion[T] {
	return Quaternion[T]{lhs.V.Normalize()}
}

// Inverse is the conjugate scaled by the reciprocal norm.
func (lhs Quaternion[T]) Inverse() Quaternion[T] {
	return Quaternion[T]{lhs.Conj().V.DivScalar(lhs.Norm())}
}

func (lhs Quaternion[T]) Add(rhs Quaternion[T]) Quaternion[T] {
	return Quaternion[T]{lhs.V.Add(rhs.V)}
}

func (lhs Quaternion[T]) Sub(rhs Quaternion[T]) Quaternion[T] {
	return Quaternion[T]{lhs.V.Sub(rhs.V)}
}

// Mul is the Hamilton product.
func (lhs Quaternion[T]) Mul(rhs Quaternion[T]) Quaternion[T] {
	lv, rv := lhs.V.XYZ(), rhs.V.XYZ()

	vector := lv.Cross(rv).
		Add(lhs.V.WWW().Mul(rv)).
		Add(lv.Mul(rhs.V.WWW()))

	return QuaternionOf(vector, lhs.Conj().V.Dot(rhs.V))
}

func (lhs Quaternion[T]) MulScalar(s T) Quaternion[T] {
	return Quaternion[T]{lhs.V.MulScalar(s)}
}

func (lhs Quaternion[T]) DivScalar(s T) Quaternion[T] {
	return Quaternion[T]{lhs.V.DivScalar(s)}
}

func (lhs *Quaternion[T]) AddAssign(rhs Quaternion[T]) {
	*lhs = lhs.Add(rhs)
}

func (lhs *Quaternion[T]) SubAssign(rhs Quaternion[T]) {
	*lhs = lhs.Sub(rhs)
}

func (lhs *Quaternion[T]) MulAssign(rhs Quaternion[T]) {
	*lhs = lhs.Mul(rhs)
}

func (lhs Quaternion[T]) Eq(rhs Quaternion[T]) Mask4 {
	return lhs.V.Eq(rhs.V)
}

func (lhs Quaternion[T]) Ne(rhs Quaternion[T]) Mask4 {
	return lhs.V.Ne(rhs.V)
}

func (lhs Quaternion[T]) Lt(rhs Quaternion[T]) Mask4 {
	return lhs.V.Lt(rhs.V)
}

func (lhs Quaternion[T]) Le(rhs Quaternion[T]) Mask4 {
	return lhs.V.Le(rhs.V)
}

func (lhs Quaternion[T]) Ge(rhs Quaternion[T]) Mask4 {
	return lhs.V.Ge(rhs.V)
}

func (lhs Quaternion[T]) Gt(rhs Quaternion[T]) Mask4 {
	return lhs.V.Gt(rhs.V)
}

// Rotate applies the rotation to v, computed as q * (v, 0) * conj(q).
func (lhs Quaternion[T]) Rotate(v Vec3[T]) Vec3[T] {
	return lhs.Rotate4(Vec4OfXYZ(v, 0)).XYZ()
}

// Rotate4 computes q * v * conj(q) with v taken as a quaternion as is.
func (lhs Quaternion[T]) Rotate4(v Vec4[T]) Vec4[T] {
	return lhs.Mul(Quaternion[T]{v}).Mul(lhs.Conj()).V
}

// RotMat4 returns the rotation as a matrix. It is the product of the left
// multiplication matrix of q and the right multiplication matrix of
// conj(q), divided by the norm.
func (lhs Quaternion[T]) RotMat4() Mat4[T] {
	v := lhs.V

	left := Mat4[T]{
		v.WZYX().Mul(Vec4Of[T](1, 1, -1, -1)),
		v.ZWXY().Mul(Vec4Of[T](-1, 1, 1, -1)),
		v.YXWZ().Mul(Vec4Of[T](1, -1, 1, -1)),
		v,
	}

	right := Mat4[T]{
		v.WZYX().Mul(Vec4Of[T](1, 1, -1, 1)),
		v.ZWXY().Mul(Vec4Of[T](-1, 1, 1, 1)),
		v.YXWZ().Mul(Vec4Of[T](1, -1, 1, 1)),
		v.Mul(Vec4Of[T](-1, -1, -1, 1)),
	}

	return left.Mul(right).MulScalar(1 / lhs.Norm())
}

func (lhs Quaternion[T]) RotMat3() Mat3[T] {
	return Mat3FromMat4(lhs.RotMat4())
}

// Exponent raises a unit quaternion to the power t, scaling its rotation
// angle by t. The real part is not clamped, so a quaternion that is not
// normalized yields NaN.
func (lhs Quaternion[T]) Exponent(t T) Quaternion[T] {
	angle := acos(lhs.V.W())
	s, c := sincos[T](Rad(t * angle))
	return QuaternionOf(lhs.V.XYZ().Normalize().MulScalar(s), c)
}

func (lhs Quaternion[T]) String() string {
	x, y, z, w := lhs.V.Components()
	return fmt.Sprintf("(%v, %v, %v; %v)", x, y, z, w)
}
