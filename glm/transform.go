package glm

// TranslationMat3 is the homogeneous 2D translation by displacement.
func TranslationMat3[T Float](displacement Vec2[T]) Mat3[T] {
	m := IdentityMat3[T]()
	m[2] = m[2].Add(Vec3OfXY(displacement, 0))
	return m
}

// TranslationMat4 is the homogeneous 3D translation by displacement.
func TranslationMat4[T Float](displacement Vec3[T]) Mat4[T] {
	m := IdentityMat4[T]()
	m[3] = m[3].Add(Vec4OfXYZ(displacement, 0))
	return m
}

// RotationMat2 rotates counter clockwise by theta.
func RotationMat2[T Float](theta Rad) Mat2[T] {
	s, c := sincos[T](theta)
	return Mat2FromRows(
		c, -s,
		s, c,
	)
}

func RotationMat3[T Float](q Quaternion[T]) Mat3[T] {
	return q.RotMat3()
}

func RotationMat4[T Float](q Quaternion[T]) Mat4[T] {
	return q.RotMat4()
}

func ScaleMat2[T Float](scale Vec2[T]) Mat2[T] {
	return Mat2[T]{
		XAxisVec2[T]().MulScalar(scale.X()),
		YAxisVec2[T]().MulScalar(scale.Y()),
	}
}

func ScaleMat3[T Float](scale Vec3[T]) Mat3[T] {
	return Mat3[T]{
		XAxisVec3[T]().MulScalar(scale.X()),
		YAxisVec3[T]().MulScalar(scale.Y()),
		ZAxisVec3[T]().MulScalar(scale.Z()),
	}
}

func ScaleMat4[T Float](scale Vec4[T]) Mat4[T] {
	return Mat4[T]{
		XAxisVec4[T]().MulScalar(scale.X()),
		YAxisVec4[T]().MulScalar(scale.Y()),
		ZAxisVec4[T]().MulScalar(scale.Z()),
		WAxisVec4[T]().MulScalar(scale.W()),
	}
}

// Perspective builds a reverse-Z projection: the near plane maps to depth 1
// and the far plane to depth 0. A far plane of exactly zero selects an
// infinitely distant far plane. fovY is the vertical field of view in
// radians; the horizontal scale is derived from it through aspect.
func Perspective[T Float](fovY Rad, aspect, near, far T) Mat4[T] {
	sy := 1 / tan[T](fovY/2)
	sx := sy / aspect

	if far == 0 {
		return Mat4[T]{
			XAxisVec4[T]().MulScalar(sx),
			YAxisVec4[T]().MulScalar(sy),
			WAxisVec4[T]().Neg(),
			ZAxisVec4[T]().MulScalar(near),
		}
	}

	return Mat4[T]{
		XAxisVec4[T]().MulScalar(sx),
		YAxisVec4[T]().MulScalar(sy),
		Vec4Of(0, 0, near/(far-near), -1),
		ZAxisVec4[T]().MulScalar(far * near / (far - near)),
	}
}

// Orthographic moves the center of the box to the origin and scales it to
// unit size.
func Orthographic[T Float](box AABB[Vec3[T], T]) Mat4[T] {
	scale := OneVec3[T]().Div(box.Dimensions())
	return ScaleMat4(Vec4OfXYZ(scale, 1)).Mul(TranslationMat4(box.Centroid().Neg()))
}

// LookAt builds a view matrix for a camera at eye looking at center.
func LookAt[T Float](eye, center, up Vec3[T]) Mat4[T] {
	f := center.Sub(eye).Normalize()
	s := f.Cross(up).Normalize()
	u := s.Cross(f)

	return Mat4FromRows(
		s.X(), s.Y(), s.Z(), -eye.Dot(s),
		u.X(), u.Y(), u.Z(), -eye.Dot(u),
		-f.X(), -f.Y(), -f.Z(), eye.Dot(f),
		0, 0, 0, 1,
	)
}

func Mat4FromQuaternion[T Float](q Quaternion[T]) Mat4[T] {
	return q.RotMat4()
}
