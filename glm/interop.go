package glm

import "golang.org/x/image/math/f32"

func (lhs Vec2[T]) F32() f32.Vec2 {
	return f32.Vec2{float32(lhs.lanes[0]), float32(lhs.lanes[1])}
}

func (lhs Vec3[T]) F32() f32.Vec3 {
	return f32.Vec3{float32(lhs.lanes[0]), float32(lhs.lanes[1]), float32(lhs.lanes[2])}
}

func (lhs Vec4[T]) F32() f32.Vec4 {
	return f32.Vec4{float32(lhs.lanes[0]), float32(lhs.lanes[1]), float32(lhs.lanes[2]), float32(lhs.lanes[3])}
}

func Vec2FromF32[T Float](v f32.Vec2) Vec2[T] {
	return Vec2Of(T(v[0]), T(v[1]))
}

func Vec3FromF32[T Float](v f32.Vec3) Vec3[T] {
	return Vec3Of(T(v[0]), T(v[1]), T(v[2]))
}

func Vec4FromF32[T Float](v f32.Vec4) Vec4[T] {
	return Vec4Of(T(v[0]), T(v[1]), T(v[2]), T(v[3]))
}

// F32 returns the matrix in the row major layout of f32.Mat3.
func (lhs Mat3[T]) F32() f32.Mat3 {
	var m f32.Mat3
	for col, v := range lhs {
		for row := range 3 {
			m[row*3+col] = float32(v.At(row))
		}
	}
	return m
}

// F32 returns the matrix in the row major layout of f32.Mat4.
func (lhs Mat4[T]) F32() f32.Mat4 {
	var m f32.Mat4
	for col, v := range lhs {
		for row := range 4 {
			m[row*4+col] = float32(v.At(row))
		}
	}
	return m
}

func Mat3FromF32[T Float](m f32.Mat3) Mat3[T] {
	return Mat3FromRows(
		T(m[0]), T(m[1]), T(m[2]),
		T(m[3]), T(m[4]), T(m[5]),
		T(m[6]), T(m[7]), T(m[8]),
	)
}

func Mat4FromF32[T Float](m f32.Mat4) Mat4[T] {
	return Mat4FromRows(
		T(m[0]), T(m[1]), T(m[2]), T(m[3]),
		T(m[4]), T(m[5]), T(m[6]), T(m[7]),
		T(m[8]), T(m[9]), T(m[10]), T(m[11]),
		T(m[12]), T(m[13]), T(m[14]), T(m[15]),
	)
}
