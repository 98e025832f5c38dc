package glm

type Mat2f = Mat2[float32]
type Mat3f = Mat3[float32]
type Mat4f = Mat4[float32]

type Mat2d = Mat2[float64]
type Mat3d = Mat3[float64]
type Mat4d = Mat4[float64]

type Vec2f = Vec2[float32]
type Vec3f = Vec3[float32]
type Vec4f = Vec4[float32]

type Vec2d = Vec2[float64]
type Vec3d = Vec3[float64]
type Vec4d = Vec4[float64]

type Quatf = Quaternion[float32]
type Quatd = Quaternion[float64]

type AABB2f = AABB[Vec2f, float32]
type AABB3f = AABB[Vec3f, float32]
type AABB2d = AABB[Vec2d, float64]
type AABB3d = AABB[Vec3d, float64]
