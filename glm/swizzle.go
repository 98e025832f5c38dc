// Package glm provides fixed size vectors, square matrices and quaternions
// for geometry and transform math. Every value is held in four lane
// registers; the unused trailing lanes of Vec2 and Vec3 are always zero.
//
// Each vector type carries the full set of swizzle accessors, generated
// into the swizzle*.gen.go files. Vec3.ZXY returns (z, x, y), Vec4.RRG
// returns (x, x, y) as a Vec3, and single letter accessors such as Vec2.Y
// return a scalar.
package glm

//go:generate go run ../cmd/swizzlegen --out . --package glm
