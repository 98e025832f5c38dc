package glm

import (
	"math"
	"unsafe"

	"github.com/chewxy/math32"
	"golang.org/x/mobile/exp/f32"
)

// single reports whether T is a 32 bit float. float32 lanes are computed
// in single precision so results match what a register of that width gives.
func single[T Float]() bool {
	var zero T
	return unsafe.Sizeof(zero) == 4
}

func sqrt[T Float](x T) T {
	if single[T]() {
		return T(math32.Sqrt(float32(x)))
	}
	return T(math.Sqrt(float64(x)))
}

func acos[T Float](x T) T {
	if single[T]() {
		return T(math32.Acos(float32(x)))
	}
	return T(math.Acos(float64(x)))
}

func tan[T Float](r Rad) T {
	if single[T]() {
		return T(math32.Tan(float32(r)))
	}
	return T(math.Tan(float64(r)))
}

func sincos[T Float](r Rad) (T, T) {
	if single[T]() {
		s, c := math32.Sincos(float32(r))
		return T(s), T(c)
	}

	s, c := math.Sincos(float64(r))
	return T(s), T(c)
}

// FastSincos approximates sin and cos of r from a lookup table. The error is
// in the order of 1e-3, so it must not feed rotations that need to be exact.
func FastSincos(r Rad) (float32, float32) {
	return f32.Sin(float32(r)), f32.Cos(float32(r))
}
