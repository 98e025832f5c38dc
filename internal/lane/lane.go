// Package lane provides a four lane register of floats and the handful of
// lane operations the vector types in glm are built from.
//
// Every register physically holds four lanes regardless of how many of them
// a caller treats as meaningful. Operations always process all four lanes;
// callers that use fewer lanes pass a Mask to the reductions.
package lane

import "golang.org/x/exp/constraints"

// Float is the element type of a register.
type Float interface {
	constraints.Float
}

// Width is the number of physical lanes in a register.
const Width = 4

// Lanes is a four lane register.
type Lanes[T Float] [Width]T

// Set creates a register from four lane values, x in lane 0.
func Set[T Float](x, y, z, w T) Lanes[T] {
	return Lanes[T]{x, y, z, w}
}

// Splat creates a register with all lanes set to the same value.
func Splat[T Float](value T) Lanes[T] {
	return Lanes[T]{value, value, value, value}
}

func (a Lanes[T]) Add(b Lanes[T]) Lanes[T] {
	return Lanes[T]{a[0] + b[0], a[1] + b[1], a[2] + b[2], a[3] + b[3]}
}

func (a Lanes[T]) Sub(b Lanes[T]) Lanes[T] {
	return Lanes[T]{a[0] - b[0], a[1] - b[1], a[2] - b[2], a[3] - b[3]}
}

func (a Lanes[T]) Mul(b Lanes[T]) Lanes[T] {
	return Lanes[T]{a[0] * b[0], a[1] * b[1], a[2] * b[2], a[3] * b[3]}
}

func (a Lanes[T]) Div(b Lanes[T]) Lanes[T] {
	return Lanes[T]{a[0] / b[0], a[1] / b[1], a[2] / b[2], a[3] / b[3]}
}

func (a Lanes[T]) Neg() Lanes[T] {
	return Lanes[T]{-a[0], -a[1], -a[2], -a[3]}
}

// Abs clears the sign of every lane.
func (a Lanes[T]) Abs() Lanes[T] {
	var result Lanes[T]
	for i, v := range a {
		if v < 0 || (v == 0 && 1/v < 0) {
			v = -v
		}
		result[i] = v
	}
	return result
}

// Min returns the lane-wise minimum.
func (a Lanes[T]) Min(b Lanes[T]) Lanes[T] {
	var result Lanes[T]
	for i := range a {
		if a[i] < b[i] {
			result[i] = a[i]
		} else {
			result[i] = b[i]
		}
	}
	return result
}

// Max returns the lane-wise maximum.
func (a Lanes[T]) Max(b Lanes[T]) Lanes[T] {
	var result Lanes[T]
	for i := range a {
		if a[i] > b[i] {
			result[i] = a[i]
		} else {
			result[i] = b[i]
		}
	}
	return result
}

// Sum adds the lanes selected by the mask.
func (a Lanes[T]) Sum(m Mask) T {
	var sum T
	for i, v := range a {
		if m.Has(i) {
			sum += v
		}
	}
	return sum
}

// Dot multiplies lane-wise and sums the products of the lanes selected by
// the mask. Lanes outside the mask never contribute.
func (a Lanes[T]) Dot(b Lanes[T], m Mask) T {
	return a.Mul(b).Sum(m)
}

// First returns lane 0.
func (a Lanes[T]) First() T {
	return a[0]
}

// Truncate keeps the first n lanes and zeroes the rest.
func (a Lanes[T]) Truncate(n int) Lanes[T] {
	var result Lanes[T]
	copy(result[:n], a[:n])
	return result
}
