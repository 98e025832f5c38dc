package lane

// Mask holds one bit per lane, bit i for lane i, the way a movemask
// instruction reports a comparison.
type Mask uint8

// First returns the mask selecting lanes [0, n).
func First(n int) Mask {
	return Mask(1)<<n - 1
}

// Has reports whether lane i is set.
func (m Mask) Has(i int) bool {
	return m&(1<<i) != 0
}

// Any reports whether any lane selected by valid is set.
func (m Mask) Any(valid Mask) bool {
	return m&valid != 0
}

// All reports whether every lane selected by valid is set.
func (m Mask) All(valid Mask) bool {
	return m&valid == valid
}

func compare[T Float](a, b Lanes[T], pred func(a, b T) bool) Mask {
	var m Mask
	for i := range a {
		if pred(a[i], b[i]) {
			m |= 1 << i
		}
	}
	return m
}

func (a Lanes[T]) Eq(b Lanes[T]) Mask {
	return compare(a, b, func(a, b T) bool { return a == b })
}

// Ne is unordered: a NaN lane compares not-equal to everything.
func (a Lanes[T]) Ne(b Lanes[T]) Mask {
	return compare(a, b, func(a, b T) bool { return a != b })
}

func (a Lanes[T]) Lt(b Lanes[T]) Mask {
	return compare(a, b, func(a, b T) bool { return a < b })
}

func (a Lanes[T]) Le(b Lanes[T]) Mask {
	return compare(a, b, func(a, b T) bool { return a <= b })
}

func (a Lanes[T]) Ge(b Lanes[T]) Mask {
	return compare(a, b, func(a, b T) bool { return a >= b })
}

func (a Lanes[T]) Gt(b Lanes[T]) Mask {
	return compare(a, b, func(a, b T) bool { return a > b })
}
