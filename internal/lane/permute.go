package lane

// Permute builds a register whose lane i is the source lane named by the
// i-th index. Indices may repeat, which broadcasts a lane. An index outside
// [0, Width) panics.
func (a Lanes[T]) Permute(x, y, z, w int) Lanes[T] {
	return Lanes[T]{a[x], a[y], a[z], a[w]}
}

// UnpackLo interleaves the low halves: (a0, b0, a1, b1).
func UnpackLo[T Float](a, b Lanes[T]) Lanes[T] {
	return Lanes[T]{a[0], b[0], a[1], b[1]}
}

// UnpackHi interleaves the high halves: (a2, b2, a3, b3).
func UnpackHi[T Float](a, b Lanes[T]) Lanes[T] {
	return Lanes[T]{a[2], b[2], a[3], b[3]}
}

// MoveLH joins the low halves: (a0, a1, b0, b1).
func MoveLH[T Float](a, b Lanes[T]) Lanes[T] {
	return Lanes[T]{a[0], a[1], b[0], b[1]}
}

// MoveHL joins the high halves, b first: (b2, b3, a2, a3).
func MoveHL[T Float](a, b Lanes[T]) Lanes[T] {
	return Lanes[T]{b[2], b[3], a[2], a[3]}
}

// MoveSS replaces lane 0 of a with lane 0 of b.
func MoveSS[T Float](a, b Lanes[T]) Lanes[T] {
	return Lanes[T]{b[0], a[1], a[2], a[3]}
}

// Transpose4 transposes the 4x4 block formed by the four registers, using
// the same unpack/move sequence as the classic SSE transpose.
func Transpose4[T Float](r0, r1, r2, r3 Lanes[T]) (Lanes[T], Lanes[T], Lanes[T], Lanes[T]) {
	tmp0 := UnpackLo(r0, r1)
	tmp2 := UnpackLo(r2, r3)
	tmp1 := UnpackHi(r0, r1)
	tmp3 := UnpackHi(r2, r3)

	return MoveLH(tmp0, tmp2), MoveHL(tmp2, tmp0), MoveLH(tmp1, tmp3), MoveHL(tmp3, tmp1)
}
