package glm

type ordered[V any] interface {
	Min(V) V
	Max(V) V
}

type interpolable[V any, T Float] interface {
	Add(V) V
	MulScalar(T) V
}

type normalizable[V any, T Float] interface {
	interpolable[V, T]
	Normalize() V
}

// Min returns the componentwise minimum of two vectors.
func Min[V ordered[V]](a, b V) V {
	return a.Min(b)
}

// Max returns the componentwise maximum of two vectors.
func Max[V ordered[V]](a, b V) V {
	return a.Max(b)
}

// Lerp returns src*t + dst*(1-t). Note that t = 1 yields src.
func Lerp[V interpolable[V, T], T Float](src, dst V, t T) V {
	return src.MulScalar(t).Add(dst.MulScalar(1 - t))
}

// Nlerp is Lerp followed by normalization.
func Nlerp[V normalizable[V, T], T Float](src, dst V, t T) V {
	return Lerp(src, dst, t).Normalize()
}

// Slerp interpolates between two unit quaternions on the unit sphere:
// (dst * conj(src))^t * src.
func Slerp[T Float](src, dst Quaternion[T], t T) Quaternion[T] {
	return dst.Mul(src.Conj()).Exponent(t).Mul(src)
}
