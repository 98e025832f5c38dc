package lane

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestArithmetic(t *testing.T) {
	a := Set[float32](1, 2, 3, 4)
	b := Set[float32](8, 6, 4, 2)

	assert.Equal(t, Set[float32](9, 8, 7, 6), a.Add(b))
	assert.Equal(t, Set[float32](-7, -4, -1, 2), a.Sub(b))
	assert.Equal(t, Set[float32](8, 12, 12, 8), a.Mul(b))
	assert.Equal(t, Set[float32](8, 3, 4.0/3.0, 0.5), b.Div(a))
	assert.Equal(t, Set[float32](-1, -2, -3, -4), a.Neg())
	assert.Equal(t, Set[float32](1, 2, 3, 2), a.Min(b))
	assert.Equal(t, Set[float32](8, 6, 4, 4), a.Max(b))
	assert.Equal(t, Splat[float32](3), Set[float32](3, 3, 3, 3))
}

func TestAbs(t *testing.T) {
	got := Set(-1.5, 2, float64(math.Copysign(0, -1)), -7).Abs()
	assert.Equal(t, Set(1.5, 2, 0, 7), got)
	assert.False(t, math.Signbit(got[2]))
}

func TestDotMasksUnusedLanes(t *testing.T) {
	a := Set[float64](1, 2, 3, 100)
	b := Set[float64](4, 5, 6, 100)

	assert.Equal(t, 4.0+10, a.Dot(b, First(2)))
	assert.Equal(t, 4.0+10+18, a.Dot(b, First(3)))
	assert.Equal(t, 4.0+10+18+10000, a.Dot(b, First(4)))
}

func TestTruncate(t *testing.T) {
	a := Set[float32](1, 2, 3, 4)
	assert.Equal(t, Set[float32](1, 0, 0, 0), a.Truncate(1))
	assert.Equal(t, Set[float32](1, 2, 0, 0), a.Truncate(2))
	assert.Equal(t, Set[float32](1, 2, 3, 0), a.Truncate(3))
	assert.Equal(t, a, a.Truncate(4))
}

func TestMask(t *testing.T) {
	assert.Equal(t, Mask(0b0011), First(2))
	assert.Equal(t, Mask(0b0111), First(3))
	assert.Equal(t, Mask(0b1111), First(4))

	// lane 3 differs but only three lanes are valid
	m := Set[float32](1, 2, 3, 4).Eq(Set[float32](1, 2, 3, 5))
	assert.True(t, m.All(First(3)))
	assert.False(t, m.All(First(4)))
	assert.True(t, m.Any(First(1)))

	m = Set[float32](1, 2, 3, 4).Gt(Set[float32](1, 2, 3, 0))
	assert.False(t, m.Any(First(3)))
	assert.True(t, m.Any(First(4)))
	assert.True(t, m.Has(3))
}

func TestCompare(t *testing.T) {
	a := Set[float64](1, 2, 3, math.NaN())
	b := Set[float64](1, 3, 2, math.NaN())

	tests := []struct {
		name string
		got  Mask
		want Mask
	}{
		{"Eq", a.Eq(b), 0b0001},
		{"Ne", a.Ne(b), 0b1110},
		{"Lt", a.Lt(b), 0b0010},
		{"Le", a.Le(b), 0b0011},
		{"Ge", a.Ge(b), 0b0101},
		{"Gt", a.Gt(b), 0b0100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.got)
		})
	}
}

func TestPermute(t *testing.T) {
	a := Set[float32](10, 11, 12, 13)

	assert.Equal(t, Set[float32](13, 12, 11, 10), a.Permute(3, 2, 1, 0))
	assert.Equal(t, Splat[float32](11), a.Permute(1, 1, 1, 1))
	assert.Equal(t, Set[float32](12, 10, 11, 13), a.Permute(2, 0, 1, 3))
	assert.Panics(t, func() { a.Permute(0, 1, 2, 4) })
}

func TestInterleave(t *testing.T) {
	a := Set[float32](0, 1, 2, 3)
	b := Set[float32](4, 5, 6, 7)

	assert.Equal(t, Set[float32](0, 4, 1, 5), UnpackLo(a, b))
	assert.Equal(t, Set[float32](2, 6, 3, 7), UnpackHi(a, b))
	assert.Equal(t, Set[float32](0, 1, 4, 5), MoveLH(a, b))
	assert.Equal(t, Set[float32](6, 7, 2, 3), MoveHL(a, b))
	assert.Equal(t, Set[float32](4, 1, 2, 3), MoveSS(a, b))
}

func TestTranspose4(t *testing.T) {
	r0, r1, r2, r3 := Transpose4(
		Set[float64](11, 12, 13, 14),
		Set[float64](21, 22, 23, 24),
		Set[float64](31, 32, 33, 34),
		Set[float64](41, 42, 43, 44),
	)

	assert.Equal(t, Set[float64](11, 21, 31, 41), r0)
	assert.Equal(t, Set[float64](12, 22, 32, 42), r1)
	assert.Equal(t, Set[float64](13, 23, 33, 43), r2)
	assert.Equal(t, Set[float64](14, 24, 34, 44), r3)
}

func TestTarget(t *testing.T) {
	assert.Contains(t, []string{"avx", "sse4.1", "sse2", "neon", "scalar"}, Target())
}
