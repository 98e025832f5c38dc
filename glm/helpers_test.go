package glm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

const delta = 1e-4

func assertVec2InDelta[T Float](t *testing.T, want, got Vec2[T]) bool {
	t.Helper()
	ok := true
	for i := range 2 {
		ok = assert.InDelta(t, want.At(i), got.At(i), delta, "component %d: want %v, got %v", i, want, got) && ok
	}
	return ok
}

func assertVec3InDelta[T Float](t *testing.T, want, got Vec3[T]) bool {
	t.Helper()
	ok := true
	for i := range 3 {
		ok = assert.InDelta(t, want.At(i), got.At(i), delta, "component %d: want %v, got %v", i, want, got) && ok
	}
	return ok
}

func assertVec4InDelta[T Float](t *testing.T, want, got Vec4[T]) bool {
	t.Helper()
	ok := true
	for i := range 4 {
		ok = assert.InDelta(t, want.At(i), got.At(i), delta, "component %d: want %v, got %v", i, want, got) && ok
	}
	return ok
}

func assertMat2InDelta[T Float](t *testing.T, want, got Mat2[T]) {
	t.Helper()
	for i := range want {
		assertVec2InDelta(t, want[i], got[i])
	}
}

func assertMat3InDelta[T Float](t *testing.T, want, got Mat3[T]) {
	t.Helper()
	for i := range want {
		assertVec3InDelta(t, want[i], got[i])
	}
}

func assertMat4InDelta[T Float](t *testing.T, want, got Mat4[T]) {
	t.Helper()
	for i := range want {
		assertVec4InDelta(t, want[i], got[i])
	}
}

func assertQuatInDelta[T Float](t *testing.T, want, got Quaternion[T]) {
	t.Helper()
	assertVec4InDelta(t, want.V, got.V)
}
