package glm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAABB(t *testing.T) {
	a := AABBFromDims[Vec2f, float32](Vec2Of[float32](1, 1), Vec2Of[float32](2, 4))
	assert.Equal(t, AABB2f{Min: Vec2Of[float32](0, -1), Max: Vec2Of[float32](2, 3)}, a)
	assert.Equal(t, Vec2Of[float32](2, 4), a.Dimensions())
	assert.Equal(t, Vec2Of[float32](1, 1), a.Centroid())

	b := AABBOf[Vec2f, float32](Vec2Of[float32](1, 0), Vec2Of[float32](5, 6))

	assert.Equal(t, AABB2f{Min: Vec2Of[float32](1, 0), Max: Vec2Of[float32](2, 3)}, a.Collide(b))
	assert.Equal(t, AABB2f{Min: Vec2Of[float32](0, -1), Max: Vec2Of[float32](5, 6)}, a.Merge(b))
	assert.Equal(t, a.Merge(b), b.Merge(a))
}

func TestAABBDisjoint(t *testing.T) {
	a := AABB3d{Min: Vec3Of[float64](0, 0, 0), Max: Vec3Of[float64](1, 1, 1)}
	b := AABB3d{Min: Vec3Of[float64](2, 0, 0), Max: Vec3Of[float64](3, 1, 1)}

	collision := a.Collide(b)
	assert.True(t, collision.Min.Gt(collision.Max).Any())
	assert.False(t, a.Merge(b).Min.Gt(a.Merge(b).Max).Any())
}
