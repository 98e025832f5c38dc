package glm

type boxVector[V any, T Float] interface {
	ordered[V]
	Add(V) V
	Sub(V) V
	DivScalar(T) V
}

// AABB is an axis aligned bounding box. Min is expected to be less than or
// equal to Max in every component, but this is not enforced.
type AABB[V boxVector[V, T], T Float] struct {
	Min, Max V
}

func AABBOf[V boxVector[V, T], T Float](minPoint, maxPoint V) AABB[V, T] {
	return AABB[V, T]{Min: minPoint, Max: maxPoint}
}

// AABBFromDims builds the box of the given size centered at center.
func AABBFromDims[V boxVector[V, T], T Float](center, dims V) AABB[V, T] {
	half := dims.DivScalar(2)
	return AABB[V, T]{Min: center.Sub(half), Max: center.Add(half)}
}

// Collide returns the intersection of both boxes. The result is inverted
// in at least one component when the boxes do not overlap.
func (lhs AABB[V, T]) Collide(rhs AABB[V, T]) AABB[V, T] {
	return AABB[V, T]{Min: Max(lhs.Min, rhs.Min), Max: Min(lhs.Max, rhs.Max)}
}

// Merge returns the smallest box containing both boxes.
func (lhs AABB[V, T]) Merge(rhs AABB[V, T]) AABB[V, T] {
	return AABB[V, T]{Min: Min(lhs.Min, rhs.Min), Max: Max(lhs.Max, rhs.Max)}
}

func (lhs AABB[V, T]) Dimensions() V {
	return lhs.Max.Sub(lhs.Min)
}

func (lhs AABB[V, T]) Centroid() V {
	return lhs.Min.Add(lhs.Max).DivScalar(2)
}
