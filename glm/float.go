package glm

import "github.com/oliverbestmann/lanemath/internal/lane"

// Float is the element type of every vector, matrix and quaternion.
type Float interface {
	lane.Float
}
