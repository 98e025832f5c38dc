package glm

import "math"

const (
	// DegToRadFactor converts degrees to radians by multiplication.
	DegToRadFactor = math.Pi / 180

	// RadToDegFactor converts radians to degrees by multiplication.
	RadToDegFactor = 180 / math.Pi

	E  = math.E
	Pi = math.Pi

	// Phi is the golden ratio.
	Phi = 1.6180339887498948482045868343656381177203
)

// Rad is an angle in radians.
type Rad float64

func DegToRad[T Float](deg T) Rad {
	return Rad(float64(deg) * DegToRadFactor)
}

func RadToDeg[T Float](rad Rad) (deg T) {
	return T(rad * RadToDegFactor)
}
