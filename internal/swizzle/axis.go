package swizzle

//go:generate stringer -type=Axis -trimprefix=Axis

// Axis names one source component of a vector.
type Axis uint8

const (
	AxisX Axis = iota
	AxisY
	AxisZ
	AxisW
)

var colors = [...]string{"R", "G", "B", "A"}

// Color returns the color channel letter that aliases the axis letter:
// x is r, y is g, z is b and w is a.
func (a Axis) Color() string {
	if int(a) >= len(colors) {
		return a.String()
	}
	return colors[a]
}
