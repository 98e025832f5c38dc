package glm

import "github.com/oliverbestmann/lanemath/internal/lane"

const (
	valid2 = lane.Mask(0b0011)
	valid3 = lane.Mask(0b0111)
	valid4 = lane.Mask(0b1111)
)

// Mask2 is the lane-wise result of comparing two Vec2 values. Only the two
// low lanes take part in Any and All.
type Mask2 struct {
	bits lane.Mask
}

func (m Mask2) Any() bool {
	return m.bits.Any(valid2)
}

func (m Mask2) All() bool {
	return m.bits.All(valid2)
}

// Bits returns the comparison bitmask, bit i for component i.
func (m Mask2) Bits() uint32 {
	return uint32(m.bits & valid2)
}

func (m Mask2) Lane(i int) bool {
	return (m.bits & valid2).Has(i)
}

// Mask3 is the lane-wise result of comparing two Vec3 values.
type Mask3 struct {
	bits lane.Mask
}

func (m Mask3) Any() bool {
	return m.bits.Any(valid3)
}

func (m Mask3) All() bool {
	return m.bits.All(valid3)
}

func (m Mask3) Bits() uint32 {
	return uint32(m.bits & valid3)
}

func (m Mask3) Lane(i int) bool {
	return (m.bits & valid3).Has(i)
}

// Mask4 is the lane-wise result of comparing two Vec4 (or Quaternion) values.
type Mask4 struct {
	bits lane.Mask
}

func (m Mask4) Any() bool {
	return m.bits.Any(valid4)
}

func (m Mask4) All() bool {
	return m.bits.All(valid4)
}

func (m Mask4) Bits() uint32 {
	return uint32(m.bits & valid4)
}

func (m Mask4) Lane(i int) bool {
	return (m.bits & valid4).Has(i)
}
