package geometry

import (
	"math"

	"github.com/dmitrymomot/uiwkit/pkg/sanitizer"
)

// Mapper converts between slider values and handle positions on a linear scale.
// It is a value type; copy it freely.
type Mapper struct {
	Range    Range
	Geometry Geometry
}

// NewMapper returns a mapper over r and g. The geometry is normalized.
func NewMapper(r Range, g Geometry) Mapper {
	return Mapper{Range: r, Geometry: g.Normalize()}
}

// Ratio is the number of pixels per value unit. It is 0 when Min == Max.
func (m Mapper) Ratio() float64 {
	return sanitizer.SafeDivide(m.Geometry.Slidable(), m.Range.Span(), 0)
}

// ValueToPosition maps a value to the left edge of the handle.
func (m Mapper) ValueToPosition(value int) float64 {
	return (float64(value)-float64(m.Range.Min))*m.Ratio() + m.Geometry.BarStart
}

// PositionToValue maps a handle position to the nearest multiple of Step.
// Halves round up. With a zero ratio every position maps to Min. Results
// beyond the int domain saturate.
func (m Mapper) PositionToValue(position float64) int {
	ratio := m.Ratio()
	if ratio == 0 {
		return m.Range.Min
	}
	step := float64(m.Range.Step)
	if step <= 0 {
		step = 1
	}
	value := (position-m.Geometry.BarStart)/ratio + float64(m.Range.Min)
	return saturate(math.Floor(value/step+0.5) * step)
}

func saturate(f float64) int {
	switch {
	case f >= math.MaxInt:
		return math.MaxInt
	case f <= math.MinInt:
		return math.MinInt
	}
	return int(f)
}

// Bounds returns the interval the handle's left edge is allowed to occupy.
// A range with Min == Max collapses it to the track start.
func (m Mapper) Bounds() (lo, hi float64) {
	lo = m.Geometry.BarStart
	if m.Range.Span() == 0 {
		return lo, lo
	}
	return lo, lo + m.Geometry.Slidable()
}

// ClampPosition limits a raw position to Bounds. Applying it twice is a no-op.
func (m Mapper) ClampPosition(position float64) float64 {
	lo, hi := m.Bounds()
	return sanitizer.Clamp(position, lo, hi)
}

// HandleFromPointer turns a pointer coordinate into a clamped handle position,
// centring the handle under the pointer.
func (m Mapper) HandleFromPointer(pointer float64) float64 {
	return m.ClampPosition(pointer - m.Geometry.HandleWidth/2)
}

// ClampAndMap clamps a raw pointer coordinate and returns the handle position
// together with the value it represents.
func (m Mapper) ClampAndMap(pointer float64) (position float64, value int) {
	position = m.HandleFromPointer(pointer)
	return position, m.PositionToValue(position)
}

// FillWidth is the width of the filling from the track start to the handle's right edge.
func (m Mapper) FillWidth(position float64) float64 {
	return sanitizer.NonNegative(position + m.Geometry.HandleWidth - m.Geometry.BarStart)
}
