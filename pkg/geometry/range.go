package geometry

import (
	"fmt"

	"github.com/dmitrymomot/uiwkit/pkg/sanitizer"
)

// Range is the integer value domain of a slider.
type Range struct {
	Min  int
	Max  int
	Step int
}

// DefaultRange mirrors the defaults of the slider control: 0..1000 in steps of 1.
func DefaultRange() Range {
	return Range{Min: 0, Max: 1000, Step: 1}
}

// Validate reports ErrInvalidRange when the range invariants do not hold.
func (r Range) Validate() error {
	if r.Min > r.Max || r.Step <= 0 {
		return fmt.Errorf("%w: min=%d max=%d step=%d", ErrInvalidRange, r.Min, r.Max, r.Step)
	}
	return nil
}

// Span returns max - min. It is computed in float64 so ranges covering the
// whole int domain do not overflow.
func (r Range) Span() float64 {
	return float64(r.Max) - float64(r.Min)
}

// Shift moves v by delta and clamps the result to [Min, Max]. A step that
// would cross a bound saturates at that bound instead of overflowing.
func (r Range) Shift(v, delta int) int {
	v = r.Clamp(v)
	switch {
	case delta > 0 && uint(r.Max-v) < uint(delta):
		return r.Max
	case delta < 0 && uint(v-r.Min) < -uint(delta):
		return r.Min
	}
	return v + delta
}

// Clamp limits v to [Min, Max].
func (r Range) Clamp(v int) int {
	return sanitizer.Clamp(v, r.Min, r.Max)
}

// AllowsNegative reports whether negative values are reachable.
func (r Range) AllowsNegative() bool {
	return r.Min < 0
}

// Geometry describes the pixel layout of the track.
type Geometry struct {
	BarStart    float64
	BarWidth    float64
	HandleWidth float64
}

// Normalize clamps the layout so that BarWidth >= HandleWidth >= 0.
// Degenerate layouts end up with a zero-length slidable range.
func (g Geometry) Normalize() Geometry {
	g.BarWidth = sanitizer.NonNegative(g.BarWidth)
	g.HandleWidth = sanitizer.Clamp(g.HandleWidth, 0, g.BarWidth)
	return g
}

// Slidable returns the length of the track the handle's left edge can travel.
func (g Geometry) Slidable() float64 {
	n := g.Normalize()
	return n.BarWidth - n.HandleWidth
}
