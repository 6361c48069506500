package slider

import "github.com/dmitrymomot/uiwkit/pkg/geometry"

// LayoutProvider reports the measured pixel layout of the rendered slider.
type LayoutProvider interface {
	BarStart() float64
	BarWidth() float64
	HandleWidth() float64
}

// FixedLayout is a LayoutProvider with constant measurements.
type FixedLayout struct {
	Start  float64
	Width  float64
	Handle float64
}

func (l FixedLayout) BarStart() float64    { return l.Start }
func (l FixedLayout) BarWidth() float64    { return l.Width }
func (l FixedLayout) HandleWidth() float64 { return l.Handle }

func measure(p LayoutProvider) geometry.Geometry {
	return geometry.Geometry{
		BarStart:    p.BarStart(),
		BarWidth:    p.BarWidth(),
		HandleWidth: p.HandleWidth(),
	}.Normalize()
}
