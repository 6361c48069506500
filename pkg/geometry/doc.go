// Package geometry maps slider values to pixel positions and back.
//
// A Mapper combines an integer Range with the track Geometry. It is pure:
// every method is a total function and never fails. When Min == Max the
// slidable track collapses to a single point and every position maps to Min.
//
//	m := geometry.NewMapper(
//	    geometry.Range{Min: 0, Max: 100, Step: 5},
//	    geometry.Geometry{BarStart: 10, BarWidth: 220, HandleWidth: 20},
//	)
//	pos := m.ValueToPosition(50)  // 110
//	val := m.PositionToValue(pos) // 50
//
// Callers clamp raw pointer coordinates with ClampPosition or
// HandleFromPointer before mapping; ClampAndMap does both.
package geometry
