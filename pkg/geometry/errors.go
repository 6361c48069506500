package geometry

import "errors"

var (
	// ErrInvalidRange is returned when a range has min > max or a non-positive step.
	ErrInvalidRange = errors.New("geometry: range requires min <= max and step > 0")
)
