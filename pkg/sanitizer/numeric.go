package sanitizer

import (
	"math"
)

// Numeric represents numeric types that support basic arithmetic operations.
type Numeric interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// Float represents floating-point numeric types.
type Float interface {
	~float32 | ~float64
}

// Clamp constrains a numeric value to be within the specified range [min, max].
// If the value is less than min, it returns min. If greater than max, it returns max.
// When min > max the result is max, which keeps degenerate ranges collapsed to a point.
func Clamp[T Numeric](value T, min T, max T) T {
	if value < min {
		value = min
	}
	if value > max {
		return max
	}
	return value
}

// Round rounds a floating-point number to the nearest integer, half away from zero.
func Round[T Float](value T) T {
	return T(math.Round(float64(value)))
}

// SafeDivide performs division with protection against division by zero.
// Returns the result of numerator/denominator, or fallback if denominator is zero.
func SafeDivide[T Numeric](numerator T, denominator T, fallback T) T {
	if denominator == 0 {
		return fallback
	}
	return numerator / denominator
}

// NonNegative returns zero for negative values and the value itself otherwise.
func NonNegative[T Numeric](value T) T {
	if value < 0 {
		var zero T
		return zero
	}
	return value
}
