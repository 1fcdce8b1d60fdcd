package constraint

import "math"

// NotNaN validates that the value is a number.
func NotNaN() Constraint[float64] {
	return func(value float64) (float64, error) {
		if math.IsNaN(value) {
			return 0, violatef("%v is not a number", value)
		}
		return value, nil
	}
}

// NotInf validates that the value is not positive or negative infinity.
func NotInf() Constraint[float64] {
	return func(value float64) (float64, error) {
		if math.IsInf(value, 0) {
			return 0, violatef("%v must be finite", value)
		}
		return value, nil
	}
}

// Finite validates that the value is a real number: neither NaN nor infinite.
func Finite() Constraint[float64] {
	return Combine(NotNaN(), NotInf())
}

// MultipleOf validates that the value divides evenly by increment. The
// increment must be positive and finite.
func MultipleOf(increment float64) Constraint[float64] {
	return func(value float64) (float64, error) {
		if math.Mod(value, increment) != 0 {
			return 0, violatef("%v is not a multiple of %v", value, increment)
		}
		return value, nil
	}
}

// RoundToFloat rounds the value to the nearest multiple of increment using
// half-up semantics (ties round away from zero). The increment must be
// positive and finite. NaN and infinities pass through unchanged.
func RoundToFloat(increment float64) Constraint[float64] {
	return func(value float64) (float64, error) {
		if math.IsNaN(value) || math.IsInf(value, 0) {
			return value, nil
		}
		return math.Round(value/increment) * increment, nil
	}
}
