package constraint

import "math"

// Number covers the fixed-size numeric kinds a domain value can wrap.
type Number interface {
	~int32 | ~int64 | ~float64
}

// Int covers the integer raw kinds.
type Int interface {
	~int32 | ~int64
}

// Min validates that the value is at least bound, inclusive.
func Min[T Number](bound T) Constraint[T] {
	return func(value T) (T, error) {
		if value < bound {
			var zero T
			return zero, violatef("%v < %v", value, bound)
		}
		return value, nil
	}
}

// Max validates that the value is at most bound, inclusive.
func Max[T Number](bound T) Constraint[T] {
	return func(value T) (T, error) {
		if value > bound {
			var zero T
			return zero, violatef("%v > %v", value, bound)
		}
		return value, nil
	}
}

// GreaterThan validates that the value is strictly above bound.
func GreaterThan[T Number](bound T) Constraint[T] {
	return func(value T) (T, error) {
		if value <= bound {
			var zero T
			return zero, violatef("%v <= %v", value, bound)
		}
		return value, nil
	}
}

// LessThan validates that the value is strictly below bound.
func LessThan[T Number](bound T) Constraint[T] {
	return func(value T) (T, error) {
		if value >= bound {
			var zero T
			return zero, violatef("%v >= %v", value, bound)
		}
		return value, nil
	}
}

// NotNegative validates that the value is zero or positive.
func NotNegative[T Number]() Constraint[T] {
	return func(value T) (T, error) {
		if value < 0 {
			var zero T
			return zero, violatef("%v < 0", value)
		}
		return value, nil
	}
}

// NotZero validates that the value is not zero.
func NotZero[T Number]() Constraint[T] {
	return func(value T) (T, error) {
		if value == 0 {
			var zero T
			return zero, &Violation{Message: "must not be zero"}
		}
		return value, nil
	}
}

// Floor clamps the value up to at least bound. Never fails.
func Floor[T Number](bound T) Constraint[T] {
	return func(value T) (T, error) {
		if value < bound {
			return bound, nil
		}
		return value, nil
	}
}

// Ceiling clamps the value down to at most bound. Never fails.
func Ceiling[T Number](bound T) Constraint[T] {
	return func(value T) (T, error) {
		if value > bound {
			return bound, nil
		}
		return value, nil
	}
}

// RoundTo rounds the value to the nearest multiple of increment using
// half-up semantics (ties round away from zero). The increment must be
// positive. When the exact rounded multiple is not representable in the
// kind, the result saturates at the kind's minimum or maximum instead of
// wrapping.
func RoundTo[T Int](increment T) Constraint[T] {
	inc := int64(increment)
	return func(value T) (T, error) {
		v := int64(value)
		rem := v % inc
		if rem == 0 {
			return value, nil
		}
		toward := v - rem // nearest multiple toward zero
		if rem > 0 {
			if inc-rem <= rem {
				away := toward + inc
				if away < toward {
					away = math.MaxInt64
				}
				return saturate[T](away), nil
			}
			return saturate[T](toward), nil
		}
		if inc+rem <= -rem {
			away := toward - inc
			if away > toward {
				away = math.MinInt64
			}
			return saturate[T](away), nil
		}
		return saturate[T](toward), nil
	}
}

// saturate narrows an int64 result back to the integer kind, clamping to the
// kind's range. The clamp branch is only reachable for 32-bit kinds since any
// int64 survives the round trip.
func saturate[T Int](v int64) T {
	if n := T(v); int64(n) == v {
		return n
	}
	if v > 0 {
		return T(math.MaxInt32)
	}
	return T(math.MinInt32)
}
