package ruleset

import (
	"fmt"
	"math"

	"github.com/dmitrymomot/valuekit/pkg/constraint"
)

// narrowBound converts a wide float64 bound to the integer kind. Fractional
// bounds round in the direction that preserves the declared constraint (up
// for lower bounds, down for upper bounds), and anything outside the kind's
// representable range clamps to the kind's limits instead of wrapping.
func narrowBound[T constraint.Int](bound float64, roundUp bool) (T, error) {
	if math.IsNaN(bound) {
		return 0, fmt.Errorf("%w: bound is NaN", ErrInvalidRuleSet)
	}
	if roundUp {
		bound = math.Ceil(bound)
	} else {
		bound = math.Floor(bound)
	}
	v := clampInt64(bound)
	if n := T(v); int64(n) == v {
		return n, nil
	}
	// Only reachable for 32-bit kinds: any int64 survives the round trip.
	if v > 0 {
		return T(math.MaxInt32), nil
	}
	return T(math.MinInt32), nil
}

// clampInt64 narrows a float64 to int64, clamping out-of-range values.
// float64 cannot represent math.MaxInt64 exactly; everything at or above
// 2^63 clamps down to it.
func clampInt64(f float64) int64 {
	switch {
	case f >= float64(1<<63):
		return math.MaxInt64
	case f < -float64(1<<63):
		return math.MinInt64
	}
	return int64(f)
}

// narrowIncrement converts a wide rounding increment to the integer kind.
// The increment must be a positive integer within the kind's range.
func narrowIncrement[T constraint.Int](inc float64) (T, error) {
	if math.IsNaN(inc) || math.IsInf(inc, 0) || inc <= 0 || inc != math.Trunc(inc) {
		return 0, fmt.Errorf("%w: rounding increment %v must be a positive integer", ErrInvalidRuleSet, inc)
	}
	v := clampInt64(inc)
	if n := T(v); int64(n) == v && float64(v) == inc {
		return n, nil
	}
	return 0, fmt.Errorf("%w: rounding increment %v is out of range", ErrInvalidRuleSet, inc)
}
