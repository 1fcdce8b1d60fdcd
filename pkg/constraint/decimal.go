package constraint

import (
	"fmt"

	"github.com/cockroachdb/apd/v3"
)

// decCtx performs decimal arithmetic at IEEE decimal128 precision with
// half-up rounding.
var decCtx = func() *apd.Context {
	ctx := apd.BaseContext.WithPrecision(34)
	ctx.Rounding = apd.RoundHalfUp
	return ctx
}()

// NewDecimal parses a canonical decimal literal such as "0.1" into an exact
// arbitrary-precision value. Bounds and increments for decimal constraints
// must be built this way rather than through a binary floating-point
// intermediate, which would drag representation error into the rule.
func NewDecimal(s string) (*apd.Decimal, error) {
	d, _, err := apd.NewFromString(s)
	if err != nil {
		return nil, fmt.Errorf("parse decimal %q: %w", s, err)
	}
	return d, nil
}

// MustDecimal is NewDecimal that panics on a malformed literal.
func MustDecimal(s string) *apd.Decimal {
	d, err := NewDecimal(s)
	if err != nil {
		panic(err)
	}
	return d
}

// DecimalMin validates that the value is at least bound, inclusive.
// Non-finite values are rejected.
func DecimalMin(bound *apd.Decimal) Constraint[*apd.Decimal] {
	return func(value *apd.Decimal) (*apd.Decimal, error) {
		if value.Form != apd.Finite {
			return nil, violatef("%v must be finite", value)
		}
		if value.Cmp(bound) < 0 {
			return nil, violatef("%v < %v", value, bound)
		}
		return value, nil
	}
}

// DecimalMax validates that the value is at most bound, inclusive.
// Non-finite values are rejected.
func DecimalMax(bound *apd.Decimal) Constraint[*apd.Decimal] {
	return func(value *apd.Decimal) (*apd.Decimal, error) {
		if value.Form != apd.Finite {
			return nil, violatef("%v must be finite", value)
		}
		if value.Cmp(bound) > 0 {
			return nil, violatef("%v > %v", value, bound)
		}
		return value, nil
	}
}

// DecimalGreaterThan validates that the value is strictly above bound.
// Non-finite values are rejected.
func DecimalGreaterThan(bound *apd.Decimal) Constraint[*apd.Decimal] {
	return func(value *apd.Decimal) (*apd.Decimal, error) {
		if value.Form != apd.Finite {
			return nil, violatef("%v must be finite", value)
		}
		if value.Cmp(bound) <= 0 {
			return nil, violatef("%v <= %v", value, bound)
		}
		return value, nil
	}
}

// DecimalLessThan validates that the value is strictly below bound.
// Non-finite values are rejected.
func DecimalLessThan(bound *apd.Decimal) Constraint[*apd.Decimal] {
	return func(value *apd.Decimal) (*apd.Decimal, error) {
		if value.Form != apd.Finite {
			return nil, violatef("%v must be finite", value)
		}
		if value.Cmp(bound) >= 0 {
			return nil, violatef("%v >= %v", value, bound)
		}
		return value, nil
	}
}

// DecimalNotNegative validates that the value is zero or positive.
// Non-finite values are rejected.
func DecimalNotNegative() Constraint[*apd.Decimal] {
	return func(value *apd.Decimal) (*apd.Decimal, error) {
		if value.Form != apd.Finite {
			return nil, violatef("%v must be finite", value)
		}
		if value.Sign() < 0 {
			return nil, violatef("%v < 0", value)
		}
		return value, nil
	}
}

// DecimalNotZero validates that the value is not zero. Non-finite values are
// rejected.
func DecimalNotZero() Constraint[*apd.Decimal] {
	return func(value *apd.Decimal) (*apd.Decimal, error) {
		if value.Form != apd.Finite {
			return nil, violatef("%v must be finite", value)
		}
		if value.IsZero() {
			return nil, &Violation{Message: "must not be zero"}
		}
		return value, nil
	}
}

// DecimalMultipleOf validates that the value divides evenly by increment.
// The increment must be non-zero. Non-finite values are rejected.
func DecimalMultipleOf(increment *apd.Decimal) Constraint[*apd.Decimal] {
	return func(value *apd.Decimal) (*apd.Decimal, error) {
		if value.Form != apd.Finite {
			return nil, violatef("%v must be finite", value)
		}
		var q apd.Decimal
		cond, err := decCtx.Quo(&q, value, increment)
		if err != nil || cond.Inexact() {
			return nil, violatef("%v is not a multiple of %v", value, increment)
		}
		var r apd.Decimal
		cond, err = decCtx.RoundToIntegralExact(&r, &q)
		if err != nil || cond.Inexact() {
			return nil, violatef("%v is not a multiple of %v", value, increment)
		}
		return value, nil
	}
}

// DecimalFloor clamps the value up to at least bound. Never fails; the
// returned value is freshly allocated when clamping occurs, so the bound is
// never aliased. Non-finite values pass through unchanged.
func DecimalFloor(bound *apd.Decimal) Constraint[*apd.Decimal] {
	return func(value *apd.Decimal) (*apd.Decimal, error) {
		if value.Form != apd.Finite {
			return value, nil
		}
		if value.Cmp(bound) < 0 {
			return new(apd.Decimal).Set(bound), nil
		}
		return value, nil
	}
}

// DecimalCeiling clamps the value down to at most bound. Never fails; the
// returned value is freshly allocated when clamping occurs, so the bound is
// never aliased. Non-finite values pass through unchanged.
func DecimalCeiling(bound *apd.Decimal) Constraint[*apd.Decimal] {
	return func(value *apd.Decimal) (*apd.Decimal, error) {
		if value.Form != apd.Finite {
			return value, nil
		}
		if value.Cmp(bound) > 0 {
			return new(apd.Decimal).Set(bound), nil
		}
		return value, nil
	}
}

// DecimalRoundTo rounds the value to the nearest multiple of increment using
// half-up semantics (ties round away from zero). The increment must be
// positive. The input is never mutated; the result is freshly allocated.
// Non-finite values pass through unchanged.
func DecimalRoundTo(increment *apd.Decimal) Constraint[*apd.Decimal] {
	return func(value *apd.Decimal) (*apd.Decimal, error) {
		if value.Form != apd.Finite {
			return value, nil
		}
		var q apd.Decimal
		if _, err := decCtx.Quo(&q, value, increment); err != nil {
			return nil, fmt.Errorf("round %v to multiple of %v: %w", value, increment, err)
		}
		if _, err := decCtx.RoundToIntegralValue(&q, &q); err != nil {
			return nil, fmt.Errorf("round %v to multiple of %v: %w", value, increment, err)
		}
		out := new(apd.Decimal)
		if _, err := decCtx.Mul(out, &q, increment); err != nil {
			return nil, fmt.Errorf("round %v to multiple of %v: %w", value, increment, err)
		}
		return out, nil
	}
}
