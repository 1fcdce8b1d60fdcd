package valuekit

import (
	"fmt"

	"github.com/dmitrymomot/valuekit/pkg/ruleset"
)

// Float64Value constrains wrapped types backed by float64 that declare
// normalization rules.
type Float64Value interface {
	~float64
	ruleset.Float64Rules
}

// NewFloat64 builds T from raw, applying the type's declared adjustments
// and validations in order. Unless the rules opt in to NaN or infinities,
// both are rejected here.
func NewFloat64[T Float64Value](raw float64) (T, error) {
	var zero T
	apply, err := ruleset.ForFloat64[T]()
	if err != nil {
		return zero, err
	}
	adjusted, err := apply(raw)
	if err != nil {
		return zero, fmt.Errorf("new %T: %w", zero, err)
	}
	return T(adjusted), nil
}

// MustFloat64 is NewFloat64 that panics instead of returning an error.
func MustFloat64[T Float64Value](raw float64) T {
	v, err := NewFloat64[T](raw)
	if err != nil {
		panic(err)
	}
	return v
}

// UnsafeFloat64 wraps raw without adjusting or validating it.
func UnsafeFloat64[T Float64Value](raw float64) T {
	return T(raw)
}

// MapFloat64 derives a new T by transforming the wrapped value, re-applying
// the full rule set to the result.
func MapFloat64[T Float64Value](v T, fn func(float64) float64) (T, error) {
	return NewFloat64[T](fn(float64(v)))
}
