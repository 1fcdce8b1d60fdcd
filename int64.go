package valuekit

import (
	"fmt"

	"github.com/dmitrymomot/valuekit/pkg/ruleset"
)

// Int64Value constrains wrapped types backed by int64 that declare
// normalization rules.
type Int64Value interface {
	~int64
	ruleset.Int64Rules
}

// NewInt64 is NewInt32 for int64-backed types.
func NewInt64[T Int64Value](raw int64) (T, error) {
	var zero T
	apply, err := ruleset.ForInt64[T]()
	if err != nil {
		return zero, err
	}
	adjusted, err := apply(raw)
	if err != nil {
		return zero, fmt.Errorf("new %T: %w", zero, err)
	}
	return T(adjusted), nil
}

// MustInt64 is NewInt64 that panics instead of returning an error.
func MustInt64[T Int64Value](raw int64) T {
	v, err := NewInt64[T](raw)
	if err != nil {
		panic(err)
	}
	return v
}

// UnsafeInt64 wraps raw without adjusting or validating it.
func UnsafeInt64[T Int64Value](raw int64) T {
	return T(raw)
}

// MapInt64 derives a new T by transforming the wrapped value, re-applying
// the full rule set to the result.
func MapInt64[T Int64Value](v T, fn func(int64) int64) (T, error) {
	return NewInt64[T](fn(int64(v)))
}
