package valuekit

import (
	"fmt"

	"github.com/dmitrymomot/valuekit/pkg/ruleset"
)

// StringValue constrains wrapped types backed by string that declare
// normalization rules.
type StringValue interface {
	~string
	ruleset.StringRules
}

// NewString builds T from raw. Adjustments such as trimming and case
// folding run first, so validations see the normalized text and the wrapped
// value is the normalized form.
func NewString[T StringValue](raw string) (T, error) {
	var zero T
	apply, err := ruleset.ForString[T]()
	if err != nil {
		return zero, err
	}
	adjusted, err := apply(raw)
	if err != nil {
		return zero, fmt.Errorf("new %T: %w", zero, err)
	}
	return T(adjusted), nil
}

// MustString is NewString that panics instead of returning an error.
func MustString[T StringValue](raw string) T {
	v, err := NewString[T](raw)
	if err != nil {
		panic(err)
	}
	return v
}

// UnsafeString wraps raw without adjusting or validating it.
func UnsafeString[T StringValue](raw string) T {
	return T(raw)
}

// MapString derives a new T by transforming the wrapped value, re-applying
// the full rule set to the result.
func MapString[T StringValue](v T, fn func(string) string) (T, error) {
	return NewString[T](fn(string(v)))
}
