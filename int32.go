package valuekit

import (
	"fmt"

	"github.com/dmitrymomot/valuekit/pkg/ruleset"
)

// Int32Value constrains wrapped types backed by int32 that declare
// normalization rules.
type Int32Value interface {
	~int32
	ruleset.Int32Rules
}

// NewInt32 builds T from raw, applying the type's declared adjustments and
// validations in order. On failure it returns the zero value and an error;
// on success the wrapped value is the adjusted one, not necessarily raw.
func NewInt32[T Int32Value](raw int32) (T, error) {
	var zero T
	apply, err := ruleset.ForInt32[T]()
	if err != nil {
		return zero, err
	}
	adjusted, err := apply(raw)
	if err != nil {
		return zero, fmt.Errorf("new %T: %w", zero, err)
	}
	return T(adjusted), nil
}

// MustInt32 is NewInt32 that panics instead of returning an error. Meant for
// literals known to be valid when the program is written.
func MustInt32[T Int32Value](raw int32) T {
	v, err := NewInt32[T](raw)
	if err != nil {
		panic(err)
	}
	return v
}

// UnsafeInt32 wraps raw without adjusting or validating it. Reserved for
// values that already went through the rules, such as rows read back from
// storage.
func UnsafeInt32[T Int32Value](raw int32) T {
	return T(raw)
}

// MapInt32 derives a new T by transforming the wrapped value. The result
// goes through the full rule set again, so a transform cannot smuggle an
// invalid value into the type.
func MapInt32[T Int32Value](v T, fn func(int32) int32) (T, error) {
	return NewInt32[T](fn(int32(v)))
}
