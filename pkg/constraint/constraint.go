package constraint

import (
	"errors"
	"fmt"
)

// Constraint is a single normalization or validation step over one raw value.
// It returns the value, possibly adjusted, or an error describing why the
// value is unacceptable. Constraints are pure and safe for concurrent use.
type Constraint[T any] func(T) (T, error)

// Violation reports a value rejected by a validation constraint. The message
// embeds the offending value together with the bound, set, or pattern it
// violated, so callers can assert on message content.
type Violation struct {
	Message string
}

func (v *Violation) Error() string {
	return v.Message
}

func violatef(format string, args ...any) error {
	return &Violation{Message: fmt.Sprintf(format, args...)}
}

// IsViolation reports whether err was caused by a value failing a constraint,
// as opposed to a misconfigured rule set or an internal fault.
func IsViolation(err error) bool {
	if err == nil {
		return false
	}

	var v *Violation
	return errors.As(err, &v)
}

// Combine sequences constraints into one. The value threads through each
// constraint in argument order and the first failure stops the chain with
// that error. Combining nothing yields the identity constraint. Combine
// applies whatever order it is given; callers that need adjustments to run
// before validations must order the arguments accordingly.
func Combine[T any](constraints ...Constraint[T]) Constraint[T] {
	return func(value T) (T, error) {
		for _, c := range constraints {
			var err error
			value, err = c(value)
			if err != nil {
				var zero T
				return zero, err
			}
		}
		return value, nil
	}
}

// ValidIf fails with message when pred reports false for the value.
func ValidIf[T any](pred func(T) bool, message string) Constraint[T] {
	return func(value T) (T, error) {
		if !pred(value) {
			var zero T
			return zero, &Violation{Message: message}
		}
		return value, nil
	}
}

// ValidUnless fails with message when pred reports true for the value.
func ValidUnless[T any](pred func(T) bool, message string) Constraint[T] {
	return func(value T) (T, error) {
		if pred(value) {
			var zero T
			return zero, &Violation{Message: message}
		}
		return value, nil
	}
}

// ValidIfFunc is ValidIf with a failure message computed from the rejected
// value.
func ValidIfFunc[T any](pred func(T) bool, describe func(T) string) Constraint[T] {
	return func(value T) (T, error) {
		if !pred(value) {
			var zero T
			return zero, &Violation{Message: describe(value)}
		}
		return value, nil
	}
}
