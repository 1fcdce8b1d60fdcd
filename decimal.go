package valuekit

import (
	"fmt"

	"github.com/cockroachdb/apd/v3"

	"github.com/dmitrymomot/valuekit/pkg/constraint"
	"github.com/dmitrymomot/valuekit/pkg/ruleset"
)

// Decimal is the arbitrary-precision payload carried by decimal-backed
// types. Declare a wrapped type as a defined struct over it:
//
//	type Price valuekit.Decimal
//
//	func (Price) Rules() ruleset.Decimal { ... }
type Decimal = apd.Decimal

// NewDecimal applies T's declared rules to raw and returns the adjusted
// payload. The result is a fresh value that never aliases raw, so later
// mutation of raw cannot reach it. Convert after a nil error:
//
//	d, err := valuekit.NewDecimal[Price](raw)
//	if err != nil {
//		return err
//	}
//	price := Price(*d)
func NewDecimal[T ruleset.DecimalRules](raw *apd.Decimal) (*apd.Decimal, error) {
	apply, err := ruleset.ForDecimal[T]()
	if err != nil {
		return nil, err
	}
	adjusted, err := apply(raw)
	if err != nil {
		var zero T
		return nil, fmt.Errorf("new %T: %w", zero, err)
	}
	return new(apd.Decimal).Set(adjusted), nil
}

// ParseDecimal builds the payload from its decimal string form and applies
// T's rules to it. Bounds declared as strings and values parsed here meet
// on exact decimal arithmetic, with no float detour.
func ParseDecimal[T ruleset.DecimalRules](s string) (*apd.Decimal, error) {
	d, err := constraint.NewDecimal(s)
	if err != nil {
		var zero T
		return nil, fmt.Errorf("new %T: %w", zero, err)
	}
	return NewDecimal[T](d)
}

// MustParseDecimal is ParseDecimal that panics instead of returning an
// error. Meant for literals known to be valid when the program is written.
func MustParseDecimal[T ruleset.DecimalRules](s string) *apd.Decimal {
	d, err := ParseDecimal[T](s)
	if err != nil {
		panic(err)
	}
	return d
}

// UnsafeDecimal copies raw without adjusting or validating it. The copy
// keeps the no-aliasing guarantee of NewDecimal.
func UnsafeDecimal[T ruleset.DecimalRules](raw *apd.Decimal) *apd.Decimal {
	return new(apd.Decimal).Set(raw)
}

// MapDecimal derives a new payload by transforming a copy of v, then
// re-applies the full rule set to whatever the transform returns. The
// transform may mutate its argument freely.
func MapDecimal[T ruleset.DecimalRules](v *apd.Decimal, fn func(*apd.Decimal) *apd.Decimal) (*apd.Decimal, error) {
	return NewDecimal[T](fn(new(apd.Decimal).Set(v)))
}

// DecimalEqual reports whether two payloads represent the same number.
// Trailing zeros are insignificant, so 1.5 equals 1.50. Infinities are
// equal when they share a sign. NaN compares unequal to everything,
// including itself.
func DecimalEqual(a, b *apd.Decimal) bool {
	switch {
	case a.Form == apd.Finite && b.Form == apd.Finite:
		return a.Cmp(b) == 0
	case a.Form == apd.Infinite && b.Form == apd.Infinite:
		return a.Negative == b.Negative
	default:
		return false
	}
}
