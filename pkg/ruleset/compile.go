package ruleset

import (
	"fmt"
	"math"
	"regexp"

	"github.com/cockroachdb/apd/v3"

	"github.com/dmitrymomot/valuekit/pkg/constraint"
)

// The compilers below turn one declarative rule struct into one composed
// constraint. Each populated field contributes exactly one constraint, in a
// fixed order: adjustments first, then validations. Validations compile only
// when the declaration's policy permits; under DebugOnly with debug checks
// off they are never constructed at all.

func compileInt[T constraint.Int](adjust AdjustNumber, validate ValidateNumber, policy Policy) (constraint.Constraint[T], error) {
	var cs []constraint.Constraint[T]

	if adjust.Floor != nil {
		b, err := narrowBound[T](*adjust.Floor, true)
		if err != nil {
			return nil, fmt.Errorf("floor: %w", err)
		}
		cs = append(cs, constraint.Floor(b))
	}
	if adjust.Ceiling != nil {
		b, err := narrowBound[T](*adjust.Ceiling, false)
		if err != nil {
			return nil, fmt.Errorf("ceiling: %w", err)
		}
		cs = append(cs, constraint.Ceiling(b))
	}
	if adjust.RoundTo != nil {
		inc, err := narrowIncrement[T](*adjust.RoundTo)
		if err != nil {
			return nil, fmt.Errorf("round: %w", err)
		}
		cs = append(cs, constraint.RoundTo(inc))
	}

	on, err := policy.enabled()
	if err != nil {
		return nil, err
	}
	if on {
		if validate.Min != nil {
			b, err := narrowBound[T](*validate.Min, true)
			if err != nil {
				return nil, fmt.Errorf("min: %w", err)
			}
			cs = append(cs, constraint.Min(b))
		}
		if validate.Max != nil {
			b, err := narrowBound[T](*validate.Max, false)
			if err != nil {
				return nil, fmt.Errorf("max: %w", err)
			}
			cs = append(cs, constraint.Max(b))
		}
		if validate.GreaterThan != nil {
			b, err := narrowBound[T](*validate.GreaterThan, false)
			if err != nil {
				return nil, fmt.Errorf("greater than: %w", err)
			}
			cs = append(cs, constraint.GreaterThan(b))
		}
		if validate.LessThan != nil {
			b, err := narrowBound[T](*validate.LessThan, true)
			if err != nil {
				return nil, fmt.Errorf("less than: %w", err)
			}
			cs = append(cs, constraint.LessThan(b))
		}
		if validate.NonNegative {
			cs = append(cs, constraint.NotNegative[T]())
		}
		if validate.NonZero {
			cs = append(cs, constraint.NotZero[T]())
		}
	}

	return constraint.Combine(cs...), nil
}

func compileFloat(adjust AdjustNumber, validate ValidateFloat, policy Policy) (constraint.Constraint[float64], error) {
	var cs []constraint.Constraint[float64]

	if adjust.Floor != nil {
		if err := checkBound(*adjust.Floor); err != nil {
			return nil, fmt.Errorf("floor: %w", err)
		}
		cs = append(cs, constraint.Floor(*adjust.Floor))
	}
	if adjust.Ceiling != nil {
		if err := checkBound(*adjust.Ceiling); err != nil {
			return nil, fmt.Errorf("ceiling: %w", err)
		}
		cs = append(cs, constraint.Ceiling(*adjust.Ceiling))
	}
	if adjust.RoundTo != nil {
		if err := checkIncrement(*adjust.RoundTo); err != nil {
			return nil, fmt.Errorf("round: %w", err)
		}
		cs = append(cs, constraint.RoundToFloat(*adjust.RoundTo))
	}

	on, err := policy.enabled()
	if err != nil {
		return nil, err
	}
	if on {
		if validate.Min != nil {
			if err := checkBound(*validate.Min); err != nil {
				return nil, fmt.Errorf("min: %w", err)
			}
			cs = append(cs, constraint.Min(*validate.Min))
		}
		if validate.Max != nil {
			if err := checkBound(*validate.Max); err != nil {
				return nil, fmt.Errorf("max: %w", err)
			}
			cs = append(cs, constraint.Max(*validate.Max))
		}
		if validate.GreaterThan != nil {
			if err := checkBound(*validate.GreaterThan); err != nil {
				return nil, fmt.Errorf("greater than: %w", err)
			}
			cs = append(cs, constraint.GreaterThan(*validate.GreaterThan))
		}
		if validate.LessThan != nil {
			if err := checkBound(*validate.LessThan); err != nil {
				return nil, fmt.Errorf("less than: %w", err)
			}
			cs = append(cs, constraint.LessThan(*validate.LessThan))
		}
		if validate.MultipleOf != nil {
			if err := checkIncrement(*validate.MultipleOf); err != nil {
				return nil, fmt.Errorf("multiple of: %w", err)
			}
			cs = append(cs, constraint.MultipleOf(*validate.MultipleOf))
		}
		if validate.NonNegative {
			cs = append(cs, constraint.NotNegative[float64]())
		}
		if validate.NonZero {
			cs = append(cs, constraint.NotZero[float64]())
		}
		if !validate.AllowNaN {
			cs = append(cs, constraint.NotNaN())
		}
		if !validate.AllowInfinity {
			cs = append(cs, constraint.NotInf())
		}
	}

	return constraint.Combine(cs...), nil
}

func compileDecimal(adjust AdjustDecimal, validate ValidateDecimal, policy Policy) (constraint.Constraint[*apd.Decimal], error) {
	var cs []constraint.Constraint[*apd.Decimal]

	if adjust.Floor != nil {
		b, err := decimalBound(*adjust.Floor)
		if err != nil {
			return nil, fmt.Errorf("floor: %w", err)
		}
		cs = append(cs, constraint.DecimalFloor(b))
	}
	if adjust.Ceiling != nil {
		b, err := decimalBound(*adjust.Ceiling)
		if err != nil {
			return nil, fmt.Errorf("ceiling: %w", err)
		}
		cs = append(cs, constraint.DecimalCeiling(b))
	}
	if adjust.RoundTo != nil {
		inc, err := decimalIncrement(*adjust.RoundTo)
		if err != nil {
			return nil, fmt.Errorf("round: %w", err)
		}
		cs = append(cs, constraint.DecimalRoundTo(inc))
	}

	on, err := policy.enabled()
	if err != nil {
		return nil, err
	}
	if on {
		if validate.Min != nil {
			b, err := decimalBound(*validate.Min)
			if err != nil {
				return nil, fmt.Errorf("min: %w", err)
			}
			cs = append(cs, constraint.DecimalMin(b))
		}
		if validate.Max != nil {
			b, err := decimalBound(*validate.Max)
			if err != nil {
				return nil, fmt.Errorf("max: %w", err)
			}
			cs = append(cs, constraint.DecimalMax(b))
		}
		if validate.GreaterThan != nil {
			b, err := decimalBound(*validate.GreaterThan)
			if err != nil {
				return nil, fmt.Errorf("greater than: %w", err)
			}
			cs = append(cs, constraint.DecimalGreaterThan(b))
		}
		if validate.LessThan != nil {
			b, err := decimalBound(*validate.LessThan)
			if err != nil {
				return nil, fmt.Errorf("less than: %w", err)
			}
			cs = append(cs, constraint.DecimalLessThan(b))
		}
		if validate.MultipleOf != nil {
			inc, err := decimalIncrement(*validate.MultipleOf)
			if err != nil {
				return nil, fmt.Errorf("multiple of: %w", err)
			}
			cs = append(cs, constraint.DecimalMultipleOf(inc))
		}
		if validate.NonNegative {
			cs = append(cs, constraint.DecimalNotNegative())
		}
		if validate.NonZero {
			cs = append(cs, constraint.DecimalNotZero())
		}
	}

	return constraint.Combine(cs...), nil
}

func compileString(adjust AdjustString, validate ValidateString, policy Policy) (constraint.Constraint[string], error) {
	var cs []constraint.Constraint[string]

	if adjust.Trim {
		cs = append(cs, constraint.TrimSpace())
	}
	switch adjust.Case {
	case CaseNone:
	case CaseLower:
		cs = append(cs, constraint.Lower())
	case CaseUpper:
		cs = append(cs, constraint.Upper())
	case CaseTitle:
		cs = append(cs, constraint.Title())
	default:
		return nil, fmt.Errorf("%w: unknown case mode %d", ErrInvalidRuleSet, adjust.Case)
	}
	if adjust.NFC {
		cs = append(cs, constraint.NFC())
	}
	if adjust.Intern {
		cs = append(cs, constraint.Intern())
	}

	on, err := policy.enabled()
	if err != nil {
		return nil, err
	}
	if on {
		if validate.MinLen != nil && *validate.MinLen < 0 {
			return nil, fmt.Errorf("%w: min length %d is negative", ErrInvalidRuleSet, *validate.MinLen)
		}
		if validate.MaxLen != nil && *validate.MaxLen < 0 {
			return nil, fmt.Errorf("%w: max length %d is negative", ErrInvalidRuleSet, *validate.MaxLen)
		}
		if validate.MinLen != nil && validate.MaxLen != nil && *validate.MinLen > *validate.MaxLen {
			return nil, fmt.Errorf("%w: min length %d exceeds max length %d", ErrInvalidRuleSet, *validate.MinLen, *validate.MaxLen)
		}
		if validate.NotEmpty {
			cs = append(cs, constraint.NotEmpty())
		}
		if validate.MinLen != nil {
			cs = append(cs, constraint.MinLen(*validate.MinLen))
		}
		if validate.MaxLen != nil {
			cs = append(cs, constraint.MaxLen(*validate.MaxLen))
		}
		if validate.Chars != nil {
			cs = append(cs, constraint.Chars(*validate.Chars))
		}
		if validate.Pattern != nil {
			re, err := regexp.Compile(*validate.Pattern)
			if err != nil {
				return nil, fmt.Errorf("%w: pattern %q: %v", ErrInvalidRuleSet, *validate.Pattern, err)
			}
			cs = append(cs, constraint.Match(re))
		}
		if validate.UUID {
			cs = append(cs, constraint.UUID())
		}
	}

	return constraint.Combine(cs...), nil
}

func checkBound(b float64) error {
	if math.IsNaN(b) {
		return fmt.Errorf("%w: bound is NaN", ErrInvalidRuleSet)
	}
	return nil
}

func checkIncrement(inc float64) error {
	if math.IsNaN(inc) || math.IsInf(inc, 0) || inc <= 0 {
		return fmt.Errorf("%w: increment %v must be positive and finite", ErrInvalidRuleSet, inc)
	}
	return nil
}

func decimalBound(s string) (*apd.Decimal, error) {
	d, err := constraint.NewDecimal(s)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidRuleSet, err)
	}
	if d.Form != apd.Finite {
		return nil, fmt.Errorf("%w: bound %q must be finite", ErrInvalidRuleSet, s)
	}
	return d, nil
}

func decimalIncrement(s string) (*apd.Decimal, error) {
	d, err := constraint.NewDecimal(s)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidRuleSet, err)
	}
	if d.Form != apd.Finite || d.Sign() <= 0 {
		return nil, fmt.Errorf("%w: increment %q must be positive and finite", ErrInvalidRuleSet, s)
	}
	return d, nil
}
