// Package valuekit builds self-validating wrapped value types over five raw
// kinds: int32, int64, float64, string, and arbitrary-precision decimals.
//
// A wrapped type is a defined Go type that declares its own normalization
// rules. Construction is the only door in: values are adjusted first
// (clamped, rounded, trimmed, case folded), then validated, and no instance
// exists unless every validation passed. Code holding a value of the type
// can rely on its rules without rechecking them.
//
// Key Features:
//
//   - Declarative rules on the type itself, discovered through generics
//   - Adjustments before validations, always in a fixed order
//   - Rules composed once per type and cached without locks
//   - Exact decimal bounds declared as strings, never as floats
//   - Debug-only rule sets whose checks compile away in production
//
// Basic Usage:
//
//	// Define the wrapped type and its rules.
//	type Age int32
//
//	func (Age) Rules() ruleset.Int32 {
//		return ruleset.Int32{
//			Validate: ruleset.ValidateNumber{
//				Min: ruleset.Ptr(0.0),
//				Max: ruleset.Ptr(150.0),
//			},
//		}
//	}
//
//	// Construct through the validated path.
//	age, err := valuekit.NewInt32[Age](151)
//	if err != nil {
//		// err carries the violated rule: "new main.Age: 151 > 150"
//	}
//
//	// Literals known to be valid can panic on programmer error instead.
//	adult := valuekit.MustInt32[Age](18)
//
//	// Values read back from storage already satisfied the rules once.
//	fromDB := valuekit.UnsafeInt32[Age](row.Age)
//
//	// Deriving a new value re-applies the rules.
//	older, err := valuekit.MapInt32(age, func(v int32) int32 { return v + 1 })
//
// String Normalization:
//
//	type Slug string
//
//	func (Slug) Rules() ruleset.String {
//		return ruleset.String{
//			Adjust: ruleset.AdjustString{
//				Trim: true,
//				Case: ruleset.CaseLower,
//			},
//			Validate: ruleset.ValidateString{
//				NotEmpty: true,
//				MaxLen:   ruleset.Ptr(64),
//				Chars:    ruleset.Ptr("abcdefghijklmnopqrstuvwxyz0123456789-"),
//			},
//		}
//	}
//
//	slug, err := valuekit.NewString[Slug]("  My First Post  ")
//	// validations saw the trimmed, lowercased text
//
// Exact Decimals:
//
// Decimal-backed types carry an arbitrary-precision payload. Their bounds
// and increments are declared as strings so 0.1 means exactly 0.1:
//
//	type Price valuekit.Decimal
//
//	func (Price) Rules() ruleset.Decimal {
//		return ruleset.Decimal{
//			Validate: ruleset.ValidateDecimal{
//				Min:        ruleset.Ptr("0.01"),
//				MultipleOf: ruleset.Ptr("0.01"),
//			},
//		}
//	}
//
//	d, err := valuekit.ParseDecimal[Price]("19.99")
//	if err != nil {
//		return err
//	}
//	price := Price(*d)
//
// The package follows these principles:
//   - Construction is validation; there is no Validate method to forget
//   - Malformed rules are programming errors, reported loudly and never cached
//   - Rule failures are values, inspectable with constraint.IsViolation
//   - The happy path after the first construction costs one map probe
package valuekit
