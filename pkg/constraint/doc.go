// Package constraint provides small, composable normalization and validation
// rules for the raw kinds a domain value can wrap: int32, int64, float64,
// arbitrary-precision decimals, and strings.
//
// A Constraint is a function from a raw value to a possibly adjusted raw
// value or an error. Adjustments (clamping, rounding, trimming, case folding,
// interning) transform and never fail; validations (bounds, divisibility,
// character sets, patterns, lengths) pass the value through unchanged or fail
// with a Violation whose message embeds the offending value and the bound it
// violated.
//
// # Architecture
//
// Each source file groups the constraints for one raw kind family
// (`numeric.go`, `float.go`, `string.go`, `decimal.go`). Every exported
// builder returns a closed-over Constraint function; there is no hidden
// mutable state, so constraints are pure and safe to share between
// goroutines. Combine sequences constraints into one, threading the value
// through in argument order and short-circuiting on the first failure;
// combining nothing yields the identity.
//
// Decimal constraints operate on *apd.Decimal values and take their bounds
// and increments as decimals built from canonical string literals (see
// NewDecimal), keeping binary floating-point representation error out of the
// rules. They never mutate their inputs and never alias their bounds.
//
// # Usage
//
//	normalize := constraint.Combine(
//	    constraint.TrimSpace(),
//	    constraint.Lower(),
//	    constraint.MinLen(3),
//	    constraint.Chars("abcdefghijklmnopqrstuvwxyz0123456789-"),
//	)
//	slug, err := normalize("  My-Slug  ")
//	if err != nil {
//	    // the value was rejected after trimming and folding
//	}
//
// # Error Handling
//
// Validation failures are reported as *Violation and can be detected with
// IsViolation or errors.As. Builders do not validate their own parameters;
// the rule compiler in pkg/ruleset rejects malformed parameters before any
// Constraint is built.
package constraint
