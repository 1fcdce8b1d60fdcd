// Package ruleset compiles declarative normalization and validation rules
// into a single composed constraint per wrapped type, and caches the result
// for the lifetime of the process.
//
// A wrapped type declares its rules by implementing Rules() for its raw
// kind, returning one of the declaration structs (Int32, Int64, Float64,
// Decimal, String). Each declaration is an Adjust block, a Validate block,
// and a Policy. The compiler reads each populated field in a fixed order
// (adjustments before validations) and appends one constraint per field, so
// a value is always trimmed, clamped, folded, and rounded before any bound,
// length, set, or pattern check sees it.
//
// # Architecture
//
//   - ruleset.go  - the declaration structs and per-kind capability interfaces
//   - compile.go  - one compiler per raw kind, declaration in, constraint out
//   - narrow.go   - safe narrowing of wide float64 parameters to integer kinds
//   - cache.go    - the per-kind type-to-constraint caches and For* entry points
//   - policy.go   - the Enforce/DebugOnly policy and the debug-checks toggle
//
// Compilation happens at most once per type. The caches are copy-on-write:
// lookups are lock-free pointer loads, and a writer publishes a fresh map
// via compare-and-swap. Concurrent first uses of the same type may both
// compile; one result is retained and the other discarded, which is safe
// because compilation is a pure function of the immutable declaration.
//
// # Usage
//
//	type Age int32
//
//	func (Age) Rules() ruleset.Int32 {
//	    return ruleset.Int32{
//	        Validate: ruleset.ValidateNumber{
//	            Min: ruleset.Ptr(0.0),
//	            Max: ruleset.Ptr(150.0),
//	        },
//	    }
//	}
//
//	apply, err := ruleset.ForInt32[Age]()
//	if err != nil {
//	    // the declaration itself is malformed
//	}
//	raw, err := apply(42)
//
// # Error Handling
//
// Two failure families never mix: a value rejected by a compiled constraint
// is a *constraint.Violation (see constraint.IsViolation), while a malformed
// declaration fails compilation with an error wrapping ErrInvalidRuleSet.
// Compilation failures are never cached, so every use of a broken type
// reports the configuration error until it is fixed.
package ruleset
