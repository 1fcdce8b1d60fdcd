package ruleset

import "errors"

// ErrInvalidRuleSet is returned when a type declares malformed rules: an
// unparseable decimal literal, an invalid pattern, a NaN bound, a
// non-positive rounding increment, an unknown policy or case mode, or
// inconsistent lengths. The error surfaces at the type's first use and is
// never cached, so every construction attempt reports it until the
// declaration is fixed.
var ErrInvalidRuleSet = errors.New("invalid rule set")
