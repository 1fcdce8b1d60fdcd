package ruleset

// Ptr returns a pointer to v, for populating optional rule fields inline.
func Ptr[T any](v T) *T {
	return &v
}

// Case selects the Unicode case folding applied to a string value.
type Case uint8

const (
	CaseNone Case = iota
	CaseLower
	CaseUpper
	CaseTitle
)

// AdjustNumber declares the adjustments for the numeric kinds. Bounds and
// increments are written as wide float64 values and narrowed to the raw kind
// when the rules compile; for the integer kinds a bound outside the
// representable range clamps to the kind's limits instead of wrapping.
type AdjustNumber struct {
	Floor   *float64
	Ceiling *float64
	RoundTo *float64
}

// ValidateNumber declares the validations for the integer kinds.
type ValidateNumber struct {
	Min         *float64
	Max         *float64
	GreaterThan *float64
	LessThan    *float64
	NonNegative bool
	NonZero     bool
}

// ValidateFloat declares the validations for the float64 kind. NaN and
// infinities are rejected unless explicitly allowed.
type ValidateFloat struct {
	Min           *float64
	Max           *float64
	GreaterThan   *float64
	LessThan      *float64
	MultipleOf    *float64
	NonNegative   bool
	NonZero       bool
	AllowNaN      bool
	AllowInfinity bool
}

// AdjustDecimal declares the adjustments for the decimal kind. Every
// parameter is a canonical decimal literal such as "0.1", parsed exactly;
// a binary floating-point intermediate never touches the decimal path.
type AdjustDecimal struct {
	Floor   *string
	Ceiling *string
	RoundTo *string
}

// ValidateDecimal declares the validations for the decimal kind, with
// parameters as canonical decimal literals.
type ValidateDecimal struct {
	Min         *string
	Max         *string
	GreaterThan *string
	LessThan    *string
	MultipleOf  *string
	NonNegative bool
	NonZero     bool
}

// AdjustString declares the adjustments for the string kind. They apply as
// trim, case folding, normalization, interning, in that order, so the
// interned form is always the fully normalized one.
type AdjustString struct {
	Trim   bool
	Case   Case
	NFC    bool
	Intern bool
}

// ValidateString declares the validations for the string kind. Lengths count
// runes, not bytes. Pattern must match the whole value.
type ValidateString struct {
	NotEmpty bool
	MinLen   *int
	MaxLen   *int
	Chars    *string
	Pattern  *string
	UUID     bool
}

// Int32 is the rule declaration for types wrapping an int32.
type Int32 struct {
	Adjust   AdjustNumber
	Validate ValidateNumber
	Policy   Policy
}

// Int64 is the rule declaration for types wrapping an int64.
type Int64 struct {
	Adjust   AdjustNumber
	Validate ValidateNumber
	Policy   Policy
}

// Float64 is the rule declaration for types wrapping a float64.
type Float64 struct {
	Adjust   AdjustNumber
	Validate ValidateFloat
	Policy   Policy
}

// Decimal is the rule declaration for types wrapping an arbitrary-precision
// decimal.
type Decimal struct {
	Adjust   AdjustDecimal
	Validate ValidateDecimal
	Policy   Policy
}

// String is the rule declaration for types wrapping a string.
type String struct {
	Adjust   AdjustString
	Validate ValidateString
	Policy   Policy
}

// Int32Rules is implemented by int32-backed types to declare their rules.
// The declaration must be constant: the composed constraint compiles once
// per type and is cached for the lifetime of the process.
type Int32Rules interface {
	Rules() Int32
}

// Int64Rules is implemented by int64-backed types to declare their rules.
type Int64Rules interface {
	Rules() Int64
}

// Float64Rules is implemented by float64-backed types to declare their rules.
type Float64Rules interface {
	Rules() Float64
}

// DecimalRules is implemented by decimal-backed types to declare their rules.
type DecimalRules interface {
	Rules() Decimal
}

// StringRules is implemented by string-backed types to declare their rules.
type StringRules interface {
	Rules() String
}
