package constraint

import (
	"regexp"
	"strings"
	"unicode/utf8"
	"unique"

	"github.com/google/uuid"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"
)

// TrimSpace removes leading and trailing whitespace. Never fails.
func TrimSpace() Constraint[string] {
	return func(value string) (string, error) {
		return strings.TrimSpace(value), nil
	}
}

// Lower folds the value to lowercase using Unicode case mapping.
func Lower() Constraint[string] {
	return func(value string) (string, error) {
		return cases.Lower(language.Und).String(value), nil
	}
}

// Upper folds the value to uppercase using Unicode case mapping.
func Upper() Constraint[string] {
	return func(value string) (string, error) {
		return cases.Upper(language.Und).String(value), nil
	}
}

// Title folds the value to title case using Unicode case mapping.
func Title() Constraint[string] {
	return func(value string) (string, error) {
		return cases.Title(language.Und).String(value), nil
	}
}

// NFC normalizes the value to Unicode Normalization Form C.
func NFC() Constraint[string] {
	return func(value string) (string, error) {
		return norm.NFC.String(value), nil
	}
}

// Intern canonicalizes the value so that equal strings share one backing
// copy for the lifetime of the process.
func Intern() Constraint[string] {
	return func(value string) (string, error) {
		return unique.Make(value).Value(), nil
	}
}

// NotEmpty validates that the value has at least one character.
func NotEmpty() Constraint[string] {
	return func(value string) (string, error) {
		if value == "" {
			return "", &Violation{Message: `"" must not be empty`}
		}
		return value, nil
	}
}

// MinLen validates that the value has at least min characters. Length is
// counted in runes, not bytes.
func MinLen(min int) Constraint[string] {
	return func(value string) (string, error) {
		if utf8.RuneCountInString(value) < min {
			return "", violatef("%q must be at least %d characters long", value, min)
		}
		return value, nil
	}
}

// MaxLen validates that the value has at most max characters. Length is
// counted in runes, not bytes.
func MaxLen(max int) Constraint[string] {
	return func(value string) (string, error) {
		if utf8.RuneCountInString(value) > max {
			return "", violatef("%q must be at most %d characters long", value, max)
		}
		return value, nil
	}
}

// Chars validates that every character of the value belongs to allowed.
// ASCII membership is an array lookup indexed by character code; runes
// outside ASCII fall back to a map probe.
func Chars(allowed string) Constraint[string] {
	var ascii [128]bool
	var wide map[rune]bool
	for _, r := range allowed {
		if r < 128 {
			ascii[r] = true
			continue
		}
		if wide == nil {
			wide = make(map[rune]bool)
		}
		wide[r] = true
	}
	return func(value string) (string, error) {
		for _, r := range value {
			if r < 128 {
				if ascii[r] {
					continue
				}
			} else if wide[r] {
				continue
			}
			return "", violatef("%q contains characters outside %q", value, allowed)
		}
		return value, nil
	}
}

// Match validates that the whole value matches re. The pattern is anchored
// on both ends so partial matches do not pass.
func Match(re *regexp.Regexp) Constraint[string] {
	anchored := regexp.MustCompile(`\A(?:` + re.String() + `)\z`)
	return func(value string) (string, error) {
		if !anchored.MatchString(value) {
			return "", violatef("%q does not match %s", value, re)
		}
		return value, nil
	}
}

// UUID validates standard UUID format with pre-validation to avoid expensive
// parsing.
func UUID() Constraint[string] {
	return func(value string) (string, error) {
		// Fast rejection: check length and hyphen positions before parsing.
		if len(value) != 36 ||
			value[8] != '-' || value[13] != '-' || value[18] != '-' || value[23] != '-' {
			return "", violatef("%q must be a valid UUID", value)
		}
		if _, err := uuid.Parse(value); err != nil {
			return "", violatef("%q must be a valid UUID", value)
		}
		return value, nil
	}
}
