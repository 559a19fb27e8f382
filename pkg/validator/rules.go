package validator

import (
	"fmt"
	"net/mail"
	"strings"
	"unicode/utf8"
)

const (
	CodeRequired  = "required"
	CodeEmail     = "email"
	CodeDigits    = "digits"
	CodeMinLength = "min_length"
	CodeMismatch  = "mismatch"
)

// NonEmpty fails only for "". Whitespace counts as content.
func NonEmpty(field, value string) Rule {
	return newRule(field, CodeRequired, "field is required", func() bool {
		return value != ""
	})
}

// MinLen counts runes, not bytes.
func MinLen(field, value string, n int) Rule {
	return newRule(field, CodeMinLength, fmt.Sprintf("must be at least %d characters long", n), func() bool {
		return utf8.RuneCountInString(value) >= n
	})
}

// ValidNumericString accepts one or more ASCII digits and nothing else.
func ValidNumericString(field, value string) Rule {
	return newRule(field, CodeDigits, "must contain only digits", func() bool {
		if value == "" {
			return false
		}
		for i := 0; i < len(value); i++ {
			if value[i] < '0' || value[i] > '9' {
				return false
			}
		}
		return true
	})
}

// ValidEmail accepts a bare address (no display name) whose domain has at
// least two non-empty labels.
func ValidEmail(field, value string) Rule {
	return newRule(field, CodeEmail, "must be a valid email address", func() bool {
		addr, err := mail.ParseAddress(value)
		if err != nil || addr.Address != value {
			return false
		}
		_, domain, _ := strings.Cut(value, "@")
		labels := strings.Split(domain, ".")
		if len(labels) < 2 {
			return false
		}
		for _, l := range labels {
			if l == "" {
				return false
			}
		}
		return true
	})
}

// EqualTo checks a confirmation value against another field. The failure is
// reported on field, never on other.
func EqualTo[T comparable](field string, value T, other string, otherValue T) Rule {
	return newRule(field, CodeMismatch, "must match "+other, func() bool {
		return value == otherValue
	})
}
