package validator

import (
	"errors"
	"strings"
)

// ValidationError is one failed rule. Code is stable and machine readable;
// Message is what the user sees and may be replaced with Rule.WithMessage.
type ValidationError struct {
	Field   string `json:"field"`
	Code    string `json:"code,omitempty"`
	Message string `json:"message"`
}

// ValidationErrors is an ordered list of failures. It implements error.
type ValidationErrors []ValidationError

func (ve ValidationErrors) Error() string {
	if len(ve) == 0 {
		return "validation failed"
	}
	var b strings.Builder
	b.WriteString("validation failed: ")
	for i, e := range ve {
		if i > 0 {
			b.WriteString("; ")
		}
		b.WriteString(e.Field)
		b.WriteString(": ")
		b.WriteString(e.Message)
	}
	return b.String()
}

func (ve *ValidationErrors) Add(err ValidationError) {
	*ve = append(*ve, err)
}

func (ve ValidationErrors) Has(field string) bool {
	for _, e := range ve {
		if e.Field == field {
			return true
		}
	}
	return false
}

// Get returns the messages recorded for field in insertion order.
func (ve ValidationErrors) Get(field string) []string {
	var out []string
	for _, e := range ve {
		if e.Field == field {
			out = append(out, e.Message)
		}
	}
	return out
}

// Fields lists distinct field names in first-seen order.
func (ve ValidationErrors) Fields() []string {
	var out []string
	for _, e := range ve {
		if !contains(out, e.Field) {
			out = append(out, e.Field)
		}
	}
	return out
}

// Map keeps the first message per field.
func (ve ValidationErrors) Map() map[string]string {
	out := make(map[string]string, len(ve))
	for _, e := range ve {
		if _, ok := out[e.Field]; !ok {
			out[e.Field] = e.Message
		}
	}
	return out
}

func (ve ValidationErrors) IsEmpty() bool { return len(ve) == 0 }

// Rule pairs a predicate with the error reported when it does not hold.
type Rule struct {
	Check func() bool
	Error ValidationError
}

// WithMessage returns a copy of r reporting msg. The code is kept.
func (r Rule) WithMessage(msg string) Rule {
	r.Error.Message = msg
	return r
}

func newRule(field, code, msg string, check func() bool) Rule {
	return Rule{Check: check, Error: ValidationError{Field: field, Code: code, Message: msg}}
}

// Apply evaluates every rule and returns ValidationErrors for the failing ones, or nil.
func Apply(rules ...Rule) error {
	var errs ValidationErrors
	for _, r := range rules {
		if !r.Check() {
			errs.Add(r.Error)
		}
	}
	if errs.IsEmpty() {
		return nil
	}
	return errs
}

// First reports the first failing rule and evaluates nothing after it,
// so a rule may assume the ones before it held.
func First(rules ...Rule) (ValidationError, bool) {
	for _, r := range rules {
		if !r.Check() {
			return r.Error, true
		}
	}
	return ValidationError{}, false
}

// ExtractValidationErrors unwraps ValidationErrors from err, or returns nil.
func ExtractValidationErrors(err error) ValidationErrors {
	var ve ValidationErrors
	if errors.As(err, &ve) {
		return ve
	}
	return nil
}

func IsValidationError(err error) bool {
	var ve ValidationErrors
	return errors.As(err, &ve)
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
