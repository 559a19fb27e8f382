// Package validator holds the small rule set the registration form is checked with.
//
// A Rule is a predicate plus the ValidationError it reports. Errors carry a
// stable Code (CodeRequired, CodeDigits, ...) next to a user-facing Message,
// which callers usually replace with Rule.WithMessage.
//
// Apply collects every failure; First stops at the first one, which is the
// policy for a single form field:
//
//	verr, failed := validator.First(
//		validator.NonEmpty("zipCode", zip).WithMessage("Zip code is required"),
//		validator.ValidNumericString("zipCode", zip),
//		validator.MinLen("zipCode", zip, 4),
//	)
//
// ValidationErrors implements error and survives wrapping; use
// ExtractValidationErrors to get it back.
package validator
