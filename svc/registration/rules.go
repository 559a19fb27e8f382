package registration

import "github.com/dmitrymomot/regwizard/pkg/validator"

const (
	phoneMinLength    = 10
	zipCodeMinLength  = 4
	usernameMinLength = 4
	passwordMinLength = 6
)

// Field error messages.
const (
	MsgFullNameRequired        = "Full name is required"
	MsgEmailRequired           = "Email is required"
	MsgEmailInvalid            = "Invalid email format"
	MsgPhoneRequired           = "Phone number is required"
	MsgPhoneDigits             = "Phone number must contain only digits"
	MsgPhoneTooShort           = "Phone number must be at least 10 digits"
	MsgStreetAddressRequired   = "Street address is required"
	MsgCityRequired            = "City is required"
	MsgZipCodeRequired         = "Zip code is required"
	MsgZipCodeDigits           = "Zip code must contain only numbers"
	MsgZipCodeTooShort         = "Zip code must be at least 4 digits"
	MsgUsernameRequired        = "Username is required"
	MsgUsernameTooShort        = "Username must be at least 4 characters"
	MsgPasswordRequired        = "Password is required"
	MsgPasswordTooShort        = "Password must be at least 6 characters"
	MsgConfirmPasswordRequired = "Please confirm your password"
	MsgPasswordMismatch        = "Passwords do not match"
)

// rulesFor returns the ordered rules of f. Only the first failing rule is
// reported, so later rules may assume the earlier ones passed.
func rulesFor(data FormData, f Field) []validator.Rule {
	name := f.String()
	switch f {
	case FieldFullName:
		return []validator.Rule{
			validator.NonEmpty(name, data.FullName).WithMessage(MsgFullNameRequired),
		}
	case FieldEmail:
		return []validator.Rule{
			validator.NonEmpty(name, data.Email).WithMessage(MsgEmailRequired),
			validator.ValidEmail(name, data.Email).WithMessage(MsgEmailInvalid),
		}
	case FieldPhoneNumber:
		return []validator.Rule{
			validator.NonEmpty(name, data.PhoneNumber).WithMessage(MsgPhoneRequired),
			validator.ValidNumericString(name, data.PhoneNumber).WithMessage(MsgPhoneDigits),
			validator.MinLen(name, data.PhoneNumber, phoneMinLength).WithMessage(MsgPhoneTooShort),
		}
	case FieldStreetAddress:
		return []validator.Rule{
			validator.NonEmpty(name, data.StreetAddress).WithMessage(MsgStreetAddressRequired),
		}
	case FieldCity:
		return []validator.Rule{
			validator.NonEmpty(name, data.City).WithMessage(MsgCityRequired),
		}
	case FieldZipCode:
		return []validator.Rule{
			validator.NonEmpty(name, data.ZipCode).WithMessage(MsgZipCodeRequired),
			validator.ValidNumericString(name, data.ZipCode).WithMessage(MsgZipCodeDigits),
			validator.MinLen(name, data.ZipCode, zipCodeMinLength).WithMessage(MsgZipCodeTooShort),
		}
	case FieldUsername:
		return []validator.Rule{
			validator.NonEmpty(name, data.Username).WithMessage(MsgUsernameRequired),
			validator.MinLen(name, data.Username, usernameMinLength).WithMessage(MsgUsernameTooShort),
		}
	case FieldPassword:
		return []validator.Rule{
			validator.NonEmpty(name, data.Password).WithMessage(MsgPasswordRequired),
			validator.MinLen(name, data.Password, passwordMinLength).WithMessage(MsgPasswordTooShort),
		}
	case FieldConfirmPassword:
		// The mismatch is reported on confirmPassword, never on password.
		return []validator.Rule{
			validator.NonEmpty(name, data.ConfirmPassword).WithMessage(MsgConfirmPasswordRequired),
			validator.EqualTo(name, data.ConfirmPassword, FieldPassword.String(), data.Password).WithMessage(MsgPasswordMismatch),
		}
	}
	return nil
}

// ValidateField checks a single field against the whole record and returns
// its error message, if any.
func ValidateField(data FormData, f Field) (string, bool) {
	verr, failed := validator.First(rulesFor(data, f)...)
	if !failed {
		return "", false
	}
	return verr.Message, true
}

// Validate checks the given fields, or every field when none are given.
// Passing fields are absent from the result. Unknown fields are ignored.
func Validate(data FormData, fields ...Field) FieldErrors {
	if len(fields) == 0 {
		fields = allFields
	}

	errs := FieldErrors{}
	for _, f := range fields {
		if msg, failed := ValidateField(data, f); failed {
			errs[f] = msg
		}
	}
	return errs
}
