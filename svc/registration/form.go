package registration

import (
	"maps"
	"slices"

	"github.com/dmitrymomot/regwizard/pkg/validator"
)

// Field names a FormData entry by its wire name.
type Field string

const (
	FieldFullName        Field = "fullName"
	FieldEmail           Field = "email"
	FieldPhoneNumber     Field = "phoneNumber"
	FieldStreetAddress   Field = "streetAddress"
	FieldCity            Field = "city"
	FieldZipCode         Field = "zipCode"
	FieldUsername        Field = "username"
	FieldPassword        Field = "password"
	FieldConfirmPassword Field = "confirmPassword"
)

var allFields = []Field{
	FieldFullName,
	FieldEmail,
	FieldPhoneNumber,
	FieldStreetAddress,
	FieldCity,
	FieldZipCode,
	FieldUsername,
	FieldPassword,
	FieldConfirmPassword,
}

// Fields returns every form field in declaration order.
func Fields() []Field {
	return slices.Clone(allFields)
}

func (f Field) String() string {
	return string(f)
}

func (f Field) Valid() bool {
	return slices.Contains(allFields, f)
}

// FormData is the single record collected by the wizard.
type FormData struct {
	FullName        string `json:"fullName" yaml:"fullName"`
	Email           string `json:"email" yaml:"email"`
	PhoneNumber     string `json:"phoneNumber" yaml:"phoneNumber"`
	StreetAddress   string `json:"streetAddress" yaml:"streetAddress"`
	City            string `json:"city" yaml:"city"`
	ZipCode         string `json:"zipCode" yaml:"zipCode"`
	Username        string `json:"username" yaml:"username"`
	Password        string `json:"password" yaml:"-"`
	ConfirmPassword string `json:"confirmPassword" yaml:"-"`
}

func (d *FormData) ptr(f Field) *string {
	switch f {
	case FieldFullName:
		return &d.FullName
	case FieldEmail:
		return &d.Email
	case FieldPhoneNumber:
		return &d.PhoneNumber
	case FieldStreetAddress:
		return &d.StreetAddress
	case FieldCity:
		return &d.City
	case FieldZipCode:
		return &d.ZipCode
	case FieldUsername:
		return &d.Username
	case FieldPassword:
		return &d.Password
	case FieldConfirmPassword:
		return &d.ConfirmPassword
	}
	return nil
}

// Get returns the value of f.
func (d FormData) Get(f Field) (string, error) {
	p := d.ptr(f)
	if p == nil {
		return "", ErrUnknownField
	}
	return *p, nil
}

// Set stores value under f. Unknown fields leave d untouched.
func (d *FormData) Set(f Field, value string) error {
	p := d.ptr(f)
	if p == nil {
		return ErrUnknownField
	}
	*p = value
	return nil
}

// FieldErrors maps a field to its current error message.
// A field is present only while it is invalid.
type FieldErrors map[Field]string

func (e FieldErrors) Has(f Field) bool {
	_, ok := e[f]
	return ok
}

func (e FieldErrors) Clone() FieldErrors {
	if e == nil {
		return FieldErrors{}
	}
	return maps.Clone(e)
}

// AsValidationErrors converts to validator.ValidationErrors in field order.
func (e FieldErrors) AsValidationErrors() validator.ValidationErrors {
	var out validator.ValidationErrors
	for _, f := range allFields {
		if msg, ok := e[f]; ok {
			out.Add(validator.ValidationError{Field: f.String(), Message: msg})
		}
	}
	return out
}
