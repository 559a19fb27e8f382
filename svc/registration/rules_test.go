package registration_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/regwizard/pkg/validator"
	"github.com/dmitrymomot/regwizard/svc/registration"
)

func TestValidate_ValidRecord(t *testing.T) {
	t.Parallel()

	data := validData()
	assert.Empty(t, registration.Validate(data))
	for _, s := range registration.Steps() {
		assert.Empty(t, registration.Validate(data, s.Fields...), s.Title)
	}
	for _, f := range registration.Fields() {
		assert.Empty(t, registration.Validate(data, f), f)
	}
}

func TestValidate_PasswordMismatch(t *testing.T) {
	t.Parallel()

	data := validData()
	data.Password = "abcdef"
	data.ConfirmPassword = "abcdeg"

	errs := registration.Validate(data, registration.FieldConfirmPassword)
	assert.Equal(t, registration.FieldErrors{
		registration.FieldConfirmPassword: registration.MsgPasswordMismatch,
	}, errs)

	// The mismatch never lands on password.
	assert.Empty(t, registration.Validate(data, registration.FieldPassword))
}

func TestValidate_EmptyRecord(t *testing.T) {
	t.Parallel()

	errs := registration.Validate(registration.FormData{})
	assert.Equal(t, registration.FieldErrors{
		registration.FieldFullName:        registration.MsgFullNameRequired,
		registration.FieldEmail:           registration.MsgEmailRequired,
		registration.FieldPhoneNumber:     registration.MsgPhoneRequired,
		registration.FieldStreetAddress:   registration.MsgStreetAddressRequired,
		registration.FieldCity:            registration.MsgCityRequired,
		registration.FieldZipCode:         registration.MsgZipCodeRequired,
		registration.FieldUsername:        registration.MsgUsernameRequired,
		registration.FieldPassword:        registration.MsgPasswordRequired,
		registration.FieldConfirmPassword: registration.MsgConfirmPasswordRequired,
	}, errs)
}

func TestValidateField_FirstErrorWins(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		field   registration.Field
		mutate  func(*registration.FormData)
		wantMsg string
	}{
		{"email syntax", registration.FieldEmail, func(d *registration.FormData) { d.Email = "ann@" }, registration.MsgEmailInvalid},
		{"email display name", registration.FieldEmail, func(d *registration.FormData) { d.Email = "Ann <ann@x.com>" }, registration.MsgEmailInvalid},
		{"phone short digits", registration.FieldPhoneNumber, func(d *registration.FormData) { d.PhoneNumber = "12345" }, registration.MsgPhoneTooShort},
		{"phone short non digit", registration.FieldPhoneNumber, func(d *registration.FormData) { d.PhoneNumber = "12a" }, registration.MsgPhoneDigits},
		{"phone long non digit", registration.FieldPhoneNumber, func(d *registration.FormData) { d.PhoneNumber = "+8801234567890" }, registration.MsgPhoneDigits},
		{"zip short", registration.FieldZipCode, func(d *registration.FormData) { d.ZipCode = "121" }, registration.MsgZipCodeTooShort},
		{"zip letters", registration.FieldZipCode, func(d *registration.FormData) { d.ZipCode = "12AB" }, registration.MsgZipCodeDigits},
		{"username short", registration.FieldUsername, func(d *registration.FormData) { d.Username = "ann" }, registration.MsgUsernameTooShort},
		{"password short", registration.FieldPassword, func(d *registration.FormData) { d.Password = "12345" }, registration.MsgPasswordTooShort},
		{"confirm empty beats mismatch", registration.FieldConfirmPassword, func(d *registration.FormData) { d.ConfirmPassword = "" }, registration.MsgConfirmPasswordRequired},
		{"empty name", registration.FieldFullName, func(d *registration.FormData) { d.FullName = "" }, registration.MsgFullNameRequired},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			data := validData()
			tt.mutate(&data)

			msg, failed := registration.ValidateField(data, tt.field)
			require.True(t, failed)
			assert.Equal(t, tt.wantMsg, msg)
		})
	}

	t.Run("boundaries pass", func(t *testing.T) {
		t.Parallel()
		data := validData()
		data.PhoneNumber = "0123456789"
		data.ZipCode = "1000"
		data.Username = "anna"
		data.Password = "123456"
		data.ConfirmPassword = "123456"
		data.FullName = " "
		assert.Empty(t, registration.Validate(data))
	})
}

func TestValidate_UnknownFieldIgnored(t *testing.T) {
	t.Parallel()
	assert.Empty(t, registration.Validate(registration.FormData{}, registration.Field("nickname")))
}

func TestFieldErrors_AsValidationErrors(t *testing.T) {
	t.Parallel()

	errs := registration.FieldErrors{
		registration.FieldZipCode:  registration.MsgZipCodeRequired,
		registration.FieldFullName: registration.MsgFullNameRequired,
	}
	verrs := errs.AsValidationErrors()

	assert.Equal(t, []string{"fullName", "zipCode"}, verrs.Fields())
	assert.True(t, validator.IsValidationError(verrs))
	assert.Equal(t, map[string]string{
		"fullName": registration.MsgFullNameRequired,
		"zipCode":  registration.MsgZipCodeRequired,
	}, verrs.Map())
}

func TestFormData_GetSet(t *testing.T) {
	t.Parallel()

	var data registration.FormData
	for _, f := range registration.Fields() {
		require.NoError(t, data.Set(f, "v-"+f.String()))
	}
	for _, f := range registration.Fields() {
		got, err := data.Get(f)
		require.NoError(t, err)
		assert.Equal(t, "v-"+f.String(), got)
		assert.True(t, f.Valid())
	}

	before := data
	assert.ErrorIs(t, data.Set("nickname", "x"), registration.ErrUnknownField)
	assert.Equal(t, before, data)

	_, err := data.Get("nickname")
	assert.ErrorIs(t, err, registration.ErrUnknownField)
	assert.False(t, registration.Field("nickname").Valid())
}
