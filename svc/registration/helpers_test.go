package registration_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/regwizard/pkg/logger"
	"github.com/dmitrymomot/regwizard/svc/registration"
)

func validData() registration.FormData {
	return registration.FormData{
		FullName:        "Ann Smith",
		Email:           "ann@example.com",
		PhoneNumber:     "01234567890",
		StreetAddress:   "123 Main St",
		City:            "Dhaka",
		ZipCode:         "1212",
		Username:        "annsmith",
		Password:        "secret1",
		ConfirmPassword: "secret1",
	}
}

func fill(t *testing.T, w *registration.Wizard, data registration.FormData) {
	t.Helper()
	for _, f := range registration.Fields() {
		v, err := data.Get(f)
		require.NoError(t, err)
		require.NoError(t, w.EditField(f, v))
	}
}

// toSummary fills the wizard with valid data and walks it to the last step.
func toSummary(t *testing.T, opts ...registration.Option) *registration.Wizard {
	t.Helper()
	w := registration.New(append([]registration.Option{registration.WithLogger(logger.Discard())}, opts...)...)
	fill(t, w, validData())
	for range registration.LastStep {
		require.True(t, w.Next())
	}
	require.Equal(t, registration.LastStep, w.CurrentStep())
	return w
}
