package registration_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/regwizard/svc/registration"
)

func TestSummarize(t *testing.T) {
	t.Parallel()

	data := validData()
	got := registration.Summarize(data)

	assert.Equal(t, []registration.SummarySection{
		{
			Title: "Personal Information",
			Items: []registration.SummaryItem{
				{Label: "Full Name", Value: "Ann Smith"},
				{Label: "Email", Value: "ann@example.com"},
				{Label: "Phone Number", Value: "01234567890"},
			},
		},
		{
			Title: "Address Details",
			Items: []registration.SummaryItem{
				{Label: "Street Address", Value: "123 Main St"},
				{Label: "City", Value: "Dhaka"},
				{Label: "Zip Code", Value: "1212"},
			},
		},
		{
			Title: "Account Information",
			Items: []registration.SummaryItem{
				{Label: "Username", Value: "annsmith"},
				{Label: "Password", Value: registration.MaskToken},
			},
		},
	}, got)
}

func TestSummarize_NeverLeaksPassword(t *testing.T) {
	t.Parallel()

	data := validData()
	data.Password = "secret1"
	data.ConfirmPassword = "secret1"

	raw, err := json.Marshal(registration.Summarize(data))
	require.NoError(t, err)
	assert.NotContains(t, string(raw), "secret1")
	assert.NotContains(t, string(raw), "Confirm Password")

	// Even an empty password renders as the mask.
	sections := registration.Summarize(registration.FormData{})
	assert.Equal(t, registration.MaskToken, sections[2].Items[1].Value)
}
