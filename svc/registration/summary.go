package registration

// MaskToken replaces sensitive values in the summary.
const MaskToken = "••••••"

type SummaryItem struct {
	Label string `json:"label" yaml:"label"`
	Value string `json:"value" yaml:"value"`
}

type SummarySection struct {
	Title string        `json:"title" yaml:"title"`
	Items []SummaryItem `json:"items" yaml:"items"`
}

// Summarize groups the record for display. The password is always masked and
// confirmPassword is omitted.
func Summarize(data FormData) []SummarySection {
	item := func(f Field, value string) SummaryItem {
		spec, _ := SpecFor(f)
		if spec.Sensitive {
			value = MaskToken
		}
		return SummaryItem{Label: spec.Label, Value: value}
	}

	return []SummarySection{
		{
			Title: "Personal Information",
			Items: []SummaryItem{
				item(FieldFullName, data.FullName),
				item(FieldEmail, data.Email),
				item(FieldPhoneNumber, data.PhoneNumber),
			},
		},
		{
			Title: "Address Details",
			Items: []SummaryItem{
				item(FieldStreetAddress, data.StreetAddress),
				item(FieldCity, data.City),
				item(FieldZipCode, data.ZipCode),
			},
		},
		{
			Title: "Account Information",
			Items: []SummaryItem{
				item(FieldUsername, data.Username),
				item(FieldPassword, data.Password),
			},
		},
	}
}
