package registration

import "slices"

// Step indexes.
const (
	StepPersonal = iota
	StepAddress
	StepAccount
	StepSummary

	// LastStep is the terminal summary step; it owns no fields.
	LastStep = StepSummary
)

// Step is one page of the wizard.
type Step struct {
	Title   string
	Heading string
	Fields  []Field
}

var steps = [...]Step{
	{Title: "Personal", Heading: "Personal Information", Fields: []Field{FieldFullName, FieldEmail, FieldPhoneNumber}},
	{Title: "Address", Heading: "Address Details", Fields: []Field{FieldStreetAddress, FieldCity, FieldZipCode}},
	{Title: "Account", Heading: "Account Setup", Fields: []Field{FieldUsername, FieldPassword, FieldConfirmPassword}},
	{Title: "Summary", Heading: "Summary"},
}

// Steps returns a copy of the step table.
func Steps() []Step {
	out := make([]Step, len(steps))
	for i := range steps {
		out[i], _ = StepAt(i)
	}
	return out
}

// StepAt looks up a step by index.
func StepAt(i int) (Step, bool) {
	if i < 0 || i >= len(steps) {
		return Step{}, false
	}
	s := steps[i]
	s.Fields = slices.Clone(s.Fields)
	return s, true
}

// FieldSpec carries presentation metadata for a field.
type FieldSpec struct {
	Label       string
	Placeholder string
	Sensitive   bool // masked input, never echoed
}

var fieldSpecs = map[Field]FieldSpec{
	FieldFullName:        {Label: "Full Name", Placeholder: "Your name"},
	FieldEmail:           {Label: "Email", Placeholder: "yourname@example.com"},
	FieldPhoneNumber:     {Label: "Phone Number", Placeholder: "01234567890"},
	FieldStreetAddress:   {Label: "Street Address", Placeholder: "123 Main St"},
	FieldCity:            {Label: "City", Placeholder: "Dhaka"},
	FieldZipCode:         {Label: "Zip Code", Placeholder: "1212"},
	FieldUsername:        {Label: "Username", Placeholder: "yourname123"},
	FieldPassword:        {Label: "Password", Placeholder: MaskToken, Sensitive: true},
	FieldConfirmPassword: {Label: "Confirm Password", Placeholder: MaskToken, Sensitive: true},
}

func SpecFor(f Field) (FieldSpec, bool) {
	spec, ok := fieldSpecs[f]
	return spec, ok
}
