package validate

import (
	"testing"

	"cloud.google.com/go/civil"
	"github.com/google/go-cmp/cmp"

	"github.com/kingrea/profileflow/internal/profile"
)

func TestLoginRequiresExactlyTheBlankFields(t *testing.T) {
	cases := []struct {
		name     string
		email    string
		password string
		want     []FieldError
	}{
		{"both empty", "", "", []FieldError{Required(FieldEmail), Required(FieldPassword)}},
		{"whitespace email", "   \t", "secret", []FieldError{Required(FieldEmail)}},
		{"whitespace password", "a@b.com", "  ", []FieldError{Required(FieldPassword)}},
		{"newline only", "\n", "\n", []FieldError{Required(FieldEmail), Required(FieldPassword)}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, errs := Login(tc.email, tc.password)
			if diff := cmp.Diff(tc.want, errs); diff != "" {
				t.Fatalf("Login errors mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestLoginAcceptsAndTrims(t *testing.T) {
	data, errs := Login("a@b.com", "x")
	if len(errs) != 0 {
		t.Fatalf("unexpected errors: %v", errs)
	}
	if data.Email != "a@b.com" {
		t.Fatalf("email = %q, want a@b.com", data.Email)
	}
	data, _ = Login("  a@b.com ", "x")
	if data.Email != "a@b.com" {
		t.Fatalf("email should be trimmed, got %q", data.Email)
	}
}

func TestFormSingleMissingName(t *testing.T) {
	_, errs := Form(FormInput{Name: "", DOB: "2000-01-01", Gender: "Male", Country: "Finland"})
	if diff := cmp.Diff([]FieldError{Required(FieldName)}, errs); diff != "" {
		t.Fatalf("errors mismatch (-want +got):\n%s", diff)
	}
}

func TestFormCollectsAllFailures(t *testing.T) {
	_, errs := Form(FormInput{})
	want := []FieldError{
		Required(FieldName),
		Required(FieldGender),
		Required(FieldCountry),
		Required(FieldDOB),
	}
	if diff := cmp.Diff(want, errs); diff != "" {
		t.Fatalf("errors mismatch (-want +got):\n%s", diff)
	}
	msgs := Messages(errs)
	if msgs[3] != "Date of birth is required (use the calendar)." {
		t.Fatalf("unexpected dob message %q", msgs[3])
	}
}

func TestFormRejectsMalformedDate(t *testing.T) {
	for _, raw := range []string{"2000-13-01", "2000-02-30", "01/02/2000", "2000-1-01", "20000-01-01", "abcd-ef-gh"} {
		_, errs := Form(FormInput{Name: "Jo", DOB: raw, Gender: "Female", Country: "India"})
		if len(errs) != 1 || errs[0].Kind != InvalidFormat || errs[0].Field != FieldDOB || errs[0].Raw != raw {
			t.Fatalf("Form(dob=%q) errors = %v, want one invalid dob", raw, errs)
		}
	}
}

func TestFormRejectsUnknownChoices(t *testing.T) {
	_, errs := Form(FormInput{Name: "Jo", DOB: "2000-01-01", Gender: "Robot", Country: "Mars"})
	want := []FieldError{Invalid(FieldGender, "Robot"), Invalid(FieldCountry, "Mars")}
	if diff := cmp.Diff(want, errs); diff != "" {
		t.Fatalf("errors mismatch (-want +got):\n%s", diff)
	}
}

func TestFormAcceptsValidInput(t *testing.T) {
	got, errs := Form(FormInput{Name: " Jo ", DOB: "1990-05-01", Gender: "Other", Address: " 1 Main St\n", Country: "India"})
	if len(errs) != 0 {
		t.Fatalf("unexpected errors: %v", errs)
	}
	want := FormData{
		Name:    "Jo",
		DOB:     civil.Date{Year: 1990, Month: 5, Day: 1},
		Gender:  profile.GenderOther,
		Address: "1 Main St",
		Country: profile.CountryIndia,
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("form data mismatch (-want +got):\n%s", diff)
	}
}

func TestDateRoundTripAcrossPickerRange(t *testing.T) {
	first := civil.Date{Year: 1900, Month: 1, Day: 1}
	last := civil.Date{Year: 2050, Month: 12, Day: 31}
	for d := first; !d.After(last); d = d.AddDays(1) {
		text := FormatDate(d)
		parsed, err := ParseDate(text)
		if err != nil {
			t.Fatalf("ParseDate(%q): %v", text, err)
		}
		if parsed != d {
			t.Fatalf("ParseDate(%q) = %v, want %v", text, parsed, d)
		}
		if FormatDate(parsed) != text {
			t.Fatalf("round trip of %q produced %q", text, FormatDate(parsed))
		}
	}
}

func TestByFieldKeepsFirstMessage(t *testing.T) {
	got := ByField([]FieldError{Required(FieldDOB), Invalid(FieldDOB, "x"), Required(FieldName)})
	if got[FieldDOB] != "Date of birth is required (use the calendar)." {
		t.Fatalf("dob message = %q", got[FieldDOB])
	}
	if got[FieldName] != "Name is required." {
		t.Fatalf("name message = %q", got[FieldName])
	}
}
