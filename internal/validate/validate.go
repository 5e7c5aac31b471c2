// Package validate checks raw screen input before the controller accepts a
// transition. Every function here is pure and returns problems as values.
package validate

import (
	"fmt"
	"strings"

	"cloud.google.com/go/civil"

	"github.com/kingrea/profileflow/internal/profile"
)

// Kind classifies an input problem.
type Kind int

const (
	FieldRequired Kind = iota
	InvalidFormat
)

func (k Kind) String() string {
	switch k {
	case FieldRequired:
		return "required"
	case InvalidFormat:
		return "invalid_format"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Field names used in FieldError.Field.
const (
	FieldEmail    = "email"
	FieldPassword = "password"
	FieldName     = "name"
	FieldDOB      = "dob"
	FieldGender   = "gender"
	FieldAddress  = "address"
	FieldCountry  = "country"
)

// LoginBanner is the consolidated message shown when login input is rejected.
const LoginBanner = "Please enter email and password."

// FieldError describes one rejected field. Raw is only set for InvalidFormat.
type FieldError struct {
	Kind  Kind
	Field string
	Raw   string
}

// Required builds a FieldRequired error.
func Required(field string) FieldError {
	return FieldError{Kind: FieldRequired, Field: field}
}

// Invalid builds an InvalidFormat error.
func Invalid(field, raw string) FieldError {
	return FieldError{Kind: InvalidFormat, Field: field, Raw: raw}
}

func (e FieldError) Error() string {
	if e.Kind == InvalidFormat {
		return fmt.Sprintf("%s: invalid format %q", e.Field, e.Raw)
	}
	return fmt.Sprintf("%s: required", e.Field)
}

// Message is the user-facing text for the error.
func (e FieldError) Message() string {
	switch e.Field {
	case FieldEmail:
		if e.Kind == FieldRequired {
			return "Email is required"
		}
	case FieldPassword:
		if e.Kind == FieldRequired {
			return "Password is required"
		}
	case FieldName:
		if e.Kind == FieldRequired {
			return "Name is required."
		}
	case FieldGender:
		if e.Kind == FieldRequired {
			return "Gender is required."
		}
		return fmt.Sprintf("Gender %q is not one of the offered options.", e.Raw)
	case FieldCountry:
		if e.Kind == FieldRequired {
			return "Country is required."
		}
		return fmt.Sprintf("Country %q is not one of the offered options.", e.Raw)
	case FieldDOB:
		if e.Kind == FieldRequired {
			return "Date of birth is required (use the calendar)."
		}
		return "Selected date format invalid. Use the calendar to re-select."
	}
	if e.Kind == FieldRequired {
		return fmt.Sprintf("%s is required.", e.Field)
	}
	return fmt.Sprintf("%s has an invalid value.", e.Field)
}

// Messages flattens errors into user-facing lines, in order.
func Messages(errs []FieldError) []string {
	out := make([]string, 0, len(errs))
	for _, e := range errs {
		out = append(out, e.Message())
	}
	return out
}

// ByField returns the first message for each field, for inline display.
func ByField(errs []FieldError) map[string]string {
	out := make(map[string]string, len(errs))
	for _, e := range errs {
		if _, ok := out[e.Field]; ok {
			continue
		}
		out[e.Field] = e.Message()
	}
	return out
}

// LoginData is accepted login input.
type LoginData struct {
	Email string
}

// Login accepts any non-blank email and password.
func Login(email, password string) (LoginData, []FieldError) {
	var errs []FieldError
	email = strings.TrimSpace(email)
	if email == "" {
		errs = append(errs, Required(FieldEmail))
	}
	if strings.TrimSpace(password) == "" {
		errs = append(errs, Required(FieldPassword))
	}
	if len(errs) > 0 {
		return LoginData{}, errs
	}
	return LoginData{Email: email}, nil
}

// FormInput is the raw content of the details form. Empty Gender or Country
// means nothing was selected.
type FormInput struct {
	Name    string
	DOB     string
	Gender  string
	Address string
	Country string
}

// FormData is accepted form input.
type FormData struct {
	Name    string
	DOB     civil.Date
	Gender  profile.Gender
	Address string
	Country profile.Country
}

// Form checks every field and reports all problems together.
func Form(in FormInput) (FormData, []FieldError) {
	var (
		out  FormData
		errs []FieldError
	)

	out.Name = strings.TrimSpace(in.Name)
	if out.Name == "" {
		errs = append(errs, Required(FieldName))
	}

	if raw := strings.TrimSpace(in.Gender); raw == "" {
		errs = append(errs, Required(FieldGender))
	} else if g, err := profile.ParseGender(raw); err != nil {
		errs = append(errs, Invalid(FieldGender, in.Gender))
	} else {
		out.Gender = g
	}

	if raw := strings.TrimSpace(in.Country); raw == "" {
		errs = append(errs, Required(FieldCountry))
	} else if c, err := profile.ParseCountry(raw); err != nil {
		errs = append(errs, Invalid(FieldCountry, in.Country))
	} else {
		out.Country = c
	}

	if raw := strings.TrimSpace(in.DOB); raw == "" {
		errs = append(errs, Required(FieldDOB))
	} else if d, err := ParseDate(raw); err != nil {
		errs = append(errs, Invalid(FieldDOB, in.DOB))
	} else {
		out.DOB = d
	}

	out.Address = strings.TrimSpace(in.Address)

	if len(errs) > 0 {
		return FormData{}, errs
	}
	return out, nil
}
