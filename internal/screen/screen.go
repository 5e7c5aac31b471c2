// Package screen describes what each route shows. Descriptions are plain data
// derived from the route and the profile record; rendering them is the job of
// the presentation layer.
package screen

import (
	"fmt"

	"github.com/kingrea/profileflow/internal/profile"
	"github.com/kingrea/profileflow/internal/route"
	"github.com/kingrea/profileflow/internal/validate"
)

// FieldKind tells the presentation layer which control to build.
type FieldKind int

const (
	FieldText FieldKind = iota
	FieldPassword
	FieldMultiline
	FieldDate
	FieldChoice
)

// ActionID names a button on a screen.
type ActionID string

const (
	ActionLogin  ActionID = "login"
	ActionSubmit ActionID = "submit"
	ActionBack   ActionID = "back"
	ActionLogout ActionID = "logout"
)

// Field is one input control with its prefilled value.
type Field struct {
	Key     string
	Label   string
	Kind    FieldKind
	Value   string
	Options []string
}

// Action is one button.
type Action struct {
	ID    ActionID
	Label string
}

// Description is everything needed to draw a screen.
type Description struct {
	Route   route.Route
	Title   string
	Heading string
	// Back is set when the app bar offers a back arrow.
	Back    *route.Route
	Fields  []Field
	Lines   []string
	Actions []Action
	Hint    string
}

// Field looks up a field by key.
func (d Description) Field(key string) (Field, bool) {
	for _, f := range d.Fields {
		if f.Key == key {
			return f, true
		}
	}
	return Field{}, false
}

// HasAction reports whether the screen offers the given action.
func (d Description) HasAction(id ActionID) bool {
	for _, a := range d.Actions {
		if a.ID == id {
			return true
		}
	}
	return false
}

// Describe builds the description for r from rec. It has no side effects.
func Describe(r route.Route, rec profile.Record) Description {
	switch r.Kind() {
	case route.KindLogin:
		return describeLogin(rec)
	case route.KindForm:
		return describeForm(rec)
	case route.KindDetails:
		return describeDetails(rec)
	default:
		return describeNotFound(r)
	}
}

func describeLogin(rec profile.Record) Description {
	email := ""
	if rec.Email != nil {
		email = *rec.Email
	}
	return Description{
		Route:   route.Login,
		Title:   "Login",
		Heading: "Please login",
		Fields: []Field{
			{Key: validate.FieldEmail, Label: "Email", Kind: FieldText, Value: email},
			{Key: validate.FieldPassword, Label: "Password", Kind: FieldPassword},
		},
		Actions: []Action{{ID: ActionLogin, Label: "Login"}},
		Hint:    "Demo: enter any non-empty email and password to proceed.",
	}
}

func describeForm(rec profile.Record) Description {
	dob := ""
	if rec.DateOfBirth != nil {
		dob = validate.FormatDate(*rec.DateOfBirth)
	}
	gender := ""
	if rec.Gender != nil {
		gender = rec.Gender.String()
	}
	country := ""
	if rec.Country != nil {
		country = rec.Country.String()
	}
	return Description{
		Route:   route.Form,
		Title:   "Form",
		Heading: "Please fill your details",
		Fields: []Field{
			{Key: validate.FieldName, Label: "Full name", Kind: FieldText, Value: rec.FullName},
			{Key: validate.FieldDOB, Label: "Date of birth", Kind: FieldDate, Value: dob},
			{Key: validate.FieldGender, Label: "Gender", Kind: FieldChoice, Value: gender, Options: genderOptions()},
			{Key: validate.FieldAddress, Label: "Address", Kind: FieldMultiline, Value: rec.Address},
			{Key: validate.FieldCountry, Label: "Country", Kind: FieldChoice, Value: country, Options: countryOptions()},
		},
		Actions: []Action{
			{ID: ActionSubmit, Label: "Submit"},
			{ID: ActionLogout, Label: "Logout"},
		},
	}
}

func describeDetails(rec profile.Record) Description {
	dob := "-"
	if rec.DateOfBirth != nil {
		dob = validate.FormatDate(*rec.DateOfBirth)
	}
	gender := "-"
	if rec.Gender != nil {
		gender = rec.Gender.String()
	}
	country := "-"
	if rec.Country != nil {
		country = rec.Country.String()
	}
	back := route.Login
	return Description{
		Route: route.Details,
		Title: "Details",
		Back:  &back,
		Lines: []string{
			"Name: " + orDash(rec.FullName),
			"Date of birth: " + dob,
			"Gender: " + gender,
			"Address: " + orDash(rec.Address),
			"Country: " + country,
		},
		Actions: []Action{
			{ID: ActionBack, Label: "Go back"},
			{ID: ActionLogout, Label: "Logout"},
		},
	}
}

func describeNotFound(r route.Route) Description {
	back := route.Login
	return Description{
		Route:   r,
		Title:   "Not found",
		Back:    &back,
		Lines:   []string{fmt.Sprintf("Route %s not found", r.Path())},
		Actions: []Action{{ID: ActionBack, Label: "Back"}},
	}
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

func genderOptions() []string {
	out := make([]string, len(profile.Genders))
	for i, g := range profile.Genders {
		out[i] = g.String()
	}
	return out
}

func countryOptions() []string {
	out := make([]string, len(profile.Countries))
	for i, c := range profile.Countries {
		out[i] = c.String()
	}
	return out
}
