package profile

import (
	"fmt"
	"strings"
)

// Gender is the closed set of values offered on the form screen.
type Gender string

const (
	GenderMale   Gender = "Male"
	GenderFemale Gender = "Female"
	GenderOther  Gender = "Other"
)

// Genders lists the options in display order.
var Genders = []Gender{GenderMale, GenderFemale, GenderOther}

// ParseGender matches raw input case-insensitively against the known values.
func ParseGender(raw string) (Gender, error) {
	for _, g := range Genders {
		if strings.EqualFold(strings.TrimSpace(raw), string(g)) {
			return g, nil
		}
	}
	return "", fmt.Errorf("profile: unknown gender %q", raw)
}

func (g Gender) String() string { return string(g) }

// Country is the closed set of countries offered on the form screen.
type Country string

const (
	CountryFinland    Country = "Finland"
	CountryBangladesh Country = "Bangladesh"
	CountryIndia      Country = "India"
	CountryOther      Country = "Other"
)

// Countries lists the options in display order.
var Countries = []Country{CountryFinland, CountryBangladesh, CountryIndia, CountryOther}

// ParseCountry matches raw input case-insensitively against the known values.
func ParseCountry(raw string) (Country, error) {
	for _, c := range Countries {
		if strings.EqualFold(strings.TrimSpace(raw), string(c)) {
			return c, nil
		}
	}
	return "", fmt.Errorf("profile: unknown country %q", raw)
}

func (c Country) String() string { return string(c) }

// ClearPolicy decides what logout erases besides the email.
type ClearPolicy string

const (
	// ClearRetain keeps form fields as prefill for the next login.
	ClearRetain ClearPolicy = "retain"
	// ClearErase wipes every field.
	ClearErase ClearPolicy = "erase"
)

// ParseClearPolicy accepts "retain" or "erase"; empty means retain.
func ParseClearPolicy(raw string) (ClearPolicy, error) {
	switch ClearPolicy(strings.ToLower(strings.TrimSpace(raw))) {
	case "", ClearRetain:
		return ClearRetain, nil
	case ClearErase:
		return ClearErase, nil
	default:
		return "", fmt.Errorf("profile: logout policy must be 'retain' or 'erase', got %q", raw)
	}
}
