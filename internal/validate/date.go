package validate

import (
	"fmt"

	"cloud.google.com/go/civil"
)

// DateLayout is the interchange format between picker, field and validator.
const DateLayout = "2006-01-02"

// ParseDate accepts exactly YYYY-MM-DD with a real calendar day.
func ParseDate(s string) (civil.Date, error) {
	if len(s) != len(DateLayout) || s[4] != '-' || s[7] != '-' {
		return civil.Date{}, fmt.Errorf("validate: date %q is not YYYY-MM-DD", s)
	}
	for i := 0; i < len(s); i++ {
		if i == 4 || i == 7 {
			continue
		}
		if s[i] < '0' || s[i] > '9' {
			return civil.Date{}, fmt.Errorf("validate: date %q is not YYYY-MM-DD", s)
		}
	}
	d, err := civil.ParseDate(s)
	if err != nil {
		return civil.Date{}, fmt.Errorf("validate: parse date %q: %w", s, err)
	}
	return d, nil
}

// FormatDate renders d as YYYY-MM-DD.
func FormatDate(d civil.Date) string {
	return d.String()
}
