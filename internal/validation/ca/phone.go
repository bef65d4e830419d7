package ca

import (
	"regexp"

	"localflavor/internal/validation"
)

var (
	phoneNoise   = regexp.MustCompile(`[()]|\s+`)
	phonePattern = regexp.MustCompile(`^(?:1-?)?(\d{3})[-.]?(\d{3})[-.]?(\d{4})$`)
)

var Phone = validation.Field{
	Name:        "ca.phone",
	Description: "Canadian phone number, normalized to XXX-XXX-XXXX",
	Normalize:   NormalizePhone,
}

// NormalizePhone drops an optional leading 1 country prefix and formats the
// number as AAA-PPP-SSSS.
func NormalizePhone(value string) (string, error) {
	m := phonePattern.FindStringSubmatch(phoneNoise.ReplaceAllString(value, ""))
	if m == nil {
		return "", validation.Fail(validation.KindInvalid)
	}
	return m[1] + "-" + m[2] + "-" + m[3], nil
}
