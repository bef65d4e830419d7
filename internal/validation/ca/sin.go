package ca

import (
	"regexp"

	"localflavor/internal/checksum"
	"localflavor/internal/validation"
)

var sinPattern = regexp.MustCompile(`^(\d{3})-(\d{3})-(\d{3})$`)

var SIN = validation.Field{
	Name:        "ca.sin",
	Description: "Canadian Social Insurance Number as XXX-XXX-XXX",
	Normalize:   NormalizeSIN,
}

// NormalizeSIN requires the XXX-XXX-XXX layout with literal dashes and a
// valid Luhn check digit.
func NormalizeSIN(value string) (string, error) {
	m := sinPattern.FindStringSubmatch(value)
	if m == nil {
		return "", validation.Fail(validation.KindInvalid)
	}
	if !checksum.LuhnDigits(m[1] + m[2] + m[3]) {
		return "", validation.Fail(validation.KindInvalid)
	}
	return m[1] + "-" + m[2] + "-" + m[3], nil
}
