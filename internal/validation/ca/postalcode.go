// Package ca validates Canadian postal codes, phone numbers, provinces
// and Social Insurance Numbers.
package ca

import (
	"regexp"
	"strings"

	"localflavor/internal/validation"
)

// The first letter excludes D, F, I, O, Q, U, W and Z; the others exclude
// D, F, I, O, Q and U.
var postalCodePattern = regexp.MustCompile(`^([ABCEGHJKLMNPRSTVXY]\d[ABCEGHJKLMNPRSTVWXYZ])\s*(\d[ABCEGHJKLMNPRSTVWXYZ]\d)$`)

var PostalCode = validation.Field{
	Name:        "ca.postal_code",
	Description: "Canadian postal code, normalized to A1A 1A1",
	Normalize:   NormalizePostalCode,
}

func NormalizePostalCode(value string) (string, error) {
	m := postalCodePattern.FindStringSubmatch(strings.ToUpper(strings.TrimSpace(value)))
	if m == nil {
		return "", validation.Fail(validation.KindInvalid)
	}
	return m[1] + " " + m[2], nil
}
