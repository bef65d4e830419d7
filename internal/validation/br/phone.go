package br

import (
	"regexp"

	"localflavor/internal/validation"
)

var (
	phoneNoise   = regexp.MustCompile(`[()]|\s+`)
	phonePattern = regexp.MustCompile(`^(\d{2})[-.]?(\d{4,5})[-.]?(\d{4})$`)
)

var Phone = validation.Field{
	Name:             "br.phone",
	Description:      "Brazilian phone number, normalized to XX-XXXX-XXXX or XX-XXXXX-XXXX",
	Normalize:        NormalizePhone,
	NonStringIsBlank: true,
}

// NormalizePhone accepts an area code with or without parentheses and an
// eight or nine digit number, and formats it as AA-PPPP-SSSS or
// AA-PPPPP-SSSS.
func NormalizePhone(value string) (string, error) {
	m := phonePattern.FindStringSubmatch(phoneNoise.ReplaceAllString(value, ""))
	if m == nil {
		return "", validation.Fail(validation.KindInvalid)
	}
	return m[1] + "-" + m[2] + "-" + m[3], nil
}
