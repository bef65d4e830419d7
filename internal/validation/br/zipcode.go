package br

import (
	"regexp"

	"localflavor/internal/validation"
)

var zipCodePattern = regexp.MustCompile(`^(\d{2}\.\d{3}|\d{5})(-\d{3}|\d{3})$`)

var ZipCode = validation.Field{
	Name:             "br.zip_code",
	Description:      "Brazilian zip code (CEP) as XXXXX-XXX, XX.XXX-XXX or XXXXXXXX",
	Normalize:        NormalizeZipCode,
	NonStringIsBlank: true,
}

// NormalizeZipCode only checks the format; a matching value is returned as is.
func NormalizeZipCode(value string) (string, error) {
	if !zipCodePattern.MatchString(value) {
		return "", validation.Fail(validation.KindInvalid)
	}
	return value, nil
}
