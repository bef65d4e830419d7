// Package br validates Brazilian identifiers: CPF and CNPJ taxpayer
// numbers, CEP zip codes, phone numbers and state codes.
package br

import (
	"strings"

	"localflavor/internal/checksum"
	"localflavor/internal/validation"
)

var (
	cpfFirstWeights  = []int{10, 9, 8, 7, 6, 5, 4, 3, 2}
	cpfSecondWeights = []int{11, 10, 9, 8, 7, 6, 5, 4, 3, 2}

	cnpjFirstWeights  = []int{5, 4, 3, 2, 9, 8, 7, 6, 5, 4, 3, 2}
	cnpjSecondWeights = []int{6, 5, 4, 3, 2, 9, 8, 7, 6, 5, 4, 3, 2}
)

var CPF = validation.Field{
	Name:             "br.cpf",
	Description:      "Brazilian individual taxpayer number (CPF)",
	Normalize:        NormalizeCPF,
	NonStringIsBlank: true,
}

var CNPJ = validation.Field{
	Name:             "br.cnpj",
	Description:      "Brazilian company taxpayer number (CNPJ)",
	Normalize:        NormalizeCNPJ,
	NonStringIsBlank: true,
}

// NormalizeCPF checks the two CPF check digits. Dots and dashes are
// ignored. On success the input is returned unchanged, punctuation
// included.
func NormalizeCPF(value string) (string, error) {
	if err := checkTaxID(value, ".-", 11, cpfFirstWeights, cpfSecondWeights); err != nil {
		return "", err
	}
	return value, nil
}

// NormalizeCNPJ checks the two CNPJ check digits. Dots, dashes and slashes
// are ignored. On success the input is returned unchanged.
func NormalizeCNPJ(value string) (string, error) {
	if err := checkTaxID(value, ".-/", 14, cnpjFirstWeights, cnpjSecondWeights); err != nil {
		return "", err
	}
	return value, nil
}

func checkTaxID(value string, separators string, size int, first []int, second []int) error {
	stripped := value
	if !isDigits(value) {
		stripped = strings.Map(func(r rune) rune {
			if strings.ContainsRune(separators, r) {
				return -1
			}
			return r
		}, value)
	}
	if !isDigits(stripped) {
		return validation.Fail(validation.KindDigitsOnly)
	}
	if len(stripped) != size {
		return validation.Fail(validation.KindMaxDigits)
	}

	digits := make([]int, size)
	for i := range size {
		digits[i] = int(stripped[i] - '0')
	}
	want := stripped[size-2:]

	digits[size-2] = checksum.Mod11(digits, first)
	digits[size-1] = checksum.Mod11(digits, second)

	if want[0] != byte('0'+digits[size-2]) || want[1] != byte('0'+digits[size-1]) {
		return validation.Fail(validation.KindInvalid)
	}
	return nil
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
