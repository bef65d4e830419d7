package br

import "localflavor/internal/validation"

// State codes are kept lowercase.
var states = []validation.Subdivision{
	{Code: "ac", Name: "Acre"},
	{Code: "al", Name: "Alagoas"},
	{Code: "ap", Name: "Amapá"},
	{Code: "am", Name: "Amazonas"},
	{Code: "ba", Name: "Bahia"},
	{Code: "ce", Name: "Ceará"},
	{Code: "df", Name: "Distrito Federal"},
	{Code: "es", Name: "Espírito Santo"},
	{Code: "go", Name: "Goiás"},
	{Code: "ma", Name: "Maranhão"},
	{Code: "mt", Name: "Mato Grosso"},
	{Code: "ms", Name: "Mato Grosso do Sul"},
	{Code: "mg", Name: "Minas Gerais"},
	{Code: "pa", Name: "Pará"},
	{Code: "pb", Name: "Paraíba"},
	{Code: "pr", Name: "Paraná"},
	{Code: "pe", Name: "Pernambuco"},
	{Code: "pi", Name: "Piauí"},
	{Code: "rj", Name: "Rio de Janeiro"},
	{Code: "rn", Name: "Rio Grande do Norte"},
	{Code: "rs", Name: "Rio Grande do Sul"},
	{Code: "ro", Name: "Rondônia"},
	{Code: "rr", Name: "Roraima"},
	{Code: "sc", Name: "Santa Catarina"},
	{Code: "sp", Name: "São Paulo"},
	{Code: "se", Name: "Sergipe"},
	{Code: "to", Name: "Tocantins"},
}

var stateNames = func() map[string]string {
	m := make(map[string]string, len(states))
	for _, s := range states {
		m[s.Code] = s.Name
	}
	return m
}()

var State = validation.Field{
	Name:             "br.state",
	Description:      "Brazilian state code (lowercase, e.g. sp)",
	Normalize:        NormalizeState,
	NonStringIsBlank: true,
}

// NormalizeState accepts only an exact, lowercase state code.
func NormalizeState(value string) (string, error) {
	if _, ok := stateNames[value]; !ok {
		return "", validation.Fail(validation.KindInvalid)
	}
	return value, nil
}

// StateName returns the full name for a state code.
func StateName(code string) (string, bool) {
	name, ok := stateNames[code]
	return name, ok
}

// States returns a copy of the state list.
func States() []validation.Subdivision {
	return append([]validation.Subdivision(nil), states...)
}
