package ca

import (
	"maps"

	"localflavor/internal/validation"
)

var provinces = []validation.Subdivision{
	{Code: "AB", Name: "Alberta"},
	{Code: "BC", Name: "British Columbia"},
	{Code: "MB", Name: "Manitoba"},
	{Code: "NB", Name: "New Brunswick"},
	{Code: "NL", Name: "Newfoundland and Labrador"},
	{Code: "NT", Name: "Northwest Territories"},
	{Code: "NS", Name: "Nova Scotia"},
	{Code: "NU", Name: "Nunavut"},
	{Code: "ON", Name: "Ontario"},
	{Code: "PE", Name: "Prince Edward Island"},
	{Code: "QC", Name: "Quebec"},
	{Code: "SK", Name: "Saskatchewan"},
	{Code: "YT", Name: "Yukon"},
}

var provinceAliases = validation.AliasTable{
	"ab":                        "AB",
	"alberta":                   "AB",
	"bc":                        "BC",
	"b.c.":                      "BC",
	"british columbia":          "BC",
	"mb":                        "MB",
	"manitoba":                  "MB",
	"nb":                        "NB",
	"new brunswick":             "NB",
	"nf":                        "NL",
	"nl":                        "NL",
	"newfoundland":              "NL",
	"newfoundland and labrador": "NL",
	"nt":                        "NT",
	"northwest territories":     "NT",
	"ns":                        "NS",
	"nova scotia":               "NS",
	"nu":                        "NU",
	"nunavut":                   "NU",
	"on":                        "ON",
	"ontario":                   "ON",
	"pe":                        "PE",
	"pei":                       "PE",
	"p.e.i.":                    "PE",
	"prince edward island":      "PE",
	"qc":                        "QC",
	"quebec":                    "QC",
	"québec":                    "QC",
	"sk":                        "SK",
	"saskatchewan":              "SK",
	"yk":                        "YT",
	"yt":                        "YT",
	"yukon":                     "YT",
	"yukon territory":           "YT",
}

var Province = validation.Field{
	Name:        "ca.province",
	Description: "Canadian province or territory name or abbreviation, normalized to its two-letter code",
	Normalize:   provinceAliases.Normalizer(),
}

// NormalizeProvince resolves a province name or abbreviation to its
// two-letter code.
func NormalizeProvince(value string) (string, error) {
	return Province.Normalize(value)
}

// ProvinceAliases returns a copy of the alias table.
func ProvinceAliases() validation.AliasTable {
	return maps.Clone(provinceAliases)
}

// Provinces returns a copy of the province and territory list.
func Provinces() []validation.Subdivision {
	return append([]validation.Subdivision(nil), provinces...)
}
