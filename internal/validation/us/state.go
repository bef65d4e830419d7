// Package us resolves U.S. state and territory names, abbreviations and
// common misspellings to USPS two-letter codes.
package us

import (
	"maps"

	"localflavor/internal/validation"
)

var states = []validation.Subdivision{
	{Code: "AL", Name: "Alabama"},
	{Code: "AK", Name: "Alaska"},
	{Code: "AS", Name: "American Samoa"},
	{Code: "AZ", Name: "Arizona"},
	{Code: "AR", Name: "Arkansas"},
	{Code: "AA", Name: "Armed Forces Americas"},
	{Code: "AE", Name: "Armed Forces Europe"},
	{Code: "AP", Name: "Armed Forces Pacific"},
	{Code: "CA", Name: "California"},
	{Code: "CO", Name: "Colorado"},
	{Code: "CT", Name: "Connecticut"},
	{Code: "DE", Name: "Delaware"},
	{Code: "DC", Name: "District of Columbia"},
	{Code: "FM", Name: "Federated States of Micronesia"},
	{Code: "FL", Name: "Florida"},
	{Code: "GA", Name: "Georgia"},
	{Code: "GU", Name: "Guam"},
	{Code: "HI", Name: "Hawaii"},
	{Code: "ID", Name: "Idaho"},
	{Code: "IL", Name: "Illinois"},
	{Code: "IN", Name: "Indiana"},
	{Code: "IA", Name: "Iowa"},
	{Code: "KS", Name: "Kansas"},
	{Code: "KY", Name: "Kentucky"},
	{Code: "LA", Name: "Louisiana"},
	{Code: "ME", Name: "Maine"},
	{Code: "MH", Name: "Marshall Islands"},
	{Code: "MD", Name: "Maryland"},
	{Code: "MA", Name: "Massachusetts"},
	{Code: "MI", Name: "Michigan"},
	{Code: "MN", Name: "Minnesota"},
	{Code: "MS", Name: "Mississippi"},
	{Code: "MO", Name: "Missouri"},
	{Code: "MT", Name: "Montana"},
	{Code: "NE", Name: "Nebraska"},
	{Code: "NV", Name: "Nevada"},
	{Code: "NH", Name: "New Hampshire"},
	{Code: "NJ", Name: "New Jersey"},
	{Code: "NM", Name: "New Mexico"},
	{Code: "NY", Name: "New York"},
	{Code: "NC", Name: "North Carolina"},
	{Code: "ND", Name: "North Dakota"},
	{Code: "MP", Name: "Northern Mariana Islands"},
	{Code: "OH", Name: "Ohio"},
	{Code: "OK", Name: "Oklahoma"},
	{Code: "OR", Name: "Oregon"},
	{Code: "PW", Name: "Palau"},
	{Code: "PA", Name: "Pennsylvania"},
	{Code: "PR", Name: "Puerto Rico"},
	{Code: "RI", Name: "Rhode Island"},
	{Code: "SC", Name: "South Carolina"},
	{Code: "SD", Name: "South Dakota"},
	{Code: "TN", Name: "Tennessee"},
	{Code: "TX", Name: "Texas"},
	{Code: "UT", Name: "Utah"},
	{Code: "VT", Name: "Vermont"},
	{Code: "VI", Name: "Virgin Islands"},
	{Code: "VA", Name: "Virginia"},
	{Code: "WA", Name: "Washington"},
	{Code: "WV", Name: "West Virginia"},
	{Code: "WI", Name: "Wisconsin"},
	{Code: "WY", Name: "Wyoming"},
}

var stateAliases = validation.AliasTable{
	"aa":                              "AA",
	"ae":                              "AE",
	"ak":                              "AK",
	"al":                              "AL",
	"ala":                             "AL",
	"alabama":                         "AL",
	"alaska":                          "AK",
	"american samao":                  "AS",
	"american samoa":                  "AS",
	"ap":                              "AP",
	"ar":                              "AR",
	"ariz":                            "AZ",
	"arizona":                         "AZ",
	"ark":                             "AR",
	"arkansas":                        "AR",
	"armed forces americas":           "AA",
	"armed forces europe":             "AE",
	"armed forces pacific":            "AP",
	"as":                              "AS",
	"az":                              "AZ",
	"ca":                              "CA",
	"calf":                            "CA",
	"calif":                           "CA",
	"california":                      "CA",
	"co":                              "CO",
	"colo":                            "CO",
	"colorado":                        "CO",
	"conn":                            "CT",
	"connecticut":                     "CT",
	"ct":                              "CT",
	"dc":                              "DC",
	"d.c.":                            "DC",
	"de":                              "DE",
	"del":                             "DE",
	"delaware":                        "DE",
	"deleware":                        "DE",
	"district of columbia":            "DC",
	"federated states of micronesia":  "FM",
	"fl":                              "FL",
	"fla":                             "FL",
	"florida":                         "FL",
	"fm":                              "FM",
	"ga":                              "GA",
	"georgia":                         "GA",
	"gu":                              "GU",
	"guam":                            "GU",
	"hawaii":                          "HI",
	"hi":                              "HI",
	"ia":                              "IA",
	"id":                              "ID",
	"idaho":                           "ID",
	"il":                              "IL",
	"ill":                             "IL",
	"illinois":                        "IL",
	"in":                              "IN",
	"ind":                             "IN",
	"indiana":                         "IN",
	"iowa":                            "IA",
	"kan":                             "KS",
	"kans":                            "KS",
	"kansas":                          "KS",
	"kentucky":                        "KY",
	"ks":                              "KS",
	"ky":                              "KY",
	"la":                              "LA",
	"louisiana":                       "LA",
	"ma":                              "MA",
	"maine":                           "ME",
	"marianas islands":                "MP",
	"marianas islands of the pacific": "MP",
	"marinas islands of the pacific":  "MP",
	"marshall islands":                "MH",
	"maryland":                        "MD",
	"mass":                            "MA",
	"massachusetts":                   "MA",
	"massachussetts":                  "MA",
	"md":                              "MD",
	"me":                              "ME",
	"mh":                              "MH",
	"mi":                              "MI",
	"mich":                            "MI",
	"michigan":                        "MI",
	"micronesia":                      "FM",
	"minn":                            "MN",
	"minnesota":                       "MN",
	"miss":                            "MS",
	"mississippi":                     "MS",
	"missouri":                        "MO",
	"mn":                              "MN",
	"mo":                              "MO",
	"mont":                            "MT",
	"montana":                         "MT",
	"mp":                              "MP",
	"ms":                              "MS",
	"mt":                              "MT",
	"n d":                             "ND",
	"n dak":                           "ND",
	"n h":                             "NH",
	"n j":                             "NJ",
	"n m":                             "NM",
	"n mex":                           "NM",
	"nc":                              "NC",
	"nd":                              "ND",
	"ne":                              "NE",
	"neb":                             "NE",
	"nebr":                            "NE",
	"nebraska":                        "NE",
	"nev":                             "NV",
	"nevada":                          "NV",
	"new hampshire":                   "NH",
	"new jersey":                      "NJ",
	"new mexico":                      "NM",
	"new york":                        "NY",
	"nh":                              "NH",
	"nj":                              "NJ",
	"nm":                              "NM",
	"nmex":                            "NM",
	"north carolina":                  "NC",
	"north dakota":                    "ND",
	"northern mariana islands":        "MP",
	"nv":                              "NV",
	"ny":                              "NY",
	"oh":                              "OH",
	"ohio":                            "OH",
	"ok":                              "OK",
	"okla":                            "OK",
	"oklahoma":                        "OK",
	"or":                              "OR",
	"ore":                             "OR",
	"oreg":                            "OR",
	"oregon":                          "OR",
	"pa":                              "PA",
	"palau":                           "PW",
	"penn":                            "PA",
	"pennsylvania":                    "PA",
	"pr":                              "PR",
	"puerto rico":                     "PR",
	"pw":                              "PW",
	"rhode island":                    "RI",
	"ri":                              "RI",
	"s dak":                           "SD",
	"sc":                              "SC",
	"sd":                              "SD",
	"sdak":                            "SD",
	"south carolina":                  "SC",
	"south dakota":                    "SD",
	"tenn":                            "TN",
	"tennessee":                       "TN",
	"territory of hawaii":             "HI",
	"tex":                             "TX",
	"texas":                           "TX",
	"tn":                              "TN",
	"tx":                              "TX",
	"us virgin islands":               "VI",
	"usvi":                            "VI",
	"ut":                              "UT",
	"utah":                            "UT",
	"va":                              "VA",
	"vermont":                         "VT",
	"vi":                              "VI",
	"viginia":                         "VA",
	"virgin islands":                  "VI",
	"virgina":                         "VA",
	"virginia":                        "VA",
	"vt":                              "VT",
	"wa":                              "WA",
	"wash":                            "WA",
	"washington":                      "WA",
	"west virginia":                   "WV",
	"wi":                              "WI",
	"wis":                             "WI",
	"wisc":                            "WI",
	"wisconsin":                       "WI",
	"wv":                              "WV",
	"wva":                             "WV",
	"wy":                              "WY",
	"wyo":                             "WY",
	"wyoming":                         "WY",
}

var State = validation.Field{
	Name:        "us.state",
	Description: "U.S. state or territory name or abbreviation, normalized to its USPS code",
	Normalize:   stateAliases.Normalizer(),
}

// NormalizeState resolves a state or territory name, abbreviation or known
// misspelling to its two-letter code.
func NormalizeState(value string) (string, error) {
	return State.Normalize(value)
}

// StateAliases returns a copy of the alias table.
func StateAliases() validation.AliasTable {
	return maps.Clone(stateAliases)
}

// States returns a copy of the state and territory list.
func States() []validation.Subdivision {
	return append([]validation.Subdivision(nil), states...)
}
