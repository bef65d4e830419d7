package validation

import "strings"

// AliasTable maps lowercase alias spellings to a canonical code. Tables are
// built once and never written afterwards.
type AliasTable map[string]string

// Resolve trims and lowercases value and returns the canonical code for an
// exact key match.
func (t AliasTable) Resolve(value string) (string, bool) {
	code, ok := t[strings.ToLower(strings.TrimSpace(value))]
	return code, ok
}

// Normalizer adapts the table to the Normalizer signature.
func (t AliasTable) Normalizer() Normalizer {
	return func(value string) (string, error) {
		code, ok := t.Resolve(value)
		if !ok {
			return "", Fail(KindInvalid)
		}
		return code, nil
	}
}

// Subdivision is a canonical (code, name) pair for a state or province.
type Subdivision struct {
	Code string `json:"code"`
	Name string `json:"name"`
}
