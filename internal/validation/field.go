// Package validation holds the pieces shared by the country-specific
// validators: failure kinds, the blank and length policy, and the alias
// table used by the subdivision resolvers.
package validation

import "unicode/utf8"

// Normalizer turns a non-blank raw string into its canonical form or
// rejects it with an *Error.
type Normalizer func(value string) (string, error)

// Options is the per-field policy a caller applies around a normalizer.
type Options struct {
	AllowBlank bool
	// MinLength and MaxLength bound the raw input in characters. Zero means
	// unbounded.
	MinLength int
	MaxLength int
}

// Field binds a normalizer to its registry name.
type Field struct {
	Name        string
	Description string
	Normalize   Normalizer
	// NonStringIsBlank makes Clean treat numbers, booleans and other
	// non-string input like a blank value instead of rejecting it.
	NonStringIsBlank bool
}

// Clean runs the blank policy, the length bounds and then the normalizer.
// raw may be nil, a string or a *string; any other type is rejected as
// invalid unless NonStringIsBlank is set.
func (f Field) Clean(raw any, opts Options) (string, error) {
	value, blank, ok := asString(raw)
	if !ok {
		if !f.NonStringIsBlank {
			return "", f.fail(&Error{Kind: KindInvalid})
		}
		blank = true
	}
	if blank {
		if opts.AllowBlank {
			return "", nil
		}
		return "", f.fail(&Error{Kind: KindEmpty})
	}

	if opts.MaxLength > 0 && utf8.RuneCountInString(value) > opts.MaxLength {
		return "", f.fail(&Error{Kind: KindMaxLength, Limit: opts.MaxLength})
	}
	if opts.MinLength > 0 && utf8.RuneCountInString(value) < opts.MinLength {
		return "", f.fail(&Error{Kind: KindMinLength, Limit: opts.MinLength})
	}

	out, err := f.Normalize(value)
	if err != nil {
		return "", f.fail(err)
	}
	return out, nil
}

func (f Field) fail(err error) error {
	if verr, ok := err.(*Error); ok && verr.Field == "" {
		verr.Field = f.Name
	}
	return err
}

func asString(raw any) (value string, blank bool, ok bool) {
	switch v := raw.(type) {
	case nil:
		return "", true, true
	case string:
		return v, v == "", true
	case *string:
		if v == nil {
			return "", true, true
		}
		return *v, *v == "", true
	default:
		return "", false, false
	}
}
