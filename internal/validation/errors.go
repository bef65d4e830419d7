package validation

import (
	"errors"
	"fmt"
)

// Kind identifies why a value was rejected. Callers switch on the kind and
// never on message text.
type Kind string

const (
	KindInvalid    Kind = "invalid"
	KindDigitsOnly Kind = "digits_only"
	KindMaxDigits  Kind = "max_digits"
	KindMinDigits  Kind = "min_digits"
	KindMaxLength  Kind = "max_length"
	KindMinLength  Kind = "min_length"
	KindEmpty      Kind = "empty"
)

// Kinds lists every failure kind in a stable order.
var Kinds = []Kind{
	KindInvalid,
	KindDigitsOnly,
	KindMaxDigits,
	KindMinDigits,
	KindMaxLength,
	KindMinLength,
	KindEmpty,
}

// ErrInvalidInput matches every *Error through errors.Is.
var ErrInvalidInput = errors.New("invalid input")

type Error struct {
	Kind  Kind
	Field string
	// Limit is the configured bound for KindMaxLength and KindMinLength.
	Limit int
}

func (e *Error) Error() string {
	if e.Limit > 0 {
		return fmt.Sprintf("%s: %s (limit %d)", e.Field, e.Kind, e.Limit)
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Kind)
}

func (e *Error) Is(target error) bool {
	return target == ErrInvalidInput
}

// Fail builds a failure of the given kind. Normalizers return it without a
// field name; Field.Clean fills the name in.
func Fail(kind Kind) *Error {
	return &Error{Kind: kind}
}

// KindOf returns the failure kind carried by err.
func KindOf(err error) (Kind, bool) {
	var verr *Error
	if errors.As(err, &verr) {
		return verr.Kind, true
	}
	return "", false
}
