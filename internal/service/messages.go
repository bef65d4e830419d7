package service

import (
	"strconv"
	"strings"

	"localflavor/internal/validation"
)

var defaultMessages = map[validation.Kind]string{
	validation.KindInvalid:    "Enter a valid value.",
	validation.KindEmpty:      "This field may not be blank.",
	validation.KindDigitsOnly: "This field requires only numbers.",
	validation.KindMaxDigits:  "This field has too many digits.",
	validation.KindMinDigits:  "This field has too few digits.",
	validation.KindMaxLength:  "Ensure this field has no more than {max_length} characters.",
	validation.KindMinLength:  "Ensure this field has at least {min_length} characters.",
}

const (
	brPhoneMessage = "Phone numbers must be in either of the following formats: XX-XXXX-XXXX or XX-XXXXX-XXXX."
	caSINMessage   = "Enter a valid Canadian Social Insurance number in XXX-XXX-XXX format."
	usStateMessage = "Enter a U.S. state or territory."
)

// Blank values rejected by fields without a dedicated message reuse the
// invalid message, matching the reference fields.
var fieldMessages = map[string]map[validation.Kind]string{
	"br.cpf": {
		validation.KindInvalid:   "Invalid CPF number.",
		validation.KindEmpty:     "Invalid CPF number.",
		validation.KindMaxDigits: "This field requires at most 11 digits or 14 characters.",
	},
	"br.cnpj": {
		validation.KindInvalid:   "Invalid CNPJ number.",
		validation.KindEmpty:     "Invalid CNPJ number.",
		validation.KindMaxDigits: "This field requires at least 14 digits",
	},
	"br.zip_code": {
		validation.KindInvalid: "Enter a zip code in the format XXXXX-XXX, XX.XXX-XXX or XXXXXXXX.",
		validation.KindEmpty:   "Enter a zip code in the format XXXXX-XXX, XX.XXX-XXX or XXXXXXXX.",
	},
	"br.phone": {
		validation.KindInvalid: brPhoneMessage,
		validation.KindEmpty:   brPhoneMessage,
	},
	"br.state": {
		validation.KindInvalid: "You can not insert a invalid state.",
		validation.KindEmpty:   "You can not insert a blank state.",
	},
	"ca.postal_code": {
		validation.KindInvalid: "Enter a postal code in the format XXX XXX.",
	},
	"ca.phone": {
		validation.KindInvalid: "Phone numbers must be in XXX-XXX-XXXX format.",
	},
	"ca.province": {
		validation.KindInvalid: "Enter a Canadian province or territory.",
	},
	"ca.sin": {
		validation.KindInvalid: caSINMessage,
		validation.KindEmpty:   caSINMessage,
	},
	"us.state": {
		validation.KindInvalid: usStateMessage,
		validation.KindEmpty:   usStateMessage,
	},
}

// Message returns the English message for a failure kind of a validator.
// limit fills the {max_length} and {min_length} placeholders.
func Message(validator string, kind validation.Kind, limit int) string {
	msg, ok := fieldMessages[validator][kind]
	if !ok {
		msg = defaultMessages[kind]
	}
	if msg == "" {
		msg = defaultMessages[validation.KindInvalid]
	}
	replacer := strings.NewReplacer(
		"{max_length}", strconv.Itoa(limit),
		"{min_length}", strconv.Itoa(limit),
	)
	return replacer.Replace(msg)
}
