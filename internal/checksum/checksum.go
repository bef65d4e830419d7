// Package checksum implements the check-digit algorithms used by the
// identifier validators.
package checksum

import "strconv"

// Luhn reports whether value passes the mod-10 Luhn check. value may be any
// integer type or a string of ASCII digits; anything else is reported as
// invalid.
func Luhn(value any) bool {
	switch v := value.(type) {
	case string:
		return LuhnDigits(v)
	case int:
		return luhnSigned(int64(v))
	case int8:
		return luhnSigned(int64(v))
	case int16:
		return luhnSigned(int64(v))
	case int32:
		return luhnSigned(int64(v))
	case int64:
		return luhnSigned(v)
	case uint:
		return LuhnDigits(strconv.FormatUint(uint64(v), 10))
	case uint8:
		return LuhnDigits(strconv.FormatUint(uint64(v), 10))
	case uint16:
		return LuhnDigits(strconv.FormatUint(uint64(v), 10))
	case uint32:
		return LuhnDigits(strconv.FormatUint(uint64(v), 10))
	case uint64:
		return LuhnDigits(strconv.FormatUint(v, 10))
	default:
		return false
	}
}

func luhnSigned(v int64) bool {
	if v < 0 {
		return false
	}
	return LuhnDigits(strconv.FormatInt(v, 10))
}

// LuhnDigits runs the Luhn check over a string of ASCII digits, most
// significant first.
func LuhnDigits(digits string) bool {
	if digits == "" {
		return false
	}

	sum := 0
	double := false
	for i := len(digits) - 1; i >= 0; i-- {
		c := digits[i]
		if c < '0' || c > '9' {
			return false
		}
		d := int(c - '0')
		if double {
			d *= 2
			if d > 9 {
				d -= 9
			}
		}
		sum += d
		double = !double
	}
	return sum%10 == 0
}

// Mod11 computes a mod-11 check digit: the weighted sum of digits modulo 11
// is mapped to 11-r, or 0 when r is below 2. Only the first len(weights)
// digits take part.
func Mod11(digits []int, weights []int) int {
	sum := 0
	for i, w := range weights {
		sum += digits[i] * w
	}
	r := sum % 11
	if r >= 2 {
		return 11 - r
	}
	return 0
}
