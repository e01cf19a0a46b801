// Package cpf validates Brazilian individual taxpayer numbers (CPF).
//
// A CPF has 11 digits; the last two are check digits computed from the
// preceding ones with descending weights modulo 11.
package cpf

import "strings"

// Length is the number of digits in a CPF.
const Length = 11

// Validation messages returned by Validate.
const (
	MsgWrongLength    = "CPF inválido: deve conter 11 dígitos."
	MsgRepeatedDigits = "CPF inválido: todos os dígitos iguais."
	MsgCheckDigits    = "CPF inválido: dígitos verificadores não conferem."
)

// Clean removes every character that is not an ASCII digit.
func Clean(raw string) string {
	return strings.Map(func(r rune) rune {
		if r < '0' || r > '9' {
			return -1
		}
		return r
	}, raw)
}

// Validate returns an empty string if raw, once cleaned, is a valid CPF, or
// the message describing the first rule it breaks.
func Validate(raw string) string {
	digits := Clean(raw)
	if len(digits) != Length {
		return MsgWrongLength
	}
	if strings.Count(digits, digits[:1]) == Length {
		return MsgRepeatedDigits
	}
	if !validCheckDigits(digits) {
		return MsgCheckDigits
	}
	return ""
}

// IsValid reports whether Validate(raw) passes.
func IsValid(raw string) bool {
	return Validate(raw) == ""
}

// validCheckDigits expects exactly 11 ASCII digits.
func validCheckDigits(digits string) bool {
	return checkDigit(digits[:9]) == int(digits[9]-'0') &&
		checkDigit(digits[:10]) == int(digits[10]-'0')
}

// checkDigit weights the digits from len+1 down to 2.
func checkDigit(digits string) int {
	sum := 0
	weight := len(digits) + 1
	for i := 0; i < len(digits); i++ {
		sum += int(digits[i]-'0') * (weight - i)
	}
	rest := 11 - sum%11
	if rest >= 10 {
		return 0
	}
	return rest
}
