package iban

import (
	"errors"
	"fmt"
)

// ErrInvalidCharacter is returned by CheckDigits when the input holds a byte
// outside 0-9 and A-Z after normalization.
var ErrInvalidCharacter = errors.New("IBAN contains a character outside 0-9 and A-Z")

// Checksum computes the ISO 7064 MOD 97-10 remainder of s after moving its first
// four characters to the end and expanding letters to two digits (A=10 ... Z=35).
// The digit string is reduced one digit at a time so no big integers are needed.
// ok is false when s is shorter than four characters or contains a byte outside
// 0-9 and A-Z; s is expected to be normalized.
func Checksum(s string) (remainder int, ok bool) {
	if len(s) < 4 {
		return 0, false
	}
	rem := 0
	for _, part := range [2]string{s[4:], s[:4]} {
		for i := 0; i < len(part); i++ {
			ch := part[i]
			switch {
			case ch >= '0' && ch <= '9':
				rem = (rem*10 + int(ch-'0')) % 97
			case ch >= 'A' && ch <= 'Z':
				// two decimal digits at once
				rem = (rem*100 + int(ch-'A') + 10) % 97
			default:
				return 0, false
			}
		}
	}
	return rem, true
}

// CheckDigits returns the two check digits that make country+digits+bban a
// valid IBAN for the given country and BBAN. It does not check the BBAN length
// against the country's format.
func CheckDigits(country, bban string) (string, error) {
	country = Normalize(country)
	if _, ok := LookupCountry(country); !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownCountry, country)
	}
	rem, ok := Checksum(country + "00" + Normalize(bban))
	if !ok {
		return "", ErrInvalidCharacter
	}
	return fmt.Sprintf("%02d", 98-rem), nil
}
