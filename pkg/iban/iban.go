package iban

import (
	"fmt"
	"strings"
)

// IBAN is a validated International Bank Account Number.
//
// Invariants:
//   - value is normalized (uppercase, no spaces)
//   - the country is registered and len(value) equals its format length
//   - the MOD 97-10 checksum of value is 1
//
// The zero value holds no number; it is never returned with a nil error.
type IBAN struct {
	value   string
	country string
}

// New normalizes input and validates it. Failures wrap ErrUnknownCountry,
// ErrLengthMismatch or ErrInvalidChecksum.
func New(input string) (IBAN, error) {
	value := Normalize(input)
	if len(value) < 2 {
		return IBAN{}, fmt.Errorf("%w: input shorter than a country code", ErrUnknownCountry)
	}

	code := value[:2]
	country, ok := LookupCountry(code)
	if !ok {
		return IBAN{}, fmt.Errorf("%w: %q", ErrUnknownCountry, code)
	}
	if len(value) != country.Length() {
		return IBAN{}, fmt.Errorf("%w: %s expects %d characters, got %d",
			ErrLengthMismatch, code, country.Length(), len(value))
	}
	if rem, ok := Checksum(value); !ok || rem != 1 {
		return IBAN{}, fmt.Errorf("%w: %s", ErrInvalidChecksum, code)
	}

	return IBAN{value: value, country: code}, nil
}

// Must is like New but panics on error.
// Use only in tests or when the value is known to be valid.
func Must(input string) IBAN {
	v, err := New(input)
	if err != nil {
		panic(err)
	}
	return v
}

func (i IBAN) profile() Country {
	c, _ := LookupCountry(i.country)
	return c
}

// Field returns the characters tagged with role in the country's format mask.
func (i IBAN) Field(role Role) string {
	return span(i.value, i.profile().Format(), role)
}

// String returns the normalized electronic form.
func (i IBAN) String() string {
	return i.value
}

// PrintFormat returns the value in groups of four separated by spaces.
func (i IBAN) PrintFormat() string {
	var b strings.Builder
	for n := 0; n < len(i.value); n += 4 {
		if n > 0 {
			b.WriteByte(' ')
		}
		end := min(n+4, len(i.value))
		b.WriteString(i.value[n:end])
	}
	return b.String()
}

// Masked hides everything but the first and last four characters.
func (i IBAN) Masked() string {
	if len(i.value) <= 8 {
		return i.value
	}
	return i.value[:4] + strings.Repeat("*", len(i.value)-8) + i.value[len(i.value)-4:]
}

// IsZero reports whether i is the zero value.
func (i IBAN) IsZero() bool {
	return i.value == ""
}

// Equal reports whether both values hold the same number.
func (i IBAN) Equal(other IBAN) bool {
	return i.value == other.value
}

// Country returns the country's display name.
func (i IBAN) Country() string { return i.profile().Name() }

// Alpha2CountryCode returns the ISO 3166-1 alpha-2 code.
func (i IBAN) Alpha2CountryCode() string { return i.country }

// Alpha3CountryCode returns the ISO 3166-1 alpha-3 code.
func (i IBAN) Alpha3CountryCode() string { return i.profile().Alpha3() }

// NumericCountryCode returns the ISO 3166-1 numeric code, possibly empty.
func (i IBAN) NumericCountryCode() string { return i.profile().NumericCode() }

// IsSEPAEnabled reports whether the country belongs to SEPA.
func (i IBAN) IsSEPAEnabled() bool { return i.profile().SEPA() }

// CheckDigits returns the two IBAN check digits.
func (i IBAN) CheckDigits() string { return i.Field(RoleCheckDigits) }

// BBAN returns the country-specific part after the check digits.
func (i IBAN) BBAN() string {
	if len(i.value) < 4 {
		return ""
	}
	return i.value[4:]
}

// NationalBankCode returns the bank identifier, or "" if the format has none.
func (i IBAN) NationalBankCode() string { return i.Field(RoleBankCode) }

// BranchCode returns the branch (sort code) part, or "".
func (i IBAN) BranchCode() string { return i.Field(RoleBranchCode) }

// AccountNumberPrefix returns the account prefix (CZ, SK), or "".
func (i IBAN) AccountNumberPrefix() string { return i.Field(RoleAccountPrefix) }

// AccountNumber returns the account number part.
func (i IBAN) AccountNumber() string { return i.Field(RoleAccountNumber) }

// AccountCheckDigits returns the national check digits, or "".
func (i IBAN) AccountCheckDigits() string { return i.Field(RoleAccountCheckDigits) }

// AccountType returns the account type part, or "".
func (i IBAN) AccountType() string { return i.Field(RoleAccountType) }

// OwnerNumber returns the owner sequence or identification part, or "".
func (i IBAN) OwnerNumber() string { return i.Field(RoleOwnerNumber) }

// CurrencyCode returns the embedded currency code, or "".
func (i IBAN) CurrencyCode() string { return i.Field(RoleCurrency) }

// BICBankCode returns the bank code taken from the BIC, or "".
func (i IBAN) BICBankCode() string { return i.Field(RoleBICBankCode) }

// Swift returns the BIC known for the IBAN's bank, or "" when none is listed.
func (i IBAN) Swift() string {
	return LookupSwift(i.country, i.NationalBankCode())
}

// MarshalText implements encoding.TextMarshaler.
func (i IBAN) MarshalText() ([]byte, error) {
	return []byte(i.value), nil
}

// UnmarshalText implements encoding.TextUnmarshaler and validates the input.
func (i *IBAN) UnmarshalText(text []byte) error {
	v, err := New(string(text))
	if err != nil {
		return err
	}
	*i = v
	return nil
}
