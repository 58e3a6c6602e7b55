package models

import "ibanguard/pkg/iban"

// Rejection reasons reported for IBANs that fail validation.
const (
	ReasonUnknownCountry  = "unknown_country"
	ReasonLengthMismatch  = "length_mismatch"
	ReasonInvalidChecksum = "invalid_checksum"
)

// CountryDetails describes a country's IBAN format.
type CountryDetails struct {
	Code        string `json:"code"`
	Alpha3      string `json:"alpha3"`
	NumericCode string `json:"numeric_code,omitempty"`
	Name        string `json:"name"`
	SEPA        bool   `json:"sepa"`
	Length      int    `json:"length"`
	Format      string `json:"format"`
}

// Details is the decomposition of a valid IBAN. Fields the country's format
// does not define are left empty.
type Details struct {
	IBAN               string         `json:"iban"`
	PrintFormat        string         `json:"print_format"`
	Country            CountryDetails `json:"country"`
	CheckDigits        string         `json:"check_digits"`
	BBAN               string         `json:"bban"`
	BankCode           string         `json:"bank_code,omitempty"`
	BranchCode         string         `json:"branch_code,omitempty"`
	AccountPrefix      string         `json:"account_prefix,omitempty"`
	AccountNumber      string         `json:"account_number,omitempty"`
	AccountCheckDigits string         `json:"account_check_digits,omitempty"`
	AccountType        string         `json:"account_type,omitempty"`
	OwnerNumber        string         `json:"owner_number,omitempty"`
	Currency           string         `json:"currency,omitempty"`
	BICBankCode        string         `json:"bic_bank_code,omitempty"`
	Swift              string         `json:"swift,omitempty"`
}

// Result is the outcome of validating one input. Details is set only when
// Valid is true; Reason only when it is false.
type Result struct {
	Input   string   `json:"input"`
	Valid   bool     `json:"valid"`
	Reason  string   `json:"reason,omitempty"`
	Details *Details `json:"details,omitempty"`
}

// FromCountry converts a registry profile.
func FromCountry(c iban.Country) CountryDetails {
	return CountryDetails{
		Code:        c.Alpha2(),
		Alpha3:      c.Alpha3(),
		NumericCode: c.NumericCode(),
		Name:        c.Name(),
		SEPA:        c.SEPA(),
		Length:      c.Length(),
		Format:      c.Format(),
	}
}

// FromIBAN decomposes a validated IBAN.
func FromIBAN(v iban.IBAN) Details {
	country, _ := iban.LookupCountry(v.Alpha2CountryCode())
	return Details{
		IBAN:               v.String(),
		PrintFormat:        v.PrintFormat(),
		Country:            FromCountry(country),
		CheckDigits:        v.CheckDigits(),
		BBAN:               v.BBAN(),
		BankCode:           v.NationalBankCode(),
		BranchCode:         v.BranchCode(),
		AccountPrefix:      v.AccountNumberPrefix(),
		AccountNumber:      v.AccountNumber(),
		AccountCheckDigits: v.AccountCheckDigits(),
		AccountType:        v.AccountType(),
		OwnerNumber:        v.OwnerNumber(),
		Currency:           v.CurrencyCode(),
		BICBankCode:        v.BICBankCode(),
		Swift:              v.Swift(),
	}
}
