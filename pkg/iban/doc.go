// Package iban validates and decomposes International Bank Account Numbers
// (ISO 13616).
//
// An IBAN value can only be obtained through New, which normalizes the input,
// checks the country code against the registry, the length against the
// country's format mask and the ISO 7064 MOD 97-10 checksum. Once constructed,
// the value is immutable and every accessor is a pure derivation from the
// normalized string and the country's format mask:
//
//	v, err := iban.New("DE89 3704 0044 0532 0130 00")
//	if err != nil {
//		// errors.Is(err, iban.ErrInvalidChecksum), ...
//	}
//	v.NationalBankCode() // "37040044"
//	v.AccountNumber()    // "0532013000"
//
// # Format masks
//
// Each country carries a mask with one symbol per character of a valid IBAN:
// the two country letters, then role symbols (see Role). A field is the span
// from the first to the last occurrence of its symbol, inclusive.
//
// # Domain Purity
//
// The package has no I/O, no context.Context and no package-level mutable
// state. The registry and the SWIFT table are built once at init and only read
// afterwards, so values and lookups are safe for concurrent use.
package iban
