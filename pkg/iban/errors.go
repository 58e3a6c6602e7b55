package iban

import "errors"

// Validation failures returned (wrapped) by New. Use errors.Is to tell them apart.
var (
	ErrUnknownCountry  = errors.New("unknown IBAN country code")
	ErrLengthMismatch  = errors.New("IBAN length does not match country format")
	ErrInvalidChecksum = errors.New("IBAN checksum is invalid")
)
