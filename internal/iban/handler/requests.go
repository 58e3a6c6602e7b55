package handler

import (
	"strings"

	dErrors "ibanguard/pkg/domain-errors"
)

// maxInputLength bounds a single submitted IBAN, print format included.
const maxInputLength = 64

// ValidateRequest is the HTTP request body for POST /iban/validate.
type ValidateRequest struct {
	IBAN string `json:"iban"`
}

// Validate implements httputil.Validatable.
func (r *ValidateRequest) Validate() error {
	if r == nil {
		return dErrors.New(dErrors.CodeBadRequest, "request body is required")
	}
	if len(r.IBAN) > maxInputLength {
		return dErrors.New(dErrors.CodeValidation, "iban must be at most 64 characters")
	}
	r.IBAN = strings.TrimSpace(r.IBAN)
	if r.IBAN == "" {
		return dErrors.New(dErrors.CodeValidation, "iban is required")
	}
	return nil
}

// BatchValidateRequest is the HTTP request body for POST /iban/validate/batch.
// Batch size limits are enforced by the service.
type BatchValidateRequest struct {
	IBANs []string `json:"ibans"`
}

// Validate implements httputil.Validatable.
func (r *BatchValidateRequest) Validate() error {
	if r == nil {
		return dErrors.New(dErrors.CodeBadRequest, "request body is required")
	}
	if len(r.IBANs) == 0 {
		return dErrors.New(dErrors.CodeValidation, "ibans is required")
	}
	for _, v := range r.IBANs {
		if len(v) > maxInputLength {
			return dErrors.New(dErrors.CodeValidation, "each iban must be at most 64 characters")
		}
	}
	return nil
}
