package httputil

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	dErrors "ibanguard/pkg/domain-errors"
)

func TestWriteError(t *testing.T) {
	t.Run("internal error omits description", func(t *testing.T) {
		w := httptest.NewRecorder()
		WriteError(w, dErrors.New(dErrors.CodeInternal, "cache failed"))

		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected status %d, got %d", http.StatusInternalServerError, w.Code)
		}

		var body map[string]string
		if err := json.NewDecoder(w.Body).Decode(&body); err != nil {
			t.Fatalf("decode response: %v", err)
		}
		if body["error"] != "internal_error" {
			t.Fatalf("expected error code internal_error, got %q", body["error"])
		}
		if _, ok := body["error_description"]; ok {
			t.Fatalf("expected error_description to be omitted for internal errors")
		}
	})

	t.Run("validation error includes description", func(t *testing.T) {
		w := httptest.NewRecorder()
		WriteError(w, dErrors.New(dErrors.CodeValidation, "invalid_checksum"))

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected status %d, got %d", http.StatusBadRequest, w.Code)
		}

		var body map[string]string
		if err := json.NewDecoder(w.Body).Decode(&body); err != nil {
			t.Fatalf("decode response: %v", err)
		}
		if body["error"] != "validation_error" {
			t.Fatalf("expected error code validation_error, got %q", body["error"])
		}
		if body["error_description"] != "invalid_checksum" {
			t.Fatalf("expected error_description to be returned for validation errors")
		}
	})

	t.Run("uncoded error is internal", func(t *testing.T) {
		w := httptest.NewRecorder()
		WriteError(w, io.ErrUnexpectedEOF)
		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected status %d, got %d", http.StatusInternalServerError, w.Code)
		}
	})
}

type probeRequest struct {
	IBAN string `json:"iban"`
}

func (p *probeRequest) Validate() error {
	if strings.TrimSpace(p.IBAN) == "" {
		return dErrors.New(dErrors.CodeValidation, "iban is required")
	}
	return nil
}

func TestDecodeAndPrepare(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	decode := func(body string) (*probeRequest, *httptest.ResponseRecorder, bool) {
		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodPost, "/", bytes.NewBufferString(body))
		req, ok := DecodeAndPrepare[probeRequest](w, r, logger, context.Background(), "req-1")
		return req, w, ok
	}

	t.Run("valid body", func(t *testing.T) {
		req, _, ok := decode(`{"iban":"DE89370400440532013000"}`)
		if !ok || req.IBAN != "DE89370400440532013000" {
			t.Fatalf("expected decoded request, got %+v ok=%v", req, ok)
		}
	})

	t.Run("malformed json", func(t *testing.T) {
		_, w, ok := decode(`{"iban":`)
		if ok || w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d ok=%v", w.Code, ok)
		}
	})

	t.Run("failed validation", func(t *testing.T) {
		_, w, ok := decode(`{"iban":"  "}`)
		if ok || w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d ok=%v", w.Code, ok)
		}
	})
}
