package handler

import (
	"context"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"ibanguard/internal/iban/models"
	dErrors "ibanguard/pkg/domain-errors"
	"ibanguard/pkg/platform/httputil"
	"ibanguard/pkg/requestcontext"
)

//go:generate mockgen -source=handler.go -destination=mocks/mocks.go -package=mocks Service

// Service defines the interface for IBAN operations.
type Service interface {
	Parse(ctx context.Context, raw string) (*models.Details, error)
	Validate(ctx context.Context, raw string) models.Result
	ValidateBatch(ctx context.Context, raws []string) ([]models.Result, error)
	Country(ctx context.Context, code string) (*models.CountryDetails, error)
	Countries(ctx context.Context, sepaOnly bool) []models.CountryDetails
}

// Handler wires IBAN endpoints to the IBAN service.
type Handler struct {
	service Service
	logger  *slog.Logger
}

// New constructs an IBAN handler with its dependencies.
func New(service Service, logger *slog.Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Register mounts IBAN endpoints on the router.
func (h *Handler) Register(r chi.Router) {
	r.Post("/iban/validate", h.HandleValidate)
	r.Post("/iban/validate/batch", h.HandleValidateBatch)
	r.Get("/iban/countries", h.HandleListCountries)
	r.Get("/iban/countries/{code}", h.HandleGetCountry)
	r.Get("/iban/{iban}", h.HandleParse)
}

// HandleValidate handles POST /iban/validate. Invalid IBANs are a normal
// outcome and answer 200 with valid=false.
func (h *Handler) HandleValidate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)
	start := time.Now()

	req, ok := httputil.DecodeAndPrepare[ValidateRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}

	result := h.service.Validate(ctx, req.IBAN)

	attrs := []any{
		"request_id", requestID,
		"valid", result.Valid,
		"duration_ms", time.Since(start).Milliseconds(),
	}
	if result.Valid {
		attrs = append(attrs, "country", result.Details.Country.Code)
	} else {
		attrs = append(attrs, "reason", result.Reason)
	}
	h.logger.InfoContext(ctx, "iban validated", attrs...)

	httputil.WriteJSON(w, http.StatusOK, &ValidateResponse{
		Result:    result,
		CheckedAt: requestcontext.Now(ctx),
	})
}

// HandleValidateBatch handles POST /iban/validate/batch.
func (h *Handler) HandleValidateBatch(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)
	start := time.Now()

	req, ok := httputil.DecodeAndPrepare[BatchValidateRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}

	results, err := h.service.ValidateBatch(ctx, req.IBANs)
	if err != nil {
		h.logger.ErrorContext(ctx, "batch validation failed",
			"request_id", requestID,
			"submitted", len(req.IBANs),
			"error", err,
		)
		httputil.WriteError(w, err)
		return
	}

	resp := toBatchResponse(results, requestcontext.Now(ctx))
	h.logger.InfoContext(ctx, "iban batch validated",
		"request_id", requestID,
		"submitted", len(req.IBANs),
		"valid", resp.Valid,
		"invalid", resp.Invalid,
		"duration_ms", time.Since(start).Milliseconds(),
	)
	httputil.WriteJSON(w, http.StatusOK, resp)
}

// HandleParse handles GET /iban/{iban}.
func (h *Handler) HandleParse(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)

	raw, err := url.PathUnescape(chi.URLParam(r, "iban"))
	if err != nil || len(raw) > maxInputLength {
		httputil.WriteError(w, dErrors.New(dErrors.CodeBadRequest, "invalid iban path parameter"))
		return
	}

	details, err := h.service.Parse(ctx, raw)
	if err != nil {
		h.logger.InfoContext(ctx, "iban rejected",
			"request_id", requestID,
			"error", err,
		)
		httputil.WriteError(w, err)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, details)
}

// HandleListCountries handles GET /iban/countries. The optional sepa query
// parameter restricts the list to SEPA members.
func (h *Handler) HandleListCountries(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	sepaOnly := false
	if v := r.URL.Query().Get("sepa"); v != "" {
		parsed, err := strconv.ParseBool(v)
		if err != nil {
			httputil.WriteError(w, dErrors.New(dErrors.CodeBadRequest, "sepa must be a boolean"))
			return
		}
		sepaOnly = parsed
	}

	countries := h.service.Countries(ctx, sepaOnly)
	httputil.WriteJSON(w, http.StatusOK, &CountriesResponse{
		Countries: countries,
		Total:     len(countries),
	})
}

// HandleGetCountry handles GET /iban/countries/{code}.
func (h *Handler) HandleGetCountry(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	country, err := h.service.Country(ctx, chi.URLParam(r, "code"))
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, country)
}
