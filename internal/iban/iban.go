package iban

import (
	"log/slog"

	"ibanguard/internal/iban/handler"
	"ibanguard/internal/iban/metrics"
	"ibanguard/internal/iban/service"
)

// Service exposes IBAN validation with result caching.
type Service = service.Service

// Handler wires HTTP endpoints to the IBAN service.
type Handler = handler.Handler

// NewService constructs the IBAN service around a result cache.
func NewService(cache service.ResultCache, logger *slog.Logger, m *metrics.Metrics, opts ...service.Option) (*Service, error) {
	opts = append([]service.Option{service.WithLogger(logger), service.WithMetrics(m)}, opts...)
	return service.New(cache, opts...)
}

// NewHandler constructs an HTTP handler for the public IBAN routes.
func NewHandler(s *Service, logger *slog.Logger) *Handler {
	return handler.New(s, logger)
}
