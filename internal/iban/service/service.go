package service

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"

	"ibanguard/internal/iban/metrics"
	"ibanguard/internal/iban/models"
	dErrors "ibanguard/pkg/domain-errors"
	"ibanguard/pkg/iban"
	"ibanguard/pkg/platform/sentinel"
	pstrings "ibanguard/pkg/platform/strings"
)

const (
	defaultBatchMaxItems    = 500
	defaultBatchConcurrency = 8

	// maxIBANLength is the ISO 13616 upper bound; longer inputs skip the cache.
	maxIBANLength = 34
)

// Service validates and decomposes IBANs, reusing cached decompositions.
type Service struct {
	cache            ResultCache
	logger           *slog.Logger
	metrics          *metrics.Metrics
	tracer           trace.Tracer
	batchMaxItems    int
	batchConcurrency int
}

// Option configures a Service.
type Option func(*Service)

// WithLogger sets the logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithMetrics enables Prometheus metrics.
func WithMetrics(m *metrics.Metrics) Option {
	return func(s *Service) {
		s.metrics = m
	}
}

// WithTracer overrides the tracer taken from the global provider.
func WithTracer(tracer trace.Tracer) Option {
	return func(s *Service) {
		if tracer != nil {
			s.tracer = tracer
		}
	}
}

// WithBatchLimits bounds batch size and fan-out. Non-positive values keep the defaults.
func WithBatchLimits(maxItems, concurrency int) Option {
	return func(s *Service) {
		if maxItems > 0 {
			s.batchMaxItems = maxItems
		}
		if concurrency > 0 {
			s.batchConcurrency = concurrency
		}
	}
}

// New constructs the service. The cache is required.
func New(cache ResultCache, opts ...Option) (*Service, error) {
	if cache == nil {
		return nil, errors.New("result cache is required")
	}
	s := &Service{
		cache:            cache,
		logger:           slog.Default(),
		tracer:           otel.Tracer("ibanguard/internal/iban/service"),
		batchMaxItems:    defaultBatchMaxItems,
		batchConcurrency: defaultBatchConcurrency,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}
	return s, nil
}

// Parse validates raw and returns its decomposition. Validation failures are
// CodeValidation errors whose message is the rejection reason and which wrap
// the pkg/iban sentinel.
func (s *Service) Parse(ctx context.Context, raw string) (*models.Details, error) {
	ctx, span := s.tracer.Start(ctx, "iban.Parse")
	defer span.End()
	if s.metrics != nil {
		defer s.metrics.ObserveParse(time.Now())
	}

	key := iban.Normalize(raw)
	if details, ok := s.cached(ctx, key); ok {
		span.SetAttributes(attribute.Bool("iban.cache_hit", true), attribute.String("iban.country", details.Country.Code))
		if s.metrics != nil {
			s.metrics.IncrementValid(details.Country.Code)
		}
		return details, nil
	}

	v, err := iban.New(raw)
	if err != nil {
		reason := Reason(err)
		span.SetStatus(codes.Error, reason)
		if s.metrics != nil {
			s.metrics.IncrementRejected(reason)
		}
		return nil, dErrors.Wrap(err, dErrors.CodeValidation, reason)
	}

	details := models.FromIBAN(v)
	span.SetAttributes(attribute.Bool("iban.cache_hit", false), attribute.String("iban.country", details.Country.Code))
	if err := s.cache.Save(ctx, v.String(), &details); err != nil {
		s.logger.WarnContext(ctx, "failed to cache iban details",
			"country", details.Country.Code,
			"iban", v.Masked(),
			"error", err,
		)
	}
	if s.metrics != nil {
		s.metrics.IncrementValid(details.Country.Code)
	}
	return &details, nil
}

func (s *Service) cached(ctx context.Context, key string) (*models.Details, bool) {
	if len(key) > maxIBANLength {
		return nil, false
	}
	details, err := s.cache.Find(ctx, key)
	switch {
	case err == nil:
		s.countCache("hit")
		return details, true
	case errors.Is(err, sentinel.ErrNotFound):
		s.countCache("miss")
	default:
		s.countCache("error")
		s.logger.WarnContext(ctx, "iban cache lookup failed", "error", err)
	}
	return nil, false
}

func (s *Service) countCache(result string) {
	if s.metrics != nil {
		s.metrics.IncrementCache(result)
	}
}

// Validate reports whether raw is a valid IBAN. It never fails: rejections are
// described by Result.Reason.
func (s *Service) Validate(ctx context.Context, raw string) models.Result {
	details, err := s.Parse(ctx, raw)
	if err != nil {
		return models.Result{Input: raw, Valid: false, Reason: Reason(err)}
	}
	return models.Result{Input: raw, Valid: true, Details: details}
}

// ValidateBatch validates several inputs concurrently. Inputs are trimmed,
// blanks dropped and inputs that normalize to the same value collapsed to their
// first spelling; results follow that order.
func (s *Service) ValidateBatch(ctx context.Context, raws []string) ([]models.Result, error) {
	ctx, span := s.tracer.Start(ctx, "iban.ValidateBatch")
	defer span.End()

	if len(raws) > s.batchMaxItems {
		return nil, dErrors.New(dErrors.CodeValidation, "too many ibans in batch")
	}
	inputs := pstrings.DedupeBy(raws, iban.Normalize)
	if len(inputs) == 0 {
		return nil, dErrors.New(dErrors.CodeValidation, "ibans must contain at least one value")
	}
	span.SetAttributes(attribute.Int("iban.batch_size", len(inputs)))
	if s.metrics != nil {
		s.metrics.ObserveBatch(len(inputs))
	}

	results := make([]models.Result, len(inputs))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.batchConcurrency)
	for i, input := range inputs {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			results[i] = s.Validate(gctx, input)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		span.SetStatus(codes.Error, "cancelled")
		return nil, dErrors.Wrap(err, dErrors.CodeTimeout, "batch validation cancelled")
	}
	return results, nil
}

// Country returns the IBAN format of a country, or a CodeNotFound error.
func (s *Service) Country(_ context.Context, code string) (*models.CountryDetails, error) {
	c, ok := iban.LookupCountry(iban.Normalize(strings.TrimSpace(code)))
	if !ok {
		return nil, dErrors.New(dErrors.CodeNotFound, "country not supported")
	}
	details := models.FromCountry(c)
	return &details, nil
}

// Countries lists supported countries ordered by code, optionally SEPA members only.
func (s *Service) Countries(_ context.Context, sepaOnly bool) []models.CountryDetails {
	all := iban.Countries()
	out := make([]models.CountryDetails, 0, len(all))
	for _, c := range all {
		if sepaOnly && !c.SEPA() {
			continue
		}
		out = append(out, models.FromCountry(c))
	}
	return out
}

// Reason maps a validation error to its client-visible rejection reason.
// Errors that are not IBAN validation failures map to "invalid".
func Reason(err error) string {
	switch {
	case errors.Is(err, iban.ErrUnknownCountry):
		return models.ReasonUnknownCountry
	case errors.Is(err, iban.ErrLengthMismatch):
		return models.ReasonLengthMismatch
	case errors.Is(err, iban.ErrInvalidChecksum):
		return models.ReasonInvalidChecksum
	default:
		return "invalid"
	}
}
