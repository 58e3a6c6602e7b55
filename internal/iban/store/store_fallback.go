package store

import (
	"context"
	"errors"
	"log/slog"

	"ibanguard/internal/iban/models"
	"ibanguard/pkg/platform/circuit"
	"ibanguard/pkg/platform/sentinel"
)

// Cache is the result cache contract shared by every store in this package.
type Cache interface {
	Find(ctx context.Context, key string) (*models.Details, error)
	Save(ctx context.Context, key string, details *models.Details) error
}

// FallbackCache fronts a shared primary cache with a local fallback. Primary
// outages (sentinel.ErrUnavailable) count against a circuit breaker; while
// the breaker is open calls are answered by the fallback, and the primary is
// still tried so consecutive successes can close the breaker again.
type FallbackCache struct {
	primary  Cache
	fallback Cache
	breaker  *circuit.Breaker
	logger   *slog.Logger
}

// NewFallbackCache wires primary and fallback behind breaker.
func NewFallbackCache(primary, fallback Cache, breaker *circuit.Breaker, logger *slog.Logger) *FallbackCache {
	if logger == nil {
		logger = slog.Default()
	}
	return &FallbackCache{
		primary:  primary,
		fallback: fallback,
		breaker:  breaker,
		logger:   logger,
	}
}

func (c *FallbackCache) Find(ctx context.Context, key string) (*models.Details, error) {
	details, err := c.primary.Find(ctx, key)
	if c.useFallback(ctx, err) {
		return c.fallback.Find(ctx, key)
	}
	return details, err
}

func (c *FallbackCache) Save(ctx context.Context, key string, details *models.Details) error {
	err := c.primary.Save(ctx, key, details)
	if c.useFallback(ctx, err) {
		return c.fallback.Save(ctx, key, details)
	}
	return err
}

// Degraded reports whether the breaker currently routes calls to the fallback.
func (c *FallbackCache) Degraded() bool {
	return c.breaker.IsOpen()
}

func (c *FallbackCache) useFallback(ctx context.Context, err error) bool {
	if errors.Is(err, sentinel.ErrUnavailable) {
		_, change := c.breaker.RecordFailure()
		if change.Opened {
			c.logger.WarnContext(ctx, "result cache degraded, serving from fallback",
				"breaker", c.breaker.Name(),
				"error", err,
			)
		}
		return true
	}

	usePrimary, change := c.breaker.RecordSuccess()
	if change.Closed {
		c.logger.InfoContext(ctx, "result cache recovered", "breaker", c.breaker.Name())
	}
	return !usePrimary
}
