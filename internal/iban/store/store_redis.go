package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/redis/go-redis/v9"

	"ibanguard/internal/iban/models"
	"ibanguard/pkg/platform/sentinel"
)

var (
	redisFindDurationMs = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "ibanguard_cache_redis_find_duration_ms",
		Help:    "Latency of Redis result cache lookups in milliseconds",
		Buckets: []float64{0.1, 0.25, 0.5, 1, 2.5, 5, 10, 25},
	})
)

const (
	// Redis key prefix for cached IBAN details
	detailsKeyPrefix = "iban:details:"
)

// RedisCache is a Redis-backed result cache shared by all instances.
type RedisCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisCache constructs a Redis-backed cache with the given TTL.
func NewRedisCache(client *redis.Client, ttl time.Duration) *RedisCache {
	return &RedisCache{client: client, ttl: ttl}
}

// Find loads cached details, returning sentinel.ErrNotFound on a miss.
func (c *RedisCache) Find(ctx context.Context, key string) (*models.Details, error) {
	start := time.Now()
	defer func() {
		redisFindDurationMs.Observe(float64(time.Since(start).Microseconds()) / 1000.0)
	}()

	raw, err := c.client.Get(ctx, detailsKeyPrefix+key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, sentinel.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("redis get: %w: %w", sentinel.ErrUnavailable, err)
	}

	var details models.Details
	if err := json.Unmarshal(raw, &details); err != nil {
		return nil, fmt.Errorf("decode cached details: %w", err)
	}
	return &details, nil
}

// Save stores details with the cache TTL using SET EX.
func (c *RedisCache) Save(ctx context.Context, key string, details *models.Details) error {
	if details == nil {
		return nil
	}
	raw, err := json.Marshal(details)
	if err != nil {
		return fmt.Errorf("encode details: %w", err)
	}
	if err := c.client.Set(ctx, detailsKeyPrefix+key, raw, c.ttl).Err(); err != nil {
		return fmt.Errorf("redis set: %w: %w", sentinel.ErrUnavailable, err)
	}
	return nil
}
