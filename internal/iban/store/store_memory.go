package store

import (
	"context"
	"sync"
	"time"

	"ibanguard/internal/iban/models"
	"ibanguard/pkg/platform/sentinel"
)

// DefaultMaxEntries bounds the in-memory cache.
const DefaultMaxEntries = 10000

type cacheEntry struct {
	details   models.Details
	expiresAt time.Time
}

// InMemoryCache keeps parsed IBAN details in process memory with a TTL.
// When full, expired entries are swept; if none expired, new entries are not
// cached until space frees up.
type InMemoryCache struct {
	mu         sync.RWMutex
	entries    map[string]cacheEntry
	ttl        time.Duration
	maxEntries int
	now        func() time.Time
}

// InMemoryOption configures an InMemoryCache.
type InMemoryOption func(*InMemoryCache)

// WithMaxEntries overrides DefaultMaxEntries.
func WithMaxEntries(n int) InMemoryOption {
	return func(c *InMemoryCache) {
		if n > 0 {
			c.maxEntries = n
		}
	}
}

// WithClock overrides the time source (tests).
func WithClock(now func() time.Time) InMemoryOption {
	return func(c *InMemoryCache) {
		if now != nil {
			c.now = now
		}
	}
}

// NewInMemoryCache constructs an in-memory cache with the given TTL.
func NewInMemoryCache(ttl time.Duration, opts ...InMemoryOption) *InMemoryCache {
	c := &InMemoryCache{
		entries:    make(map[string]cacheEntry),
		ttl:        ttl,
		maxEntries: DefaultMaxEntries,
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Find returns a copy of the cached details, or sentinel.ErrNotFound.
func (c *InMemoryCache) Find(_ context.Context, key string) (*models.Details, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	entry, ok := c.entries[key]
	if !ok || !c.now().Before(entry.expiresAt) {
		return nil, sentinel.ErrNotFound
	}
	details := entry.details
	return &details, nil
}

// Save stores a copy of details under key.
func (c *InMemoryCache) Save(_ context.Context, key string, details *models.Details) error {
	if details == nil {
		return nil
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.now()
	if _, exists := c.entries[key]; !exists && len(c.entries) >= c.maxEntries {
		c.sweepLocked(now)
		if len(c.entries) >= c.maxEntries {
			return nil
		}
	}
	c.entries[key] = cacheEntry{details: *details, expiresAt: now.Add(c.ttl)}
	return nil
}

// Len returns the number of stored entries, expired ones included.
func (c *InMemoryCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

func (c *InMemoryCache) sweepLocked(now time.Time) {
	for key, entry := range c.entries {
		if !now.Before(entry.expiresAt) {
			delete(c.entries, key)
		}
	}
}
