package exchange

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"payment-reports-api/models"
)

// Provider is the upstream rate source (normally *Client).
type Provider interface {
	Rate(ctx context.Context, currency string, date time.Time) (float64, error)
}

// Store is an optional shared second-level cache for successful lookups,
// so rates survive restarts and are shared between instances. Lookups must
// be best-effort: a broken store degrades to a provider call.
type Store interface {
	Get(ctx context.Context, key string) (float64, bool)
	Set(ctx context.Context, key string, rate float64)
}

// Cache memoizes successful rate lookups for the lifetime of the process,
// keyed by currency and calendar date. Failures are never memoized, so the
// next caller retries the provider. Concurrent callers for the same uncached
// key may each hit the provider; the first success wins and every later
// caller observes it.
//
// Growth is bounded only by the currency×date pairs actually requested,
// which for a four-currency set is negligible.
type Cache struct {
	provider Provider
	store    Store

	mu    sync.Mutex
	rates map[string]float64
}

// NewCache wraps provider with memoization. store may be nil.
func NewCache(provider Provider, store Store) *Cache {
	return &Cache{
		provider: provider,
		store:    store,
		rates:    make(map[string]float64),
	}
}

// Rate returns the PLN mid-rate for currency on date's calendar day.
// PLN itself is always 1.0 and never touches the provider or the cache.
func (c *Cache) Rate(ctx context.Context, currency string, date time.Time) (float64, error) {
	if currency == models.PLN {
		return 1.0, nil
	}

	key := cacheKey(currency, date)

	c.mu.Lock()
	if rate, ok := c.rates[key]; ok {
		c.mu.Unlock()
		return rate, nil
	}
	c.mu.Unlock()

	if c.store != nil {
		if rate, ok := c.store.Get(ctx, key); ok {
			c.memoize(key, rate)
			return rate, nil
		}
	}

	rate, err := c.provider.Rate(ctx, currency, date)
	if err != nil {
		// Not cached: a provider outage must not poison future lookups.
		return 0, err
	}

	c.memoize(key, rate)
	if c.store != nil {
		c.store.Set(ctx, key, rate)
	}
	return rate, nil
}

func (c *Cache) memoize(key string, rate float64) {
	c.mu.Lock()
	c.rates[key] = rate
	c.mu.Unlock()
}

func cacheKey(currency string, date time.Time) string {
	return fmt.Sprintf("%s:%s", strings.ToUpper(currency), date.Format("2006-01-02"))
}
