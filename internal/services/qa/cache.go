package qa

import (
	"context"
	"fmt"
	"sync"
	"time"

	"saral-seva-backend/internal/models"
)

// SchemeSource loads the active scheme working set. Implemented by
// database.SchemeRepository.
type SchemeSource interface {
	ListActive(ctx context.Context, category string, level models.SchemeLevel) ([]*models.Scheme, error)
}

// SchemeCache is a time-bounded cache of the active scheme working set used
// by the Q&A matcher. It is constructor-injected rather than a package
// singleton, and Refresh forces an immediate reload.
type SchemeCache struct {
	source SchemeSource
	ttl    time.Duration
	limit  int

	mu        sync.Mutex
	schemes   []*models.Scheme
	fetchedAt time.Time
}

// NewSchemeCache creates a cache over the given source. limit caps the
// working set size (0 means no cap); ttl bounds staleness.
func NewSchemeCache(source SchemeSource, ttl time.Duration, limit int) *SchemeCache {
	return &SchemeCache{source: source, ttl: ttl, limit: limit}
}

// Get returns the cached scheme set, reloading when the TTL has expired.
func (c *SchemeCache) Get(ctx context.Context) ([]*models.Scheme, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.schemes != nil && time.Since(c.fetchedAt) < c.ttl {
		return c.schemes, nil
	}

	if err := c.reload(ctx); err != nil {
		// Serve stale data over failing the request when a previous load
		// succeeded.
		if c.schemes != nil {
			return c.schemes, nil
		}
		return nil, err
	}
	return c.schemes, nil
}

// Refresh discards the cached set and reloads immediately.
func (c *SchemeCache) Refresh(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.reload(ctx)
}

// reload fetches from the source; callers hold c.mu.
func (c *SchemeCache) reload(ctx context.Context) error {
	schemes, err := c.source.ListActive(ctx, "", "")
	if err != nil {
		return fmt.Errorf("failed to load scheme working set: %w", err)
	}
	if c.limit > 0 && len(schemes) > c.limit {
		schemes = schemes[:c.limit]
	}
	c.schemes = schemes
	c.fetchedAt = time.Now()
	return nil
}
