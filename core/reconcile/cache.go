package reconcile

import (
	"context"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"
)

// cachedReport holds a built report together with its build time.
type cachedReport struct {
	report *Report
	built  time.Time
}

// Cache is a TTL-based report cache with stampede protection.
//
// Reconciliation is cheap but the line item store may not be; when many gate
// clients poll the same order, the cache collapses concurrent lookups into a
// single store round-trip. A zero TTL disables caching entirely.
type Cache struct {
	mu      sync.RWMutex
	reports map[string]*cachedReport
	sf      singleflight.Group
	ttl     time.Duration
}

// NewCache creates a report cache with the given TTL.
func NewCache(ttl time.Duration) *Cache {
	return &Cache{
		reports: make(map[string]*cachedReport),
		ttl:     ttl,
	}
}

// Reconcile returns the cached report for the order if fresh, or runs the
// engine and caches the result. Nil reports (unknown orders) are cached too,
// so repeated lookups of a bad order number do not hammer the store.
func (c *Cache) Reconcile(ctx context.Context, store LineItemStore, orderID string) (*Report, error) {
	if c == nil || c.ttl == 0 {
		return Reconcile(ctx, store, orderID)
	}

	// Fast path: fresh cache entry.
	c.mu.RLock()
	entry, exists := c.reports[orderID]
	c.mu.RUnlock()

	if exists && time.Since(entry.built) <= c.ttl {
		return entry.report, nil
	}

	// Slow path: build under singleflight to prevent stampedes.
	result, err, _ := c.sf.Do(orderID, func() (interface{}, error) {
		// Double-check after acquiring the singleflight slot.
		c.mu.RLock()
		entry, exists := c.reports[orderID]
		c.mu.RUnlock()

		if exists && time.Since(entry.built) <= c.ttl {
			return entry.report, nil
		}

		report, err := Reconcile(ctx, store, orderID)
		if err != nil {
			return nil, err
		}

		c.mu.Lock()
		c.reports[orderID] = &cachedReport{report: report, built: time.Now()}
		c.mu.Unlock()

		return report, nil
	})
	if err != nil {
		return nil, err
	}

	return result.(*Report), nil
}

// Invalidate removes the cached report for the given order, forcing the next
// lookup to rebuild. Used after inbound receipts change.
func (c *Cache) Invalidate(orderID string) {
	if c == nil {
		return
	}
	c.mu.Lock()
	delete(c.reports, orderID)
	c.mu.Unlock()
}
