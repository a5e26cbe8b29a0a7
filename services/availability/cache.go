package availability

import (
	"context"
	"strings"
	"sync"
	"time"

	"campusbook/models"
)

// cacheEntry holds one day's fetched busy intervals. Entries are replaced
// wholesale and never mutated in place, so a reader can never observe a
// half-written interval list.
type cacheEntry struct {
	busy      []models.BusyInterval
	fetchedAt time.Time
}

// BusyCache memoizes aggregated busy intervals per (date, scope signature).
// There is no TTL: the commitment store has no push-invalidation channel, so
// staleness is controlled entirely by the caller's forceRefresh intent.
type BusyCache struct {
	mu      sync.RWMutex
	entries map[string]*cacheEntry
}

func NewBusyCache() *BusyCache {
	return &BusyCache{entries: make(map[string]*cacheEntry)}
}

func cacheKey(date string, scope models.ResourceScope) string {
	return date + "|" + scope.Signature()
}

// GetOrFetch returns the cached busy intervals for (date, scope), invoking
// fetch on a miss or when forceRefresh is set. The fetch runs outside the
// lock: a refresh in flight for one key never blocks reads of another, and
// concurrent refreshes of the same key each install their own complete
// entry, last writer wins.
func (c *BusyCache) GetOrFetch(ctx context.Context, date string, scope models.ResourceScope, forceRefresh bool,
	fetch func(ctx context.Context) ([]models.BusyInterval, error)) ([]models.BusyInterval, error) {

	key := cacheKey(date, scope)

	if !forceRefresh {
		c.mu.RLock()
		entry, ok := c.entries[key]
		c.mu.RUnlock()
		if ok {
			return entry.busy, nil
		}
	}

	busy, err := fetch(ctx)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	c.entries[key] = &cacheEntry{busy: busy, fetchedAt: time.Now()}
	c.mu.Unlock()

	return busy, nil
}

// Invalidate drops the entry for one (date, scope) pair.
func (c *BusyCache) Invalidate(date string, scope models.ResourceScope) {
	c.mu.Lock()
	delete(c.entries, cacheKey(date, scope))
	c.mu.Unlock()
}

// InvalidateAll empties the cache.
func (c *BusyCache) InvalidateAll() {
	c.mu.Lock()
	c.entries = make(map[string]*cacheEntry)
	c.mu.Unlock()
}

// SweepBefore removes entries whose date precedes cutoffDate ("2006-01-02")
// and reports how many were dropped. Keys start with the ISO date, so a
// lexicographic comparison is a date comparison.
func (c *BusyCache) SweepBefore(cutoffDate string) int {
	c.mu.Lock()
	defer c.mu.Unlock()

	removed := 0
	for key := range c.entries {
		date, _, ok := strings.Cut(key, "|")
		if ok && date < cutoffDate {
			delete(c.entries, key)
			removed++
		}
	}
	return removed
}

// Len reports the number of cached entries.
func (c *BusyCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}
