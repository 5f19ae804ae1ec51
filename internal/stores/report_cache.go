// Package stores holds the in-memory caches backing report assembly.
package stores

import (
	"context"
	"sync"
	"time"

	"cdr-metrics/internal/models"
	"cdr-metrics/internal/shared/loggers"
)

//go:generate mockgen -source=report_cache.go -destination=mocks/report_cache_mock.go -package=mocks

// ReportCache stores computed historic reports so repeated requests within
// the same reporting day don't recompute twelve months of metrics.
type ReportCache interface {
	Get(ctx context.Context, period models.Period) (*models.MetricsReport, bool)
	Put(ctx context.Context, period models.Period, report *models.MetricsReport)
}

type cacheEntry struct {
	report   *models.MetricsReport
	storedAt time.Time
}

type reportCache struct {
	mu      sync.RWMutex
	entries map[models.Period]cacheEntry
	ttl     time.Duration
	loc     *time.Location
	clock   func() time.Time
}

// NewReportCache builds a cache whose entries expire after ttl or at the next
// midnight in the reporting timezone, whichever comes first. Historic metrics
// shift by one day at midnight, so an entry from yesterday is stale even if
// its TTL has time left.
func NewReportCache(ttl time.Duration, loc *time.Location, clock func() time.Time) ReportCache {
	if clock == nil {
		clock = time.Now
	}
	return &reportCache{
		entries: make(map[models.Period]cacheEntry),
		ttl:     ttl,
		loc:     loc,
		clock:   clock,
	}
}

func (c *reportCache) Get(ctx context.Context, period models.Period) (*models.MetricsReport, bool) {
	c.mu.RLock()
	entry, ok := c.entries[period]
	c.mu.RUnlock()
	if !ok {
		return nil, false
	}

	if c.expired(entry) {
		c.mu.Lock()
		// Re-check under the write lock: another request may have refreshed it.
		if current, ok := c.entries[period]; ok && c.expired(current) {
			delete(c.entries, period)
		}
		c.mu.Unlock()
		loggers.Ctx(ctx).Debug().
			Str(loggers.FieldPeriod, string(period)).
			Msg("evicting expired cached report")
		return nil, false
	}
	return entry.report, true
}

func (c *reportCache) Put(ctx context.Context, period models.Period, report *models.MetricsReport) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[period] = cacheEntry{report: report, storedAt: c.clock()}
}

func (c *reportCache) expired(entry cacheEntry) bool {
	now := c.clock()
	if now.Sub(entry.storedAt) > c.ttl {
		return true
	}
	stored := entry.storedAt.In(c.loc)
	current := now.In(c.loc)
	sameDay := stored.Year() == current.Year() && stored.YearDay() == current.YearDay()
	return !sameDay
}
