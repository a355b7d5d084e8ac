package services

import (
	"context"
	"fmt"
	"time"

	"hotel-forecast/logger"
)

var refresherLog = logger.New("CacheRefresherService")

// CacheRefresherService periodically warms the table cache and drops entries
// of superseded source contents.
type CacheRefresherService struct {
	cache *TablesCacheService
}

// NewCacheRefresherService constructs a new refresher over the table cache.
func NewCacheRefresherService(cache *TablesCacheService) *CacheRefresherService {
	return &CacheRefresherService{cache: cache}
}

// StartPeriodicJob launches the background loop at the given interval. It
// stops when ctx is cancelled. A non-positive interval disables the job.
func (cr *CacheRefresherService) StartPeriodicJob(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		refresherLog.Infof("Periodic refresh disabled")
		return
	}
	go cr.startPeriodicJob(ctx, interval)
}

func (cr *CacheRefresherService) startPeriodicJob(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			refresherLog.Infof("Stopping periodic cache refresher job")
			return
		case <-ticker.C:
			refresherLog.Debugf("Running periodic cache refresher job")
			if err := cr.Refresh(ctx); err != nil {
				refresherLog.Errorf("Refresh returned error: %v", err)
			}
		}
	}
}

// Refresh loads the current tables into the cache and prunes stale entries.
func (cr *CacheRefresherService) Refresh(ctx context.Context) error {
	tables, err := cr.cache.Get(ctx)
	if err != nil {
		return fmt.Errorf("failed to refresh tables: %w", err)
	}

	removed, err := cr.cache.Prune(tables.Fingerprint)
	if err != nil {
		return err
	}
	if removed > 0 {
		refresherLog.Infof("Pruned %d stale table entries", removed)
	}
	refresherLog.Debugf("Tables %.12s are current", tables.Fingerprint)
	return nil
}
