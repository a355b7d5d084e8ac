package services

import (
	"context"
	"fmt"

	"hotel-forecast/dao/redis"
	"hotel-forecast/loader"
	"hotel-forecast/logger"
	"hotel-forecast/models"
)

var cacheLog = logger.New("TablesCacheService")

// TablesCacheService memoizes parsed tables keyed on the content of both sources.
// Identical inputs are parsed once; any change to either file yields a new key.
type TablesCacheService struct {
	loader    *loader.Loader
	tablesDao *redis.RedisTablesDAO
}

// NewTablesCacheService constructs a TablesCacheService over a loader and its backing store.
func NewTablesCacheService(l *loader.Loader, tablesDao *redis.RedisTablesDAO) *TablesCacheService {
	return &TablesCacheService{
		loader:    l,
		tablesDao: tablesDao,
	}
}

// Get returns the tables for the current source contents. Cache failures are
// logged and never fail the call. A miss replaces every older entry.
func (s *TablesCacheService) Get(ctx context.Context) (*models.Tables, error) {
	snap, err := s.loader.ReadSnapshot(ctx)
	if err != nil {
		return nil, err
	}

	cached, err := s.tablesDao.GetTables(snap.Fingerprint)
	if err != nil {
		cacheLog.Warnf("Cache lookup failed for %.12s, parsing sources: %v", snap.Fingerprint, err)
	} else if cached != nil {
		cacheLog.Debugf("Cache hit for %.12s", snap.Fingerprint)
		return cached, nil
	}

	tables, err := loader.Parse(snap)
	if err != nil {
		return nil, err
	}
	if err := s.tablesDao.SetTables(tables); err != nil {
		cacheLog.Warnf("Failed to cache tables %.12s: %v", tables.Fingerprint, err)
		return tables, nil
	}
	cacheLog.Debugf("Cached tables %.12s", tables.Fingerprint)

	if removed, err := s.Prune(tables.Fingerprint); err != nil {
		cacheLog.Warnf("Failed to prune stale tables: %v", err)
	} else if removed > 0 {
		cacheLog.Debugf("Pruned %d stale table entries", removed)
	}
	return tables, nil
}

// Clear drops every cached table pair so the next Get re-parses the sources.
func (s *TablesCacheService) Clear() (int, error) {
	removed, err := s.tablesDao.DeleteAllTables()
	if err != nil {
		return removed, fmt.Errorf("failed to clear table cache: %w", err)
	}
	cacheLog.Infof("Cleared %d cached table entries", removed)
	return removed, nil
}

// Prune removes every cached entry except the one for keep.
func (s *TablesCacheService) Prune(keep string) (int, error) {
	fingerprints, err := s.tablesDao.ListFingerprints()
	if err != nil {
		return 0, fmt.Errorf("failed to prune table cache: %w", err)
	}
	removed := 0
	for _, fp := range fingerprints {
		if fp == keep {
			continue
		}
		if err := s.tablesDao.DeleteTables(fp); err != nil {
			return removed, fmt.Errorf("failed to prune table cache: %w", err)
		}
		removed++
	}
	return removed, nil
}
