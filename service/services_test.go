package services

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"hotel-forecast/dao/redis"
	"hotel-forecast/db"
	"hotel-forecast/loader"
	"hotel-forecast/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const dailyCSV = `date,bookings
2017-08-30,120
2017-08-31,98
`

const forecastCSV = `date,prediction,lower_bound,upper_bound
2017-09-01,10,5,15
2017-09-02,20,15,25
2017-09-03,30,25,35
2017-09-04,40,35,45
2017-09-05,50,45,55
2017-09-06,40,35,45
2017-09-07,30,25,35
2017-09-08,20,15,25
2017-09-09,10,5,15
`

// failingRedisClient fails every call, standing in for an unreachable Redis.
type failingRedisClient struct{}

var errRedisDown = errors.New("connection refused")

func (failingRedisClient) Set(key, value string) error           { return errRedisDown }
func (failingRedisClient) Get(key string) (string, error)        { return "", errRedisDown }
func (failingRedisClient) Keys(pattern string) ([]string, error) { return nil, errRedisDown }
func (failingRedisClient) Del(key string) error                  { return errRedisDown }
func (failingRedisClient) Ping() error                           { return errRedisDown }

func writeSources(t *testing.T, daily, forecast string) (string, string) {
	t.Helper()
	dir := t.TempDir()
	dailyPath := filepath.Join(dir, "daily_bookings.csv")
	forecastPath := filepath.Join(dir, "forecast_results.csv")
	require.NoError(t, os.WriteFile(dailyPath, []byte(daily), 0o644))
	require.NoError(t, os.WriteFile(forecastPath, []byte(forecast), 0o644))
	return dailyPath, forecastPath
}

func newCache(t *testing.T, client db.RedisClient) (*TablesCacheService, *redis.RedisTablesDAO, string) {
	t.Helper()
	dailyPath, forecastPath := writeSources(t, dailyCSV, forecastCSV)
	dao := redis.NewRedisTablesDAO(client)
	l := loader.NewLoader(&loader.FileSource{Path: dailyPath}, &loader.FileSource{Path: forecastPath})
	return NewTablesCacheService(l, dao), dao, forecastPath
}

func TestTablesCacheService_GetStoresTables(t *testing.T) {
	// Arrange
	cache, dao, _ := newCache(t, db.NewInMemoryRedisClient())

	// Act
	tables, err := cache.Get(context.Background())

	// Assert
	require.NoError(t, err)
	assert.Len(t, tables.Forecast, 9)
	fingerprints, err := dao.ListFingerprints()
	require.NoError(t, err)
	assert.Equal(t, []string{tables.Fingerprint}, fingerprints)
}

func TestTablesCacheService_GetServesCachedTables(t *testing.T) {
	// Arrange
	cache, dao, _ := newCache(t, db.NewInMemoryRedisClient())
	first, err := cache.Get(context.Background())
	require.NoError(t, err)
	marked := *first
	marked.Daily = []models.DailyBookingRecord{{Date: models.NewDate(2000, time.January, 1), Bookings: 7}}
	require.NoError(t, dao.SetTables(&marked))

	// Act
	second, err := cache.Get(context.Background())

	// Assert
	require.NoError(t, err)
	assert.Equal(t, marked.Daily, second.Daily)
}

func TestTablesCacheService_ChangedSourceMissesCache(t *testing.T) {
	// Arrange
	cache, _, forecastPath := newCache(t, db.NewInMemoryRedisClient())
	first, err := cache.Get(context.Background())
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(forecastPath, []byte("date,prediction,lower_bound,upper_bound\n2017-09-01,1,0,2\n"), 0o644))

	// Act
	second, err := cache.Get(context.Background())

	// Assert
	require.NoError(t, err)
	assert.NotEqual(t, first.Fingerprint, second.Fingerprint)
	assert.Len(t, second.Forecast, 1)
}

func TestTablesCacheService_ChangedSourceReplacesOldEntry(t *testing.T) {
	// Arrange
	cache, dao, forecastPath := newCache(t, db.NewInMemoryRedisClient())
	_, err := cache.Get(context.Background())
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(forecastPath, []byte("date,prediction,lower_bound,upper_bound\n2017-09-01,1,0,2\n"), 0o644))

	// Act
	second, err := cache.Get(context.Background())

	// Assert
	require.NoError(t, err)
	fingerprints, err := dao.ListFingerprints()
	require.NoError(t, err)
	assert.Equal(t, []string{second.Fingerprint}, fingerprints)
}

func TestTablesCacheService_CacheFailureDoesNotFailLoad(t *testing.T) {
	cache, _, _ := newCache(t, failingRedisClient{})

	tables, err := cache.Get(context.Background())

	require.NoError(t, err)
	assert.Len(t, tables.Forecast, 9)
}

func TestTablesCacheService_MissingSource(t *testing.T) {
	dao := redis.NewRedisTablesDAO(db.NewInMemoryRedisClient())
	l := loader.NewLoader(
		&loader.FileSource{Path: filepath.Join(t.TempDir(), "missing.csv")},
		&loader.FileSource{Path: filepath.Join(t.TempDir(), "missing.csv")},
	)

	_, err := NewTablesCacheService(l, dao).Get(context.Background())

	assert.True(t, errors.Is(err, models.ErrDataUnavailable))
}

func TestTablesCacheService_ClearAndPrune(t *testing.T) {
	// Arrange
	cache, dao, _ := newCache(t, db.NewInMemoryRedisClient())
	tables, err := cache.Get(context.Background())
	require.NoError(t, err)
	require.NoError(t, dao.SetTables(&models.Tables{Fingerprint: "stale-1"}))
	require.NoError(t, dao.SetTables(&models.Tables{Fingerprint: "stale-2"}))

	// Act
	pruned, err := cache.Prune(tables.Fingerprint)
	require.NoError(t, err)
	cleared, err := cache.Clear()
	require.NoError(t, err)

	// Assert
	assert.Equal(t, 2, pruned)
	assert.Equal(t, 1, cleared)
	fingerprints, err := dao.ListFingerprints()
	require.NoError(t, err)
	assert.Empty(t, fingerprints)
}

func TestTablesCacheService_ClearFailure(t *testing.T) {
	cache, _, _ := newCache(t, failingRedisClient{})

	_, err := cache.Clear()

	assert.ErrorIs(t, err, errRedisDown)
}

func TestCacheRefresherService_RefreshPrunesStaleEntries(t *testing.T) {
	// Arrange
	cache, dao, _ := newCache(t, db.NewInMemoryRedisClient())
	require.NoError(t, dao.SetTables(&models.Tables{Fingerprint: "stale"}))
	refresher := NewCacheRefresherService(cache)

	// Act
	err := refresher.Refresh(context.Background())

	// Assert
	require.NoError(t, err)
	fingerprints, err := dao.ListFingerprints()
	require.NoError(t, err)
	require.Len(t, fingerprints, 1)
	assert.NotEqual(t, "stale", fingerprints[0])
}

func TestCacheRefresherService_RefreshReportsLoadErrors(t *testing.T) {
	dailyPath, forecastPath := writeSources(t, dailyCSV, "date,lower_bound,upper_bound\n")
	dao := redis.NewRedisTablesDAO(db.NewInMemoryRedisClient())
	l := loader.NewLoader(&loader.FileSource{Path: dailyPath}, &loader.FileSource{Path: forecastPath})
	refresher := NewCacheRefresherService(NewTablesCacheService(l, dao))

	err := refresher.Refresh(context.Background())

	assert.True(t, errors.Is(err, models.ErrDataMalformed))
}

func TestCacheRefresherService_StartPeriodicJob(t *testing.T) {
	// Arrange
	cache, dao, _ := newCache(t, db.NewInMemoryRedisClient())
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Act
	NewCacheRefresherService(cache).StartPeriodicJob(ctx, 10*time.Millisecond)

	// Assert
	assert.Eventually(t, func() bool {
		fingerprints, err := dao.ListFingerprints()
		return err == nil && len(fingerprints) == 1
	}, time.Second, 10*time.Millisecond)
}
