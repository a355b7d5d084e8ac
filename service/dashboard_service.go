package services

import (
	"context"
	"fmt"
	"time"

	"hotel-forecast/analytics"
	"hotel-forecast/logger"
	"hotel-forecast/models"

	"github.com/google/uuid"
)

var dashboardLog = logger.New("DashboardService")

// TablesProvider hands out the loaded input tables of one render cycle.
type TablesProvider interface {
	Get(ctx context.Context) (*models.Tables, error)
}

// DashboardService runs render cycles: load the tables once, then derive every view from them.
type DashboardService struct {
	tables        TablesProvider
	historyWindow int
	bucketSize    int
}

// NewDashboardService constructs a DashboardService.
func NewDashboardService(tables TablesProvider, historyWindow, bucketSize int) *DashboardService {
	return &DashboardService{
		tables:        tables,
		historyWindow: historyWindow,
		bucketSize:    bucketSize,
	}
}

// HistoryWindow is the default number of trailing history days.
func (ds *DashboardService) HistoryWindow() int {
	return ds.historyWindow
}

// Build runs one full render cycle. Any failure aborts the whole cycle.
func (ds *DashboardService) Build(ctx context.Context) (*models.Dashboard, error) {
	tables, err := ds.tables.Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load tables: %w", err)
	}

	summary, err := analytics.Summarize(tables.Forecast)
	if err != nil {
		return nil, err
	}
	history := analytics.TrailingWindow(tables.Daily, ds.historyWindow)
	weekly, err := ds.weekly(tables)
	if err != nil {
		return nil, err
	}
	extremes, err := analytics.LocateExtremes(tables.Forecast)
	if err != nil {
		return nil, err
	}

	d := &models.Dashboard{
		CycleID:     uuid.NewString(),
		GeneratedAt: time.Now().UTC(),
		Fingerprint: tables.Fingerprint,
		Summary:     summary,
		History:     history,
		Chart:       analytics.BuildChartSeries(history, tables.Forecast),
		Weekly:      weekly,
		Maximum:     extremes.Maximum,
		Minimum:     extremes.Minimum,
		Forecast:    tables.Forecast,
	}
	dashboardLog.Infof("Built render cycle %s over %d forecast rows", d.CycleID, summary.Count)
	return d, nil
}

// Summary returns the scalar metrics over the forecast predictions.
func (ds *DashboardService) Summary(ctx context.Context) (models.SummaryMetrics, error) {
	tables, err := ds.load(ctx)
	if err != nil {
		return models.SummaryMetrics{}, err
	}
	return analytics.Summarize(tables.Forecast)
}

// History returns the trailing window of daily bookings of the given size.
func (ds *DashboardService) History(ctx context.Context, window int) ([]models.DailyBookingRecord, error) {
	tables, err := ds.load(ctx)
	if err != nil {
		return nil, err
	}
	return analytics.TrailingWindow(tables.Daily, window), nil
}

// Chart returns the overlay series of the forecast chart.
func (ds *DashboardService) Chart(ctx context.Context) (models.ChartSeries, error) {
	tables, err := ds.load(ctx)
	if err != nil {
		return models.ChartSeries{}, err
	}
	history := analytics.TrailingWindow(tables.Daily, ds.historyWindow)
	return analytics.BuildChartSeries(history, tables.Forecast), nil
}

// Weekly returns the positional weekly averages of the forecast.
func (ds *DashboardService) Weekly(ctx context.Context) ([]models.WeeklyBucket, error) {
	tables, err := ds.load(ctx)
	if err != nil {
		return nil, err
	}
	return ds.weekly(tables)
}

// Extremes returns the highest and lowest forecast rows.
func (ds *DashboardService) Extremes(ctx context.Context) (models.Extremes, error) {
	tables, err := ds.load(ctx)
	if err != nil {
		return models.Extremes{}, err
	}
	return analytics.LocateExtremes(tables.Forecast)
}

// Records returns the forecast table as loaded.
func (ds *DashboardService) Records(ctx context.Context) ([]models.ForecastRecord, error) {
	tables, err := ds.load(ctx)
	if err != nil {
		return nil, err
	}
	return tables.Forecast, nil
}

func (ds *DashboardService) load(ctx context.Context) (*models.Tables, error) {
	tables, err := ds.tables.Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load tables: %w", err)
	}
	return tables, nil
}

func (ds *DashboardService) weekly(tables *models.Tables) ([]models.WeeklyBucket, error) {
	buckets, err := analytics.WeeklyAverages(tables.Forecast, ds.bucketSize)
	if err != nil {
		return nil, err
	}
	for _, b := range buckets {
		if !b.CalendarAligned {
			dashboardLog.Warnf("%s spans %s to %s over %d rows and is not a calendar week",
				b.Label, b.StartDate, b.EndDate, b.Count)
		}
	}
	return buckets, nil
}
