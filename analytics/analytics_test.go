package analytics

import (
	"errors"
	"testing"
	"time"

	"hotel-forecast/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var forecastStart = models.NewDate(2017, time.September, 1)

func forecastOf(predictions ...float64) []models.ForecastRecord {
	records := make([]models.ForecastRecord, len(predictions))
	for i, p := range predictions {
		records[i] = models.ForecastRecord{
			Date:       forecastStart.AddDays(i),
			Prediction: p,
			LowerBound: p - 10,
			UpperBound: p + 10,
		}
	}
	return records
}

func historyOf(n int) []models.DailyBookingRecord {
	start := models.NewDate(2017, time.January, 1)
	records := make([]models.DailyBookingRecord, n)
	for i := range records {
		records[i] = models.DailyBookingRecord{Date: start.AddDays(i), Bookings: 100 + i}
	}
	return records
}

func TestDashboardFigures(t *testing.T) {
	// Arrange
	records := forecastOf(10, 20, 30, 40, 50, 40, 30, 20, 10)

	// Act
	summary, err := Summarize(records)
	require.NoError(t, err)
	extremes, err := LocateExtremes(records)
	require.NoError(t, err)
	weeks, err := WeeklyAverages(records, DefaultBucketSize)
	require.NoError(t, err)

	// Assert
	assert.InDelta(t, 27.78, summary.Average, 0.005)
	assert.Equal(t, 50.0, summary.Maximum)
	assert.Equal(t, 10.0, summary.Minimum)
	assert.True(t, summary.Total.Equal(decimal.NewFromInt(250)))
	assert.Equal(t, 9, summary.Count)

	assert.Equal(t, 50.0, extremes.Maximum.Value)
	assert.Equal(t, forecastStart.AddDays(4), extremes.Maximum.Date)
	assert.Equal(t, models.ExtremumMaximum, extremes.Maximum.Kind)
	assert.Equal(t, 10.0, extremes.Minimum.Value)
	assert.Equal(t, forecastStart, extremes.Minimum.Date)
	assert.Equal(t, 0, extremes.Minimum.Index)

	require.Len(t, weeks, 2)
	assert.Equal(t, "1주차", weeks[0].Label)
	assert.InDelta(t, 31.43, weeks[0].AveragePrediction, 0.005)
	assert.Equal(t, 7, weeks[0].Count)
	assert.Equal(t, "2주차", weeks[1].Label)
	assert.InDelta(t, 15.0, weeks[1].AveragePrediction, 1e-9)
	assert.Equal(t, 2, weeks[1].Count)
}

func TestSummarize(t *testing.T) {
	tests := []struct {
		name        string
		predictions []float64
		average     float64
		total       string
	}{
		{name: "single row", predictions: []float64{42.5}, average: 42.5, total: "42.5"},
		{name: "decimal fractions", predictions: []float64{0.1, 0.2, 0.3}, average: 0.2, total: "0.6"},
		{name: "negative values", predictions: []float64{-5, 5, 15}, average: 5, total: "15"},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			// Act
			summary, err := Summarize(forecastOf(test.predictions...))

			// Assert
			require.NoError(t, err)
			assert.InDelta(t, test.average, summary.Average, 1e-9)
			assert.Equal(t, test.total, summary.Total.String())
			assert.LessOrEqual(t, summary.Minimum, summary.Average)
			assert.LessOrEqual(t, summary.Average, summary.Maximum)
		})
	}
}

func TestSummarize_EmptyInput(t *testing.T) {
	_, err := Summarize(nil)
	assert.True(t, errors.Is(err, models.ErrEmptyInput))
}

func TestSummarize_DoesNotRound(t *testing.T) {
	summary, err := Summarize(forecastOf(1, 2, 2))
	require.NoError(t, err)
	assert.InDelta(t, 5.0/3.0, summary.Average, 1e-12)
}

func TestTrailingWindow(t *testing.T) {
	tests := []struct {
		name     string
		length   int
		size     int
		expected int
	}{
		{name: "longer than window", length: 100, size: 60, expected: 60},
		{name: "shorter than window", length: 12, size: 60, expected: 12},
		{name: "exactly window", length: 60, size: 60, expected: 60},
		{name: "empty history", length: 0, size: 60, expected: 0},
		{name: "zero window", length: 10, size: 0, expected: 0},
		{name: "negative window", length: 10, size: -3, expected: 0},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			// Arrange
			history := historyOf(test.length)

			// Act
			window := TrailingWindow(history, test.size)

			// Assert
			require.Len(t, window, test.expected)
			assert.Equal(t, history[test.length-test.expected:], window)
		})
	}
}

func TestTrailingWindow_ReturnsCopy(t *testing.T) {
	history := historyOf(5)

	window := TrailingWindow(history, 3)
	window[0].Bookings = -1

	assert.Equal(t, 102, history[2].Bookings)
}

func TestBuildChartSeries(t *testing.T) {
	// Arrange
	history := historyOf(3)
	forecast := forecastOf(30, 20)

	// Act
	series := BuildChartSeries(history, forecast)

	// Assert
	assert.Equal(t, HistoricalSeriesName, series.Historical.Name)
	assert.Equal(t, models.SeriesHistorical, series.Historical.Kind)
	require.Len(t, series.Historical.Points, 3)
	assert.Equal(t, 102.0, series.Historical.Points[2].Value)
	assert.Equal(t, history[2].Date, series.Historical.Points[2].Date)

	assert.Equal(t, []models.SeriesPoint{
		{Date: forecast[0].Date, Value: 30},
		{Date: forecast[1].Date, Value: 20},
	}, series.Prediction.Points)
	assert.Equal(t, []models.SeriesPoint{
		{Date: forecast[0].Date, Value: 40},
		{Date: forecast[1].Date, Value: 30},
	}, series.UpperBound.Points)
	assert.Equal(t, []models.SeriesPoint{
		{Date: forecast[0].Date, Value: 20},
		{Date: forecast[1].Date, Value: 10},
	}, series.LowerBound.Points)

	assert.Equal(t, models.SeriesUpperBound, series.LowerBound.FillTo)
	assert.Empty(t, series.UpperBound.FillTo)
	assert.Empty(t, series.Prediction.FillTo)
}

func TestBuildChartSeries_EmptyForecast(t *testing.T) {
	series := BuildChartSeries(historyOf(2), nil)

	assert.Len(t, series.Historical.Points, 2)
	assert.Empty(t, series.Prediction.Points)
	assert.Empty(t, series.UpperBound.Points)
	assert.Empty(t, series.LowerBound.Points)
}

func TestBuildChartSeries_KeepsBoundViolations(t *testing.T) {
	forecast := []models.ForecastRecord{
		{Date: forecastStart, Prediction: 50, LowerBound: 60, UpperBound: 40},
	}

	series := BuildChartSeries(nil, forecast)

	assert.Equal(t, 60.0, series.LowerBound.Points[0].Value)
	assert.Equal(t, 40.0, series.UpperBound.Points[0].Value)
}

func TestWeeklyAverages_BucketCounts(t *testing.T) {
	tests := []struct {
		rows    int
		buckets int
		last    int
	}{
		{rows: 1, buckets: 1, last: 1},
		{rows: 7, buckets: 1, last: 7},
		{rows: 8, buckets: 2, last: 1},
		{rows: 30, buckets: 5, last: 2},
		{rows: 35, buckets: 5, last: 7},
	}

	for _, test := range tests {
		predictions := make([]float64, test.rows)
		for i := range predictions {
			predictions[i] = float64(i*3 + 1)
		}
		records := forecastOf(predictions...)

		weeks, err := WeeklyAverages(records, DefaultBucketSize)

		require.NoError(t, err)
		require.Len(t, weeks, test.buckets)
		assert.Equal(t, test.last, weeks[len(weeks)-1].Count)

		summary, err := Summarize(records)
		require.NoError(t, err)
		weighted := 0.0
		for i, w := range weeks {
			assert.Equal(t, i+1, w.WeekIndex)
			weighted += w.AveragePrediction * float64(w.Count)
		}
		assert.InDelta(t, summary.Total.InexactFloat64(), weighted, 1e-6)
	}
}

func TestWeeklyAverages_CalendarAlignment(t *testing.T) {
	// Arrange
	records := forecastOf(1, 2, 3, 4)
	records[3].Date = records[3].Date.AddDays(5)

	// Act
	weeks, err := WeeklyAverages(records, 2)

	// Assert
	require.NoError(t, err)
	require.Len(t, weeks, 2)
	assert.True(t, weeks[0].CalendarAligned)
	assert.False(t, weeks[1].CalendarAligned)
	assert.Equal(t, records[2].Date, weeks[1].StartDate)
	assert.Equal(t, records[3].Date, weeks[1].EndDate)
}

func TestWeeklyAverages_Errors(t *testing.T) {
	_, err := WeeklyAverages(nil, DefaultBucketSize)
	assert.True(t, errors.Is(err, models.ErrEmptyInput))

	_, err = WeeklyAverages(forecastOf(1), 0)
	assert.Error(t, err)
	assert.False(t, errors.Is(err, models.ErrEmptyInput))
}

func TestLocateExtremes_TiesPickFirst(t *testing.T) {
	// Arrange
	records := forecastOf(5, 9, 1, 9, 1)

	// Act
	extremes, err := LocateExtremes(records)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, 1, extremes.Maximum.Index)
	assert.Equal(t, records[1].Date, extremes.Maximum.Date)
	assert.Equal(t, 2, extremes.Minimum.Index)
	assert.Equal(t, models.ExtremumMinimum, extremes.Minimum.Kind)
}

func TestLocateExtremes_Dominates(t *testing.T) {
	records := forecastOf(3.5, -2, 17.25, 8, 17.25, 0.001)

	extremes, err := LocateExtremes(records)

	require.NoError(t, err)
	for _, r := range records {
		assert.GreaterOrEqual(t, extremes.Maximum.Value, r.Prediction)
		assert.LessOrEqual(t, extremes.Minimum.Value, r.Prediction)
	}
}

func TestLocateExtremes_EmptyInput(t *testing.T) {
	_, err := LocateExtremes([]models.ForecastRecord{})
	assert.True(t, errors.Is(err, models.ErrEmptyInput))
}
