package models

import "time"

// Dashboard is everything one render cycle hands to the display layer.
type Dashboard struct {
	CycleID     string               `json:"cycle_id"`
	GeneratedAt time.Time            `json:"generated_at"`
	Fingerprint string               `json:"fingerprint"`
	Summary     SummaryMetrics       `json:"summary"`
	History     []DailyBookingRecord `json:"history"`
	Chart       ChartSeries          `json:"chart"`
	Weekly      []WeeklyBucket       `json:"weekly"`
	Maximum     ExtremumPoint        `json:"maximum"`
	Minimum     ExtremumPoint        `json:"minimum"`
	Forecast    []ForecastRecord     `json:"forecast"`
}

// Extremes pairs the highest and lowest forecast rows.
type Extremes struct {
	Maximum ExtremumPoint `json:"maximum"`
	Minimum ExtremumPoint `json:"minimum"`
}
