package models

import "github.com/shopspring/decimal"

// SummaryMetrics are the scalar reductions over the forecast predictions.
type SummaryMetrics struct {
	Average float64         `json:"average"`
	Maximum float64         `json:"maximum"`
	Minimum float64         `json:"minimum"`
	Total   decimal.Decimal `json:"total"`
	Count   int             `json:"count"`
}

// WeeklyBucket averages one positional group of forecast rows.
type WeeklyBucket struct {
	WeekIndex         int     `json:"week_index"`
	Label             string  `json:"label"`
	AveragePrediction float64 `json:"average_prediction"`
	Count             int     `json:"count"`
	StartDate         Date    `json:"start_date"`
	EndDate           Date    `json:"end_date"`

	// CalendarAligned is false when the bucket's rows are not consecutive days,
	// in which case the week label does not describe a real calendar week.
	CalendarAligned bool `json:"calendar_aligned"`
}

type ExtremumKind string

const (
	ExtremumMaximum ExtremumKind = "maximum"
	ExtremumMinimum ExtremumKind = "minimum"
)

// ExtremumPoint is the forecast row holding the highest or lowest prediction.
type ExtremumPoint struct {
	Date  Date         `json:"date"`
	Value float64      `json:"value"`
	Kind  ExtremumKind `json:"kind"`
	Index int          `json:"index"`
}
