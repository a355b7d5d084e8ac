package models

import "time"

// DailyBookingRecord is one row of the historical bookings table.
type DailyBookingRecord struct {
	Date     Date `json:"date"`
	Bookings int  `json:"bookings"`
}

// ForecastRecord is one row of the forecast table.
// LowerBound <= Prediction <= UpperBound is expected but never enforced.
type ForecastRecord struct {
	Date       Date    `json:"date"`
	Prediction float64 `json:"prediction"`
	LowerBound float64 `json:"lower_bound"`
	UpperBound float64 `json:"upper_bound"`
}

// Tables holds both loaded inputs of one render cycle.
type Tables struct {
	Daily       []DailyBookingRecord `json:"daily"`
	Forecast    []ForecastRecord     `json:"forecast"`
	Fingerprint string               `json:"fingerprint"`
	LoadedAt    time.Time            `json:"loaded_at"`
}
