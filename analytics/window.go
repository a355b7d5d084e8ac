package analytics

import "hotel-forecast/models"

// DefaultHistoryWindow is the number of trailing days of history shown next to the forecast.
const DefaultHistoryWindow = 60

// TrailingWindow returns a copy of the last min(size, len(records)) records in
// their original order. A non-positive size yields an empty window.
func TrailingWindow(records []models.DailyBookingRecord, size int) []models.DailyBookingRecord {
	if size < 0 {
		size = 0
	}
	start := len(records) - size
	if start < 0 {
		start = 0
	}
	window := make([]models.DailyBookingRecord, len(records)-start)
	copy(window, records[start:])
	return window
}
