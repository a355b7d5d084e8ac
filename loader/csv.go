package loader

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"strings"

	"hotel-forecast/models"

	"github.com/gocarina/gocsv"
)

var (
	DailyBookingColumns = []string{"date", "bookings"}
	ForecastColumns     = []string{"date", "prediction", "lower_bound", "upper_bound"}
)

var utf8BOM = []byte("\xef\xbb\xbf")

type dailyBookingRow struct {
	Date     models.Date `csv:"date"`
	Bookings *int        `csv:"bookings,omitempty"`
}

type forecastRow struct {
	Date       models.Date `csv:"date"`
	Prediction *float64    `csv:"prediction,omitempty"`
	LowerBound *float64    `csv:"lower_bound,omitempty"`
	UpperBound *float64    `csv:"upper_bound,omitempty"`
}

// ParseDailyBookings decodes the historical bookings table.
func ParseDailyBookings(name string, data []byte) ([]models.DailyBookingRecord, error) {
	data = bytes.TrimPrefix(data, utf8BOM)
	if err := validateHeader(name, data, DailyBookingColumns); err != nil {
		return nil, err
	}

	var rows []*dailyBookingRow
	if err := gocsv.UnmarshalBytes(data, &rows); err != nil {
		return nil, malformed(name, "%v", err)
	}

	records := make([]models.DailyBookingRecord, 0, len(rows))
	for i, row := range rows {
		if row.Bookings == nil {
			return nil, malformed(name, "row %d: missing bookings", i+1)
		}
		records = append(records, models.DailyBookingRecord{
			Date:     row.Date,
			Bookings: *row.Bookings,
		})
	}
	return records, nil
}

// ParseForecast decodes the forecast table.
func ParseForecast(name string, data []byte) ([]models.ForecastRecord, error) {
	data = bytes.TrimPrefix(data, utf8BOM)
	if err := validateHeader(name, data, ForecastColumns); err != nil {
		return nil, err
	}

	var rows []*forecastRow
	if err := gocsv.UnmarshalBytes(data, &rows); err != nil {
		return nil, malformed(name, "%v", err)
	}

	records := make([]models.ForecastRecord, 0, len(rows))
	for i, row := range rows {
		values := []struct {
			column string
			v      *float64
		}{
			{"prediction", row.Prediction},
			{"lower_bound", row.LowerBound},
			{"upper_bound", row.UpperBound},
		}
		for _, value := range values {
			if value.v == nil {
				return nil, malformed(name, "row %d: missing %s", i+1, value.column)
			}
			if math.IsNaN(*value.v) || math.IsInf(*value.v, 0) {
				return nil, malformed(name, "row %d: %s is not finite", i+1, value.column)
			}
		}
		records = append(records, models.ForecastRecord{
			Date:       row.Date,
			Prediction: *row.Prediction,
			LowerBound: *row.LowerBound,
			UpperBound: *row.UpperBound,
		})
	}
	return records, nil
}

// validateHeader checks that the first CSV record names every required column exactly once.
func validateHeader(name string, data []byte, required []string) error {
	header, err := csv.NewReader(bytes.NewReader(data)).Read()
	if errors.Is(err, io.EOF) {
		return malformed(name, "missing header row")
	}
	if err != nil {
		return malformed(name, "unreadable header: %v", err)
	}

	seen := make(map[string]int, len(header))
	for _, column := range header {
		seen[column]++
	}
	var missing, duplicated []string
	for _, column := range required {
		switch {
		case seen[column] == 0:
			missing = append(missing, column)
		case seen[column] > 1:
			duplicated = append(duplicated, column)
		}
	}
	if len(missing) > 0 {
		return malformed(name, "missing required column(s): %s", strings.Join(missing, ", "))
	}
	// A repeated column is ambiguous: the decoder would silently keep the last copy.
	if len(duplicated) > 0 {
		return malformed(name, "duplicate column(s): %s", strings.Join(duplicated, ", "))
	}
	return nil
}

func malformed(name string, format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s: %s", models.ErrDataMalformed, name, fmt.Sprintf(format, args...))
}
