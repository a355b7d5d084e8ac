package analytics

import (
	"fmt"

	"hotel-forecast/models"

	"github.com/shopspring/decimal"
)

// Summarize reduces the forecast predictions to mean, max, min and exact total.
func Summarize(records []models.ForecastRecord) (models.SummaryMetrics, error) {
	if len(records) == 0 {
		return models.SummaryMetrics{}, fmt.Errorf("summarize forecast: %w", models.ErrEmptyInput)
	}

	total := decimal.Zero
	maximum := records[0].Prediction
	minimum := records[0].Prediction
	for _, r := range records {
		total = total.Add(decimal.NewFromFloat(r.Prediction))
		if r.Prediction > maximum {
			maximum = r.Prediction
		}
		if r.Prediction < minimum {
			minimum = r.Prediction
		}
	}

	return models.SummaryMetrics{
		Average: total.InexactFloat64() / float64(len(records)),
		Maximum: maximum,
		Minimum: minimum,
		Total:   total,
		Count:   len(records),
	}, nil
}
