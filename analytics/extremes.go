package analytics

import (
	"fmt"

	"hotel-forecast/models"
)

// LocateExtremes finds the rows with the highest and lowest prediction. On
// ties the first row in input order wins.
func LocateExtremes(records []models.ForecastRecord) (models.Extremes, error) {
	if len(records) == 0 {
		return models.Extremes{}, fmt.Errorf("locate extremes: %w", models.ErrEmptyInput)
	}

	maxIdx, minIdx := 0, 0
	for i, r := range records {
		if r.Prediction > records[maxIdx].Prediction {
			maxIdx = i
		}
		if r.Prediction < records[minIdx].Prediction {
			minIdx = i
		}
	}

	return models.Extremes{
		Maximum: point(records, maxIdx, models.ExtremumMaximum),
		Minimum: point(records, minIdx, models.ExtremumMinimum),
	}, nil
}

func point(records []models.ForecastRecord, idx int, kind models.ExtremumKind) models.ExtremumPoint {
	return models.ExtremumPoint{
		Date:  records[idx].Date,
		Value: records[idx].Prediction,
		Kind:  kind,
		Index: idx,
	}
}
