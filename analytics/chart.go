package analytics

import "hotel-forecast/models"

// Display names of the forecast chart series.
const (
	HistoricalSeriesName = "과거 실적"
	PredictionSeriesName = "예측값"
	UpperBoundSeriesName = "상한 (95%)"
	LowerBoundSeriesName = "하한 (95%)"
)

// BuildChartSeries assembles the overlay series of the forecast chart. The
// historical series covers the given window; the three forecast series follow
// the forecast table's order. The two ranges are never aligned or interpolated.
func BuildChartSeries(history []models.DailyBookingRecord, forecast []models.ForecastRecord) models.ChartSeries {
	historical := make([]models.SeriesPoint, 0, len(history))
	for _, r := range history {
		historical = append(historical, models.SeriesPoint{Date: r.Date, Value: float64(r.Bookings)})
	}

	prediction := make([]models.SeriesPoint, 0, len(forecast))
	upper := make([]models.SeriesPoint, 0, len(forecast))
	lower := make([]models.SeriesPoint, 0, len(forecast))
	for _, r := range forecast {
		prediction = append(prediction, models.SeriesPoint{Date: r.Date, Value: r.Prediction})
		upper = append(upper, models.SeriesPoint{Date: r.Date, Value: r.UpperBound})
		lower = append(lower, models.SeriesPoint{Date: r.Date, Value: r.LowerBound})
	}

	return models.ChartSeries{
		Historical: models.Series{Name: HistoricalSeriesName, Kind: models.SeriesHistorical, Points: historical},
		Prediction: models.Series{Name: PredictionSeriesName, Kind: models.SeriesPrediction, Points: prediction},
		UpperBound: models.Series{Name: UpperBoundSeriesName, Kind: models.SeriesUpperBound, Points: upper},
		LowerBound: models.Series{
			Name:   LowerBoundSeriesName,
			Kind:   models.SeriesLowerBound,
			Points: lower,
			FillTo: models.SeriesUpperBound,
		},
	}
}
