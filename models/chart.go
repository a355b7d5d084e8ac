package models

type SeriesKind string

const (
	SeriesHistorical SeriesKind = "historical"
	SeriesPrediction SeriesKind = "prediction"
	SeriesUpperBound SeriesKind = "upper_bound"
	SeriesLowerBound SeriesKind = "lower_bound"
)

// SeriesPoint is a single (date, value) sample of a chart series.
type SeriesPoint struct {
	Date  Date    `json:"date"`
	Value float64 `json:"value"`
}

// Series is one overlay line of the forecast chart.
type Series struct {
	Name   string        `json:"name"`
	Kind   SeriesKind    `json:"kind"`
	Points []SeriesPoint `json:"points"`

	// FillTo names the series whose values bound the shaded region drawn from this one.
	FillTo SeriesKind `json:"fill_to,omitempty"`
}

// ChartSeries groups the four series of the forecast chart. Prediction, UpperBound
// and LowerBound share the forecast table's row order.
type ChartSeries struct {
	Historical Series `json:"historical"`
	Prediction Series `json:"prediction"`
	UpperBound Series `json:"upper_bound"`
	LowerBound Series `json:"lower_bound"`
}
