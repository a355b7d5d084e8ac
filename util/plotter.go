package util

import (
	"hotel-forecast/analytics"
	"hotel-forecast/models"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/go-echarts/go-echarts/v2/types"
)

const (
	HISTORY_COLOR    = "gray"
	PREDICTION_COLOR = "#FF4B4B"
	BOUND_COLOR      = "lightcoral"
	BAND_FILL_COLOR  = "rgba(255,182,193,0.2)"

	// bandStack stacks the band width on top of the lower bound so the filled
	// area spans exactly lower..upper.
	bandStack = "band"

	// BandSeriesName is the filled series between the two bounds. It is kept out of the legend.
	BandSeriesName = "신뢰구간"

	// bandStackStrategy switches the lower bound and band series (indices 3 and 4)
	// to stack regardless of sign. The default samesign strategy leaves a positive
	// width unstacked on a negative lower bound.
	bandStackStrategy types.FuncStr = "%MY_ECHARTS%.setOption({series:[{},{},{},{stackStrategy:'all'},{stackStrategy:'all'}]});"
)

// Continuous colour scales of the bar charts, light to dark.
var (
	RedsScale = []string{"#fff5f0", "#fcbba1", "#fb6a4a", "#cb181d", "#67000d"}
	TealScale = []string{"#d1eeea", "#a8dbd9", "#85c4c9", "#4f90a6", "#2a5674"}
)

// ForecastLineChart draws the history window, the prediction and the
// confidence band between the lower and upper bounds on a shared time axis.
func ForecastLineChart(series models.ChartSeries) *charts.Line {
	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			ChartID: "forecast_chart",
			Width:   "100%",
			Height:  "500px",
		}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true), Trigger: "axis"}),
		charts.WithLegendOpts(opts.Legend{
			Show:   opts.Bool(true),
			Top:    "top",
			Right:  "right",
			Orient: "horizontal",
			Data: []string{
				series.Historical.Name,
				series.Prediction.Name,
				series.UpperBound.Name,
				series.LowerBound.Name,
			},
		}),
		charts.WithXAxisOpts(opts.XAxis{Name: "날짜", Type: "time"}),
		charts.WithYAxisOpts(opts.YAxis{Name: "예약 건수"}),
	)

	line.AddSeries(series.Historical.Name, lineData(series.Historical.Points),
		charts.WithLineChartOpts(opts.LineChart{ShowSymbol: opts.Bool(false)}),
		charts.WithLineStyleOpts(opts.LineStyle{Color: HISTORY_COLOR, Width: 2, Opacity: opts.Float(0.6)}),
		charts.WithItemStyleOpts(opts.ItemStyle{Color: HISTORY_COLOR}),
	)
	line.AddSeries(series.Prediction.Name, lineData(series.Prediction.Points),
		charts.WithLineChartOpts(opts.LineChart{Symbol: "circle", SymbolSize: 6, ShowSymbol: opts.Bool(true)}),
		charts.WithLineStyleOpts(opts.LineStyle{Color: PREDICTION_COLOR, Width: 3}),
		charts.WithItemStyleOpts(opts.ItemStyle{Color: PREDICTION_COLOR}),
	)
	line.AddSeries(series.UpperBound.Name, lineData(series.UpperBound.Points), boundOpts()...)
	line.AddSeries(series.LowerBound.Name, lineData(series.LowerBound.Points),
		append(boundOpts(), charts.WithLineChartOpts(opts.LineChart{ShowSymbol: opts.Bool(false), Stack: bandStack}))...,
	)

	if series.LowerBound.FillTo == models.SeriesUpperBound {
		line.AddSeries(BandSeriesName, lineData(bandWidth(series.LowerBound.Points, series.UpperBound.Points)),
			charts.WithLineChartOpts(opts.LineChart{ShowSymbol: opts.Bool(false), Stack: bandStack}),
			charts.WithLineStyleOpts(opts.LineStyle{Opacity: opts.Float(0)}),
			charts.WithAreaStyleOpts(opts.AreaStyle{Color: BAND_FILL_COLOR, Opacity: opts.Float(1)}),
		)
		line.AddJSFuncStrs(bandStackStrategy)
	}
	return line
}

// DailyForecastBarChart draws one bar per forecast day coloured by its prediction.
func DailyForecastBarChart(records []models.ForecastRecord) *charts.Bar {
	x := make([]string, 0, len(records))
	data := make([]opts.BarData, 0, len(records))
	values := make([]float64, 0, len(records))
	for _, r := range records {
		x = append(x, r.Date.String())
		data = append(data, opts.BarData{Name: r.Date.String(), Value: r.Prediction})
		values = append(values, r.Prediction)
	}

	bar := newScaledBar("daily_forecast_chart", "600px", "날짜", "예측 건수", values, RedsScale)
	bar.SetXAxis(x).AddSeries(analytics.PredictionSeriesName, data)
	return bar
}

// WeeklyBarChart draws the average prediction of each positional week.
func WeeklyBarChart(buckets []models.WeeklyBucket) *charts.Bar {
	x := make([]string, 0, len(buckets))
	data := make([]opts.BarData, 0, len(buckets))
	values := make([]float64, 0, len(buckets))
	for _, b := range buckets {
		x = append(x, b.Label)
		data = append(data, opts.BarData{Name: b.Label, Value: b.AveragePrediction})
		values = append(values, b.AveragePrediction)
	}

	bar := newScaledBar("weekly_forecast_chart", "400px", "주차", "평균 예약 건수", values, TealScale)
	bar.SetXAxis(x).AddSeries("평균 예약 건수", data)
	return bar
}

func newScaledBar(id, height, xName, yName string, values []float64, scale []string) *charts.Bar {
	low, high := valueRange(values)
	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			ChartID: id,
			Width:   "100%",
			Height:  height,
		}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(false)}),
		charts.WithXAxisOpts(opts.XAxis{Name: xName}),
		charts.WithYAxisOpts(opts.YAxis{Name: yName}),
		charts.WithVisualMapOpts(opts.VisualMap{
			Calculable: opts.Bool(true),
			Min:        float32(low),
			Max:        float32(high),
			Right:      "0",
			InRange:    &opts.VisualMapInRange{Color: scale},
		}),
	)
	return bar
}

func lineData(points []models.SeriesPoint) []opts.LineData {
	data := make([]opts.LineData, 0, len(points))
	for _, p := range points {
		data = append(data, opts.LineData{Value: []interface{}{p.Date.String(), p.Value}})
	}
	return data
}

func boundOpts() []charts.SeriesOpts {
	return []charts.SeriesOpts{
		charts.WithLineChartOpts(opts.LineChart{ShowSymbol: opts.Bool(false)}),
		charts.WithLineStyleOpts(opts.LineStyle{Color: BOUND_COLOR, Width: 1, Type: "dashed"}),
		charts.WithItemStyleOpts(opts.ItemStyle{Color: BOUND_COLOR}),
	}
}

// bandWidth pairs lower and upper points by position.
func bandWidth(lower, upper []models.SeriesPoint) []models.SeriesPoint {
	n := len(lower)
	if len(upper) < n {
		n = len(upper)
	}
	width := make([]models.SeriesPoint, n)
	for i := 0; i < n; i++ {
		width[i] = models.SeriesPoint{Date: lower[i].Date, Value: upper[i].Value - lower[i].Value}
	}
	return width
}

func valueRange(values []float64) (float64, float64) {
	if len(values) == 0 {
		return 0, 0
	}
	low, high := values[0], values[0]
	for _, v := range values[1:] {
		if v < low {
			low = v
		}
		if v > high {
			high = v
		}
	}
	return low, high
}
