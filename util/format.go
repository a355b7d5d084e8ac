package util

import (
	"fmt"

	"hotel-forecast/models"

	"github.com/dustin/go-humanize"
	"github.com/shopspring/decimal"
)

// KoreanDateLayout renders dates as "2017년 09월 05일".
const KoreanDateLayout = "2006년 01월 02일"

// COUNT_SUFFIX is appended to every booking count shown on the dashboard.
const COUNT_SUFFIX = "건"

// FormatCount rounds a booking count to a whole number for display.
func FormatCount(v float64) string {
	return fmt.Sprintf("%.0f%s", v, COUNT_SUFFIX)
}

// FormatTotal renders the forecast total with thousands separators and at most two decimals.
func FormatTotal(total decimal.Decimal) string {
	return humanize.CommafWithDigits(total.Round(2).InexactFloat64(), 2) + COUNT_SUFFIX
}

// FormatKoreanDate renders a date the way the insight cards show it.
func FormatKoreanDate(d models.Date) string {
	return d.Format(KoreanDateLayout)
}

// FormatValue renders a table cell with two decimals.
func FormatValue(v float64) string {
	return fmt.Sprintf("%.2f", v)
}
