package analytics

import (
	"fmt"

	"hotel-forecast/models"
)

// DefaultBucketSize groups forecast rows into weeks.
const DefaultBucketSize = 7

// WeekLabel is the display label of a 1-based week index.
func WeekLabel(weekIndex int) string {
	return fmt.Sprintf("%d주차", weekIndex)
}

// WeeklyAverages groups forecast rows by position into buckets of bucketSize
// rows (week index = position/bucketSize + 1) and averages each bucket's
// predictions. The last bucket may be short. Buckets follow row positions, not
// calendar weeks; CalendarAligned reports whether a bucket's dates are consecutive days.
func WeeklyAverages(records []models.ForecastRecord, bucketSize int) ([]models.WeeklyBucket, error) {
	if len(records) == 0 {
		return nil, fmt.Errorf("weekly averages: %w", models.ErrEmptyInput)
	}
	if bucketSize < 1 {
		return nil, fmt.Errorf("weekly averages: bucket size must be at least 1, got %d", bucketSize)
	}

	buckets := make([]models.WeeklyBucket, 0, (len(records)+bucketSize-1)/bucketSize)
	for start := 0; start < len(records); start += bucketSize {
		end := start + bucketSize
		if end > len(records) {
			end = len(records)
		}
		group := records[start:end]

		sum := 0.0
		aligned := true
		for i, r := range group {
			sum += r.Prediction
			if i > 0 && !r.Date.Equal(group[i-1].Date.AddDays(1).Time) {
				aligned = false
			}
		}

		weekIndex := start/bucketSize + 1
		buckets = append(buckets, models.WeeklyBucket{
			WeekIndex:         weekIndex,
			Label:             WeekLabel(weekIndex),
			AveragePrediction: sum / float64(len(group)),
			Count:             len(group),
			StartDate:         group[0].Date,
			EndDate:           group[len(group)-1].Date,
			CalendarAligned:   aligned,
		})
	}
	return buckets, nil
}
