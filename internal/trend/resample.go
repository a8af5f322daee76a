package trend

import (
	"math"
	"sort"
	"time"

	"github.com/guttosm/stocktrend/internal/domain/models"
)

// Reduce applies the timeframe selector to a date-ordered series.
//
//   - 1W / 1M: calendar buckets aggregated with first/max/min/last.
//   - 1D, 6M, 1Y, 3Y, 5Y: the trailing N rows, unresampled.
//   - ALL or anything else: a copy of the input.
//
// The input slice is never modified.
func Reduce(rows []models.PriceObservation, tf models.Timeframe) []models.PriceObservation {
	sorted := make([]models.PriceObservation, len(rows))
	copy(sorted, rows)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Date.Before(sorted[j].Date) })

	switch {
	case tf == models.Timeframe1W:
		return resample(sorted, weekEnd)
	case tf == models.Timeframe1M:
		return resample(sorted, monthEnd)
	}
	if n, ok := tf.Lookback(); ok {
		return tail(sorted, n)
	}
	return sorted
}

func tail(rows []models.PriceObservation, n int) []models.PriceObservation {
	if len(rows) <= n {
		return rows
	}
	return rows[len(rows)-n:]
}

// bucketLabel maps a date to the label of the calendar window containing it.
type bucketLabel func(time.Time) time.Time

// weekEnd returns the Sunday closing the Monday..Sunday week of d.
func weekEnd(d time.Time) time.Time {
	d = truncateToDate(d)
	return d.AddDate(0, 0, (7-int(d.Weekday()))%7)
}

// monthEnd returns the last day of the month of d.
func monthEnd(d time.Time) time.Time {
	y, m, _ := d.Date()
	return time.Date(y, m+1, 0, 0, 0, 0, 0, d.Location())
}

func truncateToDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// resample groups consecutive rows sharing a bucket label. Windows without
// rows produce no output, so the result is never longer than the input.
func resample(rows []models.PriceObservation, label bucketLabel) []models.PriceObservation {
	out := make([]models.PriceObservation, 0)
	for start := 0; start < len(rows); {
		key := label(rows[start].Date)
		end := start + 1
		for end < len(rows) && label(rows[end].Date).Equal(key) {
			end++
		}
		bar := aggregate(rows[start:end])
		bar.Date = key
		out = append(out, bar)
		start = end
	}
	return out
}

// aggregate folds one window. NaN values are skipped; a column with no
// defined value stays NaN.
func aggregate(window []models.PriceObservation) models.PriceObservation {
	bar := models.PriceObservation{
		Symbol:    window[len(window)-1].Symbol,
		Open:      math.NaN(),
		High:      math.NaN(),
		Low:       math.NaN(),
		Close:     math.NaN(),
		CloseNorm: math.NaN(),
	}
	for _, r := range window {
		if math.IsNaN(bar.Open) {
			bar.Open = r.Open
		}
		if !math.IsNaN(r.High) && (math.IsNaN(bar.High) || r.High > bar.High) {
			bar.High = r.High
		}
		if !math.IsNaN(r.Low) && (math.IsNaN(bar.Low) || r.Low < bar.Low) {
			bar.Low = r.Low
		}
		if !math.IsNaN(r.Close) {
			bar.Close = r.Close
		}
		if !math.IsNaN(r.CloseNorm) {
			bar.CloseNorm = r.CloseNorm
		}
	}
	return bar
}
