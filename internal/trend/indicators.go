package trend

import (
	"math"

	"github.com/guttosm/stocktrend/internal/domain/models"
)

// RollingWindow is the number of periods averaged by rolling_mean_20.
const RollingWindow = 20

// Annotate computes avg_price, price_change and rolling_mean_20 for every row.
func Annotate(rows []models.PriceObservation) []models.TrendPoint {
	closes := make([]float64, len(rows))
	for i, r := range rows {
		closes[i] = r.Close
	}
	changes := PercentChange(closes)
	means := RollingMean(closes, RollingWindow)

	out := make([]models.TrendPoint, len(rows))
	for i, r := range rows {
		out[i] = models.TrendPoint{
			PriceObservation: r,
			AvgPrice:         (r.High + r.Low) / 2,
			PriceChange:      changes[i],
			RollingMean20:    means[i],
		}
	}
	return out
}

// PercentChange returns the change of each value from its predecessor in
// percent. The first element, and any result that is NaN or infinite, is 0.
func PercentChange(values []float64) []float64 {
	out := make([]float64, len(values))
	for i := 1; i < len(values); i++ {
		v := (values[i]/values[i-1] - 1) * 100
		if math.IsNaN(v) || math.IsInf(v, 0) {
			continue
		}
		out[i] = v
	}
	return out
}

// RollingMean returns the trailing mean over at most window elements
// ending at each index. NaN values are skipped; an index whose window has
// no defined value yields NaN.
func RollingMean(values []float64, window int) []float64 {
	out := make([]float64, len(values))
	for i := range values {
		from := i - window + 1
		if from < 0 {
			from = 0
		}
		sum, n := 0.0, 0
		for _, v := range values[from : i+1] {
			if math.IsNaN(v) {
				continue
			}
			sum += v
			n++
		}
		if n == 0 {
			out[i] = math.NaN()
			continue
		}
		out[i] = sum / float64(n)
	}
	return out
}
