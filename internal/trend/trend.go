// Package trend turns a raw price series into chart-ready points.
//
// The pipeline is Reduce (timeframe selection and calendar resampling)
// followed by Annotate (derived columns). Both steps are pure functions
// over date-ordered slices.
package trend

import "github.com/guttosm/stocktrend/internal/domain/models"

// Compute runs the full pipeline for one timeframe.
func Compute(rows []models.PriceObservation, tf models.Timeframe) []models.TrendPoint {
	return Annotate(Reduce(rows, tf))
}
