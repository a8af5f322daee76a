package dto

import (
	"math"

	"github.com/guttosm/stocktrend/internal/domain/models"
)

// DateLayout is the timestamp format used for the "date" field.
const DateLayout = "2006-01-02T15:04:05"

// StockPointResponse represents one element of the JSON array returned by
// GET /api/stocks.
//
// Numeric fields are pointers so that undefined or infinite values are
// serialized as null rather than breaking the encoder.
type StockPointResponse struct {
	Date          string   `json:"date" example:"2024-01-07T00:00:00"`
	Symbol        string   `json:"symbol" example:"NEPSE"`
	Open          *float64 `json:"open" example:"2100.5"`
	High          *float64 `json:"high" example:"2130.25"`
	Low           *float64 `json:"low" example:"2090"`
	Close         *float64 `json:"close" example:"2120.75"`
	CloseNorm     *float64 `json:"close_norm" example:"0.83"`
	AvgPrice      *float64 `json:"avg_price" example:"2110.125"`
	PriceChange   *float64 `json:"price_change" example:"0.42"`
	RollingMean20 *float64 `json:"rolling_mean_20" example:"2098.6"`
}

// NewStockSeriesResponse maps annotated points to their wire form.
// It never returns nil so an empty series encodes as [].
func NewStockSeriesResponse(points []models.TrendPoint) []StockPointResponse {
	out := make([]StockPointResponse, 0, len(points))
	for _, p := range points {
		out = append(out, StockPointResponse{
			Date:          p.Date.Format(DateLayout),
			Symbol:        p.Symbol,
			Open:          finite(p.Open),
			High:          finite(p.High),
			Low:           finite(p.Low),
			Close:         finite(p.Close),
			CloseNorm:     finite(p.CloseNorm),
			AvgPrice:      finite(p.AvgPrice),
			PriceChange:   finite(p.PriceChange),
			RollingMean20: finite(p.RollingMean20),
		})
	}
	return out
}

// finite returns nil for NaN and ±Inf.
func finite(v float64) *float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return nil
	}
	return &v
}
