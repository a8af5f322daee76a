package models

import "time"

// PriceObservation represents a single row of the stocks table.
//
// Numeric fields that are NULL in the store are carried as NaN so that the
// trend computations can treat them as undefined values.
//
// Column order:
//  1. date
//  2. symbol
//  3. open
//  4. high
//  5. low
//  6. close
//  7. close_norm
type PriceObservation struct {
	Date      time.Time
	Symbol    string
	Open      float64
	High      float64
	Low       float64
	Close     float64
	CloseNorm float64
}

// TrendPoint is a (possibly resampled) observation annotated with the
// derived chart columns. Any field may be NaN or ±Inf; the API layer turns
// those into JSON nulls.
type TrendPoint struct {
	PriceObservation
	AvgPrice      float64
	PriceChange   float64
	RollingMean20 float64
}
