package models

// Timeframe selects how a price series is reduced before annotation.
type Timeframe string

const (
	Timeframe1D  Timeframe = "1D"
	Timeframe1W  Timeframe = "1W"
	Timeframe1M  Timeframe = "1M"
	Timeframe6M  Timeframe = "6M"
	Timeframe1Y  Timeframe = "1Y"
	Timeframe3Y  Timeframe = "3Y"
	Timeframe5Y  Timeframe = "5Y"
	TimeframeAll Timeframe = "ALL"
)

// lookbackRows maps fixed-lookback selectors to the number of trailing rows kept.
var lookbackRows = map[Timeframe]int{
	Timeframe1D: 1,
	Timeframe6M: 180,
	Timeframe1Y: 365,
	Timeframe3Y: 1095,
	Timeframe5Y: 1825,
}

// Lookback reports the trailing row count for fixed-lookback selectors.
func (t Timeframe) Lookback() (int, bool) {
	n, ok := lookbackRows[t]
	return n, ok
}

// IsCalendar reports whether the selector buckets rows into calendar windows.
func (t Timeframe) IsCalendar() bool {
	return t == Timeframe1W || t == Timeframe1M
}

// Known reports whether t is one of the enumerated selectors.
// Unknown selectors are not an error; they behave like TimeframeAll.
func (t Timeframe) Known() bool {
	if t == TimeframeAll || t.IsCalendar() {
		return true
	}
	_, ok := lookbackRows[t]
	return ok
}
