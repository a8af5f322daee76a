package dto

import (
	"encoding/json"
	"math"
	"strings"
	"testing"
	"time"

	"github.com/guttosm/stocktrend/internal/domain/models"
)

func TestNewStockSeriesResponse_EmptyEncodesAsArray(t *testing.T) {
	b, err := json.Marshal(NewStockSeriesResponse(nil))
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(b) != "[]" {
		t.Fatalf("want [] got %s", b)
	}
}

func TestNewStockSeriesResponse_NonFiniteBecomeNull(t *testing.T) {
	p := models.TrendPoint{
		PriceObservation: models.PriceObservation{
			Date:      time.Date(2024, 1, 7, 0, 0, 0, 0, time.UTC),
			Symbol:    "NEPSE",
			Open:      math.NaN(),
			High:      math.Inf(1),
			Low:       math.Inf(-1),
			Close:     10,
			CloseNorm: math.NaN(),
		},
		AvgPrice:      math.NaN(),
		PriceChange:   0,
		RollingMean20: 10,
	}

	out := NewStockSeriesResponse([]models.TrendPoint{p})
	b, err := json.Marshal(out)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	body := string(b)

	for _, want := range []string{
		`"date":"2024-01-07T00:00:00"`,
		`"open":null`, `"high":null`, `"low":null`, `"close_norm":null`, `"avg_price":null`,
		`"close":10`, `"price_change":0`, `"rolling_mean_20":10`,
	} {
		if !strings.Contains(body, want) {
			t.Fatalf("body %s missing %s", body, want)
		}
	}
}
