package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/guttosm/stocktrend/internal/domain/models"
)

// SeriesCache stores raw observations per symbol.
// A miss is reported as (nil, false, nil).
type SeriesCache interface {
	Get(ctx context.Context, symbol string) ([]models.PriceObservation, bool, error)
	Set(ctx context.Context, symbol string, rows []models.PriceObservation) error
}

// RedisSeriesCache keeps one JSON document per case-folded symbol with a TTL.
type RedisSeriesCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisSeriesCache(client *redis.Client, ttl time.Duration) *RedisSeriesCache {
	return &RedisSeriesCache{client: client, ttl: ttl}
}

// CacheKey is the redis key holding the series of symbol.
func CacheKey(symbol string) string {
	return fmt.Sprintf("stocks:%s:rows", strings.ToLower(strings.TrimSpace(symbol)))
}

func (c *RedisSeriesCache) Get(ctx context.Context, symbol string) ([]models.PriceObservation, bool, error) {
	data, err := c.client.Get(ctx, CacheKey(symbol)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("redis get: %w", err)
	}

	rows, err := decodeSeries(data)
	if err != nil {
		return nil, false, err
	}
	return rows, true, nil
}

func (c *RedisSeriesCache) Set(ctx context.Context, symbol string, rows []models.PriceObservation) error {
	data, err := encodeSeries(rows)
	if err != nil {
		return err
	}
	if err := c.client.Set(ctx, CacheKey(symbol), data, c.ttl).Err(); err != nil {
		return fmt.Errorf("redis set: %w", err)
	}
	return nil
}

// cachedRow is the wire form of a PriceObservation. encoding/json rejects
// NaN, so undefined values travel as null.
type cachedRow struct {
	Date      time.Time `json:"d"`
	Symbol    string    `json:"s"`
	Open      *float64  `json:"o"`
	High      *float64  `json:"h"`
	Low       *float64  `json:"l"`
	Close     *float64  `json:"c"`
	CloseNorm *float64  `json:"n"`
}

func encodeSeries(rows []models.PriceObservation) ([]byte, error) {
	out := make([]cachedRow, len(rows))
	for i, r := range rows {
		out[i] = cachedRow{
			Date:      r.Date,
			Symbol:    r.Symbol,
			Open:      nanToNil(r.Open),
			High:      nanToNil(r.High),
			Low:       nanToNil(r.Low),
			Close:     nanToNil(r.Close),
			CloseNorm: nanToNil(r.CloseNorm),
		}
	}
	data, err := json.Marshal(out)
	if err != nil {
		return nil, fmt.Errorf("encode series: %w", err)
	}
	return data, nil
}

func decodeSeries(data []byte) ([]models.PriceObservation, error) {
	var in []cachedRow
	if err := json.Unmarshal(data, &in); err != nil {
		return nil, fmt.Errorf("decode series: %w", err)
	}
	out := make([]models.PriceObservation, len(in))
	for i, r := range in {
		out[i] = models.PriceObservation{
			Date:      r.Date,
			Symbol:    r.Symbol,
			Open:      nilToNaN(r.Open),
			High:      nilToNaN(r.High),
			Low:       nilToNaN(r.Low),
			Close:     nilToNaN(r.Close),
			CloseNorm: nilToNaN(r.CloseNorm),
		}
	}
	return out, nil
}

func nanToNil(v float64) *float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return nil
	}
	return &v
}

func nilToNaN(v *float64) float64 {
	if v == nil {
		return math.NaN()
	}
	return *v
}
