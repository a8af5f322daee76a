package service

import (
	"context"
	"strings"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/guttosm/stocktrend/internal/domain/models"
	"github.com/guttosm/stocktrend/internal/logger"
	"github.com/guttosm/stocktrend/internal/metrics"
	"github.com/guttosm/stocktrend/internal/storage"
	"github.com/guttosm/stocktrend/internal/trend"
)

// fetchTimeout bounds a shared lookup, which runs detached from any single caller.
const fetchTimeout = 10 * time.Second

// StockService composes fetch and transform for the chart endpoint.
type StockService interface {
	GetTrend(ctx context.Context, symbol string, timeframe models.Timeframe) ([]models.TrendPoint, error)
}

type stockService struct {
	repo  storage.PriceRepository
	cache storage.SeriesCache // nil disables caching
	group singleflight.Group
}

// NewStockService wires the repository and an optional cache.
func NewStockService(repo storage.PriceRepository, cache storage.SeriesCache) StockService {
	return &stockService{repo: repo, cache: cache}
}

// GetTrend fetches the series of symbol and applies the timeframe pipeline.
// A symbol without rows yields an empty, non-nil slice.
func (s *stockService) GetTrend(ctx context.Context, symbol string, timeframe models.Timeframe) ([]models.TrendPoint, error) {
	rows, err := s.fetch(ctx, symbol)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return []models.TrendPoint{}, nil
	}

	label := string(timeframe)
	if !timeframe.Known() {
		logger.L().Debug().Str("timeframe", label).Msg("unknown timeframe, returning full series")
		label = "other"
	}

	points := trend.Compute(rows, timeframe)
	metrics.RecordSeriesRows(label, len(points))
	return points, nil
}

// fetch reads through the cache. Concurrent calls for the same case-folded
// symbol share one lookup. The lookup is not tied to the caller that started
// it: a cancelled caller returns early while the others keep waiting.
func (s *stockService) fetch(ctx context.Context, symbol string) ([]models.PriceObservation, error) {
	key := strings.ToLower(symbol)
	ch := s.group.DoChan(key, func() (any, error) {
		sharedCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), fetchTimeout)
		defer cancel()
		return s.load(sharedCtx, symbol)
	})

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			return nil, res.Err
		}
		return res.Val.([]models.PriceObservation), nil
	}
}

func (s *stockService) load(ctx context.Context, symbol string) ([]models.PriceObservation, error) {
	if rows, ok := s.fromCache(ctx, symbol); ok {
		return rows, nil
	}

	rows, err := s.repo.GetPricesBySymbol(ctx, symbol)
	if err != nil {
		metrics.RecordLookup("store", "error")
		return nil, err
	}
	if len(rows) == 0 {
		metrics.RecordLookup("store", "miss")
	} else {
		metrics.RecordLookup("store", "hit")
		s.toCache(ctx, symbol, rows)
	}
	return rows, nil
}

func (s *stockService) fromCache(ctx context.Context, symbol string) ([]models.PriceObservation, bool) {
	if s.cache == nil {
		return nil, false
	}
	rows, hit, err := s.cache.Get(ctx, symbol)
	if err != nil {
		metrics.RecordLookup("cache", "error")
		logger.L().Warn().Err(err).Str("symbol", symbol).Msg("series cache read failed")
		return nil, false
	}
	if !hit {
		metrics.RecordLookup("cache", "miss")
		return nil, false
	}
	metrics.RecordLookup("cache", "hit")
	return rows, true
}

func (s *stockService) toCache(ctx context.Context, symbol string, rows []models.PriceObservation) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Set(ctx, symbol, rows); err != nil {
		logger.L().Warn().Err(err).Str("symbol", symbol).Msg("series cache write failed")
	}
}
