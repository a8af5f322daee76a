package app

import (
	"context"
	"fmt"

	"github.com/gin-gonic/gin"

	"github.com/guttosm/stocktrend/config"
	"github.com/guttosm/stocktrend/internal/api"
	"github.com/guttosm/stocktrend/internal/logger"
	"github.com/guttosm/stocktrend/internal/service"
	"github.com/guttosm/stocktrend/internal/storage"
)

// InitializeApp sets up all application dependencies and returns
// a fully configured Gin router, a cleanup function for graceful shutdown,
// and any error encountered during initialization.
//
// Responsibilities:
//   - Connects to PostgreSQL using InitPostgres().
//   - Connects to Redis when cfg.Redis.Enabled; the cache is skipped if it cannot be reached.
//   - Wires repository, service and HTTP handler layers.
//   - Configures the Gin router with health and readiness probes.
//   - Provides a cleanup function to close resources.
func InitializeApp(cfg config.Config) (*gin.Engine, func(), error) {
	// indirection for unit testing
	db, err := postgresOpener(cfg.Postgres)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize postgres: %w", err)
	}

	repo := storage.NewPriceRepository(db)
	checks := []api.Check{{Name: "postgres", Ping: db.PingContext}}
	closers := []func() error{db.Close}

	// The service treats a nil cache as disabled.
	var cache storage.SeriesCache
	if cfg.Redis.Enabled {
		client, err := redisOpener(cfg.Redis)
		if err != nil {
			logger.L().Warn().Err(err).Str("addr", cfg.Redis.Addr).Msg("series cache unavailable, continuing without it")
		} else {
			cache = storage.NewRedisSeriesCache(client, cfg.Redis.TTL)
			checks = append(checks, api.Check{
				Name: "redis",
				Ping: func(ctx context.Context) error { return client.Ping(ctx).Err() },
			})
			closers = append(closers, client.Close)
		}
	}

	svc := service.NewStockService(repo, cache)
	handler := api.NewHandler(svc, cfg.Stocks)
	router := api.NewRouter(handler, api.NewHealthHandler(checks...), cfg.Server)

	cleanup := func() {
		for i := len(closers) - 1; i >= 0; i-- {
			_ = closers[i]()
		}
	}

	return router, cleanup, nil
}
