package api

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/guttosm/stocktrend/config"
	"github.com/guttosm/stocktrend/internal/metrics"
	"github.com/guttosm/stocktrend/internal/middleware"
)

// NewRouter creates a Gin engine with routes configured.
// It receives a Handler instance with all business logic already injected.
//
// Responsibilities:
//   - Registers global middlewares (RequestID, Logger, Metrics, Recovery, CORS, RateLimiter).
//   - Mounts health probes (/healthz, /readyz) ahead of the rate limiter and timeout.
//   - Bounds every request context with cfg.RequestTimeout.
//   - Mounts Swagger docs (/swagger/*any) and Prometheus metrics (/metrics).
//   - Serves the series endpoint at /api/stocks and /api/v1/stocks.
//
// health may be nil.
func NewRouter(handler *Handler, health *HealthHandler, cfg config.ServerConfig) *gin.Engine {
	router := gin.New()

	// ─── Middlewares ───────────────────────────────
	router.Use(
		middleware.RequestID(),
		middleware.RequestLogger(),
		middleware.Metrics(),
		middleware.RecoveryMiddleware(),
		middleware.ErrorHandler,
		middleware.CORS(cfg.CORSAllowedOrigins),
	)

	// ─── Probes ───────────────────────────────────
	// Gin binds middlewares at route registration, so probes skip what follows.
	if health != nil {
		health.Register(router)
	}

	if cfg.RateLimitPerMinute > 0 {
		router.Use(middleware.NewRateLimiter(cfg.RateLimitPerMinute, time.Minute).Handler())
	}

	// ─── Timeout ──────────────────────────────────
	if cfg.RequestTimeout > 0 {
		router.Use(func(c *gin.Context) {
			ctx, cancel := context.WithTimeout(c.Request.Context(), cfg.RequestTimeout)
			defer cancel()
			c.Request = c.Request.WithContext(ctx)
			c.Next()
		})
	}

	// ─── Swagger & metrics ────────────────────────
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/metrics", gin.WrapH(metrics.Handler()))

	// ─── Series ───────────────────────────────────
	router.GET("/api/stocks", handler.GetStocks)
	v1 := router.Group("/api/v1")
	{
		v1.GET("/stocks", handler.GetStocks)
	}

	return router
}
