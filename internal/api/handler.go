package api

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/guttosm/stocktrend/config"
	"github.com/guttosm/stocktrend/internal/domain/dto"
	"github.com/guttosm/stocktrend/internal/domain/models"
	"github.com/guttosm/stocktrend/internal/service"
)

// Handler provides HTTP handlers for the stock series endpoint.
//
// Responsibilities:
//   - Read query parameters and apply configured defaults
//   - Delegate fetch and transformation to the service layer
//   - Translate results into response DTOs
type Handler struct {
	svc      service.StockService
	defaults config.StocksConfig
}

// NewHandler constructs a Handler. defaults supplies the symbol and timeframe
// used when a request omits them.
func NewHandler(svc service.StockService, defaults config.StocksConfig) *Handler {
	return &Handler{svc: svc, defaults: defaults}
}

// GetStocks handles GET /api/stocks.
//
// Query Parameters:
//   - symbol (string, optional): ticker, matched case-insensitively. Defaults to NEPSE.
//   - timeframe (string, optional): one of 1D, 1W, 1M, 6M, 1Y, 3Y, 5Y, ALL. Defaults to 1Y.
//     Unrecognized values return the full daily series.
//
// GetStocks godoc
// @Summary      Get annotated price series
// @Description  Returns the price series of a symbol reduced to the requested timeframe, with average price, percent change and a 20 period rolling mean
// @Tags         stocks
// @Produce      json
// @Param        symbol     query     string  false  "Ticker symbol" default(NEPSE)
// @Param        timeframe  query     string  false  "Timeframe" Enums(1D, 1W, 1M, 6M, 1Y, 3Y, 5Y, ALL) default(1Y)
// @Success      200        {array}   dto.StockPointResponse  "Success (empty array for unknown symbols)"
// @Failure      500        {object}  dto.ErrorResponse       "Internal Error"
// @Router       /api/stocks [get]
func (h *Handler) GetStocks(c *gin.Context) {
	symbol := strings.TrimSpace(c.Query("symbol"))
	if symbol == "" {
		symbol = h.defaults.DefaultSymbol
	}
	timeframe := c.Query("timeframe")
	if timeframe == "" {
		timeframe = h.defaults.DefaultTimeframe
	}

	points, err := h.svc.GetTrend(c.Request.Context(), symbol, models.Timeframe(timeframe))
	if err != nil {
		_ = c.Error(err)
		c.JSON(http.StatusInternalServerError, dto.NewErrorResponse("failed to fetch stock data", err))
		return
	}

	c.JSON(http.StatusOK, dto.NewStockSeriesResponse(points))
}
