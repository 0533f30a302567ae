package api

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/guttosm/stockpulse/internal/domain/dto"
	"github.com/guttosm/stockpulse/internal/domain/models"
	"github.com/guttosm/stockpulse/internal/logger"
	"github.com/guttosm/stockpulse/internal/marketdata"
	"github.com/guttosm/stockpulse/internal/middleware"
	"github.com/guttosm/stockpulse/internal/service"
)

// Handler provides HTTP handlers for the quote and history endpoints.
//
// Responsibilities:
//   - Validate incoming path and query parameters
//   - Call the service layer with the request context
//   - Translate results into response DTOs
//   - Map failures to fixed JSON error bodies and log their cause
type Handler struct {
	quotes  service.QuoteService
	history service.HistoryService
	variant models.Variant
}

// NewHandler constructs a new Handler instance.
//
// Parameters:
//   - quotes (service.QuoteService): builds the /api/stock_data snapshot.
//   - history (service.HistoryService): serves single-symbol bar series.
//   - variant (models.Variant): which snapshot /api/stock_data returns.
//
// Returns:
//   - *Handler: A handler ready to be registered with the router.
func NewHandler(quotes service.QuoteService, history service.HistoryService, variant models.Variant) *Handler {
	return &Handler{quotes: quotes, history: history, variant: variant}
}

// GetStockData handles GET /api/stock_data requests.
//
// Responses:
//   - 200 OK: JSON array with one entry per configured symbol, in configured order.
//     Daily variant entries are DailyQuote objects; intraday entries are
//     strings shaped "{symbol}: {close}: {pct}%".
//   - 500 Internal Server Error: {"error": "Failed to fetch stock data"} when any symbol fails.
//
// GetStockData godoc
// @Summary      Snapshot of the watchlist
// @Description  Percentage change between the two most recent closes of every configured symbol. All-or-nothing: one failing symbol fails the request.
// @Tags         quotes
// @Produce      json
// @Success      200  {array}   models.DailyQuote  "Daily variant"
// @Failure      500  {object}  dto.ErrorResponse  "Internal Error"
// @Router       /api/stock_data [get]
func (h *Handler) GetStockData(c *gin.Context) {
	ctx := c.Request.Context()

	var (
		body any
		err  error
	)
	switch h.variant {
	case models.VariantIntraday:
		body, err = h.quotes.IntradaySnapshot(ctx)
	default:
		body, err = h.quotes.DailySnapshot(ctx)
	}

	if err != nil {
		ev := logger.Ctx(ctx).Error().Err(err).Str("variant", string(h.variant))
		var se *service.SymbolError
		if errors.As(err, &se) {
			ev = ev.Str("symbol", se.Symbol)
		}
		ev.Msg("failed to fetch stock data")
		c.JSON(http.StatusInternalServerError, dto.NewErrorResponse(dto.MsgStockDataFailed, nil))
		return
	}

	c.JSON(http.StatusOK, body)
}

// GetHistory handles GET /api/stock/:symbol/history requests.
//
// Query Parameters:
//   - period (string, optional): lookback window, default "7d".
//   - interval (string, optional): bar granularity, default "1d".
//
// Responses:
//   - 200 OK: JSON array of candles, oldest first.
//   - 400 Bad Request: missing symbol or unsupported period/interval.
//   - 404 Not Found: the provider has no bars for the symbol.
//   - 500 Internal Server Error: any other provider failure.
//
// GetHistory godoc
// @Summary      Bar history of one symbol
// @Description  OHLCV bars for the given symbol over the requested period
// @Tags         quotes
// @Produce      json
// @Param        symbol    path      string  true   "Ticker" example(AAPL)
// @Param        period    query     string  false  "Lookback window (1d,5d,7d,1mo,3mo,6mo,1y)" example(7d)
// @Param        interval  query     string  false  "Bar interval (1m,5m,15m,30m,1h,1d,1wk,1mo)" example(1d)
// @Success      200       {array}   dto.CandleResponse  "Success"
// @Failure      400       {object}  dto.ErrorResponse   "Bad Request"
// @Failure      404       {object}  dto.ErrorResponse   "Not Found"
// @Failure      500       {object}  dto.ErrorResponse   "Internal Error"
// @Router       /api/stock/{symbol}/history [get]
func (h *Handler) GetHistory(c *gin.Context) {
	symbol := strings.ToUpper(strings.TrimSpace(c.Param("symbol")))
	if symbol == "" {
		middleware.AbortWithError(c, http.StatusBadRequest, "symbol is required", nil)
		return
	}

	window := models.Window{
		Period:   c.DefaultQuery("period", models.DailyWindow.Period),
		Interval: c.DefaultQuery("interval", models.DailyWindow.Interval),
	}
	if err := window.Validate(); err != nil {
		middleware.AbortWithError(c, http.StatusBadRequest, "invalid period or interval", err)
		return
	}

	ctx := c.Request.Context()
	bars, err := h.history.GetHistory(ctx, symbol, window)
	switch {
	case errors.Is(err, marketdata.ErrNoData):
		c.JSON(http.StatusNotFound, dto.NewErrorResponse(dto.MsgHistoryNotFound, nil))
		return
	case err != nil:
		logger.Ctx(ctx).Error().Err(err).Str("symbol", symbol).Str("window", window.String()).Msg("failed to fetch history")
		c.JSON(http.StatusInternalServerError, dto.NewErrorResponse(dto.MsgHistoryFailed, nil))
		return
	}

	out := make([]dto.CandleResponse, 0, len(bars))
	for _, b := range bars {
		out = append(out, dto.CandleResponse{
			Time:   b.Time.Unix(),
			Open:   b.Open,
			High:   b.High,
			Low:    b.Low,
			Close:  b.Close,
			Volume: b.Volume,
		})
	}
	c.JSON(http.StatusOK, out)
}
