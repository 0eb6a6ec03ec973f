package handler

import (
	"net/http"

	"market-pulse/internal/domain"
	"market-pulse/internal/service"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel/attribute"
)

// GetWatchlist godoc
// @Summary      Watchlist quotes
// @Description  Returns price, 1D/5D/20D change and a 7-point sparkline for every watchlist symbol, in display order. Symbols that fail upstream are zeroed placeholders.
// @Tags         market
// @Produce      json
// @Success      200  {array}   domain.Quote
// @Router       /api/watchlist [get]
func (h *Handler) GetWatchlist(c *gin.Context) {
	ctx, span := h.tracer.Start(c.Request.Context(), "handler.get-watchlist")
	defer span.End()

	c.JSON(http.StatusOK, h.market.Quotes(ctx))
}

// GetFRED godoc
// @Summary      FRED macro series
// @Description  Returns up to 120 observations of a FRED series in ascending date order
// @Tags         market
// @Produce      json
// @Param        series  query  string  false  "FRED series id"  default(BAMLH0A0HYM2)
// @Success      200  {object}  domain.MacroSeries
// @Failure      500  {object}  map[string]string
// @Failure      503  {object}  map[string]string
// @Router       /api/fred [get]
func (h *Handler) GetFRED(c *gin.Context) {
	ctx, span := h.tracer.Start(c.Request.Context(), "handler.get-fred")
	defer span.End()

	seriesID := c.DefaultQuery("series", domain.DefaultMacroSeries)
	span.SetAttributes(attribute.String("series_id", seriesID))

	series, err := h.market.Series(ctx, seriesID)
	if err != nil {
		span.RecordError(err)
		if service.IsConfigError(err) {
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "FRED_API_KEY not configured"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "FRED fetch failed"})
		return
	}

	c.JSON(http.StatusOK, series)
}

// GetAAII godoc
// @Summary      AAII investor sentiment
// @Description  Returns the latest weekly bullish/neutral/bearish split and the bull-bear spread
// @Tags         market
// @Produce      json
// @Success      200  {object}  domain.Sentiment
// @Router       /api/aaii [get]
func (h *Handler) GetAAII(c *gin.Context) {
	ctx, span := h.tracer.Start(c.Request.Context(), "handler.get-aaii")
	defer span.End()

	c.JSON(http.StatusOK, h.market.Sentiment(ctx))
}

// GetCME godoc
// @Summary      FedWatch probabilities
// @Description  Returns cut/hold/hike probabilities for the next three FOMC meetings
// @Tags         market
// @Produce      json
// @Success      200  {object}  domain.FedOutlook
// @Router       /api/cme [get]
func (h *Handler) GetCME(c *gin.Context) {
	ctx, span := h.tracer.Start(c.Request.Context(), "handler.get-cme")
	defer span.End()

	c.JSON(http.StatusOK, h.market.FedOutlook(ctx))
}

// GetFearGreed godoc
// @Summary      Fear & Greed index
// @Description  Returns the CNN Fear & Greed score (0-100) and rating
// @Tags         market
// @Produce      json
// @Success      200  {object}  domain.FearGreed
// @Router       /api/fear-greed [get]
func (h *Handler) GetFearGreed(c *gin.Context) {
	ctx, span := h.tracer.Start(c.Request.Context(), "handler.get-fear-greed")
	defer span.End()

	c.JSON(http.StatusOK, h.market.FearGreed(ctx))
}

// GetDashboard godoc
// @Summary      Full dashboard
// @Description  Returns every card in one response. Macro series that could not be fetched are listed in errors.
// @Tags         market
// @Produce      json
// @Success      200  {object}  domain.Dashboard
// @Router       /api/dashboard [get]
func (h *Handler) GetDashboard(c *gin.Context) {
	ctx, span := h.tracer.Start(c.Request.Context(), "handler.get-dashboard")
	defer span.End()

	c.JSON(http.StatusOK, h.market.Dashboard(ctx))
}
