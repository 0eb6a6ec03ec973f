package handler

import (
	"context"
	"time"

	"market-pulse/internal/domain"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel/trace"
)

// MarketData is the read API the handlers serve. *service.Market implements it.
type MarketData interface {
	Quotes(ctx context.Context) []domain.Quote
	Series(ctx context.Context, seriesID string) (domain.MacroSeries, error)
	Sentiment(ctx context.Context) domain.Sentiment
	FedOutlook(ctx context.Context) domain.FedOutlook
	FearGreed(ctx context.Context) domain.FearGreed
	Dashboard(ctx context.Context) domain.Dashboard
}

type Handler struct {
	tracer  trace.Tracer
	market  MarketData
	apiKey  string
	started time.Time
}

func New(tracer trace.Tracer, market MarketData, apiKey string) *Handler {
	return &Handler{
		tracer:  tracer,
		market:  market,
		apiKey:  apiKey,
		started: time.Now(),
	}
}

func (h *Handler) RegisterRoutes(r *gin.Engine) {
	r.GET("/health", h.Health)

	api := r.Group("/api", APIKeyAuth(h.apiKey))
	api.GET("/watchlist", h.GetWatchlist)
	api.GET("/fred", h.GetFRED)
	api.GET("/aaii", h.GetAAII)
	api.GET("/cme", h.GetCME)
	api.GET("/fear-greed", h.GetFearGreed)
	api.GET("/dashboard", h.GetDashboard)
}
