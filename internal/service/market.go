package service

import (
	"context"
	"time"

	"market-pulse/internal/cache"
	"market-pulse/internal/domain"

	"go.opentelemetry.io/otel/trace"
)

// Providers are the upstream clients behind each card.
type Providers struct {
	Quotes    QuoteProvider
	Series    SeriesProvider
	Sentiment SentimentProvider
	Fed       FedProvider
	FearGreed FearGreedProvider
}

// TTLs sets how long a successful fetch is served from memory, per card.
type TTLs struct {
	Watchlist time.Duration
	Macro     time.Duration
	Sentiment time.Duration
	Fed       time.Duration
	FearGreed time.Duration
}

// DefaultTTLs match the upstream publication cadence of each source.
func DefaultTTLs() TTLs {
	return TTLs{
		Watchlist: 5 * time.Minute,
		Macro:     24 * time.Hour,
		Sentiment: 24 * time.Hour,
		Fed:       time.Hour,
		FearGreed: time.Hour,
	}
}

// Market is the read API shared by the HTTP handlers, the bot, the terminal UI and the CLI.
type Market struct {
	watchlist *WatchlistService
	macro     *MacroService
	sentiment *SentimentService
	fed       *FedService
	fearGreed *FearGreedService
	dashboard *DashboardService
}

func NewMarket(tracer trace.Tracer, p Providers, ttls TTLs, snapshots *cache.SnapshotStore) *Market {
	m := &Market{
		watchlist: NewWatchlistService(tracer, p.Quotes, ttls.Watchlist, snapshots),
		macro:     NewMacroService(tracer, p.Series, ttls.Macro, snapshots),
		sentiment: NewSentimentService(tracer, p.Sentiment, ttls.Sentiment, snapshots),
		fed:       NewFedService(tracer, p.Fed, ttls.Fed, snapshots),
		fearGreed: NewFearGreedService(tracer, p.FearGreed, ttls.FearGreed, snapshots),
	}
	m.dashboard = NewDashboardService(tracer, m.watchlist, m.macro, m.sentiment, m.fed, m.fearGreed)
	return m
}

func (m *Market) Quotes(ctx context.Context) []domain.Quote {
	return m.watchlist.Quotes(ctx)
}

func (m *Market) Series(ctx context.Context, seriesID string) (domain.MacroSeries, error) {
	return m.macro.Series(ctx, seriesID)
}

func (m *Market) Sentiment(ctx context.Context) domain.Sentiment {
	return m.sentiment.Latest(ctx)
}

func (m *Market) FedOutlook(ctx context.Context) domain.FedOutlook {
	return m.fed.Outlook(ctx)
}

func (m *Market) FearGreed(ctx context.Context) domain.FearGreed {
	return m.fearGreed.Latest(ctx)
}

func (m *Market) Dashboard(ctx context.Context) domain.Dashboard {
	return m.dashboard.Build(ctx)
}
