package job

import (
	"context"
	"time"

	"market-pulse/internal/domain"

	"github.com/rs/zerolog/log"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// DashboardBuilder is satisfied by *service.Market.
type DashboardBuilder interface {
	Dashboard(ctx context.Context) domain.Dashboard
}

// CacheWarmer periodically builds the dashboard so visitors rarely wait on an
// upstream. Entries still fresh in the caches are not refetched.
type CacheWarmer struct {
	tracer   trace.Tracer
	market   DashboardBuilder
	interval time.Duration
}

func NewCacheWarmer(tracer trace.Tracer, market DashboardBuilder, interval time.Duration) *CacheWarmer {
	return &CacheWarmer{
		tracer:   tracer,
		market:   market,
		interval: interval,
	}
}

// Enabled reports whether Start will do anything.
func (w *CacheWarmer) Enabled() bool {
	return w.market != nil && w.interval > 0
}

// Start warms once immediately and then on every tick. Blocks until ctx is cancelled.
func (w *CacheWarmer) Start(ctx context.Context) {
	if !w.Enabled() {
		log.Info().Msg("Cache warmer disabled")
		return
	}

	log.Info().Dur("interval", w.interval).Msg("Cache warmer starting")
	w.warmOnce(ctx)

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			log.Info().Msg("Cache warmer stopped")
			return
		case <-ticker.C:
			w.warmOnce(ctx)
		}
	}
}

func (w *CacheWarmer) warmOnce(ctx context.Context) {
	ctx, span := w.tracer.Start(ctx, "cache-warmer.warm-once")
	defer span.End()

	start := time.Now()
	d := w.market.Dashboard(ctx)
	span.SetAttributes(
		attribute.Int("quotes", len(d.Watchlist)),
		attribute.Int("macro_series", len(d.Macro)),
		attribute.Int("errors", len(d.Errors)),
	)

	ev := log.Debug()
	if len(d.Errors) > 0 {
		ev = log.Warn().Strs("errors", d.Errors)
	}
	ev.Int("quotes", len(d.Watchlist)).
		Int("macro_series", len(d.Macro)).
		Dur("took", time.Since(start)).
		Msg("Cache warm cycle complete")
}
