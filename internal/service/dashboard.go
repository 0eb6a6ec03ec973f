package service

import (
	"context"

	"market-pulse/internal/domain"

	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"
)

// DashboardService gathers every card in one call.
type DashboardService struct {
	tracer    trace.Tracer
	watchlist *WatchlistService
	macro     *MacroService
	sentiment *SentimentService
	fed       *FedService
	fearGreed *FearGreedService
	series    []string
}

func NewDashboardService(
	tracer trace.Tracer,
	watchlist *WatchlistService,
	macro *MacroService,
	sentiment *SentimentService,
	fed *FedService,
	fearGreed *FearGreedService,
) *DashboardService {
	return &DashboardService{
		tracer:    tracer,
		watchlist: watchlist,
		macro:     macro,
		sentiment: sentiment,
		fed:       fed,
		fearGreed: fearGreed,
		series:    domain.DashboardMacroSeries,
	}
}

// Build fetches all sections concurrently. Macro series that fail are listed in Errors.
func (s *DashboardService) Build(ctx context.Context) domain.Dashboard {
	ctx, span := s.tracer.Start(ctx, "dashboard-service.build")
	defer span.End()

	var (
		d       domain.Dashboard
		macroEr []error
		g       errgroup.Group
	)
	g.Go(func() error {
		d.Watchlist = s.watchlist.Quotes(ctx)
		return nil
	})
	g.Go(func() error {
		d.Macro, macroEr = s.macro.SeriesSet(ctx, s.series)
		return nil
	})
	g.Go(func() error {
		d.Sentiment = s.sentiment.Latest(ctx)
		return nil
	})
	g.Go(func() error {
		d.Fed = s.fed.Outlook(ctx)
		return nil
	})
	g.Go(func() error {
		d.FearGreed = s.fearGreed.Latest(ctx)
		return nil
	})
	_ = g.Wait()

	if d.Macro == nil {
		d.Macro = []domain.MacroSeries{}
	}
	for _, err := range macroEr {
		d.Errors = append(d.Errors, err.Error())
	}
	return d
}
