package service

import (
	"context"
	"time"

	"market-pulse/internal/cache"
	"market-pulse/internal/domain"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"
)

type QuoteProvider interface {
	FetchQuote(ctx context.Context, symbol string) (domain.Quote, error)
}

// WatchlistService serves the quote strip. It never fails: a symbol whose fetch
// fails is rendered as a zeroed placeholder.
type WatchlistService struct {
	tracer   trace.Tracer
	provider QuoteProvider
	source   *cachedSource[domain.Quote]
	symbols  []string
}

func NewWatchlistService(tracer trace.Tracer, provider QuoteProvider, ttl time.Duration, snapshots *cache.SnapshotStore) *WatchlistService {
	return &WatchlistService{
		tracer:   tracer,
		provider: provider,
		source:   newCachedSource[domain.Quote]("quote", ttl, snapshots),
		symbols:  domain.WatchlistSymbols,
	}
}

// Quotes fetches every watchlist symbol concurrently and returns them in watchlist order.
func (s *WatchlistService) Quotes(ctx context.Context) []domain.Quote {
	ctx, span := s.tracer.Start(ctx, "watchlist-service.quotes")
	defer span.End()
	span.SetAttributes(attribute.Int("symbols", len(s.symbols)))

	quotes := make([]domain.Quote, len(s.symbols))
	var g errgroup.Group
	g.SetLimit(maxConcurrentFetches)
	for i, symbol := range s.symbols {
		g.Go(func() error {
			quotes[i] = s.Quote(ctx, symbol)
			return nil
		})
	}
	_ = g.Wait()

	return quotes
}

// Quote returns one symbol with its display name applied.
func (s *WatchlistService) Quote(ctx context.Context, symbol string) domain.Quote {
	q, err := s.source.get(ctx, symbol, func(ctx context.Context) (domain.Quote, error) {
		return s.provider.FetchQuote(ctx, symbol)
	})
	if err != nil {
		q = domain.FallbackQuote(symbol)
	}
	q.Name = domain.DisplayName(q.Symbol, q.Name)
	return q
}
