package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"market-pulse/internal/cache"
	"market-pulse/internal/domain"
	"market-pulse/internal/provider"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"
)

type SeriesProvider interface {
	Configured() bool
	FetchSeries(ctx context.Context, seriesID string) ([]domain.Observation, error)
}

// MacroService serves FRED series. Unlike the other cards it reports failures,
// since there is no sensible placeholder for a chart.
type MacroService struct {
	tracer   trace.Tracer
	provider SeriesProvider
	source   *cachedSource[domain.MacroSeries]
}

func NewMacroService(tracer trace.Tracer, provider SeriesProvider, ttl time.Duration, snapshots *cache.SnapshotStore) *MacroService {
	return &MacroService{
		tracer:   tracer,
		provider: provider,
		source:   newCachedSource[domain.MacroSeries]("fred", ttl, snapshots),
	}
}

// Series returns the labelled observations for seriesID, or DefaultMacroSeries when empty.
// A missing API key is reported before the cache is consulted.
func (s *MacroService) Series(ctx context.Context, seriesID string) (domain.MacroSeries, error) {
	seriesID = strings.TrimSpace(seriesID)
	if seriesID == "" {
		seriesID = domain.DefaultMacroSeries
	}

	ctx, span := s.tracer.Start(ctx, "macro-service.series")
	defer span.End()
	span.SetAttributes(attribute.String("series_id", seriesID))

	if !s.provider.Configured() {
		return domain.MacroSeries{}, &FetchError{
			Kind:   KindConfig,
			Source: "fred",
			Err:    fmt.Errorf("FRED_API_KEY: %w", provider.ErrMissingAPIKey),
		}
	}

	return s.source.get(ctx, seriesID, func(ctx context.Context) (domain.MacroSeries, error) {
		data, err := s.provider.FetchSeries(ctx, seriesID)
		if err != nil {
			return domain.MacroSeries{}, err
		}
		meta := domain.LookupSeries(seriesID)
		return domain.MacroSeries{
			SeriesID: seriesID,
			Label:    meta.Label,
			Unit:     meta.Unit,
			Data:     data,
		}, nil
	})
}

// SeriesSet fetches ids concurrently. Failed series are left out of the result and
// reported in errs, both in the order of ids.
func (s *MacroService) SeriesSet(ctx context.Context, ids []string) ([]domain.MacroSeries, []error) {
	ctx, span := s.tracer.Start(ctx, "macro-service.series-set")
	defer span.End()

	results := make([]domain.MacroSeries, len(ids))
	failures := make([]error, len(ids))
	var g errgroup.Group
	g.SetLimit(maxConcurrentFetches)
	for i, id := range ids {
		g.Go(func() error {
			results[i], failures[i] = s.Series(ctx, id)
			return nil
		})
	}
	_ = g.Wait()

	var (
		series []domain.MacroSeries
		errs   []error
	)
	for i := range ids {
		if failures[i] != nil {
			errs = append(errs, failures[i])
			continue
		}
		series = append(series, results[i])
	}
	return series, errs
}
