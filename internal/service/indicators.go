package service

import (
	"context"
	"time"

	"market-pulse/internal/cache"
	"market-pulse/internal/domain"

	"go.opentelemetry.io/otel/trace"
)

// Each indicator card has a single cache entry.
const latestKey = "latest"

type SentimentProvider interface {
	FetchSentiment(ctx context.Context) (domain.Sentiment, error)
}

type FedProvider interface {
	FetchOutlook(ctx context.Context) (domain.FedOutlook, error)
}

type FearGreedProvider interface {
	FetchLatest(ctx context.Context) (domain.FearGreed, error)
}

// SentimentService serves the weekly AAII survey.
type SentimentService struct {
	tracer   trace.Tracer
	provider SentimentProvider
	source   *cachedSource[domain.Sentiment]
}

func NewSentimentService(tracer trace.Tracer, provider SentimentProvider, ttl time.Duration, snapshots *cache.SnapshotStore) *SentimentService {
	return &SentimentService{
		tracer:   tracer,
		provider: provider,
		source:   newCachedSource[domain.Sentiment]("aaii", ttl, snapshots),
	}
}

func (s *SentimentService) Latest(ctx context.Context) domain.Sentiment {
	ctx, span := s.tracer.Start(ctx, "sentiment-service.latest")
	defer span.End()

	v, err := s.source.get(ctx, latestKey, s.provider.FetchSentiment)
	if err != nil {
		return domain.FallbackSentiment()
	}
	return v
}

// FedService serves the FedWatch outlook for the next meetings.
type FedService struct {
	tracer   trace.Tracer
	provider FedProvider
	source   *cachedSource[domain.FedOutlook]
}

func NewFedService(tracer trace.Tracer, provider FedProvider, ttl time.Duration, snapshots *cache.SnapshotStore) *FedService {
	return &FedService{
		tracer:   tracer,
		provider: provider,
		source:   newCachedSource[domain.FedOutlook]("cme", ttl, snapshots),
	}
}

func (s *FedService) Outlook(ctx context.Context) domain.FedOutlook {
	ctx, span := s.tracer.Start(ctx, "fed-service.outlook")
	defer span.End()

	v, err := s.source.get(ctx, latestKey, s.provider.FetchOutlook)
	if err != nil {
		return domain.FallbackFedOutlook()
	}
	return v
}

// FearGreedService serves the CNN Fear & Greed index.
type FearGreedService struct {
	tracer   trace.Tracer
	provider FearGreedProvider
	source   *cachedSource[domain.FearGreed]
}

func NewFearGreedService(tracer trace.Tracer, provider FearGreedProvider, ttl time.Duration, snapshots *cache.SnapshotStore) *FearGreedService {
	return &FearGreedService{
		tracer:   tracer,
		provider: provider,
		source:   newCachedSource[domain.FearGreed]("fear-greed", ttl, snapshots),
	}
}

func (s *FearGreedService) Latest(ctx context.Context) domain.FearGreed {
	ctx, span := s.tracer.Start(ctx, "fear-greed-service.latest")
	defer span.End()

	v, err := s.source.get(ctx, latestKey, s.provider.FetchLatest)
	if err != nil {
		return domain.FallbackFearGreed()
	}
	return v
}
