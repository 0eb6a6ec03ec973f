package provider

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"market-pulse/internal/domain"
	"market-pulse/internal/normalize"

	"go.opentelemetry.io/otel/trace"
)

const fearGreedBaseURL = "https://production.dataviz.cnn.io"

// FearGreedProvider reads the CNN Fear & Greed index.
type FearGreedProvider struct {
	client  *http.Client
	baseURL string
	tracer  trace.Tracer
}

func NewFearGreedProvider(tracer trace.Tracer, timeout time.Duration) *FearGreedProvider {
	return &FearGreedProvider{
		client:  &http.Client{Timeout: timeoutOrDefault(timeout)},
		baseURL: fearGreedBaseURL,
		tracer:  tracer,
	}
}

func (p *FearGreedProvider) FetchLatest(ctx context.Context) (domain.FearGreed, error) {
	ctx, span := p.tracer.Start(ctx, "feargreed.fetch-latest")
	defer span.End()

	u := strings.TrimRight(p.baseURL, "/") + "/index/fearandgreed/graphdata"
	header := http.Header{}
	header.Set("User-Agent", browserUserAgent)
	header.Set("Accept", "application/json")

	body, err := doGet(ctx, p.client, "fear & greed", u, header)
	if err != nil {
		return domain.FearGreed{}, fmt.Errorf("fetch fear & greed: %w", err)
	}

	var payload struct {
		FearAndGreed *struct {
			Score  *float64 `json:"score"`
			Rating string   `json:"rating"`
		} `json:"fear_and_greed"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return domain.FearGreed{}, fmt.Errorf("%w: decode fear & greed: %v", ErrUnexpectedPayload, err)
	}
	if payload.FearAndGreed == nil {
		return domain.FearGreed{}, fmt.Errorf("%w: fear & greed response has no fear_and_greed block", ErrUnexpectedPayload)
	}

	return normalize.FearGreed(payload.FearAndGreed.Score, payload.FearAndGreed.Rating), nil
}
