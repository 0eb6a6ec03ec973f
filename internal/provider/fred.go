package provider

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"market-pulse/internal/domain"
	"market-pulse/internal/normalize"

	"github.com/go-resty/resty/v2"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

const (
	fredBaseURL = "https://api.stlouisfed.org/fred"
	// FREDObservationLimit is how many of the newest observations are requested per series.
	FREDObservationLimit = 120
	fredPlaceholderKey   = "your_key_here"
)

// FREDProvider reads series observations from the St. Louis Fed API.
type FREDProvider struct {
	client *resty.Client
	apiKey string
	limit  int
	tracer trace.Tracer
}

func NewFREDProvider(tracer trace.Tracer, apiKey string, timeout time.Duration) *FREDProvider {
	client := resty.New()
	client.SetBaseURL(fredBaseURL)
	client.SetTimeout(timeoutOrDefault(timeout))
	client.SetHeader("Accept", "application/json")

	return &FREDProvider{
		client: client,
		apiKey: strings.TrimSpace(apiKey),
		limit:  FREDObservationLimit,
		tracer: tracer,
	}
}

// KeyConfigured reports whether key looks like a real FRED credential.
func KeyConfigured(key string) bool {
	key = strings.TrimSpace(key)
	return key != "" && key != fredPlaceholderKey
}

// Configured reports whether the provider holds a usable API key.
func (p *FREDProvider) Configured() bool {
	return KeyConfigured(p.apiKey)
}

// FREDQuery builds the observation query for a series, newest first.
func FREDQuery(seriesID, apiKey string, limit int) map[string]string {
	return map[string]string{
		"series_id":  seriesID,
		"api_key":    apiKey,
		"file_type":  "json",
		"limit":      strconv.Itoa(limit),
		"sort_order": "desc",
	}
}

// FetchSeries returns the observations for seriesID in ascending date order.
func (p *FREDProvider) FetchSeries(ctx context.Context, seriesID string) ([]domain.Observation, error) {
	ctx, span := p.tracer.Start(ctx, "fred.fetch-series")
	defer span.End()
	span.SetAttributes(attribute.String("series_id", seriesID))

	if !p.Configured() {
		return nil, fmt.Errorf("FRED: %w", ErrMissingAPIKey)
	}

	resp, err := p.client.R().
		SetContext(ctx).
		SetQueryParams(FREDQuery(seriesID, p.apiKey, p.limit)).
		Get("/series/observations")
	if err != nil {
		return nil, fmt.Errorf("fetch FRED series %s: %w", seriesID, err)
	}
	if resp.StatusCode() != http.StatusOK {
		return nil, &StatusError{Source: "FRED", Code: resp.StatusCode(), Body: truncate(resp.String(), 512)}
	}

	var payload struct {
		Observations []normalize.RawObservation `json:"observations"`
	}
	if err := json.Unmarshal(resp.Body(), &payload); err != nil {
		return nil, fmt.Errorf("%w: decode FRED series %s: %v", ErrUnexpectedPayload, seriesID, err)
	}
	if payload.Observations == nil {
		return nil, fmt.Errorf("%w: FRED series %s has no observations field", ErrUnexpectedPayload, seriesID)
	}

	return normalize.ParseObservations(payload.Observations), nil
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
