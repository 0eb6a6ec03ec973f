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

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

const cmeBaseURL = "https://www.cmegroup.com"

// CMEProvider reads FOMC meeting probabilities from the CME FedWatch countdown widget.
type CMEProvider struct {
	client  *http.Client
	baseURL string
	tracer  trace.Tracer
}

func NewCMEProvider(tracer trace.Tracer, timeout time.Duration) *CMEProvider {
	return &CMEProvider{
		client:  &http.Client{Timeout: timeoutOrDefault(timeout)},
		baseURL: cmeBaseURL,
		tracer:  tracer,
	}
}

// FetchOutlook returns up to the next three meetings with rounded probabilities.
func (p *CMEProvider) FetchOutlook(ctx context.Context) (domain.FedOutlook, error) {
	ctx, span := p.tracer.Start(ctx, "cme.fetch-outlook")
	defer span.End()

	u := strings.TrimRight(p.baseURL, "/") + "/CmeWS/mvc/CountdownToFomc/CountdownToFomc.getCountdownToFomc.html"
	header := http.Header{}
	header.Set("User-Agent", browserUserAgent)
	header.Set("Accept", "application/json, text/plain, */*")

	body, err := doGet(ctx, p.client, "CME", u, header)
	if err != nil {
		return domain.FedOutlook{}, fmt.Errorf("fetch FedWatch: %w", err)
	}

	var payload struct {
		Meetings []normalize.RawMeeting `json:"meetings"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return domain.FedOutlook{}, fmt.Errorf("%w: decode FedWatch: %v", ErrUnexpectedPayload, err)
	}
	if len(payload.Meetings) == 0 {
		return domain.FedOutlook{}, fmt.Errorf("%w: FedWatch returned no meetings", ErrUnexpectedPayload)
	}
	span.SetAttributes(attribute.Int("meetings", len(payload.Meetings)))

	return domain.FedOutlook{Meetings: normalize.NormalizeMeetings(payload.Meetings)}, nil
}
