package provider

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"market-pulse/internal/domain"
	"market-pulse/internal/normalize"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

const yahooBaseURL = "https://query1.finance.yahoo.com"

// YahooProvider reads daily quote history from the Yahoo Finance v8 chart API.
type YahooProvider struct {
	client  *http.Client
	baseURL string
	tracer  trace.Tracer
}

func NewYahooProvider(tracer trace.Tracer, timeout time.Duration) *YahooProvider {
	return &YahooProvider{
		client:  &http.Client{Timeout: timeoutOrDefault(timeout)},
		baseURL: yahooBaseURL,
		tracer:  tracer,
	}
}

type yahooChart struct {
	Chart struct {
		Result []struct {
			Meta struct {
				Symbol                     string   `json:"symbol"`
				ShortName                  string   `json:"shortName"`
				LongName                   string   `json:"longName"`
				RegularMarketPrice         *float64 `json:"regularMarketPrice"`
				ChartPreviousClose         *float64 `json:"chartPreviousClose"`
				RegularMarketChangePercent *float64 `json:"regularMarketChangePercent"`
			} `json:"meta"`
			Indicators struct {
				Quote []struct {
					Close []*float64 `json:"close"`
				} `json:"quote"`
			} `json:"indicators"`
		} `json:"result"`
	} `json:"chart"`
}

// FetchQuote returns one month of daily closes for symbol, normalized into a Quote.
func (p *YahooProvider) FetchQuote(ctx context.Context, symbol string) (domain.Quote, error) {
	ctx, span := p.tracer.Start(ctx, "yahoo.fetch-quote")
	defer span.End()
	span.SetAttributes(attribute.String("symbol", symbol))

	u := fmt.Sprintf("%s/v8/finance/chart/%s?interval=1d&range=1mo&includePrePost=false",
		strings.TrimRight(p.baseURL, "/"), url.PathEscape(symbol))
	header := http.Header{}
	header.Set("User-Agent", browserUserAgent)
	header.Set("Accept", "application/json")

	body, err := doGet(ctx, p.client, "yahoo", u, header)
	if err != nil {
		return domain.Quote{}, fmt.Errorf("fetch chart for %s: %w", symbol, err)
	}

	var payload yahooChart
	if err := json.Unmarshal(body, &payload); err != nil {
		return domain.Quote{}, fmt.Errorf("%w: decode chart for %s: %v", ErrUnexpectedPayload, symbol, err)
	}
	if len(payload.Chart.Result) == 0 {
		return domain.Quote{}, fmt.Errorf("%w: no chart result for %s", ErrUnexpectedPayload, symbol)
	}

	result := payload.Chart.Result[0]
	meta := result.Meta
	var closes []float64
	if len(result.Indicators.Quote) > 0 {
		closes = normalize.CompactCloses(result.Indicators.Quote[0].Close)
	}

	raw := normalize.RawQuote{
		Symbol:        meta.Symbol,
		ShortName:     meta.ShortName,
		LongName:      meta.LongName,
		Price:         meta.RegularMarketPrice,
		ChangePercent: meta.RegularMarketChangePercent,
	}
	if raw.Symbol == "" {
		raw.Symbol = symbol
	}
	if raw.Price == nil {
		raw.Price = meta.ChartPreviousClose
	}

	return normalize.FormatQuote(raw, closes), nil
}
