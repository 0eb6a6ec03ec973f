package provider

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"market-pulse/internal/domain"
	"market-pulse/internal/normalize"

	"github.com/PuerkitoBio/goquery"
	"github.com/rs/zerolog/log"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

const aaiiBaseURL = "https://www.aaii.com"

// AAIIProvider scrapes the weekly AAII investor sentiment survey page.
type AAIIProvider struct {
	client  *http.Client
	baseURL string
	tracer  trace.Tracer
}

func NewAAIIProvider(tracer trace.Tracer, timeout time.Duration) *AAIIProvider {
	return &AAIIProvider{
		client:  &http.Client{Timeout: timeoutOrDefault(timeout)},
		baseURL: aaiiBaseURL,
		tracer:  tracer,
	}
}

// FetchSentiment reads the most recent bullish/neutral/bearish row of the results table.
func (p *AAIIProvider) FetchSentiment(ctx context.Context) (domain.Sentiment, error) {
	ctx, span := p.tracer.Start(ctx, "aaii.fetch-sentiment")
	defer span.End()

	u := strings.TrimRight(p.baseURL, "/") + "/sentimentsurvey/sent_results"
	header := http.Header{}
	header.Set("User-Agent", browserUserAgent)
	header.Set("Accept", "text/html,application/xhtml+xml")

	body, err := doGet(ctx, p.client, "AAII", u, header)
	if err != nil {
		return domain.Sentiment{}, fmt.Errorf("fetch AAII survey: %w", err)
	}

	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
	if err != nil {
		return domain.Sentiment{}, fmt.Errorf("%w: parse AAII html: %v", ErrUnexpectedPayload, err)
	}

	var cells []string
	doc.Find("table td").Each(func(_ int, s *goquery.Selection) {
		cells = append(cells, s.Text())
	})

	bullish, neutral, bearish, found := normalize.SurveyPercentages(cells)
	span.SetAttributes(attribute.Int("cells", len(cells)), attribute.Int("found", found))
	if found == 0 {
		return domain.Sentiment{}, fmt.Errorf("%w: no percentage cells in AAII survey table", ErrUnexpectedPayload)
	}
	if found < len(normalize.SurveyColumnOrder) {
		log.Warn().Int("found", found).Msg("AAII survey table is partial; filling missing columns with defaults")
	}

	return domain.Sentiment{
		SentimentSplit: normalize.NormalizeSentiment(bullish, neutral, bearish),
		UpdatedNote:    domain.SentimentUpdatedNote,
	}, nil
}
