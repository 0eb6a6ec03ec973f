package provider

import (
	"context"
	"errors"
	"net/http"
	"testing"
)

const aaiiPage = `<html><body>
<table class="bordered">
  <tr><th>Reported Date</th><th>Bullish</th><th>Neutral</th><th>Bearish</th></tr>
  <tr><td>Mar 5</td><td>40.5%</td><td>30.5%</td><td>31.4%</td></tr>
  <tr><td>Feb 26</td><td>35.1%</td><td>33.0%</td><td>31.9%</td></tr>
</table>
</body></html>`

func TestAAIIFetchSentiment(t *testing.T) {
	p := NewAAIIProvider(testTracer(), 0)
	p.baseURL = "https://example.com"
	p.client = stubClient(func(req *http.Request) (*http.Response, error) {
		if req.URL.Path != "/sentimentsurvey/sent_results" {
			t.Fatalf("unexpected path: %s", req.URL.Path)
		}
		return stubResponse(http.StatusOK, aaiiPage), nil
	})

	s, err := p.FetchSentiment(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s.Bullish != 41 || s.Neutral != 31 || s.Bearish != 31 || s.Spread != 9 {
		t.Fatalf("unexpected sentiment: %+v", s)
	}
	if s.UpdatedNote != "Weekly (Thu)" {
		t.Fatalf("unexpected note: %q", s.UpdatedNote)
	}
}

func TestAAIIFetchSentimentRescalesOffTotals(t *testing.T) {
	p := NewAAIIProvider(testTracer(), 0)
	p.client = stubClient(func(req *http.Request) (*http.Response, error) {
		return stubResponse(http.StatusOK, `<table><tr><td>70%</td><td>20%</td><td>25%</td></tr></table>`), nil
	})

	s, err := p.FetchSentiment(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s.Bullish != 61 || s.Neutral != 17 || s.Bearish != 22 || s.Spread != 39 {
		t.Fatalf("unexpected rescale: %+v", s)
	}
}

func TestAAIIFetchSentimentNoTable(t *testing.T) {
	p := NewAAIIProvider(testTracer(), 0)
	p.client = stubClient(func(req *http.Request) (*http.Response, error) {
		return stubResponse(http.StatusOK, `<html><body><p>Please log in</p></body></html>`), nil
	})

	_, err := p.FetchSentiment(context.Background())
	if !errors.Is(err, ErrUnexpectedPayload) {
		t.Fatalf("expected payload error, got %v", err)
	}
}
