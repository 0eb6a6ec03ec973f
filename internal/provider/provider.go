package provider

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"
)

// DefaultTimeout bounds a single upstream call.
const DefaultTimeout = 10 * time.Second

// browserUserAgent is sent to sites that reject obvious bots.
const browserUserAgent = "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"

var (
	// ErrUnexpectedPayload marks a response that arrived but lacks the fields we read.
	ErrUnexpectedPayload = errors.New("unexpected upstream payload")
	// ErrMissingAPIKey marks a provider that cannot run without a credential.
	ErrMissingAPIKey = errors.New("api key not configured")
)

// StatusError is returned for any non-200 upstream response.
type StatusError struct {
	Source string
	Code   int
	Body   string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s API error %d: %s", e.Source, e.Code, e.Body)
}

func timeoutOrDefault(timeout time.Duration) time.Duration {
	if timeout <= 0 {
		return DefaultTimeout
	}
	return timeout
}

// doGet performs a GET and returns the body of a 200 response.
func doGet(ctx context.Context, client *http.Client, source, url string, header http.Header) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	for k, v := range header {
		req.Header[k] = v
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, &StatusError{Source: source, Code: resp.StatusCode, Body: string(body)}
	}

	return io.ReadAll(resp.Body)
}
