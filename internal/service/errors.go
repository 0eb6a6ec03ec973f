package service

import (
	"errors"
	"fmt"

	"market-pulse/internal/provider"
)

// Kind classifies why an upstream fetch failed.
type Kind int

const (
	// KindTransport covers network failures, timeouts and non-200 responses.
	KindTransport Kind = iota
	// KindShape means the upstream answered but without the fields we read.
	KindShape
	// KindConfig means a required credential is missing. No fallback exists for it.
	KindConfig
)

func (k Kind) String() string {
	switch k {
	case KindShape:
		return "shape"
	case KindConfig:
		return "config"
	default:
		return "transport"
	}
}

// FetchError is the classified failure of one upstream fetch.
type FetchError struct {
	Kind   Kind
	Source string
	Err    error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("%s %s error: %v", e.Source, e.Kind, e.Err)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

// Classify wraps err into a FetchError for source. A nil err yields nil and an
// existing FetchError is returned as is.
func Classify(source string, err error) *FetchError {
	if err == nil {
		return nil
	}
	var fe *FetchError
	if errors.As(err, &fe) {
		return fe
	}

	kind := KindTransport
	switch {
	case errors.Is(err, provider.ErrMissingAPIKey):
		kind = KindConfig
	case errors.Is(err, provider.ErrUnexpectedPayload):
		kind = KindShape
	}
	return &FetchError{Kind: kind, Source: source, Err: err}
}

// IsConfigError reports whether err is a missing-configuration failure.
func IsConfigError(err error) bool {
	var fe *FetchError
	return errors.As(err, &fe) && fe.Kind == KindConfig
}
