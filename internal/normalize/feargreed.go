package normalize

import (
	"strings"

	"market-pulse/internal/domain"
)

// FearGreed rounds the index score and fills the defaults for missing fields.
func FearGreed(score *float64, rating string) domain.FearGreed {
	out := domain.FallbackFearGreed()
	if score != nil {
		out.Score = int(roundHalfUp(*score))
	}
	if r := strings.TrimSpace(rating); r != "" {
		out.Rating = r
	}
	return out
}
