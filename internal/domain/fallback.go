package domain

// Fallback payloads served when an upstream cannot be reached or parsed.

const (
	SentimentUpdatedNote     = "Weekly (Thu)"
	SentimentUnavailableNote = "Data unavailable"
)

// FallbackQuote is the placeholder for a symbol whose fetch failed.
func FallbackQuote(symbol string) Quote {
	return Quote{
		Symbol:    symbol,
		Name:      symbol,
		Sparkline: []float64{},
	}
}

func FallbackSentiment() Sentiment {
	return Sentiment{
		SentimentSplit: SentimentSplit{Bullish: 37, Neutral: 31, Bearish: 32, Spread: 5},
		UpdatedNote:    SentimentUnavailableNote,
	}
}

// FallbackFedOutlook is refreshed by hand from the FedWatch page from time to time.
func FallbackFedOutlook() FedOutlook {
	return FedOutlook{Meetings: []FedMeeting{
		{Date: "Mar 19, 2026", Cut25: 8, Hold: 88, Hike25: 4},
		{Date: "May 7, 2026", Cut25: 31, Hold: 62, Hike25: 7},
		{Date: "Jun 18, 2026", Cut25: 48, Hold: 44, Hike25: 8},
	}}
}

func FallbackFearGreed() FearGreed {
	return FearGreed{Score: 50, Rating: "neutral"}
}
