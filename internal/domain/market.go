package domain

import (
	"encoding/json"
	"math"
)

// Quote is the normalized watchlist entry for a single instrument.
type Quote struct {
	Symbol           string    `json:"symbol"`
	Name             string    `json:"name"`
	Price            float64   `json:"price"`
	ChangePercent1D  float64   `json:"changePercent1D"`
	ChangePercent5D  float64   `json:"changePercent5D"`
	ChangePercent20D float64   `json:"changePercent20D"`
	Sparkline        []float64 `json:"sparkline"`
}

// Observation is one dated point of a macro series. Value may be NaN when
// upstream sent text that is neither a number nor the missing marker.
type Observation struct {
	Date  string
	Value float64
}

type observationJSON struct {
	Date  string   `json:"date"`
	Value *float64 `json:"value"`
}

// MarshalJSON encodes non-finite values as null.
func (o Observation) MarshalJSON() ([]byte, error) {
	w := observationJSON{Date: o.Date}
	if !math.IsNaN(o.Value) && !math.IsInf(o.Value, 0) {
		v := o.Value
		w.Value = &v
	}
	return json.Marshal(w)
}

func (o *Observation) UnmarshalJSON(data []byte) error {
	var w observationJSON
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	o.Date = w.Date
	o.Value = math.NaN()
	if w.Value != nil {
		o.Value = *w.Value
	}
	return nil
}

// MacroSeries is a FRED series with its display metadata.
type MacroSeries struct {
	SeriesID string        `json:"seriesId"`
	Label    string        `json:"label"`
	Unit     string        `json:"unit"`
	Data     []Observation `json:"data"`
}

// SentimentSplit holds survey percentages. After normalization
// Bullish+Neutral+Bearish is 100 whenever the raw total was off by more than 5.
type SentimentSplit struct {
	Bullish int `json:"bullish"`
	Neutral int `json:"neutral"`
	Bearish int `json:"bearish"`
	Spread  int `json:"spread"`
}

// Sentiment is the payload served for the weekly investor survey.
type Sentiment struct {
	SentimentSplit
	UpdatedNote string `json:"updatedNote"`
}

// FedMeeting carries rate-move probabilities (percent) for one FOMC meeting.
type FedMeeting struct {
	Date   string `json:"date"`
	Cut25  int    `json:"cut25"`
	Hold   int    `json:"hold"`
	Hike25 int    `json:"hike25"`
}

type FedOutlook struct {
	Meetings []FedMeeting `json:"meetings"`
}

type FearGreed struct {
	Score  int    `json:"score"`
	Rating string `json:"rating"`
}

// Dashboard bundles every card the front end renders.
type Dashboard struct {
	Watchlist []Quote       `json:"watchlist"`
	Macro     []MacroSeries `json:"macro"`
	Sentiment Sentiment     `json:"sentiment"`
	Fed       FedOutlook    `json:"fed"`
	FearGreed FearGreed     `json:"fearGreed"`
	Errors    []string      `json:"errors,omitempty"`
}
