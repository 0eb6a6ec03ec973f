package normalize

import (
	"bytes"
	"encoding/json"
	"strings"

	"market-pulse/internal/domain"

	"github.com/shopspring/decimal"
)

// MaxFedMeetings is how many upcoming meetings the dashboard shows.
const MaxFedMeetings = 3

var half = decimal.NewFromFloat(0.5)

// RawMeeting is a FedWatch countdown row. The feed has shipped two naming schemes,
// so both spellings are decoded and the newer one wins.
type RawMeeting struct {
	MeetingDate   Text `json:"meetingDate"`
	Date          Text `json:"date"`
	ProbDown25    Text `json:"probDown25"`
	ProbCut25     Text `json:"probCut25"`
	ProbUnchanged Text `json:"probUnchanged"`
	ProbHold      Text `json:"probHold"`
	ProbUp25      Text `json:"probUp25"`
	ProbHike25    Text `json:"probHike25"`
}

// Text decodes a JSON string or number as its textual form. Other JSON values decode as "".
type Text string

func (t *Text) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*t = Text(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		*t = ""
		return nil
	}
	*t = Text(n.String())
	return nil
}

// NormalizeMeetings converts up to the first three rows into whole-percent probabilities.
func NormalizeMeetings(raw []RawMeeting) []domain.FedMeeting {
	if len(raw) > MaxFedMeetings {
		raw = raw[:MaxFedMeetings]
	}
	out := make([]domain.FedMeeting, 0, len(raw))
	for _, m := range raw {
		out = append(out, domain.FedMeeting{
			Date:   firstNonEmpty(m.MeetingDate, m.Date),
			Cut25:  percent(firstNonEmpty(m.ProbDown25, m.ProbCut25)),
			Hold:   percent(firstNonEmpty(m.ProbUnchanged, m.ProbHold)),
			Hike25: percent(firstNonEmpty(m.ProbUp25, m.ProbHike25)),
		})
	}
	return out
}

// percent parses a probability string and rounds it half up. Unparseable text is 0.
func percent(s string) int {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return 0
	}
	return int(d.Add(half).Floor().IntPart())
}

func firstNonEmpty(values ...Text) string {
	for _, v := range values {
		if v != "" {
			return string(v)
		}
	}
	return ""
}
