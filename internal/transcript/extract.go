package transcript

import (
	"errors"
	"strconv"
)

// ErrMalformedPayload marks input that is not parseable JSON at all. Missing
// or misshapen fields never produce an error, only sentinel values.
var ErrMalformedPayload = errors.New("malformed transcript payload")

// Extract pulls CallFacts and the ordered turn list out of a payload using the
// strategy for the given schema. It fails only on malformed JSON.
func Extract(data []byte, schema Schema) (CallFacts, []Turn, error) {
	switch schema {
	case SchemaAWS:
		return extractAWS(data)
	default:
		return extractWebsite(data)
	}
}

// Format runs the whole pipeline on one payload: detect, extract, assemble.
// Pure given its input; identical payloads yield byte-identical output.
func Format(data []byte) (string, error) {
	facts, turns, err := Extract(data, Detect(data))
	if err != nil {
		return "", err
	}
	return Assemble(facts, turns), nil
}

// rawTurn is the turn layout both exports share: the website export embeds the
// analytics turn objects unchanged under transcript.raw_content.
type rawTurn struct {
	ParticipantRole   string     `json:"ParticipantRole"`
	Content           string     `json:"Content"`
	Sentiment         string     `json:"Sentiment"`
	LoudnessScores    []*float64 `json:"LoudnessScores"`
	BeginOffsetMillis int64      `json:"BeginOffsetMillis"`
}

func convertTurns(raw []rawTurn) []Turn {
	turns := make([]Turn, 0, len(raw))
	for _, t := range raw {
		turns = append(turns, Turn{
			Role:              t.ParticipantRole,
			Content:           t.Content,
			Sentiment:         t.Sentiment,
			LoudnessScores:    t.LoudnessScores,
			BeginOffsetMillis: t.BeginOffsetMillis,
		})
	}
	return turns
}

func emptySummary() ParticipantSummary {
	return ParticipantSummary{
		Sentiment:     NotAvailable,
		TalkSpeedWPM:  NotAvailable,
		TotalTalkTime: NotAvailable,
	}
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
