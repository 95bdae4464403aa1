package transcript

import (
	"encoding/json"
	"fmt"
)

// Field layout of the speech-analytics export. Only what the grading format
// needs is decoded; the per-word item arrays that dominate the record size are
// never touched.
type awsRecord struct {
	JobName                     *string             `json:"JobName"`
	Transcript                  []rawTurn           `json:"Transcript"`
	ConversationCharacteristics *awsCharacteristics `json:"ConversationCharacteristics"`
}

type awsCharacteristics struct {
	TotalConversationDurationMillis *int64 `json:"TotalConversationDurationMillis"`
	TalkTime                        struct {
		DetailsByParticipant map[string]struct {
			TotalTimeMillis *int64 `json:"TotalTimeMillis"`
		} `json:"DetailsByParticipant"`
	} `json:"TalkTime"`
	TalkSpeed struct {
		DetailsByParticipant map[string]struct {
			AverageWordsPerMinute *float64 `json:"AverageWordsPerMinute"`
		} `json:"DetailsByParticipant"`
	} `json:"TalkSpeed"`
	Sentiment struct {
		OverallSentiment map[string]*float64 `json:"OverallSentiment"`
	} `json:"Sentiment"`
}

func extractAWS(data []byte) (CallFacts, []Turn, error) {
	var rec awsRecord
	if err := json.Unmarshal(data, &rec); err != nil {
		return CallFacts{}, nil, fmt.Errorf("%w: %v", ErrMalformedPayload, err)
	}

	facts := CallFacts{
		Schema:   SchemaAWS,
		CallID:   NotAvailable,
		Duration: NotAvailable,
		// The analytics export carries no human names.
		AgentName:      "Agent",
		ClientName:     "Customer",
		ClientLocation: NotAvailable,
		Agent:          emptySummary(),
		Client:         emptySummary(),
	}
	if rec.JobName != nil && *rec.JobName != "" {
		facts.CallID = *rec.JobName
	}
	if cc := rec.ConversationCharacteristics; cc != nil {
		if ms := cc.TotalConversationDurationMillis; ms != nil {
			facts.DurationMillis = *ms
			facts.Duration = formatMillisDuration(*ms)
		}
		facts.Agent = awsParticipant(cc, "AGENT")
		facts.Client = awsParticipant(cc, "CUSTOMER")
	}
	return facts, convertTurns(rec.Transcript), nil
}

func awsParticipant(cc *awsCharacteristics, role string) ParticipantSummary {
	s := emptySummary()
	if d, ok := cc.TalkTime.DetailsByParticipant[role]; ok && d.TotalTimeMillis != nil {
		s.TotalTalkTime = formatMillisDuration(*d.TotalTimeMillis)
	}
	if d, ok := cc.TalkSpeed.DetailsByParticipant[role]; ok && d.AverageWordsPerMinute != nil {
		s.TalkSpeedWPM = formatFloat(*d.AverageWordsPerMinute)
	}
	if v, ok := cc.Sentiment.OverallSentiment[role]; ok && v != nil {
		s.Sentiment = formatFloat(*v)
	}
	return s
}

// formatMillisDuration renders "<m> min, <s> secs" from a millisecond count,
// matching the preformatted duration strings of the website export.
func formatMillisDuration(ms int64) string {
	total := ms / 1000
	return fmt.Sprintf("%d min, %d secs", total/60, total%60)
}
