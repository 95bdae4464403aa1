package transcript

import (
	"encoding/json"
	"fmt"
)

// The website export keeps its sections as loosely typed objects. Each section
// is decoded independently so one misshapen section cannot take down the rest:
// this branch is also the fallback for unrecognized documents and must degrade
// field by field, never wholesale.
type websiteRecord struct {
	Call       json.RawMessage `json:"call"`
	Agent      json.RawMessage `json:"agent"`
	Client     json.RawMessage `json:"client"`
	Analysis   json.RawMessage `json:"analysis"`
	Transcript json.RawMessage `json:"transcript"`
}

func extractWebsite(data []byte) (CallFacts, []Turn, error) {
	var rec websiteRecord
	if err := json.Unmarshal(data, &rec); err != nil {
		return CallFacts{}, nil, fmt.Errorf("%w: %v", ErrMalformedPayload, err)
	}

	var call struct {
		CallID   json.RawMessage `json:"call_id"`
		Duration json.RawMessage `json:"duration"`
	}
	var agent struct {
		Name json.RawMessage `json:"name"`
	}
	var client struct {
		Name     json.RawMessage `json:"name"`
		Location json.RawMessage `json:"location"`
	}
	var analysis struct {
		AgentSentimentAvg   json.RawMessage `json:"agent_sentiment_avg"`
		AgentTalkspeed      json.RawMessage `json:"agent_talkspeed"`
		AgentTotalTalkTime  json.RawMessage `json:"agent_totaltalktime"`
		ClientSentimentAvg  json.RawMessage `json:"client_sentiment_avg"`
		ClientTalkspeed     json.RawMessage `json:"client_talkspeed"`
		ClientTotalTalkTime json.RawMessage `json:"client_totaltalktime"`
	}
	var tr struct {
		RawContent []rawTurn `json:"raw_content"`
	}
	// Absent or misshapen sections simply leave their fields at the sentinel.
	_ = json.Unmarshal(rec.Call, &call)
	_ = json.Unmarshal(rec.Agent, &agent)
	_ = json.Unmarshal(rec.Client, &client)
	_ = json.Unmarshal(rec.Analysis, &analysis)
	_ = json.Unmarshal(rec.Transcript, &tr)

	facts := CallFacts{
		Schema:         SchemaWebsite,
		CallID:         scalarString(call.CallID),
		Duration:       scalarString(call.Duration),
		AgentName:      scalarString(agent.Name),
		ClientName:     scalarString(client.Name),
		ClientLocation: scalarString(client.Location),
		Agent: ParticipantSummary{
			Sentiment:     scalarString(analysis.AgentSentimentAvg),
			TalkSpeedWPM:  scalarString(analysis.AgentTalkspeed),
			TotalTalkTime: scalarString(analysis.AgentTotalTalkTime),
		},
		Client: ParticipantSummary{
			Sentiment:     scalarString(analysis.ClientSentimentAvg),
			TalkSpeedWPM:  scalarString(analysis.ClientTalkspeed),
			TotalTalkTime: scalarString(analysis.ClientTotalTalkTime),
		},
	}
	return facts, convertTurns(tr.RawContent), nil
}

// scalarString renders a leaf value the website export may store as either a
// string or a number. Anything else (absent, null, object, array) becomes the
// sentinel.
func scalarString(raw json.RawMessage) string {
	if len(raw) == 0 {
		return NotAvailable
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		if s == "" {
			return NotAvailable
		}
		return s
	}
	var f float64
	if err := json.Unmarshal(raw, &f); err == nil {
		return formatFloat(f)
	}
	return NotAvailable
}
