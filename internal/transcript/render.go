package transcript

import (
	"fmt"
	"strconv"
	"strings"
)

// Timestamp renders the begin offset as "<m>:<ss>", seconds zero-padded.
func (t Turn) Timestamp() string {
	ms := t.BeginOffsetMillis
	return fmt.Sprintf("%d:%02d", ms/60000, (ms%60000)/1000)
}

// AverageLoudness is the mean of the non-null samples rounded to one decimal
// place. Absent samples are excluded from both sum and count; with no valid
// samples at all the sentinel is returned.
func (t Turn) AverageLoudness() string {
	var sum float64
	var n int
	for _, s := range t.LoudnessScores {
		if s == nil {
			continue
		}
		sum += *s
		n++
	}
	if n == 0 {
		return NotAvailable
	}
	return strconv.FormatFloat(sum/float64(n), 'f', 1, 64)
}

// DisplayRole returns the participant role, UNKNOWN when the payload had none.
func (t Turn) DisplayRole() string {
	if t.Role == "" {
		return "UNKNOWN"
	}
	return t.Role
}

// DisplaySentiment returns the turn sentiment label, UNKNOWN when absent.
func (t Turn) DisplaySentiment() string {
	if t.Sentiment == "" {
		return "UNKNOWN"
	}
	return t.Sentiment
}

// RenderTurn produces the header and body lines for one turn. The header
// layout must match the downstream grading prompt exactly.
func RenderTurn(t Turn) (header, body string) {
	header = fmt.Sprintf("[%s] %s | %s dB | %s",
		t.Timestamp(), t.DisplayRole(), t.AverageLoudness(), t.DisplaySentiment())
	return header, t.Content
}

// Assemble joins the metadata block, the analysis summary, the transcript
// section header and the rendered turns into the final text. It is total:
// any CallFacts/Turn pair renders, however sparse.
func Assemble(facts CallFacts, turns []Turn) string {
	lines := make([]string, 0, 13+3*len(turns))
	lines = append(lines,
		"=== CALL METADATA ===",
		"Call ID: "+facts.CallID,
		"Duration: "+facts.Duration,
		"Agent: "+facts.AgentName,
		fmt.Sprintf("Client: %s (%s)", facts.ClientName, facts.ClientLocation),
		"",
		"=== CALL ANALYSIS SUMMARY ===",
		summaryLine("Agent  —", facts.Agent),
		summaryLine("Client —", facts.Client),
		"",
		"=== TRANSCRIPT ===",
		"(Format: [timestamp] ROLE | avg_loudness dB | SENTIMENT)",
		"",
	)
	for _, t := range turns {
		header, body := RenderTurn(t)
		lines = append(lines, header, body, "")
	}
	return strings.Join(lines, "\n")
}

func summaryLine(label string, p ParticipantSummary) string {
	return fmt.Sprintf("%s avg sentiment: %s | talk speed: %s wpm | total talk time: %s",
		label, p.Sentiment, p.TalkSpeedWPM, p.TotalTalkTime)
}

// SuggestedFilename derives a download/export stem from the call identifier,
// mirroring what the upload UI offers for the rendered document.
func SuggestedFilename(facts CallFacts) string {
	id := facts.CallID
	if id == "" || id == NotAvailable {
		id = "transcript"
	}
	var b strings.Builder
	for _, r := range id {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9',
			r == '-', r == '_', r == '.':
			b.WriteRune(r)
		default:
			b.WriteRune('-')
		}
	}
	return "call_" + b.String() + "_formatted"
}
