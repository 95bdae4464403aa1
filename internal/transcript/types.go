// Package transcript normalizes call-center transcript exports into a compact
// line-oriented text rendering used for rubric grading. Two incompatible JSON
// shapes are supported: the speech-analytics export (role-keyed maps under
// ConversationCharacteristics) and the website export (flat agent_*/client_*
// scalars). Both reduce to the same CallFacts and Turn list.
package transcript

// Schema identifies which of the two supported payload shapes a document uses.
type Schema string

const (
	SchemaAWS     Schema = "aws"
	SchemaWebsite Schema = "website"
)

// NotAvailable is rendered in place of any scalar missing from the payload.
// The output line structure is fixed regardless of missing data.
const NotAvailable = "N/A"

// ParticipantSummary holds the per-role aggregates shown in the analysis block.
// All values are display strings; absent ones carry NotAvailable.
type ParticipantSummary struct {
	Sentiment     string
	TalkSpeedWPM  string
	TotalTalkTime string
}

// CallFacts is the schema-independent view of one call consumed by the
// renderer. Duration is a display string for output compatibility with the
// website export; DurationMillis keeps the raw value when the source had one
// (0 when the source only supplied preformatted text).
type CallFacts struct {
	Schema         Schema
	CallID         string
	Duration       string
	DurationMillis int64
	AgentName      string
	ClientName     string
	ClientLocation string
	Agent          ParticipantSummary
	Client         ParticipantSummary
}

// Turn is one utterance of the call. Turns are immutable once extracted and
// keep their payload order; no sorting or deduplication happens anywhere.
type Turn struct {
	Role              string
	Content           string
	Sentiment         string
	LoudnessScores    []*float64 // nil entries are absent samples
	BeginOffsetMillis int64
}
