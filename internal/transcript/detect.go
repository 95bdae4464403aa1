package transcript

import (
	"bytes"
	"encoding/json"
)

// Detect classifies a raw payload. A document whose top-level Transcript field
// is a JSON array is the speech-analytics export; everything else, including
// documents matching neither shape, falls through to the website strategy so
// the formatter always produces output. The website branch then degrades every
// unlocatable field to the sentinel instead of failing.
func Detect(data []byte) Schema {
	var probe struct {
		Transcript json.RawMessage `json:"Transcript"`
	}
	if err := json.Unmarshal(data, &probe); err != nil {
		return SchemaWebsite
	}
	if t := bytes.TrimSpace(probe.Transcript); len(t) > 0 && t[0] == '[' {
		return SchemaAWS
	}
	return SchemaWebsite
}
