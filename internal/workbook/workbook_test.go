package workbook

import (
	"path/filepath"
	"testing"

	"github.com/xuri/excelize/v2"

	"callgrader-go/internal/rubric"
	"callgrader-go/internal/transcript"
)

func f(v float64) *float64 { return &v }

func testFacts() transcript.CallFacts {
	return transcript.CallFacts{
		Schema:         transcript.SchemaAWS,
		CallID:         "call-42",
		Duration:       "2 min, 5 secs",
		DurationMillis: 125000,
		AgentName:      "Agent",
		ClientName:     "Customer",
		ClientLocation: transcript.NotAvailable,
		Agent: transcript.ParticipantSummary{
			Sentiment: "2.5", TalkSpeedWPM: "132", TotalTalkTime: "1 min, 2 secs",
		},
		Client: transcript.ParticipantSummary{
			Sentiment: "-1", TalkSpeedWPM: "110.5", TotalTalkTime: "0 min, 58 secs",
		},
	}
}

func testTurns() []transcript.Turn {
	return []transcript.Turn{
		{Role: "AGENT", Content: "Hello.", Sentiment: "POSITIVE",
			LoudnessScores: []*float64{f(40), f(50)}, BeginOffsetMillis: 3000},
		{Role: "CUSTOMER", Content: "Hi.", Sentiment: "NEUTRAL",
			LoudnessScores: []*float64{nil}, BeginOffsetMillis: 8000},
	}
}

func TestExport_CallAndTranscriptSheets(t *testing.T) {
	path := filepath.Join(t.TempDir(), "grading.xlsx")
	if err := Export(path, testFacts(), testTurns(), nil, 0); err != nil {
		t.Fatalf("export failed: %v", err)
	}

	wb, err := excelize.OpenFile(path)
	if err != nil {
		t.Fatalf("reopen failed: %v", err)
	}
	defer wb.Close()

	id, err := wb.GetCellValue(callSheet, "B1")
	if err != nil {
		t.Fatal(err)
	}
	if id != "call-42" {
		t.Errorf("expected call id in B1, got %q", id)
	}

	rows, err := wb.GetRows(transcriptSheet)
	if err != nil {
		t.Fatal(err)
	}
	// header + 2 turns
	if len(rows) != 3 {
		t.Fatalf("expected 3 transcript rows, got %d", len(rows))
	}
	if rows[1][0] != "0:03" || rows[1][1] != "AGENT" || rows[1][2] != "45.0" {
		t.Errorf("unexpected first turn row: %v", rows[1])
	}
	if rows[2][2] != transcript.NotAvailable {
		t.Errorf("all-null loudness should export the sentinel, got %q", rows[2][2])
	}

	first, err := wb.GetCellValue(formattedSheet, "A1")
	if err != nil {
		t.Fatal(err)
	}
	if first != "=== CALL METADATA ===" {
		t.Errorf("formatted sheet should start with the metadata header, got %q", first)
	}
}

func TestExport_RubricSheetOptional(t *testing.T) {
	dir := t.TempDir()

	without := filepath.Join(dir, "plain.xlsx")
	if err := Export(without, testFacts(), nil, nil, 0); err != nil {
		t.Fatalf("export failed: %v", err)
	}
	wb, err := excelize.OpenFile(without)
	if err != nil {
		t.Fatal(err)
	}
	if idx, _ := wb.GetSheetIndex(rubricSheet); idx != -1 {
		t.Error("rubric sheet should be absent when no rubric is given")
	}
	wb.Close()

	r := rubric.Rubric{
		Title: "Test Rubric",
		Categories: []rubric.Category{
			{Name: "Greeting", Weight: 1, Criteria: []rubric.Criterion{{Label: "Intro", Points: 10}}},
		},
		RedFlags: []rubric.RedFlag{{Label: "Rude", Penalty: 20}},
	}
	with := filepath.Join(dir, "rubric.xlsx")
	if err := Export(with, testFacts(), nil, &r, 0); err != nil {
		t.Fatalf("export failed: %v", err)
	}
	wb, err = excelize.OpenFile(with)
	if err != nil {
		t.Fatal(err)
	}
	defer wb.Close()
	title, err := wb.GetCellValue(rubricSheet, "A1")
	if err != nil {
		t.Fatal(err)
	}
	if title != "Test Rubric" {
		t.Errorf("expected rubric title in A1, got %q", title)
	}
}
