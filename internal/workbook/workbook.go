// Package workbook exports a grading workbook graders can annotate directly:
// one sheet of call facts, the ordered transcript with empty score/notes
// columns, the paged formatted text, and optionally the rubric.
package workbook

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"callgrader-go/internal/document"
	"callgrader-go/internal/rubric"
	"callgrader-go/internal/transcript"
)

const (
	callSheet       = "Call"
	transcriptSheet = "Transcript"
	formattedSheet  = "Formatted"
	rubricSheet     = "Rubric"
)

// Export writes an .xlsx grading workbook to path. rub may be nil; columnLimit
// bounds line width on the Formatted sheet (0 uses the renderer default).
func Export(path string, facts transcript.CallFacts, turns []transcript.Turn, rub *rubric.Rubric, columnLimit int) error {
	f := excelize.NewFile()
	defer f.Close()

	f.SetSheetName(f.GetSheetName(0), callSheet)
	if err := writeCallSheet(f, facts); err != nil {
		return err
	}
	if err := writeTranscriptSheet(f, turns); err != nil {
		return err
	}
	if err := writeFormattedSheet(f, transcript.Assemble(facts, turns), columnLimit); err != nil {
		return err
	}
	if rub != nil {
		if err := writeRubricSheet(f, *rub); err != nil {
			return err
		}
	}
	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("save workbook: %w", err)
	}
	return nil
}

func writeCallSheet(f *excelize.File, facts transcript.CallFacts) error {
	rows := [][]interface{}{
		{"Call ID", facts.CallID},
		{"Schema", string(facts.Schema)},
		{"Duration", facts.Duration},
	}
	if facts.DurationMillis > 0 {
		rows = append(rows, []interface{}{"Duration (ms)", facts.DurationMillis})
	}
	rows = append(rows,
		[]interface{}{"Agent", facts.AgentName},
		[]interface{}{"Client", facts.ClientName},
		[]interface{}{"Client location", facts.ClientLocation},
		[]interface{}{"Agent sentiment", facts.Agent.Sentiment},
		[]interface{}{"Agent talk speed (wpm)", facts.Agent.TalkSpeedWPM},
		[]interface{}{"Agent talk time", facts.Agent.TotalTalkTime},
		[]interface{}{"Client sentiment", facts.Client.Sentiment},
		[]interface{}{"Client talk speed (wpm)", facts.Client.TalkSpeedWPM},
		[]interface{}{"Client talk time", facts.Client.TotalTalkTime},
	)
	return writeRows(f, callSheet, 1, rows)
}

func writeTranscriptSheet(f *excelize.File, turns []transcript.Turn) error {
	if _, err := f.NewSheet(transcriptSheet); err != nil {
		return fmt.Errorf("create sheet: %w", err)
	}
	rows := [][]interface{}{
		{"Timestamp", "Role", "Avg loudness (dB)", "Sentiment", "Content", "Score", "Notes"},
	}
	for _, t := range turns {
		rows = append(rows, []interface{}{
			t.Timestamp(), t.DisplayRole(), t.AverageLoudness(), t.DisplaySentiment(), t.Content, "", "",
		})
	}
	return writeRows(f, transcriptSheet, 1, rows)
}

func writeFormattedSheet(f *excelize.File, text string, columnLimit int) error {
	if _, err := f.NewSheet(formattedSheet); err != nil {
		return fmt.Errorf("create sheet: %w", err)
	}
	var rows [][]interface{}
	for _, b := range document.Build(text, columnLimit) {
		if b.Kind == document.Spacer {
			rows = append(rows, []interface{}{""})
			continue
		}
		rows = append(rows, []interface{}{b.Text})
	}
	return writeRows(f, formattedSheet, 1, rows)
}

func writeRubricSheet(f *excelize.File, r rubric.Rubric) error {
	if _, err := f.NewSheet(rubricSheet); err != nil {
		return fmt.Errorf("create sheet: %w", err)
	}
	rows := [][]interface{}{
		{r.DisplayTitle()},
		{"Section", "Weight", "Criterion", "Points", "Awarded"},
	}
	for _, c := range r.Categories {
		for i, cr := range c.Criteria {
			name, weight := "", ""
			if i == 0 {
				name = c.Name
				weight = rubric.FormatPoints(c.Weight)
			}
			rows = append(rows, []interface{}{name, weight, cr.Label, cr.Points, ""})
		}
	}
	for _, fl := range r.RedFlags {
		rows = append(rows, []interface{}{"RED FLAG", "", fl.Label, -fl.Penalty, ""})
	}
	for _, b := range r.Bonuses {
		rows = append(rows, []interface{}{"BONUS", "", b.Label, b.Points, ""})
	}
	rows = append(rows, []interface{}{"", "", "Maximum score", r.MaxPoints(), ""})
	return writeRows(f, rubricSheet, 1, rows)
}

func writeRows(f *excelize.File, sheet string, startRow int, rows [][]interface{}) error {
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, startRow+i)
		if err != nil {
			return fmt.Errorf("cell name: %w", err)
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return fmt.Errorf("write %s row %d: %w", sheet, startRow+i, err)
		}
	}
	return nil
}
