package main

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"callgrader-go/internal/config"
	"callgrader-go/internal/display"
	"callgrader-go/internal/logger"
	"callgrader-go/internal/rubric"
	"callgrader-go/internal/source"
	"callgrader-go/internal/transcript"
	"callgrader-go/internal/workbook"
)

func newWorkbookCmd() *cobra.Command {
	var outPath, rubricPath string
	cmd := &cobra.Command{
		Use:   "workbook <transcript.json>",
		Short: "Export a grading workbook (.xlsx)",
		Long: "Builds an annotated-grading spreadsheet from a transcript payload: call " +
			"facts, the ordered transcript with score/notes columns, and the rubric when " +
			"one is configured.",
		Args: exactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			log := logger.New().ForComponent("cli.workbook")

			location := args[0]
			payload, err := source.Read(location)
			if err != nil {
				return fmt.Errorf("could not read %s: %w", location, err)
			}
			facts, turns, err := transcript.Extract(payload, transcript.Detect(payload))
			if err != nil {
				return fmt.Errorf("invalid transcript JSON: %w", err)
			}

			var rub *rubric.Rubric
			if rubricPath == "" {
				rubricPath = cfg.RubricPath
			}
			if rubricPath != "" {
				r, err := rubric.Load(rubricPath)
				if err != nil {
					return err
				}
				rub = &r
			}

			if outPath == "" {
				outPath = transcript.SuggestedFilename(facts) + ".xlsx"
				if !source.IsURL(location) {
					outPath = filepath.Join(filepath.Dir(location), outPath)
				}
			}
			if err := workbook.Export(outPath, facts, turns, rub, cfg.ColumnLimit); err != nil {
				return err
			}
			log.WithField("turns", len(turns)).WithField("output", outPath).Info("workbook exported")
			display.Successf(cmd.ErrOrStderr(), "grading workbook saved to %s", outPath)
			return nil
		},
	}
	cmd.Flags().StringVarP(&outPath, "output", "o", "", "workbook path (default: call_<id>_formatted.xlsx)")
	cmd.Flags().StringVarP(&rubricPath, "rubric", "r", "", "rubric yaml to include as a sheet")
	return cmd
}
