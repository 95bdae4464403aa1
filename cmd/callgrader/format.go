package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"callgrader-go/internal/config"
	"callgrader-go/internal/display"
	"callgrader-go/internal/logger"
	"callgrader-go/internal/source"
	"callgrader-go/internal/transcript"
)

func newFormatCmd() *cobra.Command {
	var outPath string
	cmd := &cobra.Command{
		Use:   "format <transcript.json>",
		Short: "Render a transcript payload as grading text",
		Long: "Reads a transcript JSON export (local file or URL), detects its shape and " +
			"writes the line-oriented grading text to a sibling file, echoing it to stdout.",
		Args: exactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			log := logger.New().ForComponent("cli.format")

			location := args[0]
			payload, err := source.Read(location)
			if err != nil {
				return fmt.Errorf("could not read %s: %w", location, err)
			}

			schema := transcript.Detect(payload)
			facts, turns, err := transcript.Extract(payload, schema)
			if err != nil {
				return fmt.Errorf("invalid transcript JSON: %w", err)
			}
			text := transcript.Assemble(facts, turns)

			if outPath == "" {
				outPath = deriveOutputPath(location, cfg.OutputSuffix)
			}
			if err := os.WriteFile(outPath, []byte(text), 0o644); err != nil {
				return fmt.Errorf("write output: %w", err)
			}
			log.WithField("schema", string(schema)).
				WithField("turns", len(turns)).
				WithField("output", outPath).
				Info("transcript formatted")

			fmt.Fprintln(cmd.OutOrStdout(), text)
			display.Successf(cmd.ErrOrStderr(), "transcript formatted, saved to %s", outPath)
			display.Mutedf(cmd.ErrOrStderr(), "%d characters, paste alongside your rubric to grade the call", len(text))
			return nil
		},
	}
	cmd.Flags().StringVarP(&outPath, "output", "o", "", "output file (default: sibling <name>"+"_formatted.txt)")
	return cmd
}

// deriveOutputPath places the text next to a local input, or in the working
// directory for URLs, swapping the extension for the configured suffix.
func deriveOutputPath(location, suffix string) string {
	base := filepath.Base(location)
	if i := strings.IndexAny(base, "?#"); i >= 0 {
		base = base[:i]
	}
	stem := strings.TrimSuffix(base, filepath.Ext(base))
	if stem == "" {
		stem = "transcript"
	}
	if source.IsURL(location) {
		return stem + suffix
	}
	return filepath.Join(filepath.Dir(location), stem+suffix)
}
