package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"callgrader-go/internal/display"
	"callgrader-go/internal/rubric"
)

func newRubricCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rubric",
		Short: "Work with grading rubrics",
	}
	cmd.AddCommand(newRubricRenderCmd())
	cmd.AddCommand(newRubricShowCmd())
	return cmd
}

func newRubricRenderCmd() *cobra.Command {
	var outPath string
	cmd := &cobra.Command{
		Use:   "render <rubric.yaml>",
		Short: "Render a rubric as grading text",
		Args:  exactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := rubric.Load(args[0])
			if err != nil {
				return err
			}
			text := r.Render()
			if outPath != "" {
				if err := os.WriteFile(outPath, []byte(text), 0o644); err != nil {
					return fmt.Errorf("write output: %w", err)
				}
				display.Successf(cmd.ErrOrStderr(), "rubric rendered to %s", outPath)
			}
			fmt.Fprintln(cmd.OutOrStdout(), text)
			return nil
		},
	}
	cmd.Flags().StringVarP(&outPath, "output", "o", "", "write the rendered rubric to a file")
	return cmd
}

func newRubricShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <rubric.yaml>",
		Short: "Show a rubric as a terminal table",
		Args:  exactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := rubric.Load(args[0])
			if err != nil {
				return err
			}
			display.PrintRubricTable(r, cmd.OutOrStdout())
			return nil
		},
	}
}
