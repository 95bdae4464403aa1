package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "callgrader",
		Short: "Format call transcripts and rubrics for grading",
		Long: "callgrader converts call-center transcript exports (speech-analytics or " +
			"website shape) into a compact text rendering for rubric grading, renders " +
			"grading rubrics, and exports grading workbooks.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newFormatCmd())
	root.AddCommand(newRubricCmd())
	root.AddCommand(newWorkbookCmd())
	return root
}

// exactArgs mirrors cobra.ExactArgs but surfaces the command usage line in
// the error so a bare invocation explains itself.
func exactArgs(n int) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if len(args) != n {
			return fmt.Errorf("usage: %s", cmd.UseLine())
		}
		return nil
	}
}
