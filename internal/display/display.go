// Package display styles terminal output for the CLI. The formatted
// transcript itself is always written unstyled; only status lines and the
// rubric table get color.
package display

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/charmbracelet/lipgloss"

	"callgrader-go/internal/rubric"
)

var (
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	mutedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	headerStyle  = lipgloss.NewStyle().Bold(true)
)

func Successf(w io.Writer, format string, args ...interface{}) {
	fmt.Fprintln(w, successStyle.Render(fmt.Sprintf(format, args...)))
}

func Errorf(w io.Writer, format string, args ...interface{}) {
	fmt.Fprintln(w, errorStyle.Render(fmt.Sprintf(format, args...)))
}

func Mutedf(w io.Writer, format string, args ...interface{}) {
	fmt.Fprintln(w, mutedStyle.Render(fmt.Sprintf(format, args...)))
}

// PrintRubricTable prints the rubric as an aligned terminal table.
func PrintRubricTable(r rubric.Rubric, w io.Writer) {
	fmt.Fprintln(w, headerStyle.Render(r.DisplayTitle()))
	tw := tabwriter.NewWriter(w, 0, 0, 3, ' ', 0)
	fmt.Fprintln(tw, "SECTION\tWEIGHT\tCRITERION\tPOINTS")
	for _, c := range r.Categories {
		for i, cr := range c.Criteria {
			name, weight := "", ""
			if i == 0 {
				name = c.Name
				weight = rubric.FormatPoints(c.Weight)
			}
			fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", name, weight, cr.Label, rubric.FormatPoints(cr.Points))
		}
	}
	for _, fl := range r.RedFlags {
		fmt.Fprintf(tw, "RED FLAG\t\t%s\t-%s\n", fl.Label, rubric.FormatPoints(fl.Penalty))
	}
	for _, b := range r.Bonuses {
		fmt.Fprintf(tw, "BONUS\t\t%s\t+%s\n", b.Label, rubric.FormatPoints(b.Points))
	}
	tw.Flush()
	fmt.Fprintln(w, mutedStyle.Render(
		fmt.Sprintf("maximum score: %s pts", rubric.FormatPoints(r.MaxPoints()))))
}
