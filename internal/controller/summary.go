package controller

import (
	"fmt"
	"io"
	"sort"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"

	m "github.com/mole-works/mend/internal/model"
)

// renderSummary writes the per-file outcome table shared by both UIs.
func renderSummary(out io.Writer, reports []m.FileReport) error {
	sorted := make([]m.FileReport, len(reports))
	copy(sorted, reports)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Source.Origin < sorted[j].Source.Origin
	})

	table := tablewriter.NewWriter(out)
	table.SetHeader([]string{"Path", "Outcome", "Fixes", "Decls"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetColumnAlignment([]int{
		tablewriter.ALIGN_LEFT,
		tablewriter.ALIGN_CENTER,
		tablewriter.ALIGN_CENTER,
		tablewriter.ALIGN_CENTER,
	})

	totalFixes := 0
	failed := 0

	for _, report := range sorted {
		totalFixes += len(report.Fixes)
		if report.Failed() {
			failed++
		}

		table.Append([]string{
			string(report.Source.Origin),
			colorOutcome(report.Outcome),
			fmt.Sprintf("%d", len(report.Fixes)),
			fmt.Sprintf("%d", report.Decls),
		})
	}

	table.SetFooter([]string{
		fmt.Sprintf("Total Files %d", len(sorted)),
		fmt.Sprintf("Failed %d", failed),
		fmt.Sprintf("%d", totalFixes),
		"",
	})
	table.Render()

	for _, report := range sorted {
		if report.Failed() {
			describeFailure(out, report)
		}

		for _, warning := range report.Warnings {
			fmt.Fprintf(out, "warning: %s: %s\n", report.Source.Origin, warning)
		}
	}

	return nil
}

func describeFailure(out io.Writer, report m.FileReport) {
	switch report.Outcome {
	case m.OutcomeUnrepairable:
		fmt.Fprintf(out, "%s: no fixer registered for %s node at byte %d\n",
			report.Source.Origin, report.ErrNodeType, report.ErrOffset)
	case m.OutcomeBudgetExceeded:
		fmt.Fprintf(out, "%s: repair budget exhausted after %d iterations; %s node at byte %d\n",
			report.Source.Origin, report.Iterations, report.ErrNodeType, report.ErrOffset)
	case m.OutcomeLoadFailed:
		fmt.Fprintf(out, "%s: %s\n", report.Source.Origin, report.Err)
	}
}

func colorOutcome(outcome m.Outcome) string {
	switch outcome {
	case m.OutcomeClean:
		return color.GreenString(string(outcome))
	case m.OutcomeRepaired:
		return color.CyanString(string(outcome))
	case m.OutcomeBudgetExceeded, m.OutcomeUnrepairable:
		return color.RedString(string(outcome))
	case m.OutcomeLoadFailed:
		return color.YellowString(string(outcome))
	default:
		return string(outcome)
	}
}
