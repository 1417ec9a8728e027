package main

import (
	"fmt"
	"io"

	"github.com/RoyCoates/EGM722Project/pkg/analytics"
	"github.com/RoyCoates/EGM722Project/pkg/cost"
	"github.com/RoyCoates/EGM722Project/pkg/validation"
)

func printResults(w io.Writer, heading string, results []validation.Result) {
	if len(results) == 0 {
		return
	}
	fmt.Fprintf(w, "%s (%d):\n", heading, len(results))
	for _, r := range results {
		if r.Layer != "" {
			fmt.Fprintf(w, "  [%s] %s: %s\n", r.Level, r.Layer, r.Message)
		} else {
			fmt.Fprintf(w, "  [%s] %s\n", r.Level, r.Message)
		}
		if r.Path != "" {
			fmt.Fprintf(w, "    -> %s = %v\n", r.Path, r.ActualValue)
		}
		if r.Expected != "" {
			fmt.Fprintf(w, "    expected: %s\n", r.Expected)
		}
		for _, s := range r.Suggestions {
			fmt.Fprintf(w, "    * %s\n", s)
		}
	}
	fmt.Fprintln(w)
}

func printValidationReport(w io.Writer, r *validation.Report) {
	printResults(w, "ERRORS", r.Errors)
	printResults(w, "WARNINGS", r.Warnings)
	printResults(w, "INFO", r.Info)

	if r.Valid {
		fmt.Fprintf(w, "Result: VALID (%s)\n", r.Summary)
	} else {
		fmt.Fprintf(w, "Result: INVALID (%s)\n", r.Summary)
	}
}

func printJunctionSummary(w io.Writer, summaries []analytics.JunctionSummary) {
	fmt.Fprintln(w, "Lighting Columns by Junction")
	fmt.Fprintln(w, "============================")
	fmt.Fprintln(w)
	fmt.Fprintf(w, "%-12s %8s %10s %10s\n", "Junction", "Total", "Scheduled", "Retained")
	fmt.Fprintf(w, "%-12s %8s %10s %10s\n", "------------", "--------", "----------", "----------")
	for _, s := range summaries {
		fmt.Fprintf(w, "%-12s %8d %10d %10d\n", s.DisplayName(), s.Total, s.Scheduled, s.Retained())
	}
	total, scheduled := analytics.Totals(summaries)
	fmt.Fprintf(w, "%-12s %8d %10d %10d\n", "TOTAL", total, scheduled, total-scheduled)
}

func printSavingsReport(w io.Writer, r *cost.Report) {
	fmt.Fprintln(w, "Projected Annual Savings")
	fmt.Fprintln(w, "========================")
	fmt.Fprintln(w)
	fmt.Fprintf(w, "%-12s %10s %16s\n", "Junction", "Upgraded", "Annual Savings")
	fmt.Fprintf(w, "%-12s %10s %16s\n", "------------", "----------", "----------------")
	for _, row := range r.Rows {
		fmt.Fprintf(w, "%-12s %10d %16s\n", row.Junction, row.Scheduled, row.Formatted)
	}
	fmt.Fprintf(w, "%-12s %10d %16s\n", "TOTAL", r.Summary.Scheduled, r.Summary.Formatted)
}
