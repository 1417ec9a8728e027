// Package analytics aggregates lighting-column records per junction.
package analytics

import (
	"sort"

	"github.com/RoyCoates/EGM722Project/pkg/layer"
	"github.com/RoyCoates/EGM722Project/pkg/spec"
)

// SummarizeJunctions groups the lighting layer by junction id and counts,
// per group, all records and those whose scheduled flag equals
// lt.ScheduledValue. Records with a null junction form their own group.
// The result is sorted by scheduled count, descending; groups with equal
// counts keep the order in which their junction first appears.
func SummarizeJunctions(lyr *layer.Layer, lt spec.LightingDef) []JunctionSummary {
	type key struct {
		id   string
		null bool
	}
	index := make(map[key]int)
	var out []JunctionSummary

	for _, f := range lyr.Features {
		id, ok := f.Value(lt.JunctionField)
		k := key{id: id, null: !ok}
		i, seen := index[k]
		if !seen {
			i = len(out)
			index[k] = i
			out = append(out, JunctionSummary{Junction: id, Null: !ok})
		}
		out[i].Total++
		if v, _ := f.Value(lt.ScheduledField); v == lt.ScheduledValue {
			out[i].Scheduled++
		}
	}

	sort.SliceStable(out, func(a, b int) bool {
		return out[a].Scheduled > out[b].Scheduled
	})
	return out
}

// Top returns the first n summaries. n <= 0 returns all of them.
func Top(summaries []JunctionSummary, n int) []JunctionSummary {
	if n <= 0 || n >= len(summaries) {
		return summaries
	}
	return summaries[:n]
}

// Totals sums the counts over all summaries.
func Totals(summaries []JunctionSummary) (total, scheduled int) {
	for _, s := range summaries {
		total += s.Total
		scheduled += s.Scheduled
	}
	return total, scheduled
}
