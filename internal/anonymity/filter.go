// Package anonymity enforces the k-anonymity floor on segmented survey
// data. Every code path that builds an LLM prompt or a report from data
// with a segment column must go through Filter first.
package anonymity

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"climate-insight/internal/survey"
)

// Threshold is the minimum number of responses a segment needs before its
// data may be analyzed. Fixed on purpose: it is not read from config or
// environment so it cannot be weakened by accident.
const Threshold = 5

var (
	// ErrSegmentColumnMissing means the caller asked to filter on a column
	// the table does not have.
	ErrSegmentColumnMissing = errors.New("segment column not found in data")

	// ErrNoDataAfterFilter means every segment fell below the threshold.
	// The gate worked, but there is nothing left to analyze; report
	// generation must stop before any LLM call.
	ErrNoDataAfterFilter = errors.New("no data remaining after anonymity filter")
)

// ExclusionReport records exactly what the filter kept and removed.
type ExclusionReport struct {
	Threshold        int
	OriginalCount    int
	FilteredCount    int
	ExcludedCount    int
	ExcludedSegments map[string]int
	IncludedSegments map[string]int
	Warning          string
}

// Filter removes all rows belonging to segments with fewer than Threshold
// responses. Row order is preserved. The input table is not modified.
func Filter(t *survey.Table, segmentColumn string) (*survey.Table, *ExclusionReport, error) {
	col := t.Column(segmentColumn)
	if col == nil {
		return nil, nil, fmt.Errorf("%w: %q", ErrSegmentColumnMissing, segmentColumn)
	}

	counts := survey.SegmentCounts(t, segmentColumn)

	included := make(map[string]int)
	excluded := make(map[string]int)
	for label, n := range counts {
		if n >= Threshold {
			included[label] = n
		} else {
			excluded[label] = n
		}
	}

	keep := make([]bool, t.RowCount())
	for i, v := range col.Values {
		if v.Missing {
			continue
		}
		if _, ok := included[v.Text]; ok {
			keep[i] = true
		}
	}

	filtered := t.SelectRows(keep)

	report := &ExclusionReport{
		Threshold:        Threshold,
		OriginalCount:    t.RowCount(),
		FilteredCount:    filtered.RowCount(),
		ExcludedCount:    t.RowCount() - filtered.RowCount(),
		ExcludedSegments: excluded,
		IncludedSegments: included,
	}

	if len(excluded) > 0 {
		report.Warning = fmt.Sprintf(
			"Se excluyeron del análisis los siguientes segmentos por tener menos de %d respuestas (protección de anonimato): %s",
			Threshold, strings.Join(sortedLabels(excluded), ", "))
	}

	return filtered, report, nil
}

// Validate re-checks that every segment present in the table meets the
// threshold. Defensive invariant check; Filter is the enforcement path.
func Validate(t *survey.Table, segmentColumn string) bool {
	if !t.HasColumn(segmentColumn) {
		return true // no segment column, no segment-level concern
	}
	for _, n := range survey.SegmentCounts(t, segmentColumn) {
		if n < Threshold {
			return false
		}
	}
	return true
}

// Summary renders the exclusion report for logging and the methodology note.
func Summary(report *ExclusionReport) string {
	lines := []string{
		fmt.Sprintf("Total de respuestas originales: %d", report.OriginalCount),
		fmt.Sprintf("Respuestas incluidas en el análisis: %d", report.FilteredCount),
	}

	if len(report.ExcludedSegments) > 0 {
		lines = append(lines, fmt.Sprintf("\nSegmentos excluidos por anonimato (n < %d):", report.Threshold))
		for _, label := range sortedLabels(report.ExcludedSegments) {
			lines = append(lines, fmt.Sprintf("  - %s: %d respuestas", label, report.ExcludedSegments[label]))
		}
	}

	lines = append(lines, "\nSegmentos incluidos:")
	for _, label := range sortedLabels(report.IncludedSegments) {
		lines = append(lines, fmt.Sprintf("  - %s: %d respuestas", label, report.IncludedSegments[label]))
	}

	return strings.Join(lines, "\n")
}

func sortedLabels(m map[string]int) []string {
	labels := make([]string, 0, len(m))
	for label := range m {
		labels = append(labels, label)
	}
	sort.Strings(labels)
	return labels
}
