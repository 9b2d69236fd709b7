package charts

import (
	"fmt"
	"sort"
	"strings"

	"climate-insight/internal/survey"
)

type Kind string

const (
	KindNumericScale Kind = "numeric_scale"
	KindCategorical  Kind = "categorical"
)

// Distinct-value bounds for a column to qualify as chartable.
const (
	minNumericValues = 2
	maxNumericValues = 10
	minCategories    = 2
	maxCategories    = 6
)

// QuestionData holds the distribution of one chartable question.
type QuestionData struct {
	Question string
	Kind     Kind
	Values   []string
	Counts   []int
	Labels   []string
	Mean     float64 // numeric scales only
}

// Chart is a rendered chart image together with its source data and the
// keyword used to reference it from the generated narrative.
type Chart struct {
	Question string
	Path     string
	Data     *QuestionData
	Keyword  string
}

// ExtractChartData classifies each column of the table as a numeric scale
// (2-10 distinct numeric values, counts in ascending value order) or a
// bounded categorical set (2-6 distinct labels, counts in descending
// frequency order). Columns failing both are not chartable and are
// excluded from all downstream output.
func ExtractChartData(t *survey.Table) []*QuestionData {
	var out []*QuestionData

	for _, col := range t.Columns {
		values := col.NonMissing()
		if len(values) == 0 {
			continue
		}

		if col.IsNumeric() {
			if qd := numericScale(col.Name, values); qd != nil {
				out = append(out, qd)
			}
			continue
		}

		if qd := categorical(col.Name, values); qd != nil {
			out = append(out, qd)
		}
	}

	return out
}

func numericScale(question string, values []survey.Value) *QuestionData {
	counts := make(map[float64]int)
	var sum float64
	for _, v := range values {
		counts[v.Num]++
		sum += v.Num
	}

	if len(counts) < minNumericValues || len(counts) > maxNumericValues {
		return nil
	}

	distinct := make([]float64, 0, len(counts))
	for n := range counts {
		distinct = append(distinct, n)
	}
	sort.Float64s(distinct)

	qd := &QuestionData{
		Question: question,
		Kind:     KindNumericScale,
		Mean:     sum / float64(len(values)),
	}
	for _, n := range distinct {
		qd.Values = append(qd.Values, formatNumber(n))
		qd.Counts = append(qd.Counts, counts[n])
		qd.Labels = append(qd.Labels, formatNumber(n))
	}
	return qd
}

func categorical(question string, values []survey.Value) *QuestionData {
	counts := make(map[string]int)
	firstSeen := make(map[string]int)
	for i, v := range values {
		if _, ok := counts[v.Text]; !ok {
			firstSeen[v.Text] = i
		}
		counts[v.Text]++
	}

	if len(counts) < minCategories || len(counts) > maxCategories {
		return nil
	}

	labels := make([]string, 0, len(counts))
	for label := range counts {
		labels = append(labels, label)
	}
	// Most frequent first; ties keep response order.
	sort.SliceStable(labels, func(i, j int) bool {
		if counts[labels[i]] != counts[labels[j]] {
			return counts[labels[i]] > counts[labels[j]]
		}
		return firstSeen[labels[i]] < firstSeen[labels[j]]
	})

	qd := &QuestionData{
		Question: question,
		Kind:     KindCategorical,
	}
	for _, label := range labels {
		qd.Values = append(qd.Values, label)
		qd.Counts = append(qd.Counts, counts[label])
		qd.Labels = append(qd.Labels, label)
	}
	return qd
}

func formatNumber(n float64) string {
	if n == float64(int64(n)) {
		return fmt.Sprintf("%d", int64(n))
	}
	return strings.TrimRight(strings.TrimRight(fmt.Sprintf("%.2f", n), "0"), ".")
}
