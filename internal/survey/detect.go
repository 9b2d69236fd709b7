package survey

import (
	"fmt"
	"strings"
)

// Segment columns with more distinct values than this are assumed to be
// free text, not a department list.
const maxSegmentValues = 20

var segmentKeywords = []string{
	// Spanish
	"sector", "área", "area", "departamento", "equipo",
	"división", "division", "unidad", "sucursal", "oficina",
	"planta", "sede", "gerencia", "dirección", "direccion",
	"región", "region", "localidad", "ubicación", "ubicacion",
	// English
	"department", "team", "unit", "branch", "office",
	"location", "site", "facility", "group", "function",
	// Common phrasings
	"trabajas", "work", "belong", "perteneces",
}

// DetectSegmentColumn finds the column carrying sector/department labels.
// Returns the empty string when no column qualifies, which disables
// segment-level analysis downstream.
func DetectSegmentColumn(t *Table) string {
	for _, col := range t.Columns {
		nameLower := strings.ToLower(col.Name)
		for _, keyword := range segmentKeywords {
			if strings.Contains(nameLower, keyword) {
				if col.DistinctCount() <= maxSegmentValues {
					return col.Name
				}
			}
		}
	}
	return ""
}

// SegmentCounts returns response counts per distinct label of the column.
func SegmentCounts(t *Table, segmentColumn string) map[string]int {
	col := t.Column(segmentColumn)
	if col == nil {
		return nil
	}
	counts := make(map[string]int)
	for _, v := range col.Values {
		if !v.Missing {
			counts[v.Text]++
		}
	}
	return counts
}

// Summary renders a human-readable description of the survey structure,
// used for logging.
func (t *Table) Summary(segmentColumn string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Respuestas: %d, preguntas: %d", t.RowCount(), t.QuestionCount())

	if segmentColumn != "" {
		counts := SegmentCounts(t, segmentColumn)
		fmt.Fprintf(&b, ", segmentos: %d", len(counts))
	}
	return b.String()
}
