package charts

import (
	"fmt"
	"strings"

	"climate-insight/internal/logger"
	"climate-insight/internal/survey"
)

// GenerateAll renders charts for the first maxCharts chartable questions
// of the table, in column order. A chart that fails to render is logged
// and skipped without aborting the batch.
func GenerateAll(t *survey.Table, outDir string, maxCharts int, r *Renderer, log *logger.Logger) []*Chart {
	data := ExtractChartData(t)

	var out []*Chart
	for i, qd := range data {
		if i >= maxCharts {
			break
		}

		path, err := r.Render(qd, outDir)
		if err != nil {
			log.Warn("chart render failed, skipping question",
				"question", truncate(qd.Question, 50), "error", err)
			continue
		}

		out = append(out, &Chart{
			Question: qd.Question,
			Path:     path,
			Data:     qd,
			Keyword:  ExtractKeyword(qd.Question),
		})
	}

	return out
}

// Summarize describes the rendered charts for the LLM prompt. It takes
// the exact list that GenerateAll produced so the prompt can never
// reference a keyword without a backing image.
func Summarize(list []*Chart) string {
	if len(list) == 0 {
		return "No se detectaron preguntas graficables en esta encuesta."
	}

	lines := []string{
		"PREGUNTAS GRAFICABLES DISPONIBLES:",
		"Usa el marcador [GRAFICO: palabra_clave] para insertar gráficos.",
		"Las palabras clave disponibles son:",
		"",
	}

	for _, c := range list {
		lines = append(lines, fmt.Sprintf("• [GRAFICO: %s] → %s", c.Keyword, truncate(c.Question, 70)))

		if c.Data.Kind == KindNumericScale {
			lines = append(lines, fmt.Sprintf("  Promedio: %.2f", c.Data.Mean))
		} else {
			var pairs []string
			for i := 0; i < len(c.Data.Labels) && i < 3; i++ {
				pairs = append(pairs, fmt.Sprintf("%s: %d", c.Data.Labels[i], c.Data.Counts[i]))
			}
			lines = append(lines, "  Distribución: "+strings.Join(pairs, ", "))
		}
		lines = append(lines, "")
	}

	return strings.Join(lines, "\n")
}
