package report

import "strings"

// Risk markers the section prompts instruct the model to emit.
var riskMarkers = []string{"Nivel de riesgo", "🟢", "🟡", "🔴"}

// ExtractSynopsisLines scans generated markdown for the lines worth
// carrying into later prompts: subsection headings and risk-level lines.
// This is heuristic matching over model output, not a structural parse;
// an empty result is valid and later sections must cope with it.
func ExtractSynopsisLines(text string) []string {
	var out []string
	for _, line := range strings.Split(text, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}

		if strings.HasPrefix(trimmed, "### ") || strings.HasPrefix(trimmed, "#### ") {
			out = append(out, trimmed)
			continue
		}

		for _, marker := range riskMarkers {
			if strings.Contains(trimmed, marker) {
				out = append(out, trimmed)
				break
			}
		}
	}
	return out
}
