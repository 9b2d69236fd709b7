package renderer

import (
	"strings"

	"climate-insight/internal/charts"
)

// relatedTerms lets markers like [GRAFICO: jefe] land on the liderazgo
// chart. The model does not always echo the exact keyword it was given.
var relatedTerms = map[string][]string{
	"liderazgo":    {"lider", "superior", "jefe", "feedback", "escucha"},
	"comunicacion": {"comunicación", "informa", "transparencia"},
	"equipo":       {"equipo_trabajo", "colaboracion", "compañeros"},
	"compensacion": {"remuneracion", "salario", "sueldo", "beneficios"},
	"desarrollo":   {"capacitacion", "formacion", "crecimiento"},
	"compromiso":   {"orgullo", "pertenencia", "recomendar"},
	"clima":        {"clima_laboral", "ambiente"},
}

// ResolveChart maps a marker keyword to a chart through an ordered
// cascade of matchers, stopping at the first hit:
//
//  1. exact keyword
//  2. case-insensitive keyword
//  3. substring in either direction
//  4. full-text search over the question
//  5. related-terms table
//
// Returns nil when every tier misses; the caller renders a placeholder.
func ResolveChart(key string, index map[string]*charts.Chart) *charts.Chart {
	clean := strings.ToLower(strings.TrimSpace(key))

	if c, ok := index[clean]; ok {
		return c
	}

	for k, c := range index {
		if strings.ToLower(k) == clean {
			return c
		}
	}

	for k, c := range index {
		kl := strings.ToLower(k)
		if strings.Contains(kl, clean) || strings.Contains(clean, kl) {
			return c
		}
	}

	for _, c := range index {
		if strings.Contains(strings.ToLower(c.Question), clean) {
			return c
		}
	}

	for term, related := range relatedTerms {
		if clean != term && !contains(related, clean) {
			continue
		}
		for k, c := range index {
			kl := strings.ToLower(k)
			if kl == term || contains(related, kl) || strings.Contains(kl, term) {
				return c
			}
		}
	}

	return nil
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
