package charts

import (
	"regexp"
	"strings"
)

// keywordPatterns maps common survey topics to short stable keywords.
// Checked in order; the first match wins.
var keywordPatterns = []struct {
	re      *regexp.Regexp
	keyword string
}{
	{regexp.MustCompile(`orgulloso|orgullo`), "orgullo"},
	{regexp.MustCompile(`recomendar|recomendarías`), "recomendar"},
	{regexp.MustCompile(`cambiar.*trabajo|cambiarías`), "cambiar_trabajo"},
	{regexp.MustCompile(`tratados.*igual|favoritismo|equidad`), "trato_igualitario"},
	{regexp.MustCompile(`objetivos.*empresa|conoces.*objetivos`), "objetivos_empresa"},
	{regexp.MustCompile(`objetivos.*puesto|descripción.*puesto`), "objetivos_puesto"},
	{regexp.MustCompile(`remuneración|salario|sueldo`), "remuneracion"},
	{regexp.MustCompile(`herramientas|software|elementos`), "herramientas"},
	{regexp.MustCompile(`procesos.*desactualizados|mejorar.*procesos`), "procesos"},
	{regexp.MustCompile(`propusiste.*mejora|comentaste.*mejora`), "propuestas_mejora"},
	{regexp.MustCompile(`beneficios`), "beneficios"},
	{regexp.MustCompile(`capacitaci[oó]n|formación`), "capacitacion"},
	{regexp.MustCompile(`equipo.*trabajo|gusto.*equipo`), "equipo_trabajo"},
	{regexp.MustCompile(`clima.*laboral|ambiente.*trabajo`), "clima_laboral"},
	{regexp.MustCompile(`colaboración.*área|colaboración.*equipo`), "colaboracion"},
	{regexp.MustCompile(`feedback|devolución|retroalimentación`), "feedback"},
	{regexp.MustCompile(`reconoce.*esfuerzo|reconocimiento`), "reconocimiento"},
	{regexp.MustCompile(`escucha.*opiniones|tiene.*cuenta`), "escucha"},
	{regexp.MustCompile(`liderazgo|líder|superior`), "liderazgo"},
	{regexp.MustCompile(`apoyo|contención`), "apoyo"},
	{regexp.MustCompile(`dependencia.*jerárquica|esquema.*dependencia`), "jerarquia"},
	{regexp.MustCompile(`comunicación.*área|comunicación.*interna`), "comunicacion"},
	{regexp.MustCompile(`direcci[oó]n|gerencia`), "direccion"},
	{regexp.MustCompile(`encuesta.*importante|importancia.*encuesta`), "importancia_encuesta"},
	{regexp.MustCompile(`eficiente|eficiencia`), "eficiencia"},
	{regexp.MustCompile(`confianza|confí[ao]`), "confianza"},
	{regexp.MustCompile(`error|mencionar.*error`), "errores"},
	{regexp.MustCompile(`problemas.*culpables|resolver.*problemas`), "resolver_problemas"},
	{regexp.MustCompile(`sector|área.*trabajas`), "sector"},
}

var (
	leadingNumbering = regexp.MustCompile(`^[\d\.\)\s]+`)
	significantWord  = regexp.MustCompile(`\b[a-záéíóúñü]{4,}\b`)
)

// ExtractKeyword derives a short slug from a question text. It is used as
// the cross-reference token between [GRAFICO: x] markers in the narrative
// and rendered chart images. Never returns an empty string for a
// non-empty question.
func ExtractKeyword(question string) string {
	cleaned := leadingNumbering.ReplaceAllString(question, "")
	cleaned = strings.NewReplacer("¿", "", "?", "").Replace(cleaned)
	cleanedLower := strings.ToLower(cleaned)

	for _, p := range keywordPatterns {
		if p.re.MatchString(cleanedLower) {
			return p.keyword
		}
	}

	// Fallback: join the first two significant words.
	words := significantWord.FindAllString(cleanedLower, 2)
	if len(words) > 0 {
		return strings.Join(words, "_")
	}

	runes := []rune(strings.ToLower(cleaned))
	if len(runes) > 20 {
		runes = runes[:20]
	}
	return strings.ReplaceAll(string(runes), " ", "_")
}

// BuildIndex maps keyword to chart for marker resolution. When two
// questions collapse to the same keyword the first registered chart keeps
// it and the later one becomes unreachable by keyword; accepted limitation.
func BuildIndex(list []*Chart) map[string]*Chart {
	idx := make(map[string]*Chart, len(list))
	for _, c := range list {
		if _, exists := idx[c.Keyword]; !exists {
			idx[c.Keyword] = c
		}
	}
	return idx
}
