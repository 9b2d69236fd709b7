// Package locale formats report dates with month names in the language
// matching the survey's country. Unrecognized countries fall back to
// Spanish.
package locale

import (
	"fmt"
	"strings"
	"time"
)

type language string

const (
	spanish    language = "es"
	portuguese language = "pt"
	english    language = "en"
)

var countryLanguages = map[string]language{
	"brasil":         portuguese,
	"brazil":         portuguese,
	"portugal":       portuguese,
	"usa":            english,
	"estados unidos": english,
	"united states":  english,
	"uk":             english,
	"united kingdom": english,
	"canada":         english,
	"australia":      english,
}

var monthNames = map[language][12]string{
	spanish: {"enero", "febrero", "marzo", "abril", "mayo", "junio",
		"julio", "agosto", "septiembre", "octubre", "noviembre", "diciembre"},
	portuguese: {"janeiro", "fevereiro", "março", "abril", "maio", "junho",
		"julho", "agosto", "setembro", "outubro", "novembro", "dezembro"},
	english: {"January", "February", "March", "April", "May", "June",
		"July", "August", "September", "October", "November", "December"},
}

// MonthYear renders "mes AAAA" for the given country's language, e.g.
// "marzo 2025" for Argentina or "March 2025" for USA.
func MonthYear(t time.Time, country string) string {
	lang, ok := countryLanguages[strings.ToLower(strings.TrimSpace(country))]
	if !ok {
		lang = spanish
	}
	return fmt.Sprintf("%s %d", monthNames[lang][t.Month()-1], t.Year())
}
