package locale

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestMonthYear(t *testing.T) {
	march := time.Date(2025, time.March, 15, 0, 0, 0, 0, time.UTC)
	december := time.Date(2025, time.December, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		date    time.Time
		country string
		want    string
	}{
		{"spanish speaking country", march, "Argentina", "marzo 2025"},
		{"unknown country falls back to spanish", march, "Atlantis", "marzo 2025"},
		{"empty country falls back to spanish", march, "", "marzo 2025"},
		{"brasil", march, "Brasil", "março 2025"},
		{"brazil english spelling", march, "Brazil", "março 2025"},
		{"usa", march, "USA", "March 2025"},
		{"united states with spaces", march, "  United States  ", "March 2025"},
		{"december boundary", december, "Chile", "diciembre 2025"},
		{"january boundary", time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC), "Portugal", "janeiro 2026"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, MonthYear(tt.date, tt.country))
		})
	}
}
