package storage

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSlugify(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Acme", "acme"},
		{"Acme Corp", "acme_corp"},
		{"  Empresa de Prueba S.A.  ", "empresa_de_prueba_sa"},
		{"Ñandú & Cía", "and__ca"},
		{"", "empresa"},
		{"¡!¿?", "empresa"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Slugify(tt.in), "input %q", tt.in)
	}
}

func TestOutputName(t *testing.T) {
	ts := time.Date(2025, time.March, 15, 14, 30, 5, 0, time.UTC)
	assert.Equal(t, "informe_acme_corp_20250315_143005.md", OutputName("Acme Corp", ts, "md"))
	assert.Equal(t, "informe_acme_corp_20250315_143005.pdf", OutputName("Acme Corp", ts, "pdf"))
}

func TestSaveMarkdown(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "informe.md")
	require.NoError(t, SaveMarkdown("# Informe\n\nContenido.", path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "# Informe\n\nContenido.", string(data))
}

func TestRunRecordRoundtrip(t *testing.T) {
	dir := t.TempDir()

	record := &RunRecord{
		RunID:            "abc-123",
		Empresa:          "Acme",
		Pais:             "Chile",
		Ciudad:           "Santiago",
		Timestamp:        "2025-03-15T14:30:05Z",
		OriginalCount:    22,
		FilteredCount:    15,
		ExcludedSegments: []string{"Finanzas", "Legal"},
		SectionIDs:       []string{"resumen_ejecutivo", "conclusiones"},
		ChartsRendered:   4,
		PromptTokens:     1200,
		CompletionTokens: 3400,
		TotalTokens:      4600,
		MarkdownPath:     "/tmp/informe.md",
		PDFPath:          "/tmp/informe.pdf",
	}

	path, err := SaveRunRecord(record, dir)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "report_abc-123.json"), path)

	loaded, err := LoadRunRecord(dir, "abc-123")
	require.NoError(t, err)
	assert.Equal(t, record, loaded)
}

func TestLoadRunRecordMissing(t *testing.T) {
	_, err := LoadRunRecord(t.TempDir(), "nope")
	assert.Error(t, err)
}
