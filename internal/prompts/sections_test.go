package prompts

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefault(t *testing.T) {
	plan, err := LoadDefault()
	require.NoError(t, err)

	assert.NotEmpty(t, plan.SystemPrompt)

	wantIDs := []string{
		"resumen_ejecutivo",
		"dimensiones_1_3",
		"dimensiones_4_6",
		"dimensiones_restantes_tabla",
		"evaluacion_global",
		"plan_accion",
		"conclusiones",
	}
	require.Len(t, plan.Sections, len(wantIDs))
	for i, s := range plan.Sections {
		assert.Equal(t, wantIDs[i], s.ID)
		assert.NotEmpty(t, s.Name)
		assert.NotEmpty(t, s.Prompt)
		assert.Greater(t, s.MinWords, 0)
	}
}

func TestIsDimension(t *testing.T) {
	plan, err := LoadDefault()
	require.NoError(t, err)

	want := map[string]bool{
		"dimensiones_1_3":             true,
		"dimensiones_4_6":             true,
		"dimensiones_restantes_tabla": true,
	}
	for _, s := range plan.Sections {
		assert.Equal(t, want[s.ID], s.IsDimension(), "section %s", s.ID)
	}
}

func TestLoad(t *testing.T) {
	writePlan := func(t *testing.T, content string) string {
		t.Helper()
		path := filepath.Join(t.TempDir(), "sections.yaml")
		require.NoError(t, os.WriteFile(path, []byte(content), 0644))
		return path
	}

	t.Run("valid plan", func(t *testing.T) {
		path := writePlan(t, `
system_prompt: "Eres un consultor."
sections:
  - id: intro
    name: "Introducción"
    min_words: 100
    prompt: "Escribe la introducción para {empresa_nombre}."
`)
		plan, err := Load(path)
		require.NoError(t, err)
		require.Len(t, plan.Sections, 1)
		assert.Equal(t, "intro", plan.Sections[0].ID)
		assert.Equal(t, 100, plan.Sections[0].MinWords)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
		assert.Error(t, err)
	})

	t.Run("duplicate section id", func(t *testing.T) {
		path := writePlan(t, `
system_prompt: "x"
sections:
  - {id: a, name: "A", min_words: 10, prompt: "p"}
  - {id: a, name: "B", min_words: 10, prompt: "p"}
`)
		_, err := Load(path)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "duplicate section id")
	})

	t.Run("empty system prompt", func(t *testing.T) {
		path := writePlan(t, `
sections:
  - {id: a, name: "A", min_words: 10, prompt: "p"}
`)
		_, err := Load(path)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "system_prompt")
	})

	t.Run("non-positive min_words", func(t *testing.T) {
		path := writePlan(t, `
system_prompt: "x"
sections:
  - {id: a, name: "A", min_words: 0, prompt: "p"}
`)
		_, err := Load(path)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "min_words")
	})
}

func TestFormat(t *testing.T) {
	out := Format("Informe de {empresa_nombre} en {pais}, n={n_total}. {desconocido}", map[string]string{
		"empresa_nombre": "Acme",
		"pais":           "Chile",
		"n_total":        "42",
	})
	assert.Equal(t, "Informe de Acme en Chile, n=42. {desconocido}", out)
}
