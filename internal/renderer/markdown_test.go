package renderer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	t.Run("headings by level", func(t *testing.T) {
		blocks := Parse("# Uno\n## Dos\n### Tres\n#### Cuatro")
		require.Len(t, blocks, 4)
		for i, b := range blocks {
			assert.Equal(t, BlockHeading, b.Kind)
			assert.Equal(t, i+1, b.Level)
		}
		assert.Equal(t, "Cuatro", blocks[3].Text)
	})

	t.Run("chart markers with alternate spellings", func(t *testing.T) {
		for _, line := range []string{
			"[GRAFICO: orgullo]",
			"  [grafico: orgullo]  ",
			"[GRÁFICO: orgullo]",
			"[CHART: orgullo]",
		} {
			blocks := Parse(line)
			require.Len(t, blocks, 1, "line: %s", line)
			assert.Equal(t, BlockChart, blocks[0].Kind)
			assert.Equal(t, "orgullo", blocks[0].Text)
		}
	})

	t.Run("pipe table with separator row dropped", func(t *testing.T) {
		md := "| Dimensión | Nivel |\n|-----------|-------|\n| **Orgullo** | Alto |\n\nTexto."
		blocks := Parse(md)
		require.Len(t, blocks, 2)

		tbl := blocks[0]
		assert.Equal(t, BlockTable, tbl.Kind)
		require.Len(t, tbl.Rows, 2)
		assert.Equal(t, []string{"Dimensión", "Nivel"}, tbl.Rows[0])
		// Emphasis markers removed inside cells.
		assert.Equal(t, []string{"Orgullo", "Alto"}, tbl.Rows[1])

		assert.Equal(t, BlockParagraph, blocks[1].Kind)
	})

	t.Run("table at end of input is flushed", func(t *testing.T) {
		blocks := Parse("| a | b |\n| 1 | 2 |")
		require.Len(t, blocks, 1)
		assert.Equal(t, BlockTable, blocks[0].Kind)
	})

	t.Run("lists and rules", func(t *testing.T) {
		blocks := Parse("- punto\n* otro\n3. numerado\n---")
		require.Len(t, blocks, 4)
		assert.Equal(t, BlockBullet, blocks[0].Kind)
		assert.Equal(t, "punto", blocks[0].Text)
		assert.Equal(t, BlockBullet, blocks[1].Kind)
		assert.Equal(t, BlockNumbered, blocks[2].Kind)
		assert.Equal(t, "3.", blocks[2].Prefix)
		assert.Equal(t, "numerado", blocks[2].Text)
		assert.Equal(t, BlockRule, blocks[3].Kind)
	})

	t.Run("bold-only line", func(t *testing.T) {
		blocks := Parse("**Para RRHH:**")
		require.Len(t, blocks, 1)
		assert.Equal(t, BlockBoldLine, blocks[0].Kind)
		assert.Equal(t, "Para RRHH:", blocks[0].Text)
	})

	t.Run("blank lines produce nothing", func(t *testing.T) {
		assert.Empty(t, Parse("\n\n   \n"))
	})

	t.Run("anything else degrades to paragraph", func(t *testing.T) {
		blocks := Parse("##No es heading valido")
		require.Len(t, blocks, 1)
		assert.Equal(t, BlockParagraph, blocks[0].Kind)
	})
}

func TestInlineSpans(t *testing.T) {
	t.Run("mixed bold italic and plain", func(t *testing.T) {
		spans := InlineSpans("El **93%** expresó *alto* orgullo")
		require.Len(t, spans, 5)

		assert.Equal(t, "El ", spans[0].Text)
		assert.True(t, spans[1].Bold)
		assert.Equal(t, "93%", spans[1].Text)
		assert.True(t, spans[3].Italic)
		assert.Equal(t, "alto", spans[3].Text)
		assert.Equal(t, " orgullo", spans[4].Text)
	})

	t.Run("plain text is a single span", func(t *testing.T) {
		spans := InlineSpans("sin formato")
		require.Len(t, spans, 1)
		assert.False(t, spans[0].Bold)
		assert.False(t, spans[0].Italic)
	})
}
