package survey

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTable(t *testing.T) {
	t.Run("parses numeric and text cells", func(t *testing.T) {
		table, err := NewTable(
			[]string{"Escala", "Opinión"},
			[][]string{{"4", "Sí"}, {"3.5", ""}, {"", "No"}},
		)
		require.NoError(t, err)

		assert.Equal(t, 3, table.RowCount())
		assert.Equal(t, 2, table.QuestionCount())

		col := table.Column("Escala")
		require.NotNil(t, col)
		assert.True(t, col.Values[0].Numeric)
		assert.Equal(t, 4.0, col.Values[0].Num)
		assert.Equal(t, 3.5, col.Values[1].Num)
		assert.True(t, col.Values[2].Missing)

		op := table.Column("Opinión")
		require.NotNil(t, op)
		assert.False(t, op.Values[0].Numeric)
		assert.True(t, op.Values[1].Missing)
	})

	t.Run("pads ragged rows with missing values", func(t *testing.T) {
		table, err := NewTable([]string{"A", "B", "C"}, [][]string{{"1"}})
		require.NoError(t, err)
		assert.True(t, table.Column("B").Values[0].Missing)
		assert.True(t, table.Column("C").Values[0].Missing)
	})

	t.Run("decimal comma is numeric", func(t *testing.T) {
		table, err := NewTable([]string{"N"}, [][]string{{"3,5"}})
		require.NoError(t, err)
		v := table.Column("N").Values[0]
		assert.True(t, v.Numeric)
		assert.Equal(t, 3.5, v.Num)
	})

	t.Run("empty header rejected", func(t *testing.T) {
		_, err := NewTable(nil, nil)
		assert.Error(t, err)
	})
}

func TestSelectRows(t *testing.T) {
	table, err := NewTable([]string{"V"}, [][]string{{"a"}, {"b"}, {"c"}, {"d"}})
	require.NoError(t, err)

	out := table.SelectRows([]bool{true, false, true, false})
	assert.Equal(t, 2, out.RowCount())
	assert.Equal(t, "a", out.Column("V").Values[0].Text)
	assert.Equal(t, "c", out.Column("V").Values[1].Text)

	// The source table is untouched.
	assert.Equal(t, 4, table.RowCount())
}

func TestColumnHelpers(t *testing.T) {
	table, err := NewTable([]string{"N", "Mix"}, [][]string{{"1", "1"}, {"", "x"}, {"2", "2"}})
	require.NoError(t, err)

	n := table.Column("N")
	assert.True(t, n.IsNumeric())
	assert.Len(t, n.NonMissing(), 2)
	assert.Equal(t, 2, n.DistinctCount())

	mix := table.Column("Mix")
	assert.False(t, mix.IsNumeric())
}

func TestToCSV(t *testing.T) {
	table, err := NewTable(
		[]string{"Pregunta, con coma", "B"},
		[][]string{{`valor "citado"`, "2"}, {"", "3"}},
	)
	require.NoError(t, err)

	csv := table.ToCSV()
	assert.Contains(t, csv, `"Pregunta, con coma",B`)
	assert.Contains(t, csv, `"valor ""citado""",2`)
	assert.Contains(t, csv, "\n,3\n")
}

func TestDetectSegmentColumn(t *testing.T) {
	t.Run("finds sector column by keyword", func(t *testing.T) {
		table, err := NewTable(
			[]string{"¿Te gusta tu trabajo?", "¿En qué sector trabajas?"},
			[][]string{{"Sí", "Ventas"}, {"No", "Administración"}},
		)
		require.NoError(t, err)
		assert.Equal(t, "¿En qué sector trabajas?", DetectSegmentColumn(table))
	})

	t.Run("ignores free-text columns with many values", func(t *testing.T) {
		rows := make([][]string, 25)
		for i := range rows {
			rows[i] = []string{string(rune('a' + i))}
		}
		table, err := NewTable([]string{"Comentario sobre tu área"}, rows)
		require.NoError(t, err)
		assert.Equal(t, "", DetectSegmentColumn(table))
	})

	t.Run("none detected", func(t *testing.T) {
		table, err := NewTable([]string{"¿Estás conforme?"}, [][]string{{"Sí"}})
		require.NoError(t, err)
		assert.Equal(t, "", DetectSegmentColumn(table))
	})
}

func TestSegmentCounts(t *testing.T) {
	table, err := NewTable([]string{"Sector"}, [][]string{{"A"}, {"A"}, {"B"}, {""}})
	require.NoError(t, err)

	counts := SegmentCounts(table, "Sector")
	assert.Equal(t, map[string]int{"A": 2, "B": 1}, counts)
	assert.Nil(t, SegmentCounts(table, "Otro"))
}
