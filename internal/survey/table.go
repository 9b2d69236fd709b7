package survey

import (
	"fmt"
	"strconv"
	"strings"
)

// Value is a single cell of the survey: either numeric, text, or missing.
type Value struct {
	Text    string
	Num     float64
	Numeric bool
	Missing bool
}

// Column is one question with its answers, one value per respondent.
type Column struct {
	Name   string
	Values []Value
}

// Table holds the survey responses as ordered named columns.
// All columns have the same length. A loaded table is never mutated;
// filtering produces a new derived table.
type Table struct {
	Columns []Column
	rows    int
}

// NewTable builds a table from a header row and data rows.
// Ragged rows are padded with missing values.
func NewTable(header []string, rows [][]string) (*Table, error) {
	if len(header) == 0 {
		return nil, fmt.Errorf("survey has no header row")
	}

	t := &Table{rows: len(rows)}
	for j, name := range header {
		col := Column{Name: strings.TrimSpace(name), Values: make([]Value, len(rows))}
		for i, row := range rows {
			var cell string
			if j < len(row) {
				cell = row[j]
			}
			col.Values[i] = parseValue(cell)
		}
		t.Columns = append(t.Columns, col)
	}
	return t, nil
}

func parseValue(cell string) Value {
	cell = strings.TrimSpace(cell)
	if cell == "" {
		return Value{Missing: true}
	}
	if n, err := strconv.ParseFloat(strings.ReplaceAll(cell, ",", "."), 64); err == nil {
		return Value{Text: cell, Num: n, Numeric: true}
	}
	return Value{Text: cell}
}

// RowCount returns the number of respondents.
func (t *Table) RowCount() int {
	return t.rows
}

// QuestionCount returns the number of columns.
func (t *Table) QuestionCount() int {
	return len(t.Columns)
}

// Column returns the column with the given name, or nil.
func (t *Table) Column(name string) *Column {
	for i := range t.Columns {
		if t.Columns[i].Name == name {
			return &t.Columns[i]
		}
	}
	return nil
}

// HasColumn reports whether the table contains the named column.
func (t *Table) HasColumn(name string) bool {
	return t.Column(name) != nil
}

// SelectRows returns a new table containing only the rows for which
// keep[i] is true, preserving row order.
func (t *Table) SelectRows(keep []bool) *Table {
	out := &Table{}
	for _, col := range t.Columns {
		newCol := Column{Name: col.Name}
		for i, v := range col.Values {
			if i < len(keep) && keep[i] {
				newCol.Values = append(newCol.Values, v)
			}
		}
		out.Columns = append(out.Columns, newCol)
	}
	if len(out.Columns) > 0 {
		out.rows = len(out.Columns[0].Values)
	}
	return out
}

// NonMissing returns the column's values with missing cells dropped.
func (c *Column) NonMissing() []Value {
	out := make([]Value, 0, len(c.Values))
	for _, v := range c.Values {
		if !v.Missing {
			out = append(out, v)
		}
	}
	return out
}

// IsNumeric reports whether every non-missing value in the column is numeric.
func (c *Column) IsNumeric() bool {
	seen := false
	for _, v := range c.Values {
		if v.Missing {
			continue
		}
		if !v.Numeric {
			return false
		}
		seen = true
	}
	return seen
}

// DistinctCount returns the number of distinct non-missing values.
func (c *Column) DistinctCount() int {
	set := make(map[string]struct{})
	for _, v := range c.Values {
		if !v.Missing {
			set[v.Text] = struct{}{}
		}
	}
	return len(set)
}

// ToCSV serializes the table for inclusion in an LLM prompt.
func (t *Table) ToCSV() string {
	var b strings.Builder
	for j, col := range t.Columns {
		if j > 0 {
			b.WriteByte(',')
		}
		b.WriteString(csvEscape(col.Name))
	}
	b.WriteByte('\n')

	for i := 0; i < t.rows; i++ {
		for j, col := range t.Columns {
			if j > 0 {
				b.WriteByte(',')
			}
			v := col.Values[i]
			if !v.Missing {
				b.WriteString(csvEscape(v.Text))
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}

func csvEscape(s string) string {
	if strings.ContainsAny(s, ",\"\n") {
		return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
	}
	return s
}
