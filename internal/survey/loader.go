package survey

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/extrame/xls"
	"github.com/xuri/excelize/v2"
)

var (
	// ErrEmptySurvey is returned when the file has a header but no responses.
	ErrEmptySurvey = errors.New("survey file has no data rows")

	// ErrUnsupportedFormat is returned for anything that is not .xlsx or .xls.
	ErrUnsupportedFormat = errors.New("unsupported file type, expected .xlsx or .xls")
)

// Load reads a survey export. Google Forms exports .xlsx; legacy .xls
// files are still accepted.
func Load(path string) (*Table, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("survey file not found: %s", path)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx":
		return loadXLSX(path)
	case ".xls":
		return loadXLS(path)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, filepath.Ext(path))
	}
}

func loadXLSX(path string) (*Table, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("error opening xlsx file: %w", err)
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	if sheet == "" {
		return nil, fmt.Errorf("xlsx file has no sheets")
	}

	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("error reading sheet %q: %w", sheet, err)
	}

	return tableFromRows(rows)
}

func loadXLS(path string) (*Table, error) {
	wb, err := xls.Open(path, "utf-8")
	if err != nil {
		return nil, fmt.Errorf("error opening xls file: %w", err)
	}

	sheet := wb.GetSheet(0)
	if sheet == nil {
		return nil, fmt.Errorf("xls file has no sheets")
	}

	var rows [][]string
	for i := 0; i <= int(sheet.MaxRow); i++ {
		row := sheet.Row(i)
		if row == nil {
			rows = append(rows, nil)
			continue
		}
		var cells []string
		for j := row.FirstCol(); j <= row.LastCol(); j++ {
			cells = append(cells, row.Col(j))
		}
		rows = append(rows, cells)
	}

	return tableFromRows(rows)
}

func tableFromRows(rows [][]string) (*Table, error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("survey file is empty")
	}
	if len(rows) < 2 {
		return nil, ErrEmptySurvey
	}

	t, err := NewTable(rows[0], rows[1:])
	if err != nil {
		return nil, err
	}
	return t, nil
}
