package importer

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Grid is a headerless day-file sheet as raw display strings. Rows may have
// ragged lengths; Cell treats anything outside the row as empty.
type Grid [][]string

// Cell returns the trimmed value at a 0-based row and 1-based column.
func (g Grid) Cell(row, column int) string {
	if row < 0 || row >= len(g) {
		return ""
	}
	return cellValue(g[row], column)
}

// Width returns the widest row length in the grid.
func (g Grid) Width() int {
	width := 0
	for _, row := range g {
		if len(row) > width {
			width = len(row)
		}
	}
	return width
}

func cellValue(row []string, column int) string {
	if column < 1 || column > len(row) {
		return ""
	}
	return strings.TrimSpace(row[column-1])
}

type Reader interface {
	Read(path string) (Grid, error)
}

func ReaderForFormat(format string) (Reader, error) {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "csv":
		return &CSVReader{}, nil
	case "excel", "xlsx", "xlsm", "xls":
		return &ExcelReader{}, nil
	default:
		return nil, fmt.Errorf("unsupported input format: %s", format)
	}
}

func inferFormat(path string) (string, error) {
	extension := strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))
	switch extension {
	case "csv":
		return "csv", nil
	case "xlsx", "xlsm", "xls":
		return "excel", nil
	default:
		return "", fmt.Errorf("unsupported file extension for %s", path)
	}
}
