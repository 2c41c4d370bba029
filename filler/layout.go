package filler

import (
	"errors"
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"

	"attendsheet/attendance"
	"attendsheet/config"
	"attendsheet/importer"
	"attendsheet/internal/datekey"
)

// ErrNoDateColumns means the template header row yielded no usable date
// columns; the template cannot be filled at all.
var ErrNoDateColumns = errors.New("no date columns found in template header row")

// TemplateLayout is the per-run index of the template sheet: where each
// period date lives, where late minutes and summary counts go, and which row
// belongs to which employee. It is derived fresh from the output copy and
// discarded after the run.
type TemplateLayout struct {
	DateColumns    map[datekey.Key]int
	LateColumn     int
	SummaryColumns map[attendance.LeaveCategory]int
	Rows           map[string]int
}

// DiscoverLayout scans the configured header row and identifier column.
func DiscoverLayout(file *excelize.File, sheet string, cfg config.Config) (*TemplateLayout, error) {
	rows, err := file.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("read template sheet %s: %w", sheet, err)
	}

	layout := &TemplateLayout{
		DateColumns:    make(map[datekey.Key]int),
		SummaryColumns: make(map[attendance.LeaveCategory]int),
		Rows:           make(map[string]int),
	}

	headerRow := cfg.Template.HeaderRow
	var header []string
	if headerRow <= len(rows) {
		header = rows[headerRow-1]
	}

	literalKeys := cfg.Import.NormalizedDateStrategy() == config.DateStrategyFilename
	for column := cfg.Template.FirstDateColumn; column <= len(header); column++ {
		text := strings.TrimSpace(header[column-1])
		if text == "" {
			continue
		}

		if literalKeys {
			layout.DateColumns[datekey.Literal(text)] = column
		} else if parsed, ok := importer.ParseDateCell(text); ok {
			layout.DateColumns[datekey.FromTime(parsed)] = column
		}

		if layout.LateColumn == 0 && isLateHeader(text) {
			layout.LateColumn = column
		}
	}

	if len(layout.DateColumns) == 0 {
		return nil, ErrNoDateColumns
	}

	// Summary headers can sit anywhere in the header row, not just the date
	// region. First matching cell wins per category.
	for _, category := range attendance.SummaryCategories() {
		for column := 1; column <= len(header); column++ {
			if strings.Contains(header[column-1], category.HeaderMarker()) {
				layout.SummaryColumns[category] = column
				break
			}
		}
	}

	for row := headerRow + 1; row <= len(rows); row++ {
		id := cellValue(rows[row-1], cfg.Template.IDColumn)
		if id == "" {
			continue
		}
		// Duplicate IDs should not occur, but the later row wins if they do.
		layout.Rows[id] = row
	}

	return layout, nil
}

func isLateHeader(text string) bool {
	return strings.Contains(text, "สาย") || strings.Contains(strings.ToLower(text), "late")
}

func cellValue(row []string, column int) string {
	if column < 1 || column > len(row) {
		return ""
	}
	return strings.TrimSpace(row[column-1])
}
