package filler

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"attendsheet/attendance"
	"attendsheet/config"
	"attendsheet/importer"
)

type Result struct {
	FilesProcessed int
	RowsRead       int
	CellsFilled    int
	CellsHighlight int
	RecordsSkipped int
	Employees      int
	SummaryWritten bool
}

// Run copies the template to outputPath, fills it from the day files in the
// given order, recomputes summary counts, and saves. On any failure the
// partial output is removed so a previous run's file is never mistaken for a
// fresh result.
func Run(templatePath string, dayFiles []string, outputPath string, cfg config.Config) (result *Result, err error) {
	if err := copyTemplate(templatePath, outputPath); err != nil {
		return nil, err
	}
	defer func() {
		if err != nil {
			_ = os.Remove(outputPath)
		}
	}()

	file, err := excelize.OpenFile(outputPath)
	if err != nil {
		return nil, fmt.Errorf("open output copy %s: %w", outputPath, err)
	}
	defer file.Close()

	sheet := file.GetSheetName(0)
	if sheet == "" {
		return nil, fmt.Errorf("template has no sheets: %s", templatePath)
	}

	layout, err := DiscoverLayout(file, sheet, cfg)
	if err != nil {
		return nil, err
	}

	imported, err := importer.Run(dayFiles, cfg)
	if err != nil {
		return nil, err
	}

	result = &Result{
		FilesProcessed: imported.FilesProcessed,
		RowsRead:       imported.RowsRead,
		Employees:      len(layout.Rows),
	}

	highlight := newHighlighter(file, cfg.Fill.HighlightColor)
	policy := cfg.Fill.NormalizedEmptyReasonPolicy()

	for _, record := range imported.Records {
		column, ok := layout.DateColumns[record.Date]
		if !ok {
			// Date outside the template's period.
			result.RecordsSkipped++
			continue
		}
		row, ok := layout.Rows[record.EmployeeID]
		if !ok {
			// Employee not on this payroll sheet.
			result.RecordsSkipped++
			continue
		}

		cell, err := excelize.CoordinatesToCellName(column, row)
		if err != nil {
			return nil, fmt.Errorf("resolve cell at column %d row %d: %w", column, row, err)
		}

		if record.HasClockIn() {
			if err := file.SetCellValue(sheet, cell, record.ClockIn); err != nil {
				return nil, fmt.Errorf("write clock-in to %s: %w", cell, err)
			}
			result.CellsFilled++
		} else {
			if err := highlight.apply(sheet, cell); err != nil {
				return nil, err
			}
			if text := reasonText(record, policy); text != "" {
				if err := file.SetCellValue(sheet, cell, text); err != nil {
					return nil, fmt.Errorf("write absence text to %s: %w", cell, err)
				}
			}
			result.CellsHighlight++
		}

		if layout.LateColumn > 0 && record.HasLate && record.LateMinutes != 0 {
			if err := accumulateLate(file, sheet, layout.LateColumn, row, record.LateMinutes); err != nil {
				return nil, err
			}
		}
	}

	if len(layout.SummaryColumns) > 0 {
		if err := writeSummary(file, sheet, layout); err != nil {
			return nil, err
		}
		result.SummaryWritten = true
	}

	if err := file.Save(); err != nil {
		return nil, fmt.Errorf("save output %s: %w", outputPath, err)
	}

	return result, nil
}

// copyTemplate replaces any pre-existing output with a byte copy of the
// template. The template itself is never mutated.
func copyTemplate(templatePath, outputPath string) error {
	if err := os.Remove(outputPath); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("remove previous output %s: %w", outputPath, err)
	}

	data, err := os.ReadFile(templatePath)
	if err != nil {
		return fmt.Errorf("read template %s: %w", templatePath, err)
	}
	if err := os.WriteFile(outputPath, data, 0o644); err != nil {
		return fmt.Errorf("write output copy %s: %w", outputPath, err)
	}
	return nil
}

// accumulateLate adds minutes onto whatever numeric value already occupies
// the employee's late cell. Day files contribute cumulatively, so this is a
// read-add-write, never an overwrite.
func accumulateLate(file *excelize.File, sheet string, column, row int, minutes float64) error {
	cell, err := excelize.CoordinatesToCellName(column, row)
	if err != nil {
		return fmt.Errorf("resolve late cell at column %d row %d: %w", column, row, err)
	}

	current, err := file.GetCellValue(sheet, cell)
	if err != nil {
		return fmt.Errorf("read late cell %s: %w", cell, err)
	}

	base := 0.0
	if parsed, parseErr := strconv.ParseFloat(strings.TrimSpace(current), 64); parseErr == nil {
		base = parsed
	}

	if err := file.SetCellValue(sheet, cell, base+minutes); err != nil {
		return fmt.Errorf("write late cell %s: %w", cell, err)
	}
	return nil
}

// writeSummary recounts leave categories from the final text of every date
// cell and writes the five counters. It runs once, after all day files, and
// reapplying it without intervening writes yields identical counts.
func writeSummary(file *excelize.File, sheet string, layout *TemplateLayout) error {
	for _, row := range layout.Rows {
		counts := make(map[attendance.LeaveCategory]int, len(layout.SummaryColumns))

		for _, column := range layout.DateColumns {
			cell, err := excelize.CoordinatesToCellName(column, row)
			if err != nil {
				return fmt.Errorf("resolve date cell at column %d row %d: %w", column, row, err)
			}
			text, err := file.GetCellValue(sheet, cell)
			if err != nil {
				return fmt.Errorf("read date cell %s: %w", cell, err)
			}
			if text == "" {
				continue
			}
			for _, category := range attendance.SummaryCategories() {
				if strings.Contains(text, category.CellMarker()) {
					counts[category]++
				}
			}
		}

		for category, column := range layout.SummaryColumns {
			cell, err := excelize.CoordinatesToCellName(column, row)
			if err != nil {
				return fmt.Errorf("resolve summary cell at column %d row %d: %w", column, row, err)
			}
			if err := file.SetCellValue(sheet, cell, counts[category]); err != nil {
				return fmt.Errorf("write summary cell %s: %w", cell, err)
			}
		}
	}
	return nil
}
