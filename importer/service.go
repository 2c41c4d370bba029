package importer

import (
	"fmt"

	"attendsheet/attendance"
	"attendsheet/config"
	"attendsheet/internal/datekey"
)

type Result struct {
	FilesProcessed int
	RowsRead       int
	RowsKept       int
	RowsDropped    int
	Records        []attendance.Record
}

// Run reads every day file in order and normalizes its rows into attendance
// records. Rows without a resolvable date or employee identity are dropped,
// not reported; a file yielding zero records is not an error.
func Run(paths []string, cfg config.Config) (*Result, error) {
	result := &Result{Records: make([]attendance.Record, 0, 256)}
	mapper := NewRowMapper(cfg.Import.Columns)

	for _, path := range paths {
		records, rowsRead, err := readDayFile(path, cfg, mapper)
		if err != nil {
			return nil, err
		}

		result.FilesProcessed++
		result.RowsRead += rowsRead
		result.RowsKept += len(records)
		result.RowsDropped += rowsRead - len(records)
		result.Records = append(result.Records, records...)
	}

	return result, nil
}

func readDayFile(path string, cfg config.Config, mapper *RowMapper) ([]attendance.Record, int, error) {
	format, err := inferFormat(path)
	if err != nil {
		return nil, 0, err
	}
	reader, err := ReaderForFormat(format)
	if err != nil {
		return nil, 0, err
	}

	grid, err := reader.Read(path)
	if err != nil {
		return nil, 0, err
	}

	if cfg.Import.StrictColumns {
		if err := checkRequiredColumns(path, grid, cfg); err != nil {
			return nil, 0, err
		}
	}

	columns := cfg.Import.Columns
	strategy := cfg.Import.NormalizedDateStrategy()

	// Filename strategy maps the whole file to one period column; a name
	// that doesn't follow the convention drops the file, not the run.
	var fileKey datekey.Key
	if strategy == config.DateStrategyFilename {
		key, ok := ParseFilenameKey(path)
		if !ok {
			return nil, len(grid), nil
		}
		fileKey = key
	}

	var identities []rowIdentity
	switch cfg.Import.NormalizedLayout() {
	case config.LayoutFlat:
		identities = flatIdentities(grid, columns.ID, columns.Name)
	default:
		identities = forwardFillIdentities(grid, columns.ID, columns.Name)
	}

	records := make([]attendance.Record, 0, len(grid))
	for i, row := range grid {
		date := fileKey
		if strategy == config.DateStrategyCell {
			parsed, ok := ParseDateCell(cellValue(row, columns.Date))
			if !ok {
				continue
			}
			date = datekey.FromTime(parsed)
		}

		record, ok := mapper.Map(row, identities[i], date, path)
		if !ok {
			continue
		}
		records = append(records, *record)
	}

	return records, len(grid), nil
}

func checkRequiredColumns(path string, grid Grid, cfg config.Config) error {
	if len(grid) == 0 {
		return nil
	}

	width := grid.Width()
	if cfg.Import.Columns.ID > width {
		return fmt.Errorf("day file %s: required id column %d is beyond the sheet width %d", path, cfg.Import.Columns.ID, width)
	}
	if cfg.Import.NormalizedDateStrategy() == config.DateStrategyCell && cfg.Import.Columns.Date > width {
		return fmt.Errorf("day file %s: required date column %d is beyond the sheet width %d", path, cfg.Import.Columns.Date, width)
	}
	return nil
}
