package importer

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
)

type CSVReader struct{}

// Read loads a CSV export as an untyped grid, no header row assumed.
func (r *CSVReader) Read(path string) (Grid, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open csv file %s: %w", path, err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1

	grid := make(Grid, 0, 128)
	rowNumber := 0
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read csv row %d: %w", rowNumber+1, err)
		}
		grid = append(grid, row)
		rowNumber++
	}

	return grid, nil
}
