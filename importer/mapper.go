package importer

import (
	"attendsheet/attendance"
	"attendsheet/config"
	"attendsheet/internal/datekey"
)

// RowMapper turns one resolved grid row into an attendance record using the
// configured column mapping. Columns mapped to 0 or beyond the row are
// silently omitted from the record.
type RowMapper struct {
	columns config.ColumnsConfig
}

func NewRowMapper(columns config.ColumnsConfig) *RowMapper {
	return &RowMapper{columns: columns}
}

func (m *RowMapper) Map(row []string, identity rowIdentity, date datekey.Key, sourceFile string) (*attendance.Record, bool) {
	if !identity.valid() || date.IsZero() {
		return nil, false
	}

	record := &attendance.Record{
		EmployeeID:   identity.id,
		EmployeeName: identity.name,
		Date:         date,
		ClockIn:      cellValue(row, m.columns.ClockIn),
		ClockOut:     cellValue(row, m.columns.ClockOut),
		Comment:      cellValue(row, m.columns.Comment),
		SourceFile:   sourceFile,
	}

	if late, ok := parseNumber(cellValue(row, m.columns.Late)); ok {
		record.LateMinutes = late
		record.HasLate = true
	}

	for _, category := range attendance.Categories() {
		column := m.columns.LeaveColumn(category)
		if column < 1 {
			continue
		}
		value, ok := parseNumber(cellValue(row, column))
		if !ok {
			continue
		}
		if record.Leave == nil {
			record.Leave = make(map[attendance.LeaveCategory]float64)
		}
		record.Leave[category] = value
	}

	return record, true
}
