package importer

import (
	"testing"

	"attendsheet/attendance"
	"attendsheet/config"
	"attendsheet/internal/datekey"
)

func defaultColumns() config.ColumnsConfig {
	return config.Default().Import.Columns
}

func TestRowMapper_MapFullRow(t *testing.T) {
	t.Parallel()

	mapper := NewRowMapper(defaultColumns())
	row := []string{
		"10001", "สมชาย ใจดี", "26/11/2568", "", "08:05", "17:02", "5",
		"", "", "0", "1", "", "", "", "", "", "มาสาย",
	}

	record, ok := mapper.Map(row, rowIdentity{id: "10001", name: "สมชาย ใจดี"}, datekey.Key("2568-11-26"), "day.xlsx")
	if !ok {
		t.Fatalf("expected record")
	}

	if record.ClockIn != "08:05" || record.ClockOut != "17:02" {
		t.Fatalf("unexpected clock values: %q / %q", record.ClockIn, record.ClockOut)
	}
	if !record.HasLate || record.LateMinutes != 5 {
		t.Fatalf("unexpected late minutes: %+v", record)
	}
	if record.Leave[attendance.NoClockIn] != 0 {
		t.Fatalf("expected zero no-clock-in count to be stored as zero")
	}
	if record.Leave[attendance.NoClockOut] != 1 {
		t.Fatalf("unexpected no-clock-out count: %v", record.Leave[attendance.NoClockOut])
	}
	if record.Comment != "มาสาย" {
		t.Fatalf("unexpected comment: %q", record.Comment)
	}
}

func TestRowMapper_ShortRowOmitsAbsentColumns(t *testing.T) {
	t.Parallel()

	mapper := NewRowMapper(defaultColumns())
	row := []string{"10001", "สมชาย ใจดี", "26/11/2568"}

	record, ok := mapper.Map(row, rowIdentity{id: "10001"}, datekey.Key("2568-11-26"), "day.xlsx")
	if !ok {
		t.Fatalf("expected record")
	}
	if record.ClockIn != "" || record.HasLate || len(record.Leave) != 0 || record.Comment != "" {
		t.Fatalf("expected absent columns to be omitted, got %+v", record)
	}
}

func TestRowMapper_NonNumericLeaveCellsSkipped(t *testing.T) {
	t.Parallel()

	columns := defaultColumns()
	mapper := NewRowMapper(columns)
	row := make([]string, 17)
	row[columns.Sick-1] = "x"
	row[columns.Personal-1] = "2"

	record, ok := mapper.Map(row, rowIdentity{id: "10001"}, datekey.Key("2568-11-26"), "day.xlsx")
	if !ok {
		t.Fatalf("expected record")
	}
	if _, present := record.Leave[attendance.Sick]; present {
		t.Fatalf("expected non-numeric sick cell to be omitted")
	}
	if record.Leave[attendance.Personal] != 2 {
		t.Fatalf("unexpected personal count: %v", record.Leave[attendance.Personal])
	}
}

func TestRowMapper_RejectsMissingIdentityOrDate(t *testing.T) {
	t.Parallel()

	mapper := NewRowMapper(defaultColumns())
	row := []string{"10001", "A", "26/11/2568"}

	if _, ok := mapper.Map(row, rowIdentity{}, datekey.Key("2568-11-26"), "day.xlsx"); ok {
		t.Fatalf("expected row without identity to be dropped")
	}
	if _, ok := mapper.Map(row, rowIdentity{id: "10001"}, datekey.Key(""), "day.xlsx"); ok {
		t.Fatalf("expected row without date to be dropped")
	}
}
