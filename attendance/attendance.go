package attendance

import "attendsheet/internal/datekey"

// Record is the normalized per-employee-per-day attendance row produced by the
// importer and consumed by the template filler.
type Record struct {
	EmployeeID   string
	EmployeeName string
	Date         datekey.Key
	ClockIn      string
	ClockOut     string
	LateMinutes  float64
	HasLate      bool
	Leave        map[LeaveCategory]float64
	Comment      string
	SourceFile   string
}

// HasClockIn reports whether the record carries an observed clock-in value.
func (r Record) HasClockIn() bool {
	return r.ClockIn != ""
}
