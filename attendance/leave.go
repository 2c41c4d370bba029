package attendance

// LeaveCategory classifies why an employee has no clock-in on a given day.
type LeaveCategory int

// Declaration order is the fixed priority order used when rendering cell text
// and when matching header/cell markers.
const (
	NoClockIn LeaveCategory = iota
	NoClockOut
	Absent
	Sick
	Personal
	Vacation
	Ordination
)

var names = map[LeaveCategory]string{
	NoClockIn:  "no_clock_in",
	NoClockOut: "no_clock_out",
	Absent:     "absent",
	Sick:       "sick",
	Personal:   "personal",
	Vacation:   "vacation",
	Ordination: "ordination",
}

// Thai display labels written into date cells.
var labels = map[LeaveCategory]string{
	NoClockIn:  "ไม่ตอกเข้า",
	NoClockOut: "ไม่ตอกออก",
	Absent:     "ขาดงาน",
	Sick:       "ลาป่วย",
	Personal:   "ลากิจ",
	Vacation:   "พักร้อน",
	Ordination: "บวชคลอด",
}

// Header markers identify summary columns in the template header row.
var headerMarkers = map[LeaveCategory]string{
	Absent:     "ขาดงาน",
	Sick:       "ลาป่วย",
	Personal:   "ลากิจ",
	Vacation:   "พักร้อน",
	Ordination: "บวช",
}

// Cell markers are the looser substrings matched against final cell text when
// recomputing summary counts (ลาป่วย contains ป่วย, so written labels match).
var cellMarkers = map[LeaveCategory]string{
	Absent:     "ขาดงาน",
	Sick:       "ป่วย",
	Personal:   "กิจ",
	Vacation:   "พักร้อน",
	Ordination: "บวช",
}

func (c LeaveCategory) String() string {
	return names[c]
}

func (c LeaveCategory) Label() string {
	return labels[c]
}

func (c LeaveCategory) HeaderMarker() string {
	return headerMarkers[c]
}

func (c LeaveCategory) CellMarker() string {
	return cellMarkers[c]
}

// Categories returns every leave category in priority order.
func Categories() []LeaveCategory {
	return []LeaveCategory{NoClockIn, NoClockOut, Absent, Sick, Personal, Vacation, Ordination}
}

// SummaryCategories returns the categories that have a summary column in the
// template. The two no-punch categories are annotation-only.
func SummaryCategories() []LeaveCategory {
	return []LeaveCategory{Absent, Sick, Personal, Vacation, Ordination}
}
