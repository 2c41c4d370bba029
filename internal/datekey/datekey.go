package datekey

import (
	"fmt"
	"strings"
	"time"
)

// Key is the date identity shared by day-file records and template date
// columns. Both resolution strategies (parsed date cells and filename-derived
// period keys) produce a Key, so one map type serves either template form.
type Key string

// FromTime builds a Key from a calendar date. Years are taken literally; a
// Buddhist Era year like 2568 stays 2568.
func FromTime(value time.Time) Key {
	return Key(value.Format("2006-01-02"))
}

// FromDayMonthYear builds the filename-strategy Key, rendered the way the
// source system prints period headers (date plus a zero midnight time).
func FromDayMonthYear(day, month, year int) Key {
	return Key(fmt.Sprintf("%04d-%02d-%02d 00:00:00", year, month, day))
}

// Literal builds a Key from raw template header text.
func Literal(text string) Key {
	return Key(strings.TrimSpace(text))
}

func (k Key) IsZero() bool {
	return k == ""
}
