package importer

import (
	"path/filepath"
	"regexp"
	"strconv"
	"strings"
	"time"

	"attendsheet/internal/datekey"
)

var strictDayMonthYearPattern = regexp.MustCompile(`^\d{2}/\d{2}/\d{4}$`)

// Fallback layouts for date cells that are neither strict dd/mm/yyyy nor
// empty. Day-before-month forms come first.
var fallbackDateLayouts = []string{
	"2/1/2006",
	"02/01/2006 15:04:05",
	"2/1/2006 15:04",
	"2-1-2006",
	"2.1.2006",
	"2006-01-02",
	"2006-01-02 15:04:05",
	"2 January 2006",
}

// ParseDateCell converts a raw date cell into a calendar date. Years are
// literal: a Buddhist Era value of 2568 stays 2568, never shifted to a
// Western year.
func ParseDateCell(raw string) (time.Time, bool) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return time.Time{}, false
	}

	if strictDayMonthYearPattern.MatchString(s) {
		day, _ := strconv.Atoi(s[0:2])
		month, _ := strconv.Atoi(s[3:5])
		year, _ := strconv.Atoi(s[6:10])
		if !validDayMonth(day, month) {
			return time.Time{}, false
		}
		return time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.Local), true
	}

	for _, layout := range fallbackDateLayouts {
		if parsed, err := time.ParseInLocation(layout, s, time.Local); err == nil {
			return parsed, true
		}
	}

	return time.Time{}, false
}

// ParseFilenameKey derives the period key from a day-file name of the form
// "<day>.<month>.<2-digit-year>.<variant>", e.g. "24.12.68.A.xlsx". The
// two-digit year reconstructs a 4-digit Buddhist Era year (68 -> 2568).
func ParseFilenameKey(path string) (datekey.Key, bool) {
	base := filepath.Base(path)
	fields := strings.Split(base, ".")
	if len(fields) < 4 {
		return "", false
	}

	day, err := strconv.Atoi(fields[0])
	if err != nil {
		return "", false
	}
	month, err := strconv.Atoi(fields[1])
	if err != nil {
		return "", false
	}
	if len(fields[2]) != 2 {
		return "", false
	}
	shortYear, err := strconv.Atoi(fields[2])
	if err != nil {
		return "", false
	}
	if !validDayMonth(day, month) {
		return "", false
	}

	return datekey.FromDayMonthYear(day, month, 2500+shortYear), true
}

func validDayMonth(day, month int) bool {
	return day >= 1 && day <= 31 && month >= 1 && month <= 12
}
