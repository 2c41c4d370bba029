package filler

import (
	"math"
	"strconv"
	"strings"

	"attendsheet/attendance"
	"attendsheet/config"
)

// reasonText chooses the display text for an absence cell. A non-blank
// comment overrides everything; otherwise nonzero leave counts render as
// labels in fixed category order; otherwise the configured empty-reason
// policy decides between the absent label and a blank cell.
func reasonText(record attendance.Record, policy string) string {
	if comment := strings.TrimSpace(record.Comment); comment != "" {
		return comment
	}

	pieces := make([]string, 0, len(record.Leave))
	for _, category := range attendance.Categories() {
		value, ok := record.Leave[category]
		if !ok || value == 0 {
			continue
		}
		count := formatCount(value)
		if count == "1" {
			pieces = append(pieces, category.Label())
		} else {
			pieces = append(pieces, category.Label()+"("+count+")")
		}
	}
	if len(pieces) > 0 {
		return strings.Join(pieces, " ")
	}

	if policy == config.EmptyReasonBlank {
		return ""
	}
	return attendance.Absent.Label()
}

// formatCount renders counts within 1e-6 of a whole number as integers,
// anything else as its literal decimal form.
func formatCount(value float64) string {
	rounded := math.Round(value)
	if math.Abs(value-rounded) < 1e-6 {
		return strconv.Itoa(int(rounded))
	}
	return strconv.FormatFloat(value, 'g', -1, 64)
}
