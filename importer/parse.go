package importer

import (
	"strconv"
	"strings"
)

// parseNumber coerces a cell into a float. Decimal commas are accepted the
// way the clock exports sometimes emit them. Non-numeric or empty cells
// report false and are treated as absent by callers, never as errors.
func parseNumber(raw string) (float64, bool) {
	cleaned := strings.TrimSpace(raw)
	if cleaned == "" {
		return 0, false
	}
	if strings.Contains(cleaned, ",") {
		cleaned = strings.ReplaceAll(cleaned, ",", ".")
	}

	value, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return 0, false
	}
	return value, true
}
