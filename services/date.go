package services

import (
	"fmt"
	"strings"
	"time"
)

// ParseDate parses a report date string. Dates exchanged with the registry
// backend always use YYYY-MM-DD.
func ParseDate(dateStr string) (time.Time, error) {
	// ISO 8601 date, the format HTML5 date inputs submit
	layout := "2006-01-02"

	parsedTime, err := time.Parse(layout, strings.TrimSpace(dateStr))
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date format: expected YYYY-MM-DD")
	}

	return parsedTime, nil
}
