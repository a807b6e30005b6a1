package utils

import (
	"fmt"
	"time"
)

const ShortDashDateLayout = "2006-01-02"
const DateTimeLayout = "2006-01-02 15:04:05"
const FileTimestampLayout = "20060102_150405"

// ParseDateParam parses a date query parameter, accepting RFC3339 or the short
// dashed layout. Short dates resolve to midnight UTC.
func ParseDateParam(value string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t, nil
	}
	t, err := time.Parse(ShortDashDateLayout, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: expected RFC3339 or YYYY-MM-DD", value)
	}
	return t, nil
}
