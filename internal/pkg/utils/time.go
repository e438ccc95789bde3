package utils

import (
	"clinicsync-service/internal/pkg/constvars"
	"time"
)

// ParseCalendarDate parses a YYYY-MM-DD value with no time-of-day component.
func ParseCalendarDate(value string) (time.Time, error) {
	return time.Parse(constvars.DateOnlyFormat, value)
}

func FormatCalendarDate(t time.Time) string {
	return t.Format(constvars.DateOnlyFormat)
}
