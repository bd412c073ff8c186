package rendering

import (
	"time"

	"github.com/jonathan/resume-builder/internal/types"
)

const (
	storedDateLayout  = "2006-01"
	displayDateLayout = "January 2006"
)

// FormatDate renders a stored "YYYY-MM" value as "January 2006". Empty input
// yields "", and values that are not in stored form are returned as-is.
func FormatDate(value string) string {
	if value == "" {
		return ""
	}
	t, err := time.Parse(storedDateLayout, value)
	if err != nil {
		return value
	}
	return t.Format(displayDateLayout)
}

// FormatDateRange renders "<start> - <end>". It returns "" when start is
// empty. An empty end and the "Present" sentinel both display as "Present".
func FormatDateRange(start, end string) string {
	if start == "" {
		return ""
	}
	to := types.PresentSentinel
	if end != "" && end != types.PresentSentinel {
		to = FormatDate(end)
	}
	return FormatDate(start) + " - " + to
}
