package icaldur

import (
	"strings"
	"time"
)

// iCalDateTimeFormat represents the standard iCal datetime format
// Format: YYYYMMDDTHHMMSSZ (e.g., 20250928T183000Z).
const iCalDateTimeFormat = "20060102T150405Z"

// iCalDateFormat is the date-only form used by UNTIL values expressed as a
// DATE rather than a DATE-TIME, and by EXDATE/RDATE entries on whole-day
// events. Format: YYYYMMDD (e.g., 20250928).
const iCalDateFormat = "20060102"

func ParseIcalTime(value string) (time.Time, error) {
	if !strings.HasSuffix(value, "Z") {
		return time.Parse("20060102T150405", value)
	}
	return time.Parse(iCalDateTimeFormat, value)
}

// ParseIcalDate parses a bare iCal DATE value (YYYYMMDD), with no
// time-of-day or zone component.
func ParseIcalDate(value string) (time.Time, error) {
	return time.Parse(iCalDateFormat, value)
}
