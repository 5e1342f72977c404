package timeutil

import (
	"fmt"
	"time"
)

// DateLayout defines the canonical date format (YYYY-MM-DD).
const DateLayout = "2006-01-02"

// ClockLayout defines the display time format (24-hour HH:MM).
const ClockLayout = "15:04"

// KickoffLayout parses the combined fixture timestamps (no zone suffix; the
// feed reports wall-clock time in IST).
const KickoffLayout = "2006-01-02T15:04:05"

// IST is the fixed zone all fixture timestamps are expressed in. A fixed zone
// keeps the service independent of the host tzdata.
var IST = time.FixedZone("IST", 5*60*60+30*60)

// MonthKey formats a zero-based (year, month) pair as YYYY-MM, the key used by
// the fixture documents.
func MonthKey(year, month int) string {
	return fmt.Sprintf("%04d-%02d", year, month+1)
}

// ParseDate parses a YYYY-MM-DD date string as IST midnight.
func ParseDate(value string) (time.Time, error) {
	return time.ParseInLocation(DateLayout, value, IST)
}

// ParseKickoff parses a combined fixture timestamp in IST.
func ParseKickoff(value string) (time.Time, error) {
	return time.ParseInLocation(KickoffLayout, value, IST)
}

// FormatClock formats a time as HH:MM in its current location.
func FormatClock(t time.Time) string {
	return t.Format(ClockLayout)
}

// FormatDate formats a time as YYYY-MM-DD in its current location.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}
