package dates

import (
	"math"
	"time"
)

// DayKeyLayout is the canonical calendar-day key format.
const DayKeyLayout = "2006-01-02"

// DayKey renders the local civil date of t as YYYY-MM-DD. No UTC
// conversion: the key must match the calendar day where the user is.
func DayKey(t time.Time) string {
	return t.Format(DayKeyLayout)
}

// ParseDayKey parses a YYYY-MM-DD key in local time.
func ParseDayKey(key string) (time.Time, error) {
	return time.ParseInLocation(DayKeyLayout, key, time.Local)
}

// DaysBetween returns the signed whole-day count from a to b. Both
// ends are truncated to midnight first, and the difference is rounded
// to the nearest day so daylight-saving discontinuities (23h/25h days)
// do not skew the count.
func DaysBetween(a, b time.Time) int {
	a = midnight(a)
	b = midnight(b)
	return int(math.Round(b.Sub(a).Hours() / 24))
}

// ClampPercent restricts n to [0, 100] and rounds to the nearest
// integer.
func ClampPercent(n float64) int {
	if n < 0 {
		n = 0
	}
	if n > 100 {
		n = 100
	}
	return int(math.Round(n))
}

func midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
