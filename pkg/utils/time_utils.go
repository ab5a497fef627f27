package utils

import "time"

const isoDateLayout = "2006-01-02"

// ParseISODate parses a calendar date in YYYY-MM-DD form.
func ParseISODate(s string) (time.Time, error) {
	return time.Parse(isoDateLayout, s)
}

func FormatISODate(t time.Time) string {
	return t.Format(isoDateLayout)
}

// NowTimestamp is the wall-clock value reported by the health probe.
func NowTimestamp() string {
	return time.Now().UTC().Format(time.RFC3339)
}
