package utils

import "time"

const dateLayout = "2006-01-02"

// ParseDate parses YYYY-MM-DD, falling back to RFC3339.
func ParseDate(s string) (time.Time, error) {
	if t, err := time.Parse(dateLayout, s); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, s)
}

// FormatDate renders the date part only.
func FormatDate(t time.Time) string {
	return t.Format(dateLayout)
}

// FormatTimestamp renders t as RFC3339.
func FormatTimestamp(t time.Time) string {
	return t.Format(time.RFC3339)
}
