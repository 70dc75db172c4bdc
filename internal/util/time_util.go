package util

import (
	"time"
)

const layout = "2006-01-02"

// DateString formats t in UTC as YYYY-MM-DD.
func DateString(t time.Time) string {
	return t.UTC().Format(layout)
}

// WindowStart is the earliest publish time still inside a lookback
// window ending at now.
func WindowStart(now time.Time, window time.Duration) time.Time {
	return now.Add(-window)
}
