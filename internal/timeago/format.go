package timeago

import (
	"fmt"
	"time"
)

const (
	minute = 60
	hour   = 60 * minute
	day    = 24 * hour
	week   = 7 * day
	month  = 30 * day
	year   = 365 * day
)

// FormatAge renders the time elapsed since a Unix timestamp (seconds) as a
// short relative age such as "45s", "2m", "3d" or "1y".
// A zero timestamp means unknown and renders as "-".
// Timestamps in the future are treated as "0s".
func FormatAge(ts int64, now time.Time) string {
	if ts == 0 {
		return "-"
	}

	seconds := now.Unix() - ts
	if seconds < 0 {
		seconds = 0
	}

	switch {
	case seconds < minute:
		return fmt.Sprintf("%ds", seconds)
	case seconds < hour:
		return fmt.Sprintf("%dm", seconds/minute)
	case seconds < day:
		return fmt.Sprintf("%dh", seconds/hour)
	case seconds < week:
		return fmt.Sprintf("%dd", seconds/day)
	case seconds < month:
		return fmt.Sprintf("%dw", seconds/week)
	case seconds < year:
		return fmt.Sprintf("%dmo", seconds/month)
	}
	return fmt.Sprintf("%dy", seconds/year)
}
