package timeago_test

import (
	"testing"
	"time"

	"github.com/mikanfactory/gityard/internal/timeago"
)

func TestFormatAge(t *testing.T) {
	now := time.Date(2025, 6, 22, 12, 0, 0, 0, time.UTC)
	ago := func(d time.Duration) int64 { return now.Add(-d).Unix() }

	tests := []struct {
		name string
		ts   int64
		want string
	}{
		{name: "unknown", ts: 0, want: "-"},
		{name: "just now", ts: ago(0), want: "0s"},
		{name: "future", ts: ago(-time.Hour), want: "0s"},
		{name: "seconds", ts: ago(59 * time.Second), want: "59s"},
		{name: "minutes floored", ts: ago(125 * time.Second), want: "2m"},
		{name: "one hour", ts: ago(time.Hour), want: "1h"},
		{name: "hours", ts: ago(23*time.Hour + 59*time.Minute), want: "23h"},
		{name: "days", ts: ago(3 * 24 * time.Hour), want: "3d"},
		{name: "one week", ts: ago(7 * 24 * time.Hour), want: "1w"},
		{name: "weeks", ts: ago(29 * 24 * time.Hour), want: "4w"},
		{name: "months", ts: ago(60 * 24 * time.Hour), want: "2mo"},
		{name: "one year", ts: ago(365 * 24 * time.Hour), want: "1y"},
		{name: "years", ts: ago(3 * 365 * 24 * time.Hour), want: "3y"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := timeago.FormatAge(tt.ts, now); got != tt.want {
				t.Errorf("FormatAge(%d) = %q, want %q", tt.ts, got, tt.want)
			}
		})
	}
}
