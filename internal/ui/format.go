package ui

import (
	"fmt"
	"time"

	"github.com/aBirrueta/Tick/countdown"
)

// TimestampLayout is the display format for absolute instants.
const TimestampLayout = "2006-01-02 15:04:05"

// FormatBreakdown formats a breakdown at second precision, like
// "4d 03:00:25". Zero breakdowns render as "expired".
func FormatBreakdown(b countdown.Breakdown) string {
	if b.IsZero() {
		return "expired"
	}
	if b.Days == 0 {
		return fmt.Sprintf("%02d:%02d:%02d", b.Hours, b.Minutes, b.Seconds)
	}
	return fmt.Sprintf("%dd %02d:%02d:%02d", b.Days, b.Hours, b.Minutes, b.Seconds)
}

// FormatBreakdownMillis formats a breakdown at millisecond precision,
// like "4d 03:00:25.123", for live displays.
func FormatBreakdownMillis(b countdown.Breakdown) string {
	if b.IsZero() {
		return "expired"
	}
	if b.Days == 0 {
		return fmt.Sprintf("%02d:%02d:%02d.%03d", b.Hours, b.Minutes, b.Seconds, b.Milliseconds)
	}
	return fmt.Sprintf("%dd %02d:%02d:%02d.%03d", b.Days, b.Hours, b.Minutes, b.Seconds, b.Milliseconds)
}

// FormatTimestamp formats an absolute instant for display.
func FormatTimestamp(t time.Time) string {
	return t.Format(TimestampLayout)
}
