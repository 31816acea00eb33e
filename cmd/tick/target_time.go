package main

import (
	"fmt"
	"strings"
	"time"
)

// targetTimeLayouts are tried in order when parsing an absolute target.
var targetTimeLayouts = []string{
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"2006-01-02",
}

// parseTargetTime parses a target date argument. Absolute values use
// one of targetTimeLayouts; values starting with "+" are durations
// relative to now (e.g. "+72h", "+30m").
func parseTargetTime(value string, now time.Time) (time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, fmt.Errorf("target date is required")
	}

	if strings.HasPrefix(value, "+") {
		offset, err := time.ParseDuration(value[1:])
		if err != nil {
			return time.Time{}, fmt.Errorf("parse relative target %q: %w", value, err)
		}
		return now.Add(offset), nil
	}

	for _, layout := range targetTimeLayouts {
		parsed, err := time.ParseInLocation(layout, value, time.Local)
		if err == nil {
			return parsed, nil
		}
	}

	return time.Time{}, fmt.Errorf("unrecognized target date %q (try 2006-01-02, 2006-01-02 15:04, RFC3339, or +72h)", value)
}
