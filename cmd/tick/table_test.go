package main

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/aBirrueta/Tick/countdown"
)

func testEntities(now time.Time) []countdown.Entity {
	return []countdown.Entity{
		{
			ID:         "abc12345",
			Name:       "Launch party",
			TargetDate: now.Add(26 * time.Hour),
			IsActive:   true,
			CreatedAt:  now.Add(-time.Hour),
		},
		{
			ID:         "abd67890",
			Name:       "Tax deadline",
			TargetDate: now.Add(-time.Minute),
			IsActive:   false,
			CreatedAt:  now.Add(-48 * time.Hour),
		},
	}
}

func TestFormatCountdownTablePreservesAlignmentWithANSI(t *testing.T) {
	now := time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC)
	entities := testEntities(now)

	prefixLengths := countdown.NewIDIndex(entities).PrefixLengths()
	plain := formatCountdownTable(entities, prefixLengths, func(id string, prefix int) string { return id }, now)
	ansi := formatCountdownTable(entities, prefixLengths, func(id string, prefix int) string {
		if prefix <= 0 || prefix > len(id) {
			return id
		}
		return "\x1b[1m\x1b[36m" + id[:prefix] + "\x1b[0m" + id[prefix:]
	}, now)

	if stripANSICodes(ansi) != plain {
		t.Fatalf("expected ANSI output to align with plain output\nplain:\n%s\nansi:\n%s", plain, ansi)
	}
}

func TestFormatCountdownTableUsesProvidedPrefixLengths(t *testing.T) {
	now := time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC)
	entities := []countdown.Entity{
		{
			ID:         "r1234567",
			Name:       "Only listed",
			TargetDate: now.Add(time.Hour),
			CreatedAt:  now,
		},
	}

	prefixLengths := map[string]int{"r1234567": 2}
	output := formatCountdownTable(entities, prefixLengths, func(id string, prefix int) string {
		return fmt.Sprintf("%s:%d", id, prefix)
	}, now)

	if !strings.Contains(output, "r1234567:2") {
		t.Fatalf("expected table to use provided prefix length, got:\n%s", output)
	}
}

func TestFormatCountdownTableStatus(t *testing.T) {
	now := time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC)
	entities := testEntities(now)

	output := formatCountdownTable(entities, nil, func(id string, prefix int) string { return id }, now)
	lines := strings.Split(output, "\n")
	if len(lines) < 3 {
		t.Fatalf("expected header plus two rows, got:\n%s", output)
	}
	if !strings.Contains(lines[1], "active") {
		t.Errorf("expected running countdown row to show active:\n%s", lines[1])
	}
	if !strings.Contains(lines[2], "expired") {
		t.Errorf("expected past-target row to show expired:\n%s", lines[2])
	}
}

func TestCountdownStatus(t *testing.T) {
	now := time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC)

	running := countdown.Entity{TargetDate: now.Add(time.Hour), IsActive: true}
	if got := countdownStatus(running, now); got != "active" {
		t.Errorf("running status = %q, want active", got)
	}

	stopped := countdown.Entity{TargetDate: now.Add(time.Hour)}
	if got := countdownStatus(stopped, now); got != "stopped" {
		t.Errorf("stopped status = %q, want stopped", got)
	}

	// Expiry wins over the active flag.
	expired := countdown.Entity{TargetDate: now.Add(-time.Second), IsActive: true}
	if got := countdownStatus(expired, now); got != "expired" {
		t.Errorf("expired status = %q, want expired", got)
	}
}
