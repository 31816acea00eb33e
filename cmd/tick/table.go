package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/aBirrueta/Tick/countdown"
	"github.com/aBirrueta/Tick/internal/ui"
)

// printCountdownTable prints countdowns in a table format.
func printCountdownTable(entities []countdown.Entity, prefixLengths map[string]int, now time.Time) {
	if len(entities) == 0 {
		fmt.Println("No countdowns found.")
		return
	}

	fmt.Print(formatCountdownTable(entities, prefixLengths, ui.HighlightID, now))
}

func formatCountdownTable(entities []countdown.Entity, prefixLengths map[string]int, highlight func(string, int) string, now time.Time) string {
	builder := ui.NewTableBuilder([]string{"ID", "STATUS", "TARGET", "REMAINING", "NAME"}, len(entities))

	if prefixLengths == nil {
		prefixLengths = countdown.NewIDIndex(entities).PrefixLengths()
	}

	for _, entity := range entities {
		prefixLen := prefixLengths[strings.ToLower(entity.ID)]
		row := []string{
			highlight(entity.ID, prefixLen),
			countdownStatus(entity, now),
			ui.FormatTimestamp(entity.TargetDate),
			ui.FormatBreakdown(entity.BreakdownAt(now)),
			ui.TruncateTableCell(entity.Name),
		}
		builder.AddRow(row)
	}

	return builder.String()
}

func countdownStatus(entity countdown.Entity, now time.Time) string {
	switch {
	case entity.HasExpiredAt(now):
		return "expired"
	case entity.IsActive:
		return "active"
	default:
		return "stopped"
	}
}
