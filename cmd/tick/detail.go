package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/aBirrueta/Tick/countdown"
	"github.com/aBirrueta/Tick/internal/markdown"
	"github.com/aBirrueta/Tick/internal/ui"
)

const detailLineWidth = 80

// printCountdownDetail prints detailed information about a countdown.
func printCountdownDetail(entity countdown.Entity, highlight func(string) string, now time.Time) {
	fmt.Printf("ID:        %s\n", highlight(entity.ID))
	fmt.Printf("Name:      %s\n", entity.Name)
	fmt.Printf("Status:    %s\n", countdownStatus(entity, now))
	fmt.Printf("Target:    %s\n", ui.FormatTimestamp(entity.TargetDate))
	fmt.Printf("Remaining: %s\n", ui.FormatBreakdownMillis(entity.BreakdownAt(now)))
	fmt.Printf("Created:   %s\n", ui.FormatTimestamp(entity.CreatedAt))

	if entity.Note != "" {
		fmt.Printf("\nNote:\n%s\n", formatCountdownNote(entity.Note))
	}
}

func formatCountdownNote(value string) string {
	rendered := markdown.SafeRender(detailLineWidth, 2, []byte(value))
	if strings.TrimSpace(string(rendered)) == "" {
		return "-"
	}
	return string(rendered)
}
