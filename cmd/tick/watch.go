package main

import (
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/aBirrueta/Tick/countdown"
	"github.com/aBirrueta/Tick/internal/ui"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Watch running countdowns tick down live",
	Args:  cobra.NoArgs,
	RunE:  runWatch,
}

func init() {
	rootCmd.AddCommand(watchCmd)
}

const (
	watchRedrawInterval = 100 * time.Millisecond
	watchFallbackWidth  = 80
	clearScreen         = "\x1b[H\x1b[2J"
)

var (
	watchNameStyle      = lipgloss.NewStyle().Bold(true)
	watchRemainingStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("33"))
	watchExpiredStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	watchTargetStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("244"))
)

func runWatch(cmd *cobra.Command, args []string) error {
	engine, err := openEngine()
	if err != nil {
		return err
	}
	defer engine.Close()

	if !engine.HasActive() {
		fmt.Println("No running countdowns.")
		return nil
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	updates, cancel := engine.Subscribe()
	defer cancel()

	for {
		renderWatchFrame(os.Stdout, engine, time.Now(), watchDisplayWidth())

		if !engine.HasActive() {
			return nil
		}

		select {
		case <-ctx.Done():
			fmt.Println()
			return nil
		case <-updates:
		}

		// Coalesce the 60 Hz notification stream into a readable
		// redraw rate.
		select {
		case <-ctx.Done():
			fmt.Println()
			return nil
		case <-time.After(watchRedrawInterval):
		}
	}
}

func renderWatchFrame(writer io.Writer, engine *countdown.Engine, now time.Time, width int) {
	var builder strings.Builder
	builder.WriteString(clearScreen)

	for _, id := range engine.ActiveIDs() {
		entity, ok := engine.Get(id)
		if !ok {
			continue
		}
		builder.WriteString(formatWatchEntry(entity, now, width))
		builder.WriteByte('\n')
	}

	fmt.Fprint(writer, builder.String())
}

func formatWatchEntry(entity countdown.Entity, now time.Time, width int) string {
	if width < 20 {
		width = 20
	}

	remaining := ui.FormatBreakdownMillis(entity.BreakdownAt(now))
	remainingStyle := watchRemainingStyle
	if entity.HasExpiredAt(now) {
		remainingStyle = watchExpiredStyle
	}

	name := wordwrap.String(entity.Name, width)
	var builder strings.Builder
	builder.WriteString(watchNameStyle.Render(name))
	builder.WriteByte('\n')
	builder.WriteString("  ")
	builder.WriteString(remainingStyle.Render(remaining))
	builder.WriteString("  ")
	builder.WriteString(watchTargetStyle.Render(ui.FormatTimestamp(entity.TargetDate)))
	builder.WriteByte('\n')
	return builder.String()
}

func watchDisplayWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width < 1 {
		return watchFallbackWidth
	}
	return width
}
