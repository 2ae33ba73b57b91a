package formatter

import (
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/rumbo/internal/calendar"
	"github.com/charmbracelet/lipgloss"
)

// Intensity tier colors, dimmest to brightest.
var intensityStyles = [5]lipgloss.Style{
	StyleDim,
	lipgloss.NewStyle().Foreground(lipgloss.Color("#665c54")),
	lipgloss.NewStyle().Foreground(lipgloss.Color("#79740e")),
	lipgloss.NewStyle().Foreground(lipgloss.Color("#98971a")),
	StyleGreen,
}

var weekdayHeader = []string{"Su", "Mo", "Tu", "We", "Th", "Fr", "Sa"}

// FormatMonth renders a month as a Sunday-first grid. Each day is colored
// by its activity intensity; today is shown bold.
func FormatMonth(year int, month time.Month, cells []calendar.Cell) string {
	var b strings.Builder

	b.WriteString(Header(fmt.Sprintf("%s %d", month, year)))
	b.WriteString("\n")

	for i, wd := range weekdayHeader {
		b.WriteString(StyleHeader.Render(wd))
		if i < len(weekdayHeader)-1 {
			b.WriteString(" ")
		}
	}
	b.WriteString("\n")

	col := 0
	for _, cell := range cells {
		if cell.Blank() {
			b.WriteString("  ")
		} else {
			label := fmt.Sprintf("%2d", cell.Day)
			style := intensityStyles[calendar.Intensity(cell.Activity)]
			if cell.IsToday {
				style = style.Bold(true).Underline(true)
			}
			b.WriteString(style.Render(label))
		}

		col++
		if col == 7 {
			b.WriteString("\n")
			col = 0
		} else {
			b.WriteString(" ")
		}
	}
	if col != 0 {
		b.WriteString("\n")
	}

	return b.String()
}

// FormatMonthStats renders the single-line density summary under the grid.
func FormatMonthStats(stats calendar.MonthStats) string {
	return fmt.Sprintf("%s %d/%d days active (%d%%)",
		Dim("Activity:"), stats.ActiveDays, stats.PassedDays, stats.Percentage)
}
