package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/rumbo/internal/domain"
	"github.com/alexanderramin/rumbo/internal/service"
	"github.com/alexanderramin/rumbo/internal/week"
)

const statusProgressBarWidth = 10

// FormatStatus formats a StatusSummary into a styled CLI dashboard string.
func FormatStatus(s *service.StatusSummary) string {
	var b strings.Builder

	b.WriteString(Header("rumbo status"))
	b.WriteString("\n\n")

	b.WriteString(fmt.Sprintf("%s  %s today, %s this week\n",
		Bold("Time"), FormatMinutes(s.TodayMinutes), FormatMinutes(s.WeekMinutes)))

	if len(s.BlockMinutes) > 0 {
		parts := make([]string, 0, len(domain.AllBlocks))
		for _, block := range domain.AllBlocks {
			if min, ok := s.BlockMinutes[block]; ok {
				parts = append(parts, fmt.Sprintf("%s %s", BlockBadge(block), FormatMinutes(min)))
			}
		}
		b.WriteString("      " + strings.Join(parts, Dim("  ·  ")) + "\n")
	}
	b.WriteString("\n")

	b.WriteString(fmt.Sprintf("%s  W%02d: %d/5 blocks %s", Bold("Week"), s.Week, s.WeekDoneCount, weekStatusPill(s.WeekStatus)))
	if s.Streak > 0 {
		b.WriteString(fmt.Sprintf("  %s", StyleYellow.Render(fmt.Sprintf("🔥 %d week streak", s.Streak))))
	}
	b.WriteString("\n\n")

	if s.CurrentBook != nil {
		b.WriteString(fmt.Sprintf("%s  %s", Bold("Book"), s.CurrentBook.Title))
		if pct, ok := s.CurrentBook.PercentRead(); ok {
			b.WriteString("  " + RenderProgress(pct, statusProgressBarWidth))
		} else if s.CurrentBook.CurrentPage > 0 {
			b.WriteString(Dim(fmt.Sprintf("  p. %d", s.CurrentBook.CurrentPage)))
		}
		b.WriteString("\n\n")
	}

	if len(s.ActiveGoals) > 0 {
		b.WriteString(Header("objectives"))
		b.WriteString("\n")
		for _, o := range s.ActiveGoals {
			b.WriteString(fmt.Sprintf("  %s %s %s\n",
				TruncID(o.ID), o.Title, RenderProgress(o.Percent(), statusProgressBarWidth)))
		}
		b.WriteString("\n")
	}

	b.WriteString(FormatMonthStats(s.MonthStats))
	b.WriteString("\n")

	return b.String()
}

func weekStatusPill(status week.Status) string {
	switch status {
	case week.StatusPerfect:
		return StyleGreen.Render("● perfect")
	case week.StatusValid:
		return StyleGreen.Render("● valid")
	case week.StatusBelow:
		return StyleYellow.Render("○ below minimum")
	default:
		return StyleDim.Render(string(status))
	}
}
