package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/rumbo/internal/domain"
	"github.com/alexanderramin/rumbo/internal/service"
)

// FormatWeekSummary renders the weekly review checklist with its status
// line and streak.
func FormatWeekSummary(s *service.WeekSummary) string {
	var b strings.Builder

	b.WriteString(Header(fmt.Sprintf("week %d, %d", s.Week, s.Year)))
	b.WriteString("\n")

	for _, block := range domain.AllBlocks {
		done := s.Review != nil && s.Review.BlockDone(block)
		if done {
			b.WriteString(fmt.Sprintf("  %s %s\n", StyleGreen.Render("✔"), BlockBadge(block)))
		} else {
			b.WriteString(fmt.Sprintf("  %s %s\n", StyleDim.Render("○"), BlockBadge(block)))
		}
	}

	doneCount := 0
	if s.Review != nil {
		doneCount = s.Review.DoneCount()
	}
	b.WriteString(fmt.Sprintf("\n%d/5 blocks %s", doneCount, weekStatusPill(s.Status)))
	if s.Streak > 0 {
		b.WriteString(fmt.Sprintf("  %s", StyleYellow.Render(fmt.Sprintf("🔥 %d week streak", s.Streak))))
	}
	b.WriteString("\n")

	if s.Review != nil && (s.Review.WhatWorked != "" || s.Review.Blockers != "" ||
		s.Review.NextWeekAdjustments != "" || s.Review.FreeReflection != "") {
		b.WriteString("\n")
		b.WriteString(formatReflection(s.Review))
	}

	return b.String()
}

func formatReflection(r *domain.WeeklyReview) string {
	var b strings.Builder
	write := func(label, value string) {
		if value != "" {
			b.WriteString(fmt.Sprintf("%s %s\n", Bold(label+":"), value))
		}
	}
	write("What worked", r.WhatWorked)
	write("Blockers", r.Blockers)
	write("Adjustments", r.NextWeekAdjustments)
	write("Reflection", r.FreeReflection)
	return b.String()
}
