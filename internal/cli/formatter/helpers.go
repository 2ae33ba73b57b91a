package formatter

import (
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/rumbo/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

// RenderBox wraps content in a rounded-border box with an optional title.
func RenderBox(title string, content string) string {
	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorDim).
		PaddingLeft(2).
		PaddingRight(2).
		PaddingTop(1).
		PaddingBottom(1)

	if title != "" {
		titleRendered := StyleHeader.Render(strings.ToUpper(title))
		inner := titleRendered + "\n\n" + content
		return boxStyle.Render(inner)
	}

	return boxStyle.Render(content)
}

// HumanDate returns a human-friendly absolute date string.
func HumanDate(t time.Time) string {
	now := time.Now()
	y1, m1, d1 := now.Date()
	y2, m2, d2 := t.Date()

	if y1 == y2 && m1 == m2 && d1 == d2 {
		return "Today"
	}
	yesterday := now.AddDate(0, 0, -1)
	y3, m3, d3 := yesterday.Date()
	if y2 == y3 && m2 == m3 && d2 == d3 {
		return "Yesterday"
	}
	return t.Format("Jan 2, 2006")
}

// HumanTimestamp returns a human-friendly relative timestamp string.
func HumanTimestamp(t time.Time) string {
	now := time.Now()
	diff := now.Sub(t)

	switch {
	case diff < 0:
		return HumanDate(t)
	case diff < time.Minute:
		return "Just now"
	case diff < time.Hour:
		return fmt.Sprintf("%dm ago", int(diff.Minutes()))
	case diff < 24*time.Hour:
		return fmt.Sprintf("%dh ago", int(diff.Hours()))
	default:
		return HumanDate(t)
	}
}

// StagePill returns a colored stage indicator for project status.
func StagePill(stage domain.ProjectStage) string {
	switch stage {
	case domain.StageIdea:
		return StyleDim.Render("○ Idea")
	case domain.StageDesign:
		return StyleBlue.Render("◆ Design")
	case domain.StageFabrication:
		return StyleYellow.Render("● Fabrication")
	case domain.StageTesting:
		return StylePurple.Render("▲ Testing")
	case domain.StageCompleted:
		return StyleGreen.Render("✔ Completed")
	default:
		return StyleDim.Render(string(stage))
	}
}

// BookStatusPill returns a colored status indicator for a book.
func BookStatusPill(status domain.BookStatus) string {
	switch status {
	case domain.BookToRead:
		return StyleBlue.Render("○ To read")
	case domain.BookReading:
		return StyleGreen.Render("● Reading")
	case domain.BookCompleted:
		return StyleDim.Render("✔ Completed")
	case domain.BookAbandoned:
		return StyleDim.Render("✖ Abandoned")
	default:
		return StyleDim.Render(string(status))
	}
}

// BlockBadge returns a capitalized, purple-styled block type label.
func BlockBadge(b domain.BlockType) string {
	s := string(b)
	if s == "" {
		return StyleDim.Render("--")
	}
	label := strings.ToUpper(s[:1]) + s[1:]
	return StylePurple.Render(label)
}

// MoodLabel renders a mood with a matching color, or a dimmed dash when unset.
func MoodLabel(m *domain.Mood) string {
	if m == nil {
		return StyleDim.Render("--")
	}
	switch *m {
	case domain.MoodGreat:
		return StyleGreen.Render("great")
	case domain.MoodGood:
		return StyleGreen.Render("good")
	case domain.MoodNeutral:
		return StyleYellow.Render("neutral")
	case domain.MoodBad:
		return StyleRed.Render("bad")
	case domain.MoodTerrible:
		return StyleRed.Render("terrible")
	default:
		return StyleDim.Render(string(*m))
	}
}

// TruncID returns the first 8 characters of an ID, dimmed.
func TruncID(id string) string {
	if len(id) > 8 {
		id = id[:8]
	}
	return StyleDim.Render(id)
}

// FormatMinutes converts raw minutes into human-friendly format.
func FormatMinutes(min int) string {
	if min <= 0 {
		return "0m"
	}
	h := min / 60
	m := min % 60
	if h > 0 && m > 0 {
		return fmt.Sprintf("%dh %dm", h, m)
	}
	if h > 0 {
		return fmt.Sprintf("%dh", h)
	}
	return fmt.Sprintf("%dm", m)
}
