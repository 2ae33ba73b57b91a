package cli

import (
	"github.com/alexanderramin/rumbo/internal/cli/formatter"
	"github.com/alexanderramin/rumbo/internal/domain"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// rumboHuhTheme returns the huh theme shared by all interactive forms.
func rumboHuhTheme() *huh.Theme {
	t := huh.ThemeBase()

	// Focused state: orange accent
	t.Focused.Title = lipgloss.NewStyle().Foreground(formatter.ColorHeader).Bold(true)
	t.Focused.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorGreen)
	t.Focused.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.FocusedButton = lipgloss.NewStyle().Foreground(formatter.ColorFg).Background(formatter.ColorHeader).Padding(0, 1)
	t.Focused.BlurredButton = lipgloss.NewStyle().Foreground(formatter.ColorDim).Padding(0, 1)
	t.Focused.TextInput.Cursor = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.TextInput.Placeholder = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.Description = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	// Blurred state: dimmed
	t.Blurred.Title = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	return t
}

// noteForm collects the daily note content and mood interactively.
func noteForm(content *string, mood *string) *huh.Form {
	options := []huh.Option[string]{
		huh.NewOption("(none)", ""),
		huh.NewOption("great", string(domain.MoodGreat)),
		huh.NewOption("good", string(domain.MoodGood)),
		huh.NewOption("neutral", string(domain.MoodNeutral)),
		huh.NewOption("bad", string(domain.MoodBad)),
		huh.NewOption("terrible", string(domain.MoodTerrible)),
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewText().
				Title("What happened today?").
				Value(content),
			huh.NewSelect[string]().
				Title("Mood").
				Options(options...).
				Value(mood),
		),
	).WithTheme(rumboHuhTheme()).WithShowHelp(false)
}

// reflectionForm collects the weekly review's structured prompts.
func reflectionForm(whatWorked, blockers, adjustments, free *string) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewText().
				Title("What worked this week?").
				Value(whatWorked),
			huh.NewText().
				Title("What blocked you?").
				Value(blockers),
			huh.NewText().
				Title("What will you adjust next week?").
				Value(adjustments),
			huh.NewText().
				Title("Anything else?").
				Value(free),
		),
	).WithTheme(rumboHuhTheme()).WithShowHelp(false)
}

// timerSaveForm collects optional notes before committing a timed session.
func timerSaveForm(notes *string) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewText().
				Title("Session notes (optional)").
				Value(notes),
		),
	).WithTheme(rumboHuhTheme()).WithShowHelp(false)
}
