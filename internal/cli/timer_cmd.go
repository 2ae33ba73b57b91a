package cli

import (
	"context"
	"fmt"

	"github.com/alexanderramin/rumbo/internal/cli/formatter"
	"github.com/alexanderramin/rumbo/internal/timer"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

func newTimerCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "timer",
		Short: "Run the interactive focus timer",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTimer(app)
		},
	}
}

// runTimer drives the full timer flow: the ticking TUI, the optional
// notes form on save, and the commit (which silently discards runs under
// the minimum).
func runTimer(app *App) error {
	ctx := context.Background()

	objectives, err := app.Objectives.List(ctx, false)
	if err != nil {
		return err
	}

	program := tea.NewProgram(newTimerModel(objectives), tea.WithAltScreen())
	final, err := program.Run()
	if err != nil {
		return fmt.Errorf("running timer: %w", err)
	}

	m, ok := final.(timerModel)
	if !ok || !m.saving {
		return nil
	}

	seconds := m.clock.Seconds()
	if _, commits := timer.CommitMinutesFor(seconds); !commits {
		fmt.Printf("Discarded %s run (under %ds)\n", timer.FormatClock(seconds), timer.MinCommitSeconds)
		return nil
	}

	var notes string
	if err := timerSaveForm(&notes).Run(); err != nil {
		return err
	}

	session, err := app.Sessions.CommitTimer(ctx, seconds, m.BlockType(), m.ObjectiveID(), notes)
	if err != nil {
		return err
	}

	fmt.Printf("Saved %s %s session (%s)\n",
		formatter.FormatMinutes(session.DurationMinutes),
		session.BlockType, session.ID[:8])
	return nil
}
