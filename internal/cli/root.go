package cli

import (
	"github.com/alexanderramin/rumbo/internal/service"
	"github.com/spf13/cobra"
)

// App holds references to all service interfaces used by CLI commands.
type App struct {
	Objectives service.ObjectiveService
	Sessions   service.SessionService
	Projects   service.ProjectService
	Books      service.BookService
	Notes      service.NoteService
	Reviews    service.ReviewService
	Calendar   service.CalendarService
	Status     service.StatusService
	Settings   service.SettingsService

	// Interactive is true when stdin and stdout are a terminal; a bare
	// invocation then opens the focus timer instead of printing help.
	Interactive bool
}

// NewRootCmd creates the top-level "rumbo" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "rumbo",
		Short: "Personal productivity tracker",
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.Interactive {
				return runTimer(app)
			}
			return cmd.Help()
		},
	}

	root.AddCommand(
		newObjectiveCmd(app),
		newSessionCmd(app),
		newTimerCmd(app),
		newProjectCmd(app),
		newBookCmd(app),
		newNoteCmd(app),
		newReviewCmd(app),
		newCalendarCmd(app),
		newStatusCmd(app),
		newConfigCmd(app),
	)

	return root
}
