package cli

import (
	"context"
	"fmt"

	"github.com/alexanderramin/rumbo/internal/cli/formatter"
	"github.com/alexanderramin/rumbo/internal/domain"
	"github.com/spf13/cobra"
)

func newSessionCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "session",
		Short: "Manage work sessions",
	}

	cmd.AddCommand(
		newSessionLogCmd(app),
		newSessionListCmd(app),
		newSessionRemoveCmd(app),
	)

	return cmd
}

func newSessionLogCmd(app *App) *cobra.Command {
	var blockStr, objectiveRef, notes string
	var minutes int

	cmd := &cobra.Command{
		Use:   "log",
		Short: "Log a work session manually",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			block, err := domain.ParseBlockType(blockStr)
			if err != nil {
				return err
			}

			var objectiveID *string
			if objectiveRef != "" {
				id, err := resolveObjectiveID(ctx, app, objectiveRef)
				if err != nil {
					return err
				}
				objectiveID = &id
			}

			s := &domain.Session{
				BlockType:       block,
				ObjectiveID:     objectiveID,
				DurationMinutes: minutes,
				Notes:           notes,
			}
			if err := app.Sessions.Log(ctx, s); err != nil {
				return err
			}

			fmt.Printf("Logged %s %s session (%s)\n",
				formatter.FormatMinutes(minutes), blockStr, s.ID[:8])
			return nil
		},
	}

	cmd.Flags().StringVar(&blockStr, "block", "", "Block type (study|project|docs|outreach|review)")
	cmd.Flags().IntVar(&minutes, "minutes", 0, "Session duration in minutes")
	cmd.Flags().StringVar(&objectiveRef, "objective", "", "Linked objective ID")
	cmd.Flags().StringVar(&notes, "notes", "", "Session notes")
	_ = cmd.MarkFlagRequired("block")
	_ = cmd.MarkFlagRequired("minutes")

	return cmd
}

func newSessionListCmd(app *App) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List recent sessions",
		RunE: func(cmd *cobra.Command, args []string) error {
			sessions, err := app.Sessions.ListRecent(context.Background(), limit)
			if err != nil {
				return err
			}

			if len(sessions) == 0 {
				fmt.Println("No sessions found.")
				return nil
			}

			headers := []string{"ID", "BLOCK", "DURATION", "OBJECTIVE", "WHEN", "NOTES"}
			rows := make([][]string, 0, len(sessions))
			for _, s := range sessions {
				objective := formatter.Dim("--")
				if s.ObjectiveTitle != nil {
					objective = *s.ObjectiveTitle
				}
				notesPreview := s.Session.Notes
				if len(notesPreview) > 40 {
					notesPreview = notesPreview[:37] + "..."
				}
				rows = append(rows, []string{
					formatter.TruncID(s.Session.ID),
					formatter.BlockBadge(s.Session.BlockType),
					formatter.FormatMinutes(s.Session.DurationMinutes),
					objective,
					formatter.HumanTimestamp(s.Session.CreatedAt),
					formatter.Dim(notesPreview),
				})
			}

			fmt.Print(formatter.RenderBox("Sessions", formatter.RenderTable(headers, rows)))
			return nil
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 20, "Maximum number of sessions to show")

	return cmd
}

func newSessionRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "remove ID",
		Short: "Remove a session",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Sessions.Delete(context.Background(), args[0]); err != nil {
				return err
			}
			fmt.Printf("Removed session %s\n", args[0])
			return nil
		},
	}
}
