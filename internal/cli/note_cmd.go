package cli

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/rumbo/internal/cli/formatter"
	"github.com/alexanderramin/rumbo/internal/domain"
	"github.com/spf13/cobra"
)

func newNoteCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "note",
		Short: "Keep daily notes",
	}

	cmd.AddCommand(
		newNoteWriteCmd(app),
		newNoteListCmd(app),
		newNoteRemoveCmd(app),
	)

	return cmd
}

func newNoteWriteCmd(app *App) *cobra.Command {
	var moodStr, dateStr string

	cmd := &cobra.Command{
		Use:   "write [CONTENT]",
		Short: "Write or replace today's note",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			date := time.Now().UTC()
			if dateStr != "" {
				parsed, err := time.Parse("2006-01-02", dateStr)
				if err != nil {
					return fmt.Errorf("invalid date %q: %w", dateStr, err)
				}
				date = parsed
			}

			var content string
			if len(args) > 0 {
				content = args[0]
			} else if app.Interactive {
				if err := noteForm(&content, &moodStr).Run(); err != nil {
					return err
				}
			}
			if content == "" {
				return fmt.Errorf("note content is required")
			}

			var mood *domain.Mood
			if moodStr != "" {
				m := domain.Mood(moodStr)
				mood = &m
			}

			note, err := app.Notes.Save(context.Background(), date, content, mood)
			if err != nil {
				return err
			}

			fmt.Printf("Saved note for %s\n", note.Date.Format("2006-01-02"))
			return nil
		},
	}

	cmd.Flags().StringVar(&moodStr, "mood", "", "Mood (great|good|neutral|bad|terrible)")
	cmd.Flags().StringVar(&dateStr, "date", "", "Date to write for (YYYY-MM-DD, default today)")

	return cmd
}

func newNoteListCmd(app *App) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List recent notes",
		RunE: func(cmd *cobra.Command, args []string) error {
			notes, err := app.Notes.ListRecent(context.Background(), limit)
			if err != nil {
				return err
			}

			if len(notes) == 0 {
				fmt.Println("No notes found.")
				return nil
			}

			headers := []string{"ID", "DATE", "MOOD", "CONTENT"}
			rows := make([][]string, 0, len(notes))
			for _, n := range notes {
				preview := strings.ReplaceAll(n.Content, "\n", " ")
				if len(preview) > 60 {
					preview = preview[:57] + "..."
				}
				rows = append(rows, []string{
					formatter.TruncID(n.ID),
					formatter.HumanDate(n.Date),
					formatter.MoodLabel(n.Mood),
					preview,
				})
			}

			fmt.Print(formatter.RenderBox("Notes", formatter.RenderTable(headers, rows)))
			return nil
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 14, "Maximum number of notes to show")

	return cmd
}

func newNoteRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "remove ID",
		Short: "Remove a note",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Notes.Delete(context.Background(), args[0]); err != nil {
				return err
			}
			fmt.Printf("Removed note %s\n", args[0])
			return nil
		},
	}
}
