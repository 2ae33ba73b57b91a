package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/alexanderramin/rumbo/internal/cli/formatter"
	"github.com/alexanderramin/rumbo/internal/domain"
	"github.com/spf13/cobra"
)

func resolveBookID(ctx context.Context, app *App, input string) (string, error) {
	if input == "" {
		return "", fmt.Errorf("book ID is required")
	}

	books, err := app.Books.List(ctx)
	if err != nil {
		return "", err
	}

	for _, b := range books {
		if b.ID == input {
			return b.ID, nil
		}
	}

	var matches []string
	for _, b := range books {
		if strings.HasPrefix(b.ID, input) {
			matches = append(matches, b.ID)
		}
	}

	switch len(matches) {
	case 0:
		return "", fmt.Errorf("book not found: %q", input)
	case 1:
		return matches[0], nil
	default:
		return "", fmt.Errorf("book ID prefix %q is ambiguous (%d matches)", input, len(matches))
	}
}

func newBookCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "book",
		Short: "Track reading",
	}

	cmd.AddCommand(
		newBookAddCmd(app),
		newBookListCmd(app),
		newBookProgressCmd(app),
		newBookFinishCmd(app),
		newBookAbandonCmd(app),
		newBookRemoveCmd(app),
	)

	return cmd
}

func newBookAddCmd(app *App) *cobra.Command {
	var title, author string
	var pages int

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Start reading a new book",
		RunE: func(cmd *cobra.Command, args []string) error {
			b := &domain.Book{Title: title, Author: author}
			if cmd.Flags().Changed("pages") {
				b.TotalPages = &pages
			}

			if err := app.Books.Add(context.Background(), b); err != nil {
				return err
			}

			fmt.Printf("Started reading %s (%s)\n", b.Title, b.ID[:8])
			return nil
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "Book title")
	cmd.Flags().StringVar(&author, "author", "", "Author")
	cmd.Flags().IntVar(&pages, "pages", 0, "Total page count")
	_ = cmd.MarkFlagRequired("title")

	return cmd
}

func newBookListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List books grouped by status",
		RunE: func(cmd *cobra.Command, args []string) error {
			books, err := app.Books.List(context.Background())
			if err != nil {
				return err
			}

			if len(books) == 0 {
				fmt.Println("No books found.")
				return nil
			}

			order := []domain.BookStatus{
				domain.BookReading, domain.BookToRead,
				domain.BookCompleted, domain.BookAbandoned,
			}
			headers := []string{"ID", "TITLE", "AUTHOR", "STATUS", "PROGRESS"}
			rows := make([][]string, 0, len(books))
			for _, status := range order {
				for _, b := range books {
					if b.Status != status {
						continue
					}
					progress := formatter.Dim("--")
					if pct, ok := b.PercentRead(); ok {
						progress = formatter.RenderProgress(pct, 10)
					} else if b.CurrentPage > 0 {
						progress = fmt.Sprintf("p. %d", b.CurrentPage)
					}
					if b.Rating != nil {
						progress += "  " + formatter.StyleYellow.Render(strings.Repeat("★", *b.Rating))
					}
					rows = append(rows, []string{
						formatter.TruncID(b.ID),
						b.Title,
						formatter.Dim(b.Author),
						formatter.BookStatusPill(b.Status),
						progress,
					})
				}
			}

			fmt.Print(formatter.RenderBox("Books", formatter.RenderTable(headers, rows)))
			return nil
		},
	}
}

func newBookProgressCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "progress ID PAGE",
		Short: "Move the bookmark",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			id, err := resolveBookID(ctx, app, args[0])
			if err != nil {
				return err
			}
			var page int
			if _, err := fmt.Sscanf(args[1], "%d", &page); err != nil || page < 0 {
				return fmt.Errorf("invalid page %q", args[1])
			}

			b, err := app.Books.UpdateProgress(ctx, id, page)
			if err != nil {
				return err
			}

			if b.Status == domain.BookCompleted {
				fmt.Printf("Finished %s 🎉\n", b.Title)
				return nil
			}
			if pct, ok := b.PercentRead(); ok {
				fmt.Printf("%s: %s\n", b.Title, formatter.RenderProgress(pct, 10))
			} else {
				fmt.Printf("%s: p. %d\n", b.Title, b.CurrentPage)
			}
			return nil
		},
	}
}

func newBookFinishCmd(app *App) *cobra.Command {
	var rating int
	var notes string

	cmd := &cobra.Command{
		Use:   "finish ID",
		Short: "Mark a book as finished",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			id, err := resolveBookID(ctx, app, args[0])
			if err != nil {
				return err
			}

			var ratingPtr *int
			if cmd.Flags().Changed("rating") {
				ratingPtr = &rating
			}

			b, err := app.Books.Finish(ctx, id, ratingPtr, notes)
			if err != nil {
				return err
			}
			fmt.Printf("Finished %s\n", b.Title)
			return nil
		},
	}

	cmd.Flags().IntVar(&rating, "rating", 0, "Rating (1-5)")
	cmd.Flags().StringVar(&notes, "notes", "", "Closing notes")

	return cmd
}

func newBookAbandonCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "abandon ID",
		Short: "Abandon a book",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			id, err := resolveBookID(ctx, app, args[0])
			if err != nil {
				return err
			}
			b, err := app.Books.Abandon(ctx, id)
			if err != nil {
				return err
			}
			fmt.Printf("Abandoned %s\n", b.Title)
			return nil
		},
	}
}

func newBookRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "remove ID",
		Short: "Remove a book",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			id, err := resolveBookID(ctx, app, args[0])
			if err != nil {
				return err
			}
			if err := app.Books.Delete(ctx, id); err != nil {
				return err
			}
			fmt.Printf("Removed book %s\n", id[:8])
			return nil
		},
	}
}
