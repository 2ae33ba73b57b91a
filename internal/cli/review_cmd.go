package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/alexanderramin/rumbo/internal/cli/formatter"
	"github.com/alexanderramin/rumbo/internal/domain"
	"github.com/alexanderramin/rumbo/internal/week"
	"github.com/spf13/cobra"
)

func newReviewCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "review",
		Short: "Weekly review and block tracking",
	}

	cmd.AddCommand(
		newReviewShowCmd(app),
		newReviewToggleCmd(app),
		newReviewReflectCmd(app),
	)

	return cmd
}

// reviewWeekFlags resolves the --year/--week flags, defaulting to the
// running week.
func reviewWeekFlags(cmd *cobra.Command, year, weekNumber int) (int, int) {
	nowYear, nowWeek := week.YearWeek(time.Now().UTC())
	if !cmd.Flags().Changed("year") {
		year = nowYear
	}
	if !cmd.Flags().Changed("week") {
		weekNumber = nowWeek
	}
	return year, weekNumber
}

func newReviewShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show the current week's review",
		RunE: func(cmd *cobra.Command, args []string) error {
			summary, err := app.Reviews.WeekSummary(context.Background(), time.Now().UTC())
			if err != nil {
				return err
			}
			fmt.Println(formatter.FormatWeekSummary(summary))
			return nil
		},
	}
}

func newReviewToggleCmd(app *App) *cobra.Command {
	var year, weekNumber int

	cmd := &cobra.Command{
		Use:   "toggle BLOCK",
		Short: "Toggle a block's done flag for a week",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			block, err := domain.ParseBlockType(args[0])
			if err != nil {
				return err
			}
			year, weekNumber = reviewWeekFlags(cmd, year, weekNumber)

			r, err := app.Reviews.ToggleBlock(context.Background(), year, weekNumber, block)
			if err != nil {
				return err
			}

			state := "not done"
			if r.BlockDone(block) {
				state = "done"
			}
			fmt.Printf("W%02d %s: %s (%d/5 blocks)\n", weekNumber, block, state, r.DoneCount())
			return nil
		},
	}

	cmd.Flags().IntVar(&year, "year", 0, "Year (default current)")
	cmd.Flags().IntVar(&weekNumber, "week", 0, "Week number (default current)")

	return cmd
}

func newReviewReflectCmd(app *App) *cobra.Command {
	var year, weekNumber int
	var whatWorked, blockers, adjustments, free string

	cmd := &cobra.Command{
		Use:   "reflect",
		Short: "Write the weekly reflection",
		RunE: func(cmd *cobra.Command, args []string) error {
			year, weekNumber = reviewWeekFlags(cmd, year, weekNumber)

			flagged := cmd.Flags().Changed("worked") || cmd.Flags().Changed("blockers") ||
				cmd.Flags().Changed("adjust") || cmd.Flags().Changed("free")
			if !flagged && app.Interactive {
				if err := reflectionForm(&whatWorked, &blockers, &adjustments, &free).Run(); err != nil {
					return err
				}
			}

			_, err := app.Reviews.SaveReflection(context.Background(), year, weekNumber,
				whatWorked, blockers, adjustments, free)
			if err != nil {
				return err
			}

			fmt.Printf("Saved reflection for W%02d, %d\n", weekNumber, year)
			return nil
		},
	}

	cmd.Flags().IntVar(&year, "year", 0, "Year (default current)")
	cmd.Flags().IntVar(&weekNumber, "week", 0, "Week number (default current)")
	cmd.Flags().StringVar(&whatWorked, "worked", "", "What worked this week")
	cmd.Flags().StringVar(&blockers, "blockers", "", "What blocked you")
	cmd.Flags().StringVar(&adjustments, "adjust", "", "Adjustments for next week")
	cmd.Flags().StringVar(&free, "free", "", "Free reflection")

	return cmd
}
