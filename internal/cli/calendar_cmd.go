package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/alexanderramin/rumbo/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newCalendarCmd(app *App) *cobra.Command {
	var month, year int

	cmd := &cobra.Command{
		Use:   "calendar",
		Short: "Show the monthly activity calendar",
		RunE: func(cmd *cobra.Command, args []string) error {
			now := time.Now().UTC()
			if !cmd.Flags().Changed("month") {
				month = int(now.Month())
			}
			if !cmd.Flags().Changed("year") {
				year = now.Year()
			}
			if month < 1 || month > 12 {
				return fmt.Errorf("invalid month %d", month)
			}

			view, err := app.Calendar.Month(context.Background(), year, time.Month(month), now)
			if err != nil {
				return err
			}

			fmt.Println(formatter.FormatMonth(view.Year, view.Month, view.Cells))
			fmt.Println(formatter.FormatMonthStats(view.Stats))
			return nil
		},
	}

	cmd.Flags().IntVar(&month, "month", 0, "Month to show (1-12, default current)")
	cmd.Flags().IntVar(&year, "year", 0, "Year to show (default current)")

	return cmd
}
