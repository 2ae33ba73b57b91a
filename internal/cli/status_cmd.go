package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/alexanderramin/rumbo/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newStatusCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show the dashboard summary",
		RunE: func(cmd *cobra.Command, args []string) error {
			summary, err := app.Status.Summary(context.Background(), time.Now().UTC())
			if err != nil {
				return err
			}
			fmt.Println(formatter.FormatStatus(summary))
			return nil
		},
	}
}
