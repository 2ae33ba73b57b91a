package cli

import (
	"context"
	"fmt"

	"github.com/alexanderramin/rumbo/internal/domain"
	"github.com/spf13/cobra"
)

func newConfigCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Show or change settings",
	}

	cmd.AddCommand(
		newConfigShowCmd(app),
		newConfigThemeCmd(app),
	)

	return cmd
}

func newConfigShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show current settings",
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := app.Settings.Get(context.Background())
			if err != nil {
				return err
			}
			fmt.Printf("theme: %s\n", s.Theme)
			return nil
		},
	}
}

func newConfigThemeCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "theme THEME",
		Short: "Set the theme (dark|light)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := app.Settings.SetTheme(context.Background(), domain.Theme(args[0]))
			if err != nil {
				return err
			}
			fmt.Printf("theme: %s\n", s.Theme)
			return nil
		},
	}
}
