package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/alexanderramin/rumbo/internal/cli/formatter"
	"github.com/alexanderramin/rumbo/internal/domain"
	"github.com/spf13/cobra"
)

func resolveObjectiveID(ctx context.Context, app *App, input string) (string, error) {
	if input == "" {
		return "", fmt.Errorf("objective ID is required")
	}

	objectives, err := app.Objectives.List(ctx, true)
	if err != nil {
		return "", err
	}

	for _, o := range objectives {
		if o.ID == input {
			return o.ID, nil
		}
	}

	var matches []string
	for _, o := range objectives {
		if strings.HasPrefix(o.ID, input) {
			matches = append(matches, o.ID)
		}
	}

	switch len(matches) {
	case 0:
		return "", fmt.Errorf("objective not found: %q", input)
	case 1:
		return matches[0], nil
	default:
		return "", fmt.Errorf("objective ID prefix %q is ambiguous (%d matches)", input, len(matches))
	}
}

func newObjectiveCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "objective",
		Short: "Manage yearly objectives",
	}

	cmd.AddCommand(
		newObjectiveAddCmd(app),
		newObjectiveListCmd(app),
		newObjectiveProgressCmd(app),
		newObjectiveDeactivateCmd(app),
		newObjectiveRemoveCmd(app),
	)

	return cmd
}

func newObjectiveAddCmd(app *App) *cobra.Command {
	var title, description, metric string
	var target float64

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Create a new objective",
		RunE: func(cmd *cobra.Command, args []string) error {
			o := &domain.Objective{
				Title:        title,
				Description:  description,
				TargetMetric: metric,
				TargetValue:  target,
			}
			if err := app.Objectives.Create(context.Background(), o); err != nil {
				return err
			}
			fmt.Printf("Created objective %s (%s)\n", o.Title, o.ID[:8])
			return nil
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "Objective title")
	cmd.Flags().StringVar(&description, "desc", "", "Description")
	cmd.Flags().StringVar(&metric, "metric", "", "Unit the target is measured in (e.g. articles, boards)")
	cmd.Flags().Float64Var(&target, "target", 0, "Target value")
	_ = cmd.MarkFlagRequired("title")
	_ = cmd.MarkFlagRequired("target")

	return cmd
}

func newObjectiveListCmd(app *App) *cobra.Command {
	var all bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List objectives",
		RunE: func(cmd *cobra.Command, args []string) error {
			objectives, err := app.Objectives.List(context.Background(), all)
			if err != nil {
				return err
			}

			if len(objectives) == 0 {
				fmt.Println("No objectives found.")
				return nil
			}

			headers := []string{"ID", "TITLE", "PROGRESS", "BAND"}
			rows := make([][]string, 0, len(objectives))
			for _, o := range objectives {
				progress := fmt.Sprintf("%s %s",
					formatter.RenderProgress(o.Percent(), 10),
					formatter.Dim(fmt.Sprintf("%.0f/%.0f %s", o.CurrentProgress, o.TargetValue, o.TargetMetric)))
				rows = append(rows, []string{
					formatter.TruncID(o.ID),
					o.Title,
					progress,
					formatter.BandIndicator(o.Band()),
				})
			}

			fmt.Print(formatter.RenderBox("Objectives", formatter.RenderTable(headers, rows)))
			return nil
		},
	}

	cmd.Flags().BoolVar(&all, "all", false, "Include deactivated objectives")

	return cmd
}

func newObjectiveProgressCmd(app *App) *cobra.Command {
	var set, bump float64

	cmd := &cobra.Command{
		Use:   "progress ID",
		Short: "Set or bump an objective's progress",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			id, err := resolveObjectiveID(ctx, app, args[0])
			if err != nil {
				return err
			}

			var o *domain.Objective
			switch {
			case cmd.Flags().Changed("set"):
				o, err = app.Objectives.SetProgress(ctx, id, set)
			case cmd.Flags().Changed("bump"):
				o, err = app.Objectives.BumpProgress(ctx, id, bump)
			default:
				return fmt.Errorf("either --set or --bump is required")
			}
			if err != nil {
				return err
			}

			fmt.Printf("%s: %s\n", o.Title, formatter.RenderProgress(o.Percent(), 10))
			return nil
		},
	}

	cmd.Flags().Float64Var(&set, "set", 0, "Set progress to this value")
	cmd.Flags().Float64Var(&bump, "bump", 1, "Increase progress by this value")

	return cmd
}

func newObjectiveDeactivateCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "deactivate ID",
		Short: "Deactivate an objective",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			id, err := resolveObjectiveID(ctx, app, args[0])
			if err != nil {
				return err
			}
			if err := app.Objectives.Deactivate(ctx, id); err != nil {
				return err
			}
			fmt.Printf("Deactivated objective %s\n", id[:8])
			return nil
		},
	}
}

func newObjectiveRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "remove ID",
		Short: "Remove an objective",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			id, err := resolveObjectiveID(ctx, app, args[0])
			if err != nil {
				return err
			}
			if err := app.Objectives.Delete(ctx, id); err != nil {
				return err
			}
			fmt.Printf("Removed objective %s\n", id[:8])
			return nil
		},
	}
}
