package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/alexanderramin/rumbo/internal/cli/formatter"
	"github.com/alexanderramin/rumbo/internal/domain"
	"github.com/spf13/cobra"
)

func resolveProjectID(ctx context.Context, app *App, input string) (string, error) {
	if input == "" {
		return "", fmt.Errorf("project ID is required")
	}

	projects, err := app.Projects.List(ctx)
	if err != nil {
		return "", err
	}

	for _, p := range projects {
		if p.Project.ID == input {
			return p.Project.ID, nil
		}
	}

	var matches []string
	for _, p := range projects {
		if strings.HasPrefix(p.Project.ID, input) {
			matches = append(matches, p.Project.ID)
		}
	}

	switch len(matches) {
	case 0:
		return "", fmt.Errorf("project not found: %q", input)
	case 1:
		return matches[0], nil
	default:
		return "", fmt.Errorf("project ID prefix %q is ambiguous (%d matches)", input, len(matches))
	}
}

func newProjectCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "project",
		Short: "Manage hardware and software projects",
	}

	cmd.AddCommand(
		newProjectAddCmd(app),
		newProjectListCmd(app),
		newProjectStageCmd(app),
		newProjectAdvanceCmd(app),
		newProjectRetreatCmd(app),
		newProjectRemoveCmd(app),
	)

	return cmd
}

func newProjectAddCmd(app *App) *cobra.Command {
	var name, description, category, objectiveRef string

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Create a new project",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			if category != "" && !domain.ValidCategories[category] {
				return fmt.Errorf("unknown category %q (expected pcb, software, docs or other)", category)
			}

			p := &domain.Project{
				Name:        name,
				Description: description,
				Category:    domain.ProjectCategory(category),
			}
			if objectiveRef != "" {
				id, err := resolveObjectiveID(ctx, app, objectiveRef)
				if err != nil {
					return err
				}
				p.ObjectiveID = &id
			}

			if err := app.Projects.Create(ctx, p); err != nil {
				return err
			}

			fmt.Printf("Created project %s (%s)\n", p.Name, p.ID[:8])
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Project name")
	cmd.Flags().StringVar(&description, "desc", "", "Description")
	cmd.Flags().StringVar(&category, "category", "", "Category (pcb|software|docs|other)")
	cmd.Flags().StringVar(&objectiveRef, "objective", "", "Linked objective ID")
	_ = cmd.MarkFlagRequired("name")

	return cmd
}

func newProjectListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List projects",
		RunE: func(cmd *cobra.Command, args []string) error {
			projects, err := app.Projects.List(context.Background())
			if err != nil {
				return err
			}

			if len(projects) == 0 {
				fmt.Println("No projects found.")
				return nil
			}

			headers := []string{"ID", "NAME", "CATEGORY", "STAGE", "OBJECTIVE"}
			rows := make([][]string, 0, len(projects))
			for _, p := range projects {
				objective := formatter.Dim("--")
				if p.ObjectiveTitle != nil {
					objective = *p.ObjectiveTitle
				}
				rows = append(rows, []string{
					formatter.TruncID(p.Project.ID),
					p.Project.Name,
					string(p.Project.Category),
					formatter.StagePill(p.Project.Status),
					objective,
				})
			}

			fmt.Print(formatter.RenderBox("Projects", formatter.RenderTable(headers, rows)))
			return nil
		},
	}
}

func newProjectStageCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "stage ID STAGE",
		Short: "Set a project's stage directly",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			id, err := resolveProjectID(ctx, app, args[0])
			if err != nil {
				return err
			}
			stage, err := domain.ParseProjectStage(args[1])
			if err != nil {
				return err
			}

			p, err := app.Projects.SetStage(ctx, id, stage)
			if err != nil {
				return err
			}
			fmt.Printf("%s is now %s\n", p.Name, formatter.StagePill(p.Status))
			return nil
		},
	}
}

func newProjectAdvanceCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "advance ID",
		Short: "Move a project one stage forward",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			id, err := resolveProjectID(ctx, app, args[0])
			if err != nil {
				return err
			}
			p, err := app.Projects.Advance(ctx, id)
			if err != nil {
				return err
			}
			fmt.Printf("%s is now %s\n", p.Name, formatter.StagePill(p.Status))
			return nil
		},
	}
}

func newProjectRetreatCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "retreat ID",
		Short: "Move a project one stage back",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			id, err := resolveProjectID(ctx, app, args[0])
			if err != nil {
				return err
			}
			p, err := app.Projects.Retreat(ctx, id)
			if err != nil {
				return err
			}
			fmt.Printf("%s is now %s\n", p.Name, formatter.StagePill(p.Status))
			return nil
		},
	}
}

func newProjectRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "remove ID",
		Short: "Remove a project",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			id, err := resolveProjectID(ctx, app, args[0])
			if err != nil {
				return err
			}
			if err := app.Projects.Delete(ctx, id); err != nil {
				return err
			}
			fmt.Printf("Removed project %s\n", id[:8])
			return nil
		},
	}
}
