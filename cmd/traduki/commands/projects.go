package commands

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/traduki-io/traduki/internal/constants"
	"github.com/traduki-io/traduki/pkg/traduki"
)

// NewProjectsCommand creates the projects command group.
func NewProjectsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "projects",
		Aliases: []string{"project"},
		Short:   "Manage projects",
		Long:    "List, inspect, create, and delete localization projects",
	}

	cmd.AddCommand(newProjectsListCommand())
	cmd.AddCommand(newProjectsGetCommand())
	cmd.AddCommand(newProjectsCreateCommand())
	cmd.AddCommand(newProjectsDeleteCommand())

	return cmd
}

func newProjectsListCommand() *cobra.Command {
	var (
		allPages bool
		limit    int
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List projects",
		Long:  "List all projects the token has access to",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runProjectsListCommand(allPages, limit)
		},
	}

	cmd.Flags().BoolVar(&allPages, "all", false, "fetch all pages")
	cmd.Flags().IntVar(&limit, "limit", constants.DefaultPageSize, "results per page")

	return cmd
}

func runProjectsListCommand(allPages bool, limit int) error {
	client, err := CreateClient()
	if err != nil {
		return err
	}

	ctx := context.Background()

	opts := traduki.NewListOptions()
	opts.Limit = limit

	if allPages {
		projects, err := client.Projects().ListAll(ctx, opts)
		if err != nil {
			return fmt.Errorf("failed to list projects: %w", err)
		}

		return outputProjects(projects, false)
	}

	page, err := client.Projects().List(ctx, opts)
	if err != nil {
		return fmt.Errorf("failed to list projects: %w", err)
	}

	truncated := len(page.Data) == limit

	return outputProjects(page.Data, truncated)
}

func outputProjects(projects []traduki.Project, truncated bool) error {
	switch viper.GetString("output") {
	case OutputFormatJSON:
		return StandardJSONRenderer(projects)
	case OutputFormatYAML:
		return StandardYAMLRenderer(projects)
	default:
		return renderProjectsTable(projects, truncated)
	}
}

func renderProjectsTable(projects []traduki.Project, truncated bool) error {
	if len(projects) == 0 {
		_, _ = os.Stdout.WriteString("No projects found\n")

		return nil
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.Header("ID", "Name", "Identifier", "Source", "Targets", "Created")

	for _, project := range projects {
		_ = table.Append(
			strconv.FormatInt(project.ID, 10),
			project.Name,
			project.Identifier,
			project.SourceLanguageID,
			strings.Join(project.TargetLanguageIDs, ", "),
			formatTimestamp(project.CreatedAt))
	}

	_ = table.Render()

	if truncated {
		_, _ = os.Stdout.WriteString("\nMore results may be available. Use --all to fetch every page.\n")
	}

	return nil
}

func newProjectsGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get PROJECT_ID",
		Short: "Get project details",
		Long:  "Display detailed information about a specific project",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			projectID, err := parseID(args[0], "project")
			if err != nil {
				return err
			}

			return runProjectsGetCommand(projectID)
		},
	}
}

func runProjectsGetCommand(projectID int64) error {
	client, err := CreateClient()
	if err != nil {
		return err
	}

	ctx := context.Background()

	project, err := client.Projects().Get(ctx, projectID)
	if err != nil {
		return fmt.Errorf("failed to get project: %w", err)
	}

	switch viper.GetString("output") {
	case OutputFormatJSON:
		return StandardJSONRenderer(project)
	case OutputFormatYAML:
		return StandardYAMLRenderer(project)
	default:
		return renderProjectDetailsTable(project)
	}
}

func renderProjectDetailsTable(project *traduki.Project) error {
	table := tablewriter.NewWriter(os.Stdout)
	table.Header("Property", "Value")

	_ = table.Append("ID", strconv.FormatInt(project.ID, 10))
	_ = table.Append("Name", project.Name)
	_ = table.Append("Identifier", project.Identifier)
	_ = table.Append("Description", project.Description)
	_ = table.Append("Visibility", string(project.Visibility))
	_ = table.Append("Source language", project.SourceLanguageID)
	_ = table.Append("Target languages", strings.Join(project.TargetLanguageIDs, ", "))
	_ = table.Append("Created", formatTimestamp(project.CreatedAt))
	_ = table.Append("Updated", formatTimestamp(project.UpdatedAt))

	_ = table.Render()

	return nil
}

func newProjectsCreateCommand() *cobra.Command {
	var (
		name            string
		identifier      string
		sourceLanguage  string
		targetLanguages []string
	)

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a new project",
		Long:  "Create a new localization project",
		RunE: func(cmd *cobra.Command, args []string) error {
			if name == "" {
				return ErrProjectNameRequired
			}

			client, err := CreateClient()
			if err != nil {
				return err
			}

			ctx := context.Background()

			project, err := client.Projects().Add(ctx, &traduki.ProjectCreateRequest{
				Name:              name,
				Identifier:        identifier,
				SourceLanguageID:  sourceLanguage,
				TargetLanguageIDs: targetLanguages,
			})
			if err != nil {
				return fmt.Errorf("failed to create project: %w", err)
			}

			switch viper.GetString("output") {
			case OutputFormatJSON:
				return StandardJSONRenderer(project)
			case OutputFormatYAML:
				return StandardYAMLRenderer(project)
			default:
				fmt.Printf("Successfully created project '%s' (ID: %d)\n", project.Name, project.ID)

				return nil
			}
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "project name")
	cmd.Flags().StringVar(&identifier, "identifier", "", "unique project identifier")
	cmd.Flags().StringVar(&sourceLanguage, "source-language", "en", "source language ID")
	cmd.Flags().StringSliceVar(&targetLanguages, "target-languages", nil, "target language IDs")

	return cmd
}

func newProjectsDeleteCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "delete PROJECT_ID",
		Short: "Delete a project",
		Long:  "Delete a localization project and all of its content",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			projectID, err := parseID(args[0], "project")
			if err != nil {
				return err
			}

			client, err := CreateClient()
			if err != nil {
				return err
			}

			ctx := context.Background()

			err = client.Projects().Delete(ctx, projectID)
			if err != nil {
				return fmt.Errorf("failed to delete project: %w", err)
			}

			fmt.Printf("Successfully deleted project %d\n", projectID)

			return nil
		},
	}
}
