package commands

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/traduki-io/traduki/internal/constants"
	"github.com/traduki-io/traduki/pkg/traduki"
)

// NewFilesCommand creates the files command group.
func NewFilesCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "files",
		Aliases: []string{"file"},
		Short:   "Manage source files",
		Long:    "List and inspect the source files of a project",
	}

	cmd.AddCommand(newFilesListCommand())
	cmd.AddCommand(newFilesGetCommand())
	cmd.AddCommand(newFilesDownloadCommand())

	return cmd
}

func newFilesListCommand() *cobra.Command {
	var (
		projectID int64
		limit     int
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List source files",
		Long:  "List the source files of a project",
		RunE: func(cmd *cobra.Command, args []string) error {
			if projectID == 0 {
				return ErrProjectFlagNeeded
			}

			return runFilesListCommand(projectID, limit)
		},
	}

	cmd.Flags().Int64VarP(&projectID, "project", "p", 0, "project ID")
	cmd.Flags().IntVar(&limit, "limit", constants.DefaultPageSize, "results per page")

	return cmd
}

func runFilesListCommand(projectID int64, limit int) error {
	client, err := CreateClient()
	if err != nil {
		return err
	}

	ctx := context.Background()

	opts := traduki.NewListOptions()
	opts.Limit = limit

	files, err := client.SourceFiles().ListFiles(ctx, projectID, opts)
	if err != nil {
		return fmt.Errorf("failed to list files: %w", err)
	}

	switch viper.GetString("output") {
	case OutputFormatJSON:
		return StandardJSONRenderer(files.Data)
	case OutputFormatYAML:
		return StandardYAMLRenderer(files.Data)
	default:
		return renderFilesTable(files.Data)
	}
}

func renderFilesTable(files []traduki.File) error {
	if len(files) == 0 {
		_, _ = os.Stdout.WriteString("No files found\n")

		return nil
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.Header("ID", "Name", "Path", "Type", "Status", "Updated")

	for _, file := range files {
		_ = table.Append(
			strconv.FormatInt(file.ID, 10),
			file.Name,
			file.Path,
			string(file.Type),
			file.Status,
			formatTimestamp(file.UpdatedAt))
	}

	_ = table.Render()

	return nil
}

func newFilesGetCommand() *cobra.Command {
	var projectID int64

	cmd := &cobra.Command{
		Use:   "get FILE_ID",
		Short: "Get file details",
		Long:  "Display detailed information about a source file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if projectID == 0 {
				return ErrProjectFlagNeeded
			}

			fileID, err := parseID(args[0], "file")
			if err != nil {
				return err
			}

			return runFilesGetCommand(projectID, fileID)
		},
	}

	cmd.Flags().Int64VarP(&projectID, "project", "p", 0, "project ID")

	return cmd
}

func runFilesGetCommand(projectID, fileID int64) error {
	client, err := CreateClient()
	if err != nil {
		return err
	}

	ctx := context.Background()

	file, err := client.SourceFiles().GetFile(ctx, projectID, fileID)
	if err != nil {
		return fmt.Errorf("failed to get file: %w", err)
	}

	switch viper.GetString("output") {
	case OutputFormatJSON:
		return StandardJSONRenderer(file)
	case OutputFormatYAML:
		return StandardYAMLRenderer(file)
	default:
		table := tablewriter.NewWriter(os.Stdout)
		table.Header("Property", "Value")

		_ = table.Append("ID", strconv.FormatInt(file.ID, 10))
		_ = table.Append("Name", file.Name)
		_ = table.Append("Path", file.Path)
		_ = table.Append("Type", string(file.Type))
		_ = table.Append("Status", file.Status)
		_ = table.Append("Revision", strconv.FormatInt(file.RevisionID, 10))
		_ = table.Append("Created", formatTimestamp(file.CreatedAt))
		_ = table.Append("Updated", formatTimestamp(file.UpdatedAt))

		_ = table.Render()

		return nil
	}
}

func newFilesDownloadCommand() *cobra.Command {
	var projectID int64

	cmd := &cobra.Command{
		Use:   "download FILE_ID",
		Short: "Get a file download link",
		Long:  "Request a short-lived download URL for a source file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if projectID == 0 {
				return ErrProjectFlagNeeded
			}

			fileID, err := parseID(args[0], "file")
			if err != nil {
				return err
			}

			client, err := CreateClient()
			if err != nil {
				return err
			}

			ctx := context.Background()

			link, err := client.SourceFiles().DownloadFile(ctx, projectID, fileID)
			if err != nil {
				return fmt.Errorf("failed to get download link: %w", err)
			}

			switch viper.GetString("output") {
			case OutputFormatJSON:
				return StandardJSONRenderer(link)
			case OutputFormatYAML:
				return StandardYAMLRenderer(link)
			default:
				fmt.Printf("%s\n(expires %s)\n", link.URL, formatTimestamp(link.ExpiresAt))

				return nil
			}
		},
	}

	cmd.Flags().Int64VarP(&projectID, "project", "p", 0, "project ID")

	return cmd
}
