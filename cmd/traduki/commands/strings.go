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

// NewStringsCommand creates the strings command group.
func NewStringsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "strings",
		Aliases: []string{"string"},
		Short:   "Manage source strings",
		Long:    "List and inspect the translatable strings of a project",
	}

	cmd.AddCommand(newStringsListCommand())
	cmd.AddCommand(newStringsGetCommand())

	return cmd
}

func newStringsListCommand() *cobra.Command {
	var (
		projectID int64
		fileID    int64
		allPages  bool
		limit     int
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List source strings",
		Long:  "List the translatable strings of a project",
		RunE: func(cmd *cobra.Command, args []string) error {
			if projectID == 0 {
				return ErrProjectFlagNeeded
			}

			return runStringsListCommand(projectID, fileID, allPages, limit)
		},
	}

	cmd.Flags().Int64VarP(&projectID, "project", "p", 0, "project ID")
	cmd.Flags().Int64Var(&fileID, "file", 0, "filter by file ID")
	cmd.Flags().BoolVar(&allPages, "all", false, "fetch all pages")
	cmd.Flags().IntVar(&limit, "limit", constants.DefaultPageSize, "results per page")

	return cmd
}

func runStringsListCommand(projectID, fileID int64, allPages bool, limit int) error {
	client, err := CreateClient()
	if err != nil {
		return err
	}

	ctx := context.Background()

	opts := traduki.NewListOptions()
	opts.Limit = limit

	if fileID != 0 {
		opts.WithFilter("fileId", strconv.FormatInt(fileID, 10))
	}

	if allPages {
		strings, err := client.Strings().ListAll(ctx, projectID, opts)
		if err != nil {
			return fmt.Errorf("failed to list strings: %w", err)
		}

		return outputStrings(strings)
	}

	page, err := client.Strings().List(ctx, projectID, opts)
	if err != nil {
		return fmt.Errorf("failed to list strings: %w", err)
	}

	return outputStrings(page.Data)
}

func outputStrings(strings []traduki.SourceString) error {
	switch viper.GetString("output") {
	case OutputFormatJSON:
		return StandardJSONRenderer(strings)
	case OutputFormatYAML:
		return StandardYAMLRenderer(strings)
	default:
		return renderStringsTable(strings)
	}
}

func renderStringsTable(strings []traduki.SourceString) error {
	if len(strings) == 0 {
		_, _ = os.Stdout.WriteString("No strings found\n")

		return nil
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.Header("ID", "Identifier", "Text", "File", "Hidden")

	for _, str := range strings {
		_ = table.Append(
			strconv.FormatInt(str.ID, 10),
			str.Identifier,
			truncateText(str.Text, stringPreviewWidth),
			strconv.FormatInt(str.FileID, 10),
			strconv.FormatBool(str.IsHidden))
	}

	_ = table.Render()

	return nil
}

// stringPreviewWidth bounds the Text column in table output.
const stringPreviewWidth = 60

func truncateText(text string, width int) string {
	runes := []rune(text)
	if len(runes) <= width {
		return text
	}

	return string(runes[:width-3]) + "..."
}

func newStringsGetCommand() *cobra.Command {
	var projectID int64

	cmd := &cobra.Command{
		Use:   "get STRING_ID",
		Short: "Get string details",
		Long:  "Display detailed information about a source string",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if projectID == 0 {
				return ErrProjectFlagNeeded
			}

			stringID, err := parseID(args[0], "string")
			if err != nil {
				return err
			}

			return runStringsGetCommand(projectID, stringID)
		},
	}

	cmd.Flags().Int64VarP(&projectID, "project", "p", 0, "project ID")

	return cmd
}

func runStringsGetCommand(projectID, stringID int64) error {
	client, err := CreateClient()
	if err != nil {
		return err
	}

	ctx := context.Background()

	str, err := client.Strings().Get(ctx, projectID, stringID)
	if err != nil {
		return fmt.Errorf("failed to get string: %w", err)
	}

	switch viper.GetString("output") {
	case OutputFormatJSON:
		return StandardJSONRenderer(str)
	case OutputFormatYAML:
		return StandardYAMLRenderer(str)
	default:
		table := tablewriter.NewWriter(os.Stdout)
		table.Header("Property", "Value")

		_ = table.Append("ID", strconv.FormatInt(str.ID, 10))
		_ = table.Append("Identifier", str.Identifier)
		_ = table.Append("Text", str.Text)
		_ = table.Append("Context", str.Context)
		_ = table.Append("File", strconv.FormatInt(str.FileID, 10))
		_ = table.Append("Hidden", strconv.FormatBool(str.IsHidden))
		_ = table.Append("Created", formatTimestamp(str.CreatedAt))
		_ = table.Append("Updated", formatTimestamp(str.UpdatedAt))

		_ = table.Render()

		return nil
	}
}
