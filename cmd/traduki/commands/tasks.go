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

// NewTasksCommand creates the tasks command group.
func NewTasksCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "tasks",
		Aliases: []string{"task"},
		Short:   "Manage tasks",
		Long:    "List and inspect translation and proofreading tasks",
	}

	cmd.AddCommand(newTasksListCommand())
	cmd.AddCommand(newTasksGetCommand())

	return cmd
}

func newTasksListCommand() *cobra.Command {
	var (
		projectID int64
		status    string
		limit     int
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List tasks",
		Long:  "List the tasks of a project",
		RunE: func(cmd *cobra.Command, args []string) error {
			if projectID == 0 {
				return ErrProjectFlagNeeded
			}

			return runTasksListCommand(projectID, status, limit)
		},
	}

	cmd.Flags().Int64VarP(&projectID, "project", "p", 0, "project ID")
	cmd.Flags().StringVar(&status, "status", "", "filter by status (todo, inProgress, done, closed)")
	cmd.Flags().IntVar(&limit, "limit", constants.DefaultPageSize, "results per page")

	return cmd
}

func runTasksListCommand(projectID int64, status string, limit int) error {
	client, err := CreateClient()
	if err != nil {
		return err
	}

	ctx := context.Background()

	opts := traduki.NewListOptions()
	opts.Limit = limit

	if status != "" {
		opts.WithFilter("status", status)
	}

	tasks, err := client.Tasks().List(ctx, projectID, opts)
	if err != nil {
		return fmt.Errorf("failed to list tasks: %w", err)
	}

	switch viper.GetString("output") {
	case OutputFormatJSON:
		return StandardJSONRenderer(tasks.Data)
	case OutputFormatYAML:
		return StandardYAMLRenderer(tasks.Data)
	default:
		return renderTasksTable(tasks.Data)
	}
}

func renderTasksTable(tasks []traduki.Task) error {
	if len(tasks) == 0 {
		_, _ = os.Stdout.WriteString("No tasks found\n")

		return nil
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.Header("ID", "Title", "Type", "Status", "Language", "Words", "Deadline")

	for _, task := range tasks {
		_ = table.Append(
			strconv.FormatInt(task.ID, 10),
			task.Title,
			taskTypeName(task.Type),
			string(task.Status),
			task.LanguageID,
			strconv.Itoa(task.WordsCount),
			formatTimestamp(task.Deadline))
	}

	_ = table.Render()

	return nil
}

func taskTypeName(taskType traduki.TaskType) string {
	switch taskType {
	case traduki.TaskTypeTranslate:
		return "translate"
	case traduki.TaskTypeProofread:
		return "proofread"
	default:
		return strconv.Itoa(int(taskType))
	}
}

func newTasksGetCommand() *cobra.Command {
	var projectID int64

	cmd := &cobra.Command{
		Use:   "get TASK_ID",
		Short: "Get task details",
		Long:  "Display detailed information about a task",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if projectID == 0 {
				return ErrProjectFlagNeeded
			}

			taskID, err := parseID(args[0], "task")
			if err != nil {
				return err
			}

			return runTasksGetCommand(projectID, taskID)
		},
	}

	cmd.Flags().Int64VarP(&projectID, "project", "p", 0, "project ID")

	return cmd
}

func runTasksGetCommand(projectID, taskID int64) error {
	client, err := CreateClient()
	if err != nil {
		return err
	}

	ctx := context.Background()

	task, err := client.Tasks().Get(ctx, projectID, taskID)
	if err != nil {
		return fmt.Errorf("failed to get task: %w", err)
	}

	switch viper.GetString("output") {
	case OutputFormatJSON:
		return StandardJSONRenderer(task)
	case OutputFormatYAML:
		return StandardYAMLRenderer(task)
	default:
		table := tablewriter.NewWriter(os.Stdout)
		table.Header("Property", "Value")

		_ = table.Append("ID", strconv.FormatInt(task.ID, 10))
		_ = table.Append("Title", task.Title)
		_ = table.Append("Type", taskTypeName(task.Type))
		_ = table.Append("Status", string(task.Status))
		_ = table.Append("Language", task.LanguageID)
		_ = table.Append("Words", strconv.Itoa(task.WordsCount))
		_ = table.Append("Deadline", formatTimestamp(task.Deadline))
		_ = table.Append("Created", formatTimestamp(task.CreatedAt))

		_ = table.Render()

		return nil
	}
}
