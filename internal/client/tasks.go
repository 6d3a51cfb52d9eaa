package client

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/traduki-io/traduki/internal/http"
	"github.com/traduki-io/traduki/pkg/traduki"
)

// TasksClient implements traduki.TasksClient for the public deployment.
type TasksClient struct {
	httpClient *http.Client
}

// NewTasksClient creates a new tasks client for the public deployment.
func NewTasksClient(httpClient *http.Client) *TasksClient {
	return &TasksClient{
		httpClient: httpClient,
	}
}

// List implements traduki.TasksClient.List.
func (c *TasksClient) List(ctx context.Context, projectID int64, opts *traduki.ListOptions) (*traduki.ListResponse[traduki.Task], error) {
	projectID = projectOrDefault(c.httpClient, projectID)

	path := fmt.Sprintf("/api/v2/projects/%d/tasks", projectID)

	query := listQuery(c.httpClient, opts)

	resp, err := c.httpClient.Get(ctx, path, query)
	if err != nil {
		return nil, fmt.Errorf("listing tasks: %w", err)
	}

	var list traduki.ListResponse[traduki.Task]

	err = json.Unmarshal(resp.Body, &list)
	if err != nil {
		return nil, fmt.Errorf("parsing tasks list: %w", err)
	}

	return &list, nil
}

// Get implements traduki.TasksClient.Get.
func (c *TasksClient) Get(ctx context.Context, projectID, taskID int64) (*traduki.Task, error) {
	projectID = projectOrDefault(c.httpClient, projectID)

	path := fmt.Sprintf("/api/v2/projects/%d/tasks/%d", projectID, taskID)

	resp, err := c.httpClient.Get(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("getting task: %w", err)
	}

	var task traduki.Task

	err = json.Unmarshal(resp.Body, &task)
	if err != nil {
		return nil, fmt.Errorf("parsing task: %w", err)
	}

	return &task, nil
}

// Add implements traduki.TasksClient.Add. Workflow steps only exist on
// enterprise, so the request is rejected here before any network I/O.
func (c *TasksClient) Add(ctx context.Context, projectID int64, request *traduki.TaskCreateRequest) (*traduki.Task, error) {
	projectID = projectOrDefault(c.httpClient, projectID)

	if request != nil && request.WorkflowStepID != 0 {
		return nil, traduki.ErrWorkflowStepRequired
	}

	return addTask(ctx, c.httpClient, projectID, request)
}

// Edit implements traduki.TasksClient.Edit.
func (c *TasksClient) Edit(ctx context.Context, projectID, taskID int64, ops []traduki.PatchOperation) (*traduki.Task, error) {
	return editTask(ctx, c.httpClient, projectID, taskID, ops)
}

// Delete implements traduki.TasksClient.Delete.
func (c *TasksClient) Delete(ctx context.Context, projectID, taskID int64) error {
	projectID = projectOrDefault(c.httpClient, projectID)

	path := fmt.Sprintf("/api/v2/projects/%d/tasks/%d", projectID, taskID)

	_, err := c.httpClient.Delete(ctx, path)
	if err != nil {
		return fmt.Errorf("deleting task: %w", err)
	}

	return nil
}

// EnterpriseTasksClient implements traduki.TasksClient for enterprise
// deployments, where tasks may target a workflow step.
type EnterpriseTasksClient struct {
	*TasksClient
}

// NewEnterpriseTasksClient creates a new tasks client for enterprise.
func NewEnterpriseTasksClient(httpClient *http.Client) *EnterpriseTasksClient {
	return &EnterpriseTasksClient{
		TasksClient: NewTasksClient(httpClient),
	}
}

// Add implements traduki.TasksClient.Add without the public-deployment
// workflow step restriction.
func (c *EnterpriseTasksClient) Add(ctx context.Context, projectID int64, request *traduki.TaskCreateRequest) (*traduki.Task, error) {
	return addTask(ctx, c.httpClient, projectID, request)
}

func addTask(ctx context.Context, httpClient *http.Client, projectID int64, request *traduki.TaskCreateRequest) (*traduki.Task, error) {
	projectID = projectOrDefault(httpClient, projectID)

	path := fmt.Sprintf("/api/v2/projects/%d/tasks", projectID)

	resp, err := httpClient.Post(ctx, path, request)
	if err != nil {
		return nil, fmt.Errorf("creating task: %w", err)
	}

	var task traduki.Task

	err = json.Unmarshal(resp.Body, &task)
	if err != nil {
		return nil, fmt.Errorf("parsing task: %w", err)
	}

	return &task, nil
}

func editTask(ctx context.Context, httpClient *http.Client, projectID, taskID int64, ops []traduki.PatchOperation) (*traduki.Task, error) {
	projectID = projectOrDefault(httpClient, projectID)

	path := fmt.Sprintf("/api/v2/projects/%d/tasks/%d", projectID, taskID)

	resp, err := httpClient.Patch(ctx, path, ops)
	if err != nil {
		return nil, fmt.Errorf("updating task: %w", err)
	}

	var task traduki.Task

	err = json.Unmarshal(resp.Body, &task)
	if err != nil {
		return nil, fmt.Errorf("parsing task: %w", err)
	}

	return &task, nil
}
