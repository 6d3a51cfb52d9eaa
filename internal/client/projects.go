package client

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/traduki-io/traduki/internal/http"
	"github.com/traduki-io/traduki/pkg/traduki"
)

// ProjectsClient implements traduki.ProjectsClient.
type ProjectsClient struct {
	httpClient *http.Client
}

// NewProjectsClient creates a new projects client.
func NewProjectsClient(httpClient *http.Client) *ProjectsClient {
	return &ProjectsClient{
		httpClient: httpClient,
	}
}

// List implements traduki.ProjectsClient.List.
func (c *ProjectsClient) List(ctx context.Context, opts *traduki.ListOptions) (*traduki.ListResponse[traduki.Project], error) {
	path := "/api/v2/projects"

	query := listQuery(c.httpClient, opts)

	resp, err := c.httpClient.Get(ctx, path, query)
	if err != nil {
		return nil, fmt.Errorf("listing projects: %w", err)
	}

	var list traduki.ListResponse[traduki.Project]

	err = json.Unmarshal(resp.Body, &list)
	if err != nil {
		return nil, fmt.Errorf("parsing projects list: %w", err)
	}

	return &list, nil
}

// ListAll implements traduki.ProjectsClient.ListAll by walking every page.
func (c *ProjectsClient) ListAll(ctx context.Context, opts *traduki.ListOptions) ([]traduki.Project, error) {
	return traduki.NewPaginationIterator(ctx, c.List, withDefaultLimit(c.httpClient, opts)).All()
}

// Get implements traduki.ProjectsClient.Get.
func (c *ProjectsClient) Get(ctx context.Context, projectID int64) (*traduki.Project, error) {
	projectID = projectOrDefault(c.httpClient, projectID)

	path := fmt.Sprintf("/api/v2/projects/%d", projectID)

	resp, err := c.httpClient.Get(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("getting project: %w", err)
	}

	var project traduki.Project

	err = json.Unmarshal(resp.Body, &project)
	if err != nil {
		return nil, fmt.Errorf("parsing project: %w", err)
	}

	return &project, nil
}

// Add implements traduki.ProjectsClient.Add.
func (c *ProjectsClient) Add(ctx context.Context, request *traduki.ProjectCreateRequest) (*traduki.Project, error) {
	path := "/api/v2/projects"

	resp, err := c.httpClient.Post(ctx, path, request)
	if err != nil {
		return nil, fmt.Errorf("creating project: %w", err)
	}

	var project traduki.Project

	err = json.Unmarshal(resp.Body, &project)
	if err != nil {
		return nil, fmt.Errorf("parsing project: %w", err)
	}

	return &project, nil
}

// Edit implements traduki.ProjectsClient.Edit.
func (c *ProjectsClient) Edit(ctx context.Context, projectID int64, ops []traduki.PatchOperation) (*traduki.Project, error) {
	projectID = projectOrDefault(c.httpClient, projectID)

	path := fmt.Sprintf("/api/v2/projects/%d", projectID)

	resp, err := c.httpClient.Patch(ctx, path, ops)
	if err != nil {
		return nil, fmt.Errorf("updating project: %w", err)
	}

	var project traduki.Project

	err = json.Unmarshal(resp.Body, &project)
	if err != nil {
		return nil, fmt.Errorf("parsing project: %w", err)
	}

	return &project, nil
}

// Delete implements traduki.ProjectsClient.Delete.
func (c *ProjectsClient) Delete(ctx context.Context, projectID int64) error {
	projectID = projectOrDefault(c.httpClient, projectID)

	path := fmt.Sprintf("/api/v2/projects/%d", projectID)

	_, err := c.httpClient.Delete(ctx, path)
	if err != nil {
		return fmt.Errorf("deleting project: %w", err)
	}

	return nil
}
